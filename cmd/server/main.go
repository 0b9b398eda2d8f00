package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jengzang/velomap-backend-go/internal/api"
	"github.com/jengzang/velomap-backend-go/internal/citybikes"
	"github.com/jengzang/velomap-backend-go/internal/config"
	"github.com/jengzang/velomap-backend-go/internal/database"
	"github.com/jengzang/velomap-backend-go/internal/favourites"
	"github.com/jengzang/velomap-backend-go/internal/handler"
	"github.com/jengzang/velomap-backend-go/internal/middleware"
	"github.com/jengzang/velomap-backend-go/internal/repository"
	"github.com/jengzang/velomap-backend-go/internal/service"
	"github.com/jengzang/velomap-backend-go/internal/terrain"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化收藏存储
	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer closeStore()

	devices, err := middleware.NewDeviceTokens(cfg.DeviceSecret)
	if err != nil {
		log.Fatal("Failed to initialize device tokens:", err)
	}

	client := citybikes.NewClient(cfg.CityBikesBaseURL, cfg.CityBikesNetwork, cfg.HTTPTimeout)
	log.Printf("[CityBikes] Using %s", client.NetworkURL())

	stations := service.NewStationService(client, store)
	terrains := service.NewTerrainService(stations, terrain.NewBuilder())
	favs := service.NewFavouriteService(stations, store)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	stop := make(chan struct{})
	go limiter.Run(stop)

	// 初始化路由
	router := api.SetupRouter(api.Handlers{
		Stations:     handler.NewStationHandler(stations),
		Terrain:      handler.NewTerrainHandler(terrains),
		Favourites:   handler.NewFavouriteHandler(favs),
		Devices:      devices,
		Limiter:      limiter,
		SecureCookie: cfg.SecureCookie,
	})

	server := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		close(stop)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Failed to start server:", err)
	}
}

// openStore opens the favourites key-value store selected by DB_DRIVER
func openStore(cfg *config.Config) (favourites.Store, func(), error) {
	switch cfg.DBDriver {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPgKVRepository(pool), pool.Close, nil
	default:
		if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := database.Close(); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}
		return repository.NewKVRepository(database.GetDB()), closeDB, nil
	}
}
