package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/velomap-backend-go/internal/handler"
	"github.com/jengzang/velomap-backend-go/internal/middleware"
)

// Handlers 路由依赖
type Handlers struct {
	Stations   *handler.StationHandler
	Terrain    *handler.TerrainHandler
	Favourites *handler.FavouriteHandler

	Devices *middleware.DeviceTokens
	Limiter *middleware.RateLimiter

	// SecureCookie marks the device cookie Secure (HTTPS deployments)
	SecureCookie bool
}

// SetupRouter 设置路由
func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Velomap Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.Device(h.Devices, h.SecureCookie))
	if h.Limiter != nil {
		api.Use(middleware.RateLimit(h.Limiter))
	}
	{
		// 网络信息
		api.GET("/network", h.Stations.GetNetwork)

		// 站点
		stations := api.Group("/stations")
		{
			stations.GET("", h.Stations.GetStations)
			stations.GET("/:id", h.Stations.GetStationByID)
			stations.GET("/:id/terrain", h.Terrain.GetStationTerrain)
		}

		// 地形
		terrain := api.Group("/terrain")
		{
			terrain.GET("", h.Terrain.GetOverview)
			terrain.POST("/pick", h.Terrain.Pick)
		}

		// 收藏
		favourites := api.Group("/favourites")
		{
			favourites.GET("", h.Favourites.GetFavourites)
			favourites.POST("/:id/toggle", h.Favourites.Toggle)
		}
	}

	return r
}
