package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port string

	// Favourites store: "sqlite" (DBPath) or "postgres" (DatabaseURL)
	DBDriver    string
	DBPath      string
	DatabaseURL string

	// DeviceSecret signs the anonymous device cookie
	DeviceSecret string
	SecureCookie bool

	CityBikesBaseURL string
	CityBikesNetwork string
	HTTPTimeout      time.Duration

	RateLimit       int // requests per window per client
	RateLimitWindow time.Duration
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbDriver := os.Getenv("DB_DRIVER")
	if dbDriver == "" {
		dbDriver = "sqlite"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/velomap.db"
	}

	deviceSecret := os.Getenv("DEVICE_SECRET")
	if deviceSecret == "" {
		deviceSecret = "dev-insecure-device-secret"
	}

	baseURL := os.Getenv("CITYBIKES_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.citybik.es"
	}

	network := os.Getenv("CITYBIKES_NETWORK")
	if network == "" {
		network = "velo-antwerpen"
	}

	return &Config{
		Port:             port,
		DBDriver:         dbDriver,
		DBPath:           dbPath,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DeviceSecret:     deviceSecret,
		SecureCookie:     os.Getenv("SECURE_COOKIE") == "true",
		CityBikesBaseURL: baseURL,
		CityBikesNetwork: network,
		HTTPTimeout:      envDuration("HTTP_TIMEOUT", 15*time.Second),
		RateLimit:        envInt("RATE_LIMIT", 120),
		RateLimitWindow:  envDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
