package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Redis configuration
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// PubNub configuration
	PubNubPublishKey   string
	PubNubSubscribeKey string
	PubNubSecretKey    string
	InventoryChannel   string

	// Catalog API configuration
	CatalogBaseURL  string
	CatalogTimeout  time.Duration
	CatalogCacheTTL time.Duration

	// Rate limiting
	BuyRateLimit  int
	BuyRateWindow time.Duration

	// Monitoring
	EnableMetrics   bool
	MetricsPort     string
	MonitorInterval time.Duration
}

func LoadConfig() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8090"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Redis
		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		// PubNub
		PubNubPublishKey:   getEnv("PUBNUB_PUBLISH_KEY", ""),
		PubNubSubscribeKey: getEnv("PUBNUB_SUBSCRIBE_KEY", ""),
		PubNubSecretKey:    getEnv("PUBNUB_SECRET_KEY", ""),
		InventoryChannel:   getEnv("INVENTORY_CHANNEL", "inventory-updates"),

		// Catalog
		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "https://api.escuelajs.co/api/v1"),
		CatalogTimeout:  getEnvAsDuration("CATALOG_TIMEOUT", "10s"),
		CatalogCacheTTL: getEnvAsDuration("CATALOG_CACHE_TTL", "5m"),

		// Rate limiting
		BuyRateLimit:  getEnvAsInt("BUY_RATE_LIMIT", 30),
		BuyRateWindow: getEnvAsDuration("BUY_RATE_WINDOW", "1m"),

		// Monitoring
		EnableMetrics:   getEnvAsBool("ENABLE_METRICS", true),
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
		MonitorInterval: getEnvAsDuration("MONITOR_INTERVAL", "30s"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	// If parsing fails, try to parse default value
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
