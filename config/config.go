// Package config provides configuration management for the catalog service.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	GoldPrice GoldPriceConfig
	Catalog   CatalogConfig
	Client    ClientConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
}

// GoldPriceConfig holds gold price provider configuration.
type GoldPriceConfig struct {
	// MetalpriceBaseURL is the base URL of the keyless spot-rate provider.
	MetalpriceBaseURL string
	// MetalpriceAPIKey is the API key for the spot-rate provider ("demo" works without signup).
	MetalpriceAPIKey string
	// GoldAPIBaseURL is the base URL of the keyed per-gram price provider.
	GoldAPIBaseURL string
	// GoldAPIKey enables the secondary provider when non-empty.
	GoldAPIKey string
	// RequestTimeout bounds each outbound provider call.
	RequestTimeout time.Duration
}

// CatalogConfig holds the static product catalog configuration.
type CatalogConfig struct {
	// File is the path of the product catalog JSON file.
	File string
}

// ClientConfig holds configuration for the catalog browser client.
type ClientConfig struct {
	// APIURL is the base URL of the catalog service.
	APIURL string
}

// Load creates a Config from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		GoldPrice: GoldPriceConfig{
			MetalpriceBaseURL: getEnv("METALPRICE_API_URL", "https://api.metalpriceapi.com"),
			MetalpriceAPIKey:  getEnv("METALPRICE_API_KEY", "demo"),
			GoldAPIBaseURL:    getEnv("GOLD_API_URL", "https://www.goldapi.io"),
			GoldAPIKey:        getEnv("GOLD_API_KEY", ""),
			RequestTimeout:    getEnvDuration("GOLD_PRICE_TIMEOUT", 10*time.Second),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", "products.json"),
		},
		Client: ClientConfig{
			APIURL: getEnv("API_URL", "http://localhost:5000"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
