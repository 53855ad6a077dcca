package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Marketplace MarketplaceConfig
	Wallet      WalletConfig
	Transfer    TransferConfig
	Batch       BatchConfig
	Logging     LoggingConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type MarketplaceConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

type WalletConfig struct {
	BaseURL    string
	Login      string
	Password   string
	Timeout    time.Duration
	MaxRetries int
}

type TransferConfig struct {
	BundlePath        string
	ExtractDir        string
	RemoteRoot        string
	UploadConcurrency int
}

type BatchConfig struct {
	// Interval of 0 disables the scheduler; runs can still be triggered
	// through the HTTP API.
	Interval time.Duration
	Lookback time.Duration
}

type LoggingConfig struct {
	Level string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Marketplace: MarketplaceConfig{
			BaseURL:    getEnv("MARKETPLACE_BASE_URL", "http://localhost:9080"),
			APIKey:     getEnv("MARKETPLACE_API_KEY", ""),
			Timeout:    getDurationEnv("MARKETPLACE_TIMEOUT", 30*time.Second),
			MaxRetries: getIntEnv("MARKETPLACE_MAX_RETRIES", 3),
		},
		Wallet: WalletConfig{
			BaseURL:    getEnv("WALLET_BASE_URL", "http://localhost:9090"),
			Login:      getEnv("WALLET_LOGIN", ""),
			Password:   getEnv("WALLET_PASSWORD", ""),
			Timeout:    getDurationEnv("WALLET_TIMEOUT", 30*time.Second),
			MaxRetries: getIntEnv("WALLET_MAX_RETRIES", 3),
		},
		Transfer: TransferConfig{
			BundlePath:        getEnv("DOCUMENT_BUNDLE_PATH", "/tmp/walletsync/documents.zip"),
			ExtractDir:        getEnv("DOCUMENT_EXTRACT_DIR", "/tmp/walletsync/extracted"),
			RemoteRoot:        getEnv("DOCUMENT_REMOTE_ROOT", "/var/walletsync/documents"),
			UploadConcurrency: getIntEnv("UPLOAD_CONCURRENCY", 4),
		},
		Batch: BatchConfig{
			Interval: getDurationEnv("BATCH_INTERVAL", 0),
			Lookback: getDurationEnv("BATCH_LOOKBACK", 24*time.Hour),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
