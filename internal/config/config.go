package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Storage configuration
	Storage StorageConfig
}

// StorageConfig holds durable-storage configuration
type StorageConfig struct {
	// Dir is the directory holding the persisted catalogue blobs.
	Dir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file; running without one is fine
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	config := &Config{
		Storage: StorageConfig{
			Dir: getEnv("TRIPVENTURE_DATA_DIR", defaultDataDir()),
		},
	}

	return config, nil
}

// defaultDataDir places catalogue data under the user home, falling back to
// the working directory when the home cannot be resolved.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tripventure"
	}
	return filepath.Join(home, ".tripventure")
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
