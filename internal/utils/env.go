package utils

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file when present
func LoadEnv() error {
	// Missing .env is fine (e.g. in production)
	return godotenv.Load()
}

// GetEnv returns the value of an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
