// Package config loads service configuration from the environment.
// A .env file is honored in development; real environments set the
// variables directly.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service needs from the environment.
type Config struct {
	Addr          string
	GoogleAPIKey  string
	GeminiModel   string
	DataPath      string
	LocationsFile string
	LogLevel      string
}

// Load reads configuration, applying defaults for everything except the
// API key, which the caller must check when it needs the model.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}

	return &Config{
		Addr:          getEnv("ADDR", ":8001"),
		GoogleAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash-001"),
		DataPath:      getEnv("DB_PATH", "./data"),
		LocationsFile: getEnv("LOCATIONS_FILE", "./data/locations.json"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}, nil
}

// RequireAPIKey fails when the Gemini key is missing.
func (c *Config) RequireAPIKey() error {
	if c.GoogleAPIKey == "" {
		return fmt.Errorf("environment variable GOOGLE_API_KEY not set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
