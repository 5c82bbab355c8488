package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string
	Environment   string
	Language      string // interface language, "ar" or "en"
	AuthStateFile string
	HTTPTimeout   time.Duration
	PollInterval  time.Duration
}

func Load() (*Config, error) {
	// .env is optional, real environment variables win either way
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		Environment:   os.Getenv("ENV"),
		Language:      os.Getenv("PORTAL_LANG"),
		AuthStateFile: os.Getenv("AUTH_STATE_FILE"),
		HTTPTimeout:   secondsEnv("HTTP_TIMEOUT", 15),
		PollInterval:  secondsEnv("POLL_INTERVAL", 60),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.AuthStateFile == "" {
		cfg.AuthStateFile = ".portal-auth.json"
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required but not set")
	}

	return cfg, nil
}

func secondsEnv(key string, def int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(def) * time.Second
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return time.Duration(def) * time.Second
	}
	return time.Duration(n) * time.Second
}
