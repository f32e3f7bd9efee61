package config

import (
	"os"
	"strconv"

	"github.com/akozyreva/medcab/internal/constants"
	"github.com/joho/godotenv"
)

// Config holds settings for the external HTTP integrations. Everything has a
// working default so a fresh install needs no configuration at all.
type Config struct {
	OCRURL         string
	OCRToken       string // overrides the keyring token when set
	OverpassURL    string
	PharmacyRadius int // meters
}

func Load() (*Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	return &Config{
		OCRURL:         getEnvOrDefault(constants.EnvOCRURL, constants.DefaultOCRURL),
		OCRToken:       os.Getenv(constants.EnvOCRToken),
		OverpassURL:    getEnvOrDefault(constants.EnvOverpassURL, constants.DefaultOverpassURL),
		PharmacyRadius: getEnvIntOrDefault(constants.EnvPharmacyRadius, constants.DefaultPharmacyRadius),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
