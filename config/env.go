package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	APIURL        string
	OriginURL     string
	SessionSecret string
	SessionExpiry time.Duration
	RedisURL      string
	RedisAddr     string
	RedisPassword string
}

var AppConfig *Config

// LoadConfig reads environment variables into AppConfig. API_URL is the single
// base URL of the upstream commerce backend; every repository goes through it.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	sessionExpiry, err := time.ParseDuration(getEnv("SESSION_EXPIRY", "24h"))
	if err != nil {
		sessionExpiry = 24 * time.Hour
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		APIURL:        getEnv("API_URL", "http://localhost:3000/api"),
		OriginURL:     getEnv("ORIGIN_URL", ""),
		SessionSecret: getEnv("SESSION_SECRET", "secret"),
		SessionExpiry: sessionExpiry,
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
