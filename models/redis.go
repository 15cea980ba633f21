package models

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RedisClient *redis.Client

// InitRedis connects the optional catalog cache. The application runs fine
// without it; every caller must treat RedisClient == nil as cache disabled.
func InitRedis(logger *zap.Logger) {
	redisURL := os.Getenv("REDIS_URL")

	var opt *redis.Options
	if redisURL != "" {
		parsedOpt, err := redis.ParseURL(redisURL)
		if err != nil {
			logger.Warn("failed to parse Redis URL, running without cache", zap.Error(err))
			return
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     getEnvOr("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		logger.Warn("Redis connection failed, running without cache", zap.Error(err))
		RedisClient = nil
		return
	}

	logger.Info("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}

func getEnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
