package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"geohash-service/config"
)

var RedisClient *redis.Client

// InitRedis connects the client configured in config.Cfg.Redis.
func InitRedis() error {
	cfg := config.Cfg.Redis
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Connected to Redis successfully.")
	return nil
}
