package persistence

import (
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/employee-service/internal/config"
)

// NewRedisClient builds a go-redis client from cfg.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
