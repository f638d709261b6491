package database

import (
	"context"
	"fmt"
	"log"

	"github.com/dtalero78/siigo-retiros/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the optional dashboard cache. Returns nil (no
// error) when redis is disabled so callers can treat the client as
// absent.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		log.Println("Redis disabled, dashboard stats will be computed per request")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
