package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// RedisEnabled reports whether REDIS_ENABLED is set to a true value.
func RedisEnabled() bool {
	v, err := strconv.ParseBool(os.Getenv("REDIS_ENABLED"))
	return err == nil && v
}

// ConnectRedis initializes a singleton Redis client. Sessions, rate limits,
// wizard sessions and view invalidation all degrade to in-process behaviour
// when it returns nil.
func ConnectRedis() (*redis.Client, error) {
	var err error
	redisOnce.Do(func() {
		if IsTest() || !RedisEnabled() {
			return
		}

		cfg := LoadConfig()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err = rdb.Ping(ctx).Err(); err != nil {
			redisClient = nil
			err = fmt.Errorf("redis ping failed: %w", err)
			return
		}

		redisClient = rdb
		log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
	})
	return redisClient, err
}

// GetRedisClient returns the initialized Redis client (may be nil if ConnectRedis failed or not called).
func GetRedisClient() *redis.Client {
	return redisClient
}
