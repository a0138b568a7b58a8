package config

import (
	"sync"

	"github.com/redis/go-redis/v9"
)

// SetRedisClientForTest injects a client, typically one built by redismock.
func SetRedisClientForTest(client *redis.Client) {
	redisClient = client
}

// ResetRedisClientForTest clears the client and lets ConnectRedis run again.
func ResetRedisClientForTest() {
	redisClient = nil
	redisOnce = sync.Once{}
}
