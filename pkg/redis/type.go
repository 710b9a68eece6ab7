package redis

import goredis "github.com/redis/go-redis/v9"

// RedisConfig holds the configuration for the Redis client.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// redisImpl implements IRedis.
type redisImpl struct {
	client *goredis.Client
}
