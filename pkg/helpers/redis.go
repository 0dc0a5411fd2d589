package helpers

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client from a redis:// URL
func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opt), nil
}
