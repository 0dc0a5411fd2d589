// Package cache holds the Redis-backed cache liveness probe.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Probe opens a short-lived connection to the cache, issues PING and closes
// the connection again. It does not reuse the application's client so a
// broken pool cannot mask a healthy server or the reverse.
type Probe struct {
	URL string
}

func NewProbe(url string) *Probe {
	return &Probe{URL: url}
}

func (p *Probe) Name() string { return "redis" }

func (p *Probe) Check(ctx context.Context) error {
	opt, err := redis.ParseURL(p.URL)
	if err != nil {
		return err
	}
	client := redis.NewClient(opt)
	defer func() { _ = client.Close() }()
	return client.Ping(ctx).Err()
}
