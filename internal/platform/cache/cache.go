// Package cache provides the redis client backing the employee read cache.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/timekeeper/internal/platform/config"
)

// Client wraps the go-redis client with readiness reporting.
type Client struct {
	*redis.Client
}

// New creates a client from cfg and pings it. It returns nil, nil when the
// cache is disabled.
func New(ctx context.Context, cfg config.CacheConfig) (*Client, error) {
	if !cfg.Enabled || cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing cache url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.OpTimeout > 0 {
		opts.ReadTimeout = cfg.OpTimeout
		opts.WriteTimeout = cfg.OpTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}

	return &Client{Client: client}, nil
}

// Name identifies the cache in readiness results.
func (c *Client) Name() string {
	return "cache"
}

// HealthCheck pings redis.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
