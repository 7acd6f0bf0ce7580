package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client caches upstream RECOPE responses in redis. It fails safe: when
// redis is unreachable every read looks like a miss and every write is a
// no-op, so callers never have to branch on cache availability. The zero
// value is a usable no-op cache.
type Client struct {
	client *redis.Client
}

// New dials redis at addr. The connection is lazy, so New never fails.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns the cached bytes for key, or nil on a miss. Redis errors are
// reported as misses.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, nil
	}
	return res, nil
}

// Set stores value under key for ttl. Redis errors are dropped.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Set(ctx, key, value, ttl)
	return nil
}
