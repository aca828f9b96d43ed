// Package redis opens the store behind every repository. Repositories take
// the Client interface so tests can hand them a miniredis-backed client.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options are the connection settings exposed through configuration
type Options struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	UseTLS   bool
}

// NewClient connects lazily to a single Redis server; call Ping to check it
func NewClient(opts Options) (Client, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis: address is required")
	}

	ro := &redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	}
	if opts.UseTLS {
		ro.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(ro), nil
}

// Ping fails unless the server answers within timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(ctx).Err()
}
