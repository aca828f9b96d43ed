package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every repository is written against.
// Pipelines cover the multi-key writes; nothing needs cluster-only commands.
type Client interface {
	redis.Cmdable
	Close() error
}
