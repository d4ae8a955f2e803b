package apredis

import (
	"context"
	"time"

	v9 "github.com/redis/go-redis/v9"
)

// Client is the subset of redis operations used for sign-in state and health checks. Both *v9.Client and the
// embedded miniredis connection satisfy it.
type Client interface {
	Ping(ctx context.Context) *v9.StatusCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *v9.StatusCmd
	GetDel(ctx context.Context, key string) *v9.StringCmd
	Close() error
}

var _ Client = (*v9.Client)(nil)
