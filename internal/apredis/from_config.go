package apredis

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
)

// NewForRoot creates the redis client described by the root config. With no redis block an embedded miniredis is
// used.
func NewForRoot(ctx context.Context, root *sconfig.Root) (Client, error) {
	if root == nil || root.Redis == nil || root.Redis.InnerVal == nil {
		return NewMiniredis()
	}

	switch v := root.Redis.InnerVal.(type) {
	case *sconfig.RedisMiniredis:
		return NewMiniredis()
	case *sconfig.RedisReal:
		return newRedis(ctx, v)
	default:
		return nil, errors.Errorf("unsupported redis provider %s", root.Redis.GetProvider())
	}
}

func newRedis(ctx context.Context, cfg *sconfig.RedisReal) (Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Address,
		Username: cfg.Username,
		DB:       cfg.DB,
	}

	if cfg.Password.HasValue(ctx) {
		pw, err := cfg.Password.GetValue(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read redis password")
		}
		opts.Password = pw
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to redis at %s", cfg.Address)
	}

	return client, nil
}

// Ping reports whether redis is reachable.
func Ping(ctx context.Context, r Client) bool {
	return r.Ping(ctx).Err() == nil
}
