package apredis

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var miniredisServer *miniredis.Miniredis
var miniredisClient *redis.Client
var miniredisMutex sync.Mutex
var miniredisErr error

// NewMiniredis creates a new redis connection to a process-wide embedded miniredis instance. This is the default
// for single process deployments where sign-in state does not need to survive restarts.
func NewMiniredis() (Client, error) {
	miniredisMutex.Lock()
	defer miniredisMutex.Unlock()

	if miniredisServer == nil && miniredisErr == nil {
		var err error
		miniredisServer, err = miniredis.Run()
		if err != nil {
			miniredisErr = errors.Wrap(err, "failed to start miniredis server")
			return nil, miniredisErr
		}

		miniredisClient = redis.NewClient(&redis.Options{
			Addr: miniredisServer.Addr(),
		})

		if _, err = miniredisClient.Ping(context.Background()).Result(); err != nil {
			miniredisServer.Close()
			miniredisErr = errors.Wrap(err, "failed to connect to miniredis client")
		}
	}

	if miniredisErr != nil {
		return nil, miniredisErr
	}

	return miniredisClient, nil
}
