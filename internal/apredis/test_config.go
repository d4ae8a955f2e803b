package apredis

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// MustNewTestRedis starts a dedicated miniredis for a test, so tests do not share state through the process-wide
// instance. The returned server can be used to fast forward TTLs.
func MustNewTestRedis(tb interface{ Cleanup(func()) }) (Client, *miniredis.Miniredis) {
	s, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	c := redis.NewClient(&redis.Options{Addr: s.Addr()})
	tb.Cleanup(func() {
		_ = c.Close()
		s.Close()
	})

	return c, s
}
