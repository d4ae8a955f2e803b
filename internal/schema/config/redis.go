package config

import (
	"encoding/json"
	"fmt"

	"github.com/rmorlok/graphbrowser/internal/schema/common"
	"gopkg.in/yaml.v3"
)

type RedisProvider string

const (
	RedisProviderMiniredis RedisProvider = "miniredis"
	RedisProviderRedis     RedisProvider = "redis"
)

// RedisImpl is the interface implemented by concrete Redis configurations.
type RedisImpl interface {
	GetProvider() RedisProvider
}

// Redis is the holder for a RedisImpl instance. Redis holds pending sign-in state between the login redirect and
// the callback.
type Redis struct {
	InnerVal RedisImpl `json:"-" yaml:"-"`
}

func (r *Redis) GetProvider() RedisProvider {
	if r == nil || r.InnerVal == nil {
		return RedisProviderMiniredis
	}
	return r.InnerVal.GetProvider()
}

type RedisMiniredis struct {
	Provider RedisProvider `json:"provider" yaml:"provider"`
}

func (d *RedisMiniredis) GetProvider() RedisProvider {
	return RedisProviderMiniredis
}

type RedisReal struct {
	Provider RedisProvider       `json:"provider" yaml:"provider"`
	Address  string              `json:"address" yaml:"address"`
	Username string              `json:"username,omitempty" yaml:"username,omitempty"`
	Password *common.StringValue `json:"-" yaml:"password,omitempty"`
	DB       int                 `json:"db,omitempty" yaml:"db,omitempty"`
}

func (d *RedisReal) GetProvider() RedisProvider {
	return RedisProviderRedis
}

func newRedisImpl(p RedisProvider) (RedisImpl, error) {
	switch p {
	case RedisProviderMiniredis:
		return &RedisMiniredis{Provider: RedisProviderMiniredis}, nil
	case RedisProviderRedis:
		return &RedisReal{Provider: RedisProviderRedis}, nil
	default:
		return nil, fmt.Errorf("unknown redis provider %v", p)
	}
}

func (r *Redis) MarshalYAML() (interface{}, error) {
	if r.InnerVal == nil {
		return nil, nil
	}
	return r.InnerVal, nil
}

// UnmarshalYAML handles unmarshalling from YAML while allowing us to make decisions
// about how the data is unmarshalled based on the concrete type being represented
func (r *Redis) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("redis expected a mapping node, got %s", common.KindToString(value.Kind))
	}

	var redis RedisImpl = &RedisReal{Provider: RedisProviderRedis}

	for i := 0; i < len(value.Content); i += 2 {
		if value.Content[i].Value == "provider" {
			var err error
			if redis, err = newRedisImpl(RedisProvider(value.Content[i+1].Value)); err != nil {
				return err
			}
			break
		}
	}

	if err := value.Decode(redis); err != nil {
		return err
	}

	r.InnerVal = redis
	return nil
}

func (r *Redis) MarshalJSON() ([]byte, error) {
	if r == nil || r.InnerVal == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(r.InnerVal)
}
