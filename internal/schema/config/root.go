package config

import (
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/rmorlok/graphbrowser/internal/schema/common"
	"gopkg.in/yaml.v3"
)

const SchemaIdConfig = "https://github.com/rmorlok/graphbrowser/config"

type Root struct {
	Server   Server         `json:"server" yaml:"server"`
	Graph    *Graph         `json:"graph,omitempty" yaml:"graph,omitempty"`
	Identity Identity       `json:"identity" yaml:"identity"`
	Search   *Search        `json:"search,omitempty" yaml:"search,omitempty"`
	Redis    *Redis         `json:"redis,omitempty" yaml:"redis,omitempty"`
	Logging  *LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
}

func (r *Root) GetRootLogger() *slog.Logger {
	if r == nil || r.Logging == nil {
		return (&LoggingConfigNone{Type: LoggingConfigTypeNone}).GetRootLogger()
	}

	return r.Logging.GetRootLogger()
}

func (r *Root) Validate() error {
	vc := &common.ValidationContext{Path: "$"}
	result := &multierror.Error{}

	if err := r.Server.Validate(vc.PushField("server")); err != nil {
		result = multierror.Append(result, err)
	}

	if err := r.Graph.Validate(vc.PushField("graph")); err != nil {
		result = multierror.Append(result, err)
	}

	if err := r.Identity.Validate(vc.PushField("identity")); err != nil {
		result = multierror.Append(result, err)
	}

	if r.Redis != nil && r.Redis.GetProvider() == RedisProviderRedis {
		if rr, ok := r.Redis.InnerVal.(*RedisReal); ok && rr.Address == "" {
			result = multierror.Append(result, vc.PushField("redis").NewErrorForField("address", "address is required for redis provider"))
		}
	}

	return result.ErrorOrNil()
}

// UnmarshallYamlRoot parses the root configuration from YAML.
func UnmarshallYamlRoot(data []byte) (*Root, error) {
	var root Root
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return &root, nil
}
