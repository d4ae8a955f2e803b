package common

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StringValueType is a configured string that may be resolved lazily, e.g. a client secret kept in the environment.
type StringValueType interface {
	HasValue(ctx context.Context) bool
	GetValue(ctx context.Context) (string, error)
}

type StringValue struct {
	InnerVal StringValueType `json:"-" yaml:"-"`
}

func (sv *StringValue) HasValue(ctx context.Context) bool {
	if sv == nil || sv.InnerVal == nil {
		return false
	}
	return sv.InnerVal.HasValue(ctx)
}

func (sv *StringValue) GetValue(ctx context.Context) (string, error) {
	if sv == nil || sv.InnerVal == nil {
		return "", errors.New("string value incorrectly configured")
	}
	return sv.InnerVal.GetValue(ctx)
}

// StringValueDirect is where the string data is specified directly in the config.
type StringValueDirect struct {
	Value string `json:"value" yaml:"value"`
}

func (v *StringValueDirect) HasValue(ctx context.Context) bool {
	return len(v.Value) > 0
}

func (v *StringValueDirect) GetValue(ctx context.Context) (string, error) {
	return v.Value, nil
}

// StringValueEnvVar reads the value from an environment variable at the time it is needed.
type StringValueEnvVar struct {
	EnvVar  string  `json:"env_var" yaml:"env_var"`
	Default *string `json:"default,omitempty" yaml:"default,omitempty"`
}

func (v *StringValueEnvVar) HasValue(ctx context.Context) bool {
	val, present := os.LookupEnv(v.EnvVar)
	return (present && len(val) > 0) || v.Default != nil
}

func (v *StringValueEnvVar) GetValue(ctx context.Context) (string, error) {
	val, present := os.LookupEnv(v.EnvVar)

	if !present || len(val) == 0 {
		if v.Default != nil {
			return *v.Default, nil
		}

		return "", errors.Errorf("environment variable '%s' does not have value", v.EnvVar)
	}
	return val, nil
}

func NewStringValueDirect(value string) *StringValue {
	return &StringValue{InnerVal: &StringValueDirect{Value: value}}
}

func (sv *StringValue) MarshalYAML() (interface{}, error) {
	if sv.InnerVal == nil {
		return nil, nil
	}
	return sv.InnerVal, nil
}

// UnmarshalYAML accepts either a bare scalar or a mapping with a `value` or `env_var` key.
func (sv *StringValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		sv.InnerVal = &StringValueDirect{Value: value.Value}
		return nil
	}

	if value.Kind != yaml.MappingNode {
		return errors.Errorf("string value expected a scalar or mapping node, got %s", KindToString(value.Kind))
	}

	var inner StringValueType

fieldLoop:
	for i := 0; i < len(value.Content); i += 2 {
		switch value.Content[i].Value {
		case "value":
			inner = &StringValueDirect{}
			break fieldLoop
		case "env_var":
			inner = &StringValueEnvVar{}
			break fieldLoop
		}
	}

	if inner == nil {
		return errors.New("invalid structure for value type; does not match value, env_var")
	}

	if err := value.Decode(inner); err != nil {
		return err
	}

	sv.InnerVal = inner
	return nil
}
