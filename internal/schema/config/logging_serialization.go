package config

import (
	"encoding/json"
	"fmt"

	"github.com/rmorlok/graphbrowser/internal/schema/common"
	"gopkg.in/yaml.v3"
)

func newLoggingImpl(t LoggingConfigType) (LoggingImpl, error) {
	switch t {
	case LoggingConfigTypeText:
		return &LoggingConfigText{Type: LoggingConfigTypeText}, nil
	case LoggingConfigTypeJson:
		return &LoggingConfigJson{Type: LoggingConfigTypeJson}, nil
	case LoggingConfigTypeTint:
		return &LoggingConfigTint{Type: LoggingConfigTypeTint}, nil
	case LoggingConfigTypeNone:
		return &LoggingConfigNone{Type: LoggingConfigTypeNone}, nil
	default:
		return nil, fmt.Errorf("unknown logging type %v", t)
	}
}

func (l *LoggingConfig) MarshalYAML() (interface{}, error) {
	if l.InnerVal == nil {
		return nil, nil
	}
	return l.InnerVal, nil
}

// UnmarshalYAML handles unmarshalling from YAML while allowing us to make decisions
// about how the data is unmarshalled based on the concrete type being represented
func (l *LoggingConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("logger expected a mapping node, got %s", common.KindToString(value.Kind))
	}

	var loggingConfig LoggingImpl

	for i := 0; i < len(value.Content); i += 2 {
		if value.Content[i].Value == "type" {
			var err error
			if loggingConfig, err = newLoggingImpl(LoggingConfigType(value.Content[i+1].Value)); err != nil {
				return err
			}
			break
		}
	}

	if loggingConfig == nil {
		return fmt.Errorf("invalid structure for logging; missing type field")
	}

	if err := value.Decode(loggingConfig); err != nil {
		return err
	}

	l.InnerVal = loggingConfig
	return nil
}

func (l *LoggingConfig) MarshalJSON() ([]byte, error) {
	if l == nil || l.InnerVal == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(l.InnerVal)
}

func (l *LoggingConfig) UnmarshalJSON(data []byte) error {
	var typed struct {
		Type *LoggingConfigType `json:"type"`
	}
	if err := json.Unmarshal(data, &typed); err != nil {
		return fmt.Errorf("failed to unmarshal logging: %v", err)
	}

	if typed.Type == nil {
		return fmt.Errorf("invalid structure for logging; missing type field")
	}

	t, err := newLoggingImpl(*typed.Type)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, t); err != nil {
		return err
	}

	l.InnerVal = t
	return nil
}
