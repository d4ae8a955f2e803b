package common

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
)

type HumanDuration struct {
	time.Duration
}

// JSONSchema customizes the JSON Schema to represent HumanDuration as a string like "300ms", "30s", etc.
func (HumanDuration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Pattern: "^[0-9]+(ns|us|µs|ms|s|m|h)$"}
}

func (d HumanDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *HumanDuration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid duration format: %s", string(data))
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("failed to parse duration: %w", err)
	}
	d.Duration = parsed
	return nil
}

func (d HumanDuration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *HumanDuration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("failed to parse duration: %w", err)
	}
	d.Duration = parsed
	return nil
}

// GetOrDefault returns the duration, or the fallback if the value is unset or not positive.
func (d *HumanDuration) GetOrDefault(fallback time.Duration) time.Duration {
	if d == nil || d.Duration <= 0 {
		return fallback
	}
	return d.Duration
}

// HumanDurationFor returns a HumanDuration for the given string. Used for testing. Will panic if the string is invalid.
func HumanDurationFor(h string) *HumanDuration {
	parsed, err := time.ParseDuration(h)
	if err != nil {
		panic(err)
	}
	return &HumanDuration{Duration: parsed}
}
