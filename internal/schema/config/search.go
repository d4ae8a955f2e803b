package config

import (
	"time"

	"github.com/rmorlok/graphbrowser/internal/schema/common"
)

const DefaultSearchDebounce = 300 * time.Millisecond

type Search struct {
	Debounce *common.HumanDuration `json:"debounce,omitempty" yaml:"debounce,omitempty"`
}

func (s *Search) GetDebounce() time.Duration {
	if s == nil {
		return DefaultSearchDebounce
	}
	return s.Debounce.GetOrDefault(DefaultSearchDebounce)
}
