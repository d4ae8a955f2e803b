package config

import (
	"time"

	"github.com/rmorlok/graphbrowser/internal/schema/common"
)

const (
	DefaultGraphBaseUrl     = "https://graph.microsoft.com/v1.0"
	DefaultGraphBetaBaseUrl = "https://graph.microsoft.com/beta"
	DefaultPageSize         = 100
	DefaultGraphTimeout     = 30 * time.Second
)

// Graph configures how the Microsoft Graph API is reached.
type Graph struct {
	BaseUrl           string                `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	BetaBaseUrl       string                `json:"beta_base_url,omitempty" yaml:"beta_base_url,omitempty"`
	PageSize          int                   `json:"page_size,omitempty" yaml:"page_size,omitempty"`
	Timeout           *common.HumanDuration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	RequestsPerSecond float64               `json:"requests_per_second,omitempty" yaml:"requests_per_second,omitempty"`
	LogRequests       bool                  `json:"log_requests,omitempty" yaml:"log_requests,omitempty"`
}

func (g *Graph) GetBaseUrl() string {
	if g == nil || g.BaseUrl == "" {
		return DefaultGraphBaseUrl
	}
	return g.BaseUrl
}

func (g *Graph) GetBetaBaseUrl() string {
	if g == nil || g.BetaBaseUrl == "" {
		return DefaultGraphBetaBaseUrl
	}
	return g.BetaBaseUrl
}

func (g *Graph) GetPageSize() int {
	if g == nil || g.PageSize <= 0 {
		return DefaultPageSize
	}
	return g.PageSize
}

func (g *Graph) GetTimeout() time.Duration {
	if g == nil {
		return DefaultGraphTimeout
	}
	return g.Timeout.GetOrDefault(DefaultGraphTimeout)
}

// GetRequestsPerSecond is zero when outbound requests are not limited.
func (g *Graph) GetRequestsPerSecond() float64 {
	if g == nil {
		return 0
	}
	return g.RequestsPerSecond
}

func (g *Graph) GetLogRequests() bool {
	return g != nil && g.LogRequests
}

func (g *Graph) Validate(vc *common.ValidationContext) error {
	if g == nil {
		return nil
	}

	if g.PageSize < 0 {
		return vc.NewErrorfForField("page_size", "must be positive, got %d", g.PageSize)
	}

	if g.RequestsPerSecond < 0 {
		return vc.NewErrorForField("requests_per_second", "must not be negative")
	}

	return nil
}
