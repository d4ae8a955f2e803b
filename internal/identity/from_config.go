package identity

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/apredis"
	"github.com/rmorlok/graphbrowser/internal/config"
	"github.com/rmorlok/graphbrowser/internal/httpf"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
)

// NewForConfig builds the authenticator for the configured identity type.
func NewForConfig(ctx context.Context, cfg config.C, r apredis.Client, h httpf.F, logger *slog.Logger) (Authenticator, error) {
	if cfg == nil || cfg.GetRoot() == nil {
		return nil, errors.New("configuration is required")
	}

	ic := &cfg.GetRoot().Identity

	switch ic.GetType() {
	case sconfig.IdentityTypeOAuth2:
		return NewOAuth2(ctx, ic, r, h, logger)
	case sconfig.IdentityTypeStatic:
		return NewStatic(ctx, ic)
	default:
		return nil, errors.Errorf("unknown identity type '%s'", ic.GetType())
	}
}
