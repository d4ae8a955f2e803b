package aplog

import (
	"context"
	"log/slog"

	"github.com/rmorlok/graphbrowser/internal/apctx"
)

type Builder interface {
	WithService(serviceId string) Builder
	WithComponent(componentId string) Builder
	WithResourceKind(kind string) Builder
	WithCtx(ctx context.Context) Builder
	With(args ...any) Builder
	Build() *slog.Logger
}

type builder struct {
	l *slog.Logger
}

func (b *builder) With(args ...any) Builder {
	return &builder{l: b.l.With(args...)}
}

func (b *builder) WithService(serviceId string) Builder {
	return &builder{l: b.l.With("service", serviceId)}
}

func (b *builder) WithComponent(componentId string) Builder {
	return &builder{l: b.l.With("component", componentId)}
}

func (b *builder) WithResourceKind(kind string) Builder {
	return &builder{l: b.l.With("resource_kind", kind)}
}

// WithCtx attaches request scoped values, currently the correlation id, if present.
func (b *builder) WithCtx(ctx context.Context) Builder {
	if cid := apctx.CorrelationID(ctx); cid != "" {
		return &builder{l: b.l.With("correlation_id", cid)}
	}

	return b
}

func (b *builder) Build() *slog.Logger {
	return b.l
}

func NewBuilder(l *slog.Logger) Builder {
	if l == nil {
		panic("cannot create log builder with nil log")
	}

	return &builder{l: l}
}

var _ Builder = &builder{}
