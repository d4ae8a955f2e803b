package apctx

import "context"

const (
	correlationIdKey = "correlationId"

	// CorrelationIdHeader is the header used to pass a correlation id in and out of the HTTP surface.
	CorrelationIdHeader = "X-Correlation-Id"
)

// WithCorrelationID sets a correlation ID on the context. Empty values are ignored.
func WithCorrelationID(ctx context.Context, correlationId string) context.Context {
	if correlationId == "" {
		return ctx
	}

	return context.WithValue(ctx, correlationIdKey, correlationId)
}

// CorrelationID returns the correlation ID for the context, or the empty string if none has been set.
func CorrelationID(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIdKey).(string); ok {
		return v
	}

	return ""
}

// EnsureCorrelationID returns a context that has a correlation id, generating one if needed.
func EnsureCorrelationID(ctx context.Context) context.Context {
	if CorrelationID(ctx) != "" {
		return ctx
	}

	return WithCorrelationID(ctx, GetUuidGenerator(ctx).NewString())
}
