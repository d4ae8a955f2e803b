package httpf

import (
	"log/slog"
	"net/http"

	"github.com/rmorlok/graphbrowser/internal/apctx"
)

// RequestLogger is a RoundTripperFactory that writes one structured log line per outbound request. Query strings
// are omitted since Graph cursors and search terms can carry user data.
type RequestLogger struct {
	logger *slog.Logger
	level  slog.Level
}

func NewRequestLogger(logger *slog.Logger, level slog.Level) *RequestLogger {
	return &RequestLogger{logger: logger, level: level}
}

func (l *RequestLogger) NewRoundTripper(ri RequestInfo, transport http.RoundTripper) http.RoundTripper {
	if l == nil || l.logger == nil {
		return nil
	}

	return &requestLogRoundTripper{
		logger:      l.logger,
		level:       l.level,
		requestInfo: ri,
		transport:   transport,
	}
}

type requestLogRoundTripper struct {
	logger      *slog.Logger
	level       slog.Level
	requestInfo RequestInfo
	transport   http.RoundTripper
}

func (t *requestLogRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	clock := apctx.GetClock(ctx)
	start := clock.Now()

	resp, err := t.transport.RoundTrip(req)

	attrs := []any{
		slog.String("request_type", string(t.requestInfo.Type)),
		slog.String("method", req.Method),
		slog.String("host", req.URL.Host),
		slog.String("path", req.URL.Path),
		slog.Duration("duration", clock.Since(start)),
	}

	if t.requestInfo.ResourceKind != "" {
		attrs = append(attrs, slog.String("resource_kind", t.requestInfo.ResourceKind))
	}

	if cid := apctx.CorrelationID(ctx); cid != "" {
		attrs = append(attrs, slog.String("correlation_id", cid))
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		t.logger.Log(ctx, slog.LevelWarn, "outbound request failed", attrs...)
		return resp, err
	}

	attrs = append(attrs, slog.Int("status", resp.StatusCode))
	t.logger.Log(ctx, t.level, "outbound request", attrs...)

	return resp, nil
}

var _ RoundTripperFactory = (*RequestLogger)(nil)
