package httpf

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimiter is a RoundTripperFactory that holds outbound requests to a steady rate, shared across every client
// the factory produces. Graph throttles per app and per tenant, so one limiter is used for all resource kinds.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter returns nil when requestsPerSecond is not positive, which disables limiting.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if requestsPerSecond <= 0 {
		return nil
	}

	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

func (r *RateLimiter) NewRoundTripper(ri RequestInfo, transport http.RoundTripper) http.RoundTripper {
	if r == nil {
		return nil
	}

	return &rateLimitRoundTripper{limiter: r.limiter, transport: transport}
}

type rateLimitRoundTripper struct {
	limiter   *rate.Limiter
	transport http.RoundTripper
}

func (t *rateLimitRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, errors.Wrap(err, "rate limit wait aborted")
	}

	return t.transport.RoundTrip(req)
}

var _ RoundTripperFactory = (*RateLimiter)(nil)
