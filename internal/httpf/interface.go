package httpf

import (
	"net/http"

	"gopkg.in/h2non/gentleman.v2"
)

type RoundTripperFactory interface {
	// NewRoundTripper returns a new http.RoundTripper. This method can return
	// nil to imply it does not want to participate in the request.
	NewRoundTripper(ri RequestInfo, transport http.RoundTripper) http.RoundTripper
}

//go:generate mockgen -source=./interface.go -destination=./mock/httpf.go -package=mock
type F interface {
	// New returns a gentleman client with the configured middlewares applied to its transport
	New() *gentleman.Client

	// NewHttpClient returns a plain http.Client sharing the same middleware chain, for libraries that do not
	// speak gentleman.
	NewHttpClient() *http.Client

	ForRequestInfo(ri RequestInfo) F
	ForRequestType(rt RequestType) F
	ForResourceKind(kind string) F
}
