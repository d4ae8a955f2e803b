package httpf

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gentleman.v2/plugins/timeout"
	"gopkg.in/h2non/gentleman.v2/plugins/transport"
)

type clientFactory struct {
	timeout     time.Duration
	middlewares []RoundTripperFactory
	logger      *slog.Logger
	requestInfo RequestInfo
	base        http.RoundTripper

	// Cached at the object level

	factoryParent     *gentleman.Client
	factoryParentOnce sync.Once
	transport         http.RoundTripper
	transportOnce     sync.Once
}

// CreateFactory builds a client factory. Middlewares are applied in order, with the first middleware closest to
// the network. Nil middlewares are skipped.
func CreateFactory(
	requestTimeout time.Duration,
	logger *slog.Logger,
	middlewares ...RoundTripperFactory,
) F {
	mws := make([]RoundTripperFactory, 0, len(middlewares))
	for _, m := range middlewares {
		if m != nil {
			mws = append(mws, m)
		}
	}

	return &clientFactory{
		timeout:     requestTimeout,
		middlewares: mws,
		logger:      logger,
		base:        http.DefaultTransport,
		requestInfo: RequestInfo{
			Type: RequestTypeGraph,
		},
	}
}

func (f *clientFactory) ForRequestInfo(ri RequestInfo) F {
	return &clientFactory{
		timeout:     f.timeout,
		middlewares: f.middlewares,
		logger:      f.logger,
		base:        f.base,
		requestInfo: ri,
	}
}

func (f *clientFactory) ForRequestType(rt RequestType) F {
	ri := f.requestInfo
	ri.Type = rt

	return f.ForRequestInfo(ri)
}

func (f *clientFactory) ForResourceKind(kind string) F {
	ri := f.requestInfo
	ri.ResourceKind = kind

	return f.ForRequestInfo(ri)
}

func (f *clientFactory) roundTripper() http.RoundTripper {
	f.transportOnce.Do(func() {
		parent := f.base
		for _, m := range f.middlewares {
			result := m.NewRoundTripper(f.requestInfo, parent)
			if result != nil {
				parent = result
			}
		}
		f.transport = parent
	})

	return f.transport
}

func (f *clientFactory) NewHttpClient() *http.Client {
	return &http.Client{
		Transport: f.roundTripper(),
		Timeout:   f.timeout,
	}
}

func (f *clientFactory) New() *gentleman.Client {
	// Callers use chaining within the factory For(...) structure to
	// define context. By the time they trigger new, the context is established
	// and we can cache with middlewares applied.
	f.factoryParentOnce.Do(func() {
		f.factoryParent = gentleman.New()
		f.factoryParent.Use(transport.Set(f.roundTripper()))

		if f.timeout > 0 {
			f.factoryParent.Use(timeout.Request(f.timeout))
		}
	})

	return gentleman.New().UseParent(f.factoryParent)
}
