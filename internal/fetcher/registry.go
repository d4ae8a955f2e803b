package fetcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/identity"
	"k8s.io/utils/clock"
)

var ErrUnknownKind = errors.New("unknown resource kind")

type RegistryConfig struct {
	PageSize int
	Debounce time.Duration

	// Clock drives the search debounce. Defaults to the real clock.
	Clock clock.WithDelayedExecution

	Logger *slog.Logger
}

// Registry holds one fetcher per kind for the signed in user, plus the debouncer for each kind's search box.
type Registry struct {
	resources  map[graph.Kind]Resource
	debouncers map[graph.Kind]*Debouncer
	logger     *slog.Logger
}

func NewRegistry(cfg RegistryConfig, client graph.Client, auth identity.Authenticator) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = aplog.NewNoopLogger()
	}

	r := &Registry{
		resources:  make(map[graph.Kind]Resource, len(graph.AllKinds)),
		debouncers: make(map[graph.Kind]*Debouncer, len(graph.AllKinds)),
		logger:     aplog.NewBuilder(logger).WithComponent("fetcher_registry").Build(),
	}

	for _, k := range graph.AllKinds {
		res, err := NewResource(Config{
			Kind:     k,
			PageSize: cfg.PageSize,
			Logger:   logger,
		}, client, auth)
		if err != nil {
			// AllKinds and NewResource are kept in sync
			panic(err)
		}

		r.resources[k] = res
		r.debouncers[k] = NewDebouncer(cfg.Clock, cfg.Debounce)
	}

	return r
}

func (r *Registry) Get(kind graph.Kind) (Resource, error) {
	res, ok := r.resources[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "kind '%s'", kind)
	}

	return res, nil
}

// SearchInput records a keystroke in the kind's search box. The search runs once the input has been quiet for
// the debounce period. The request context is detached from cancellation since the search outlives it.
func (r *Registry) SearchInput(ctx context.Context, kind graph.Kind, term string) error {
	res, err := r.Get(kind)
	if err != nil {
		return err
	}

	detached := context.WithoutCancel(ctx)
	r.debouncers[kind].Trigger(func() {
		s := res.Search(detached, term)
		r.logger.DebugContext(detached, "debounced search ran",
			"resource_kind", kind,
			"items", len(s.Items),
			"phase", s.Phase,
		)
	})

	return nil
}

// FlushSearch runs any pending debounced search for the kind immediately.
func (r *Registry) FlushSearch(kind graph.Kind) (bool, error) {
	if _, err := r.Get(kind); err != nil {
		return false, err
	}

	return r.debouncers[kind].Flush(), nil
}

// ResetAll drops pending searches and returns every fetcher to idle. Used when the user signs out.
func (r *Registry) ResetAll() {
	for _, k := range graph.AllKinds {
		r.debouncers[k].Stop()
		r.resources[k].Reset()
	}
}

// Stop cancels pending debounced searches.
func (r *Registry) Stop() {
	for _, d := range r.debouncers {
		d.Stop()
	}
}
