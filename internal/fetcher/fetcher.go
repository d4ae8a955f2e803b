package fetcher

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/identity"
	"github.com/rmorlok/graphbrowser/internal/util"
	"github.com/rmorlok/graphbrowser/internal/util/pagination"
)

// ErrParameterNotSupported is returned when setting a parameter on a kind that does not take one.
var ErrParameterNotSupported = errors.New("resource kind does not take a parameter")

type Config struct {
	Kind     graph.Kind
	PageSize int

	// Select overrides the kind's default field selection.
	Select []string

	Logger *slog.Logger
}

// Fetcher owns the paginated listing of one resource kind. All operations are safe to call concurrently. A
// Load, Search or Reset supersedes anything in flight: late responses from superseded requests are dropped.
// Errors are never returned from operations; they are recorded in the state.
type Fetcher[T graph.Searchable] struct {
	kind     graph.Kind
	policy   *graph.Policy
	pageSize int
	sel      []string
	client   graph.Client
	auth     identity.Authenticator
	logger   *slog.Logger

	mu          sync.Mutex
	state       State[T]
	cursor      string
	generation  uint64
	subscribers []func(State[T])
}

// New creates a fetcher for the kind. It panics if the kind is unknown.
func New[T graph.Searchable](cfg Config, client graph.Client, auth identity.Authenticator) *Fetcher[T] {
	p := graph.PolicyFor(cfg.Kind)
	if p == nil {
		panic(errors.Errorf("unknown resource kind '%s'", cfg.Kind))
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = graph.DefaultPageSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = aplog.NewNoopLogger()
	}

	return &Fetcher[T]{
		kind:     cfg.Kind,
		policy:   p,
		pageSize: pageSize,
		sel:      cfg.Select,
		client:   client,
		auth:     auth,
		logger:   aplog.NewBuilder(logger).WithComponent("fetcher").WithResourceKind(string(cfg.Kind)).Build(),
		state:    emptyState[T](),
	}
}

func (f *Fetcher[T]) Kind() graph.Kind {
	return f.kind
}

// State returns a copy of the current state.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.snapshotLocked()
}

// Subscribe registers a function that is called with a copy of the state after every transition. Calls happen
// outside the fetcher's lock, so the callback may call back into the fetcher.
func (f *Fetcher[T]) Subscribe(fn func(State[T])) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.subscribers = append(f.subscribers, fn)
}

func (f *Fetcher[T]) snapshotLocked() State[T] {
	snap := deepcopy.Copy(f.state).(State[T])

	// deepcopy skips unexported fields, which would drop the error's cause
	if f.state.Error != nil {
		e := *f.state.Error
		snap.Error = &e
	}

	return snap
}

// commitLocked stores a new state and returns the snapshot and subscribers to notify once the lock is released.
func (f *Fetcher[T]) commitLocked(s State[T]) (State[T], []func(State[T])) {
	f.state = s
	return f.snapshotLocked(), f.subscribers
}

func notify[T any](s State[T], subs []func(State[T])) {
	for _, fn := range subs {
		fn(s)
	}
}

func (f *Fetcher[T]) queryLocked(term string) graph.Query {
	q := graph.NewQuery(f.kind)
	q.PageSize = f.pageSize
	q.Select = f.sel
	q.Parameter = f.state.Parameter

	// Search terms are only sent to Graph for kinds that can search; others are filtered here
	if f.policy.SupportsRemoteSearch() {
		q.SearchTerm = term
	}

	return q
}

// SetFilterParameter sets the kind's required parameter: the container type id for containers, the site id for
// site drives or the container id for container permissions. It does not fetch; call Load afterward.
func (f *Fetcher[T]) SetFilterParameter(value string) error {
	if !f.policy.RequiresParameter() {
		return ErrParameterNotSupported
	}

	f.mu.Lock()
	s := f.state
	s.Parameter = strings.TrimSpace(value)
	snapshot, subs := f.commitLocked(s)
	f.mu.Unlock()

	notify(snapshot, subs)
	return nil
}

// Load fetches the first page, replacing the items.
func (f *Fetcher[T]) Load(ctx context.Context) State[T] {
	return f.loadFirstPage(ctx, "")
}

// Clear is an alias for Reset.
func (f *Fetcher[T]) Clear() State[T] {
	return f.Reset()
}

// Search loads the first page matching the term. A blank term is the same as Load. For kinds Graph cannot
// search, one unfiltered page is fetched and filtered locally, so results are limited to that page.
func (f *Fetcher[T]) Search(ctx context.Context, term string) State[T] {
	return f.loadFirstPage(ctx, strings.TrimSpace(term))
}

// Reset returns the fetcher to idle. Responses to requests started before the reset are discarded.
func (f *Fetcher[T]) Reset() State[T] {
	f.mu.Lock()
	f.generation++
	f.cursor = ""
	snapshot, subs := f.commitLocked(f.state.reset())
	f.mu.Unlock()

	f.logger.Debug("reset")
	notify(snapshot, subs)
	return snapshot
}

func (f *Fetcher[T]) loadFirstPage(ctx context.Context, term string) State[T] {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	f.cursor = ""
	q := f.queryLocked(term)
	snapshot, subs := f.commitLocked(f.state.beginLoad(term))

	if err := q.Validate(); err != nil {
		snapshot, subs = f.commitLocked(f.state.loadFailed(graph.Classify(err)))
		f.mu.Unlock()

		notify(snapshot, subs)
		return snapshot
	}
	f.mu.Unlock()

	notify(snapshot, subs)

	page, cursor, gerr := f.fetchFirst(ctx, q, term)

	f.mu.Lock()
	if gen != f.generation {
		snapshot = f.snapshotLocked()
		f.mu.Unlock()

		f.logger.Debug("discarding superseded response", "generation", gen)
		return snapshot
	}

	if gerr != nil {
		snapshot, subs = f.commitLocked(f.state.loadFailed(gerr))
	} else {
		f.cursor = cursor
		snapshot, subs = f.commitLocked(f.state.loadSucceeded(page))
	}
	f.mu.Unlock()

	notify(snapshot, subs)
	return snapshot
}

// fetchFirst requests the first page, trying the kind's fallback once if the primary request fails.
func (f *Fetcher[T]) fetchFirst(ctx context.Context, q graph.Query, term string) (pagination.PageResult[T], string, *graph.Error) {
	cred, err := f.auth.GetCredential(ctx)
	if err != nil {
		return pagination.PageResult[T]{}, "", graph.NewUnauthorizedError(err)
	}

	page, gerr := f.fetch(ctx, q, "", cred, term)
	if gerr == nil || f.policy.Fallback == "" {
		return page, page.Cursor, gerr
	}

	f.logger.Info("primary request failed, trying fallback",
		"fallback", f.policy.Fallback,
		"error", gerr,
	)

	fq := q
	fq.Kind = f.policy.Fallback

	fpage, ferr := f.fetch(ctx, fq, "", cred, term)
	if ferr != nil {
		return fpage, "", ferr
	}

	return fpage, fpage.Cursor, nil
}

func (f *Fetcher[T]) fetch(
	ctx context.Context,
	q graph.Query,
	cursor string,
	cred identity.Credential,
	term string,
) (pagination.PageResult[T], *graph.Error) {
	raw, err := f.client.FetchPage(ctx, q, cursor, cred)
	if err != nil {
		return pagination.PageResult[T]{}, graph.Classify(err)
	}

	page, err := graph.DecodePage[T](raw)
	if err != nil {
		return pagination.PageResult[T]{}, graph.Classify(err)
	}

	if term != "" && !f.policy.SupportsRemoteSearch() {
		page = page.Filter(func(item T) bool {
			return util.AnyContainsFold(term, item.SearchFields()...)
		})
	}

	return page, nil
}

// LoadMore appends the next page. It does nothing unless more results exist and no other request is in flight.
func (f *Fetcher[T]) LoadMore(ctx context.Context) State[T] {
	f.mu.Lock()
	if !f.state.HasMore || f.state.Loading || f.state.LoadingMore || f.cursor == "" {
		snapshot := f.snapshotLocked()
		f.mu.Unlock()
		return snapshot
	}

	gen := f.generation
	cursor := f.cursor
	term := f.state.SearchTerm
	q := f.queryLocked(term)
	snapshot, subs := f.commitLocked(f.state.beginLoadMore())
	f.mu.Unlock()

	notify(snapshot, subs)

	var page pagination.PageResult[T]
	var gerr *graph.Error
	cred, err := f.auth.GetCredential(ctx)
	if err != nil {
		gerr = graph.NewUnauthorizedError(err)
	} else {
		page, gerr = f.fetch(ctx, q, cursor, cred, term)
	}

	f.mu.Lock()
	if gen != f.generation {
		snapshot = f.snapshotLocked()
		f.mu.Unlock()

		f.logger.Debug("discarding superseded response", "generation", gen)
		return snapshot
	}

	if gerr != nil {
		snapshot, subs = f.commitLocked(f.state.loadMoreFailed(gerr))
	} else {
		f.cursor = page.Cursor
		snapshot, subs = f.commitLocked(f.state.loadMoreSucceeded(page))
	}
	f.mu.Unlock()

	notify(snapshot, subs)
	return snapshot
}
