package fetcher

import (
	"github.com/rmorlok/graphbrowser/internal/graph"
	"github.com/rmorlok/graphbrowser/internal/util/pagination"
)

// Phase is the position of a fetcher in its lifecycle.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseLoading     Phase = "loading"
	PhaseLoaded      Phase = "loaded"
	PhaseErrored     Phase = "errored"
	PhaseLoadingMore Phase = "loading_more"
)

// State is the observable state of a fetcher. Values handed to callers are copies; mutating them has no effect
// on the fetcher.
type State[T any] struct {
	Phase       Phase
	Items       []T
	Loading     bool
	LoadingMore bool
	Error       *graph.Error
	HasMore     bool

	// SearchTerm is the term the current items were fetched for. Empty for an unfiltered listing.
	SearchTerm string

	// Parameter is the kind's required parameter, if it takes one.
	Parameter string
}

func emptyState[T any]() State[T] {
	return State[T]{
		Phase: PhaseIdle,
		Items: []T{},
	}
}

// The transitions below are pure; the fetcher applies them under its lock.

func (s State[T]) beginLoad(term string) State[T] {
	s.Phase = PhaseLoading
	s.Loading = true
	s.LoadingMore = false
	s.Error = nil
	s.SearchTerm = term
	return s
}

func (s State[T]) loadSucceeded(p pagination.PageResult[T]) State[T] {
	s.Phase = PhaseLoaded
	s.Items = p.Results
	if s.Items == nil {
		s.Items = []T{}
	}
	s.HasMore = p.HasMore
	s.Loading = false
	s.Error = nil
	return s
}

// loadFailed empties the items so a failed load never shows data from a previous query.
func (s State[T]) loadFailed(err *graph.Error) State[T] {
	s.Phase = PhaseErrored
	s.Items = []T{}
	s.HasMore = false
	s.Loading = false
	s.Error = err
	return s
}

func (s State[T]) beginLoadMore() State[T] {
	s.Phase = PhaseLoadingMore
	s.LoadingMore = true
	s.Error = nil
	return s
}

func (s State[T]) loadMoreSucceeded(p pagination.PageResult[T]) State[T] {
	items := make([]T, 0, len(s.Items)+len(p.Results))
	items = append(items, s.Items...)
	items = append(items, p.Results...)

	s.Phase = PhaseLoaded
	s.Items = items
	s.HasMore = p.HasMore
	s.LoadingMore = false
	return s
}

// loadMoreFailed keeps the items already shown and leaves HasMore alone so the caller can retry.
func (s State[T]) loadMoreFailed(err *graph.Error) State[T] {
	s.Phase = PhaseErrored
	s.LoadingMore = false
	s.Error = err
	return s
}

func (s State[T]) reset() State[T] {
	r := emptyState[T]()
	r.Parameter = s.Parameter
	return r
}

// MapState converts the items of a state, keeping everything else.
func MapState[T any, U any](s State[T], transform func(T) U) State[U] {
	items := make([]U, len(s.Items))
	for i, v := range s.Items {
		items[i] = transform(v)
	}

	return State[U]{
		Phase:       s.Phase,
		Items:       items,
		Loading:     s.Loading,
		LoadingMore: s.LoadingMore,
		Error:       s.Error,
		HasMore:     s.HasMore,
		SearchTerm:  s.SearchTerm,
		Parameter:   s.Parameter,
	}
}
