package fetcher

import (
	"context"

	"github.com/rmorlok/graphbrowser/internal/graph"
)

// Resource is the kind-agnostic view of a fetcher, used where the item type is not known statically.
type Resource interface {
	Kind() graph.Kind
	State() State[any]
	Load(ctx context.Context) State[any]
	LoadMore(ctx context.Context) State[any]
	Search(ctx context.Context, term string) State[any]
	Reset() State[any]
	SetFilterParameter(value string) error
}

type erased[T graph.Searchable] struct {
	f *Fetcher[T]
}

// Erase wraps a typed fetcher as a Resource.
func Erase[T graph.Searchable](f *Fetcher[T]) Resource {
	return &erased[T]{f: f}
}

func toAny[T any](s State[T]) State[any] {
	return MapState(s, func(v T) any { return v })
}

func (e *erased[T]) Kind() graph.Kind {
	return e.f.Kind()
}

func (e *erased[T]) State() State[any] {
	return toAny(e.f.State())
}

func (e *erased[T]) Load(ctx context.Context) State[any] {
	return toAny(e.f.Load(ctx))
}

func (e *erased[T]) LoadMore(ctx context.Context) State[any] {
	return toAny(e.f.LoadMore(ctx))
}

func (e *erased[T]) Search(ctx context.Context, term string) State[any] {
	return toAny(e.f.Search(ctx, term))
}

func (e *erased[T]) Reset() State[any] {
	return toAny(e.f.Reset())
}

func (e *erased[T]) SetFilterParameter(value string) error {
	return e.f.SetFilterParameter(value)
}
