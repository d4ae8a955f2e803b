package pagination

import "github.com/rmorlok/graphbrowser/internal/util"

// PageResult is the result of a paged query
type PageResult[T any] struct {
	// Results is the list of results for this page, in the order the server returned them
	Results []T

	// HasMore indicates whether there are more results to fetch. This is always derived from the presence of
	// the cursor.
	HasMore bool

	// Cursor is the opaque continuation token to use to fetch the next page of results. It is replayed verbatim.
	Cursor string

	// Error is set if there was an error fetching the results
	Error error

	// Total is the total number of results available. This is an optional value depending on the system providing
	// the paginated results.
	Total *int64
}

// NewPageResult builds a successful page where HasMore is derived from the cursor.
func NewPageResult[T any](results []T, cursor string) PageResult[T] {
	return PageResult[T]{
		Results: results,
		HasMore: cursor != "",
		Cursor:  cursor,
	}
}

// ErrorPageResult builds a page that represents a failed fetch.
func ErrorPageResult[T any](err error) PageResult[T] {
	return PageResult[T]{Error: err}
}

// Filter returns a copy of the page containing only the results that satisfy the predicate. Continuation state
// is left untouched.
func (p PageResult[T]) Filter(keep func(T) bool) PageResult[T] {
	p.Results = util.Filter(p.Results, keep)
	if p.Results == nil {
		p.Results = []T{}
	}
	return p
}

// MapPage transforms the results of a page, preserving continuation state.
func MapPage[T any, U any](p PageResult[T], transform func(T) U) PageResult[U] {
	return PageResult[U]{
		Results: util.Map(p.Results, transform),
		HasMore: p.HasMore,
		Cursor:  p.Cursor,
		Error:   p.Error,
		Total:   p.Total,
	}
}
