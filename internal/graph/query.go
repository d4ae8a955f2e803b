package graph

import (
	"strings"
)

const DefaultPageSize = 100

// Query describes the first page request for a kind. Continuation requests ignore it and replay the cursor.
type Query struct {
	Kind     Kind
	PageSize int

	// Filter is an explicit `$filter`. When empty, the kind's required parameter is rendered into a filter if
	// the kind takes one.
	Filter string

	SearchTerm string
	Select     []string

	// Parameter is the kind's required parameter (container type id, site id or container id).
	Parameter string
}

// NewQuery builds a query for the kind with the default page size.
func NewQuery(kind Kind) Query {
	return Query{
		Kind:     kind,
		PageSize: DefaultPageSize,
	}
}

func (q Query) Policy() *Policy {
	return PolicyFor(q.Kind)
}

// EffectiveFilter is the `$filter` that will be sent on the first page.
func (q Query) EffectiveFilter() string {
	if q.Filter != "" {
		return q.Filter
	}

	if p := q.Policy(); p != nil {
		return p.FilterFor(strings.TrimSpace(q.Parameter))
	}

	return ""
}

// EffectiveSelect is the `$select` list that will be sent on the first page.
func (q Query) EffectiveSelect() []string {
	if len(q.Select) > 0 {
		return q.Select
	}

	if p := q.Policy(); p != nil {
		return p.Select
	}

	return nil
}

// Validate checks the query locally. A query for a kind with a required parameter that is not set returns a
// MissingRequiredFilter error.
func (q Query) Validate() error {
	p := q.Policy()
	if p == nil {
		return NewBadRequestError("unknown resource kind '" + string(q.Kind) + "'")
	}

	if q.PageSize <= 0 {
		return NewBadRequestError("page size must be positive")
	}

	switch p.Parameter {
	case ParameterFilter:
		if q.EffectiveFilter() == "" {
			return NewMissingRequiredFilterError(p)
		}
	case ParameterPath:
		if strings.TrimSpace(q.Parameter) == "" {
			return NewMissingRequiredFilterError(p)
		}
	}

	return nil
}
