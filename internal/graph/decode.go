package graph

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/util/pagination"
)

// DecodePage decodes the raw items of a page into T. A malformed item fails the whole page as Unknown.
func DecodePage[T any](raw *RawPage) (pagination.PageResult[T], error) {
	if raw == nil {
		return pagination.NewPageResult([]T{}, ""), nil
	}

	items := make([]T, 0, len(raw.Items))
	for i, r := range raw.Items {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			return pagination.PageResult[T]{}, &Error{
				Kind:   ErrorKindUnknown,
				Detail: "malformed item in collection response",
				cause:  errors.Wrapf(err, "failed to decode item %d", i),
			}
		}
		items = append(items, item)
	}

	page := pagination.NewPageResult(items, raw.NextLink)
	page.Total = raw.Count
	return page, nil
}
