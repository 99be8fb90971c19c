package pagination

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	PageParam     = "page"
	PageSizeParam = "page_size"
)

var ErrInvalidPage = errors.New("invalid pagination parameter")

// Paginator is an offset-based page request. Zero values are valid and
// resolve to the first page of DefaultPageSize items.
type Paginator struct {
	Page     int
	PageSize int
}

// FromQuery reads page and page_size from the query string. Missing values
// take the defaults. Non-integer values and pages whose offset would not fit
// in an int are rejected with ErrInvalidPage.
func FromQuery(q url.Values) (Paginator, error) {
	p := Paginator{Page: DefaultPage, PageSize: DefaultPageSize}

	var err error
	if p.Page, err = intParam(q, PageParam, DefaultPage); err != nil {
		return Paginator{}, err
	}
	if p.PageSize, err = intParam(q, PageSizeParam, DefaultPageSize); err != nil {
		return Paginator{}, err
	}
	if max(p.Page, 1)-1 > math.MaxInt/p.Limit() {
		return Paginator{}, fmt.Errorf("%w: %s=%d is out of range", ErrInvalidPage, PageParam, p.Page)
	}
	return p, nil
}

func intParam(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPage, key, raw)
	}
	return v, nil
}

func (p Paginator) Limit() int {
	switch {
	case p.PageSize <= 0:
		return DefaultPageSize
	case p.PageSize > MaxPageSize:
		return MaxPageSize
	}
	return p.PageSize
}

func (p Paginator) Offset() int {
	return (max(p.Page, 1) - 1) * p.Limit()
}
