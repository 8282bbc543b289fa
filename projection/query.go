package projection

import (
	"maps"
	"net/url"
	"strings"
)

// All is the filter value meaning "no constraint on this field".
const All = "all"

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts "desc"/"descending" (any case); everything else is ascending.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// Reserved query-string keys; every other key is read as an equality filter.
const (
	ParamSearch    = "search"
	ParamSort      = "sort"
	ParamDirection = "dir"
)

// QueryParams is the filter and sort selection of one list request. It is a
// value: the With* methods return modified copies and never touch the receiver.
type QueryParams struct {
	search    string
	equals    map[string]string
	sortKey   string
	direction Direction
}

func NewQuery(search, sortKey string, direction Direction) QueryParams {
	return QueryParams{search: search, sortKey: sortKey, direction: direction}
}

// ParseQuery reads search, sort and dir plus one equality filter per remaining key.
func ParseQuery(values url.Values) QueryParams {
	q := QueryParams{
		search:    values.Get(ParamSearch),
		sortKey:   values.Get(ParamSort),
		direction: ParseDirection(values.Get(ParamDirection)),
	}
	for key := range values {
		switch key {
		case ParamSearch, ParamSort, ParamDirection:
			continue
		}
		if q.equals == nil {
			q.equals = make(map[string]string)
		}
		q.equals[key] = values.Get(key)
	}
	return q
}

func (q QueryParams) Search() string       { return q.search }
func (q QueryParams) SortKey() string      { return q.sortKey }
func (q QueryParams) Direction() Direction { return q.direction }

// Equal returns the filter value for field and whether it constrains anything.
func (q QueryParams) Equal(field string) (string, bool) {
	v, ok := q.equals[field]
	if !ok || v == "" || v == All {
		return "", false
	}
	return v, true
}

func (q QueryParams) WithSearch(search string) QueryParams {
	q.search = search
	return q
}

func (q QueryParams) WithSort(key string, direction Direction) QueryParams {
	q.sortKey = key
	q.direction = direction
	return q
}

func (q QueryParams) WithEqual(field, value string) QueryParams {
	next := make(map[string]string, len(q.equals)+1)
	maps.Copy(next, q.equals)
	next[field] = value
	q.equals = next
	return q
}

// Values renders the params back into query-string form for links.
func (q QueryParams) Values() url.Values {
	v := url.Values{}
	if q.search != "" {
		v.Set(ParamSearch, q.search)
	}
	for field, value := range q.equals {
		v.Set(field, value)
	}
	if q.sortKey != "" {
		v.Set(ParamSort, q.sortKey)
		v.Set(ParamDirection, q.direction.String())
	}
	return v
}
