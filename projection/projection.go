// Package projection implements the list pipeline every record screen shares:
// take the fully loaded collection, keep the records passing the active
// filters, and order them by a single sort key.
package projection

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Schema declares how a record type is searched, filtered and sorted.
type Schema[T any] struct {
	// Search holds the string fields the search box matches against.
	Search []func(T) string
	// Equal maps a filter name (status, category, ...) to its field.
	Equal map[string]func(T) string
	// Sort maps a sort key to its field.
	Sort map[string]Field[T]
	// Language selects the collation for text sorts; the zero value means English.
	Language language.Tag
}

func (s Schema[T]) collator() *collate.Collator {
	tag := s.Language
	if tag == language.Und {
		tag = language.English
	}
	return collate.New(tag)
}

// Project returns a new slice holding the records that pass every active
// predicate in q, ordered by q's sort key. records is never modified.
func Project[T any](records []T, s Schema[T], q QueryParams) []T {
	needle := strings.ToLower(strings.TrimSpace(q.search))

	out := make([]T, 0, len(records))
	for _, r := range records {
		if !s.matchesSearch(r, needle) || !s.matchesEqual(r, q) {
			continue
		}
		out = append(out, r)
	}

	field, ok := s.Sort[q.sortKey]
	if !ok {
		return out
	}
	col := s.collator()
	slices.SortStableFunc(out, func(a, b T) int {
		return field.compare(a, b, col, q.direction)
	})
	return out
}

func (s Schema[T]) matchesSearch(r T, needle string) bool {
	if needle == "" || len(s.Search) == 0 {
		return true
	}
	for _, get := range s.Search {
		if strings.Contains(strings.ToLower(get(r)), needle) {
			return true
		}
	}
	return false
}

// matchesEqual ignores filters naming fields the schema does not declare.
func (s Schema[T]) matchesEqual(r T, q QueryParams) bool {
	for name, get := range s.Equal {
		want, active := q.Equal(name)
		if !active {
			continue
		}
		if get(r) != want {
			return false
		}
	}
	return true
}

// Compare exposes the schema's ordering of a and b under q, for callers that
// need to check or merge already projected output.
func (s Schema[T]) Compare(a, b T, q QueryParams) int {
	field, ok := s.Sort[q.sortKey]
	if !ok {
		return 0
	}
	return field.compare(a, b, s.collator(), q.direction)
}
