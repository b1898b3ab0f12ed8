// Package filter narrows record lists by free-text search, category or status,
// and an attention flag.
package filter

import (
	"fmt"
	"strings"
)

// AllCategories is the selector label that disables category filtering.
const AllCategories = "All"

// Criteria is the active combination of search query, category selector and
// attention toggle. The zero value matches every record.
type Criteria struct {
	Query    string
	Category string
	FlagOnly bool
}

// Key returns a stable string for the criteria, suitable as a cache key suffix.
func (c Criteria) Key() string {
	return fmt.Sprintf("%q|%q|%t", strings.ToLower(c.Query), c.Category, c.FlagOnly)
}

// Spec tells Apply how to read one record type.
type Spec[T any] struct {
	// Fields returns the text searched by Criteria.Query.
	Fields func(T) []string
	// Category returns the value compared against the normalized selector.
	Category func(T) string
	// Normalize maps a selector label to the stored value. Nil means identity.
	Normalize func(label string) string
	// Flag reports the attention flag. Nil means FlagOnly is ignored.
	Flag func(T) bool
}

// Apply returns the records matching every active criterion, in input order.
// records is never modified.
func Apply[T any](records []T, c Criteria, s Spec[T]) []T {
	query := strings.ToLower(c.Query)

	category := ""
	if c.Category != "" && c.Category != AllCategories {
		category = c.Category
		if s.Normalize != nil {
			category = s.Normalize(category)
		}
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		if query != "" && !matchesQuery(s.Fields(r), query) {
			continue
		}
		if category != "" && s.Category(r) != category {
			continue
		}
		if c.FlagOnly && s.Flag != nil && !s.Flag(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(fields []string, query string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// StatusFromLabel converts a display label such as "In Transit" to its enum
// value "in-transit".
func StatusFromLabel(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "-")
}
