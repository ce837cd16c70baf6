package utils

import "strings"

// MatchesQuery reports whether any field contains query, ignoring case.
// An empty or blank query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FilterByQuery keeps the records whose text fields match query.
// The input slice is returned as is when the query is blank.
func FilterByQuery[T any](records []T, query string, fields func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if MatchesQuery(query, fields(r)...) {
			out = append(out, r)
		}
	}
	return out
}
