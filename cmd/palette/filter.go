package palette

import (
	"strings"
)

// Filter orders items for a palette query. An empty query returns items
// unchanged. Otherwise labels containing the query come first, then labels
// that fuzzy-match it; both groups keep the input order and everything else
// is dropped. Comparison is case-insensitive.
func Filter[T any](items []T, query string, labelOf func(T) string) []T {
	if query == "" {
		return items
	}
	query = strings.ToLower(query)

	var substring, fuzzy []T
	for _, item := range items {
		switch classify(labelOf(item), query) {
		case substringMatch:
			substring = append(substring, item)
		case fuzzyMatch:
			fuzzy = append(fuzzy, item)
		}
	}
	result := make([]T, 0, len(substring)+len(fuzzy))
	result = append(result, substring...)
	return append(result, fuzzy...)
}
