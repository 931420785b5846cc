package palette

import (
	"strings"
)

// matchKind says how a label matched a query.
type matchKind int

const (
	noMatch matchKind = iota
	substringMatch
	fuzzyMatch
)

// classify compares label against an already lower-cased, non-empty query.
// Every query character appearing in the label in order, not necessarily
// contiguously, is a fuzzy match. An empty label is always a fuzzy match.
func classify(label, query string) matchKind {
	labelLower := strings.ToLower(label)
	if strings.Contains(labelLower, query) {
		return substringMatch
	}
	if label == "" || isSubsequence(query, labelLower) {
		return fuzzyMatch
	}
	return noMatch
}

func isSubsequence(pattern, text string) bool {
	patternRunes := []rune(pattern)
	i := 0
	for _, r := range text {
		if i == len(patternRunes) {
			break
		}
		if r == patternRunes[i] {
			i++
		}
	}
	return i == len(patternRunes)
}

// Highlights returns the rune indices of label matched by query, for
// rendering. Substring matches highlight the first occurrence; fuzzy matches
// highlight the earliest in-order characters.
func Highlights(label, query string) []int {
	if query == "" || label == "" {
		return nil
	}
	labelRunes := []rune(strings.ToLower(label))
	queryRunes := []rune(strings.ToLower(query))

	if idx := indexRunes(labelRunes, queryRunes); idx >= 0 {
		matches := make([]int, len(queryRunes))
		for i := range queryRunes {
			matches[i] = idx + i
		}
		return matches
	}

	matches := make([]int, 0, len(queryRunes))
	i := 0
	for j := 0; i < len(queryRunes) && j < len(labelRunes); j++ {
		if labelRunes[j] == queryRunes[i] {
			matches = append(matches, j)
			i++
		}
	}
	if i < len(queryRunes) {
		return nil
	}
	return matches
}

func indexRunes(text, pattern []rune) int {
	for start := 0; start+len(pattern) <= len(text); start++ {
		found := true
		for k := range pattern {
			if text[start+k] != pattern[k] {
				found = false
				break
			}
		}
		if found {
			return start
		}
	}
	return -1
}
