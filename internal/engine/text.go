package engine

import (
	"math"
	"strings"
)

// lowerAll lowercases a copy of the given terms.
func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}

// filterContained returns the terms that appear as substrings of text.
// Both text and terms are expected to be lowercased already.
func filterContained(text string, terms []string) []string {
	var found []string
	for _, t := range terms {
		if strings.Contains(text, t) {
			found = append(found, t)
		}
	}
	return found
}

// filterMissing returns the terms that do not appear in text.
func filterMissing(text string, terms []string) []string {
	var missing []string
	for _, t := range terms {
		if !strings.Contains(text, t) {
			missing = append(missing, t)
		}
	}
	return missing
}

// containsAny reports whether any term appears in text.
func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// wordCount counts whitespace-separated tokens.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// roundPct rounds n/d*100 to the nearest integer, guarding a zero denominator.
func roundPct(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// headList joins the first n items, appending a "+ k more" suffix when the
// list is longer.
func headList(items []string, n int, more string) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:n], ", ") + more
}
