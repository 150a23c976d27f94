// Package skills finds known skill terms and contact details in resume and
// job description text.
package skills

import (
	"sort"
	"strings"

	"github.com/spigell/resume-ranker/internal/text"
)

// Extract scans normalized text against the vocabulary and returns the terms
// present, sorted for stable display. Single-token terms must appear verbatim
// as a whole token, so "java" never matches inside "javascript". Multi-token
// terms match as a contiguous substring of the normalized text. The two rules
// are deliberately asymmetric; unifying them would change which documents
// match which skills.
func Extract(normalized string, vocab []string) []string {
	tokens := text.TokenSet(normalized)

	found := make(map[string]struct{})
	for _, term := range vocab {
		if strings.Contains(term, " ") {
			if strings.Contains(normalized, term) {
				found[term] = struct{}{}
			}
			continue
		}
		if _, ok := tokens[term]; ok {
			found[term] = struct{}{}
		}
	}

	result := make([]string, 0, len(found))
	for term := range found {
		result = append(result, term)
	}
	sort.Strings(result)

	return result
}

// Difference returns the terms of a that are absent from b, sorted. It is the
// gap view of Intersect: required skills a candidate does not show.
func Difference(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, term := range b {
		set[term] = struct{}{}
	}

	var missing []string
	seen := make(map[string]struct{})
	for _, term := range a {
		if _, ok := set[term]; ok {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		missing = append(missing, term)
	}
	sort.Strings(missing)

	return missing
}

// Intersect returns the terms present in both slices, sorted.
func Intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, term := range a {
		set[term] = struct{}{}
	}

	var shared []string
	seen := make(map[string]struct{})
	for _, term := range b {
		if _, ok := set[term]; !ok {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		shared = append(shared, term)
	}
	sort.Strings(shared)

	return shared
}
