// Package text provides the normalization and tokenization helpers shared by
// the matching core. All comparison-oriented code operates on normalized text:
// lowercase ASCII letters separated by single spaces, nothing else.
package text

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, removes every character that is not a lowercase
// ASCII letter or whitespace, collapses whitespace runs into single spaces and
// trims the ends. Digits, punctuation and non-ASCII letters are deliberately
// destroyed. The function is idempotent and never fails; empty input yields
// an empty string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens splits normalized text into its space-separated tokens.
// Returns nil for empty text.
func Tokens(normalized string) []string {
	fields := strings.Fields(normalized)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// TokenSet returns the distinct tokens of normalized text.
func TokenSet(normalized string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		set[tok] = struct{}{}
	}
	return set
}
