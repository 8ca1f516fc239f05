// Package textnorm provides the deterministic text cleaning shared by skill
// extraction, experience classification and similarity scoring.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reNonWord  = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
)

// Normalize lowercases text, replaces every character outside [a-z0-9] with
// a space and collapses whitespace. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	return collapse(reNonAlnum.ReplaceAllString(strings.ToLower(text), " "))
}

// NormalizeWords is the variant used when parsing résumés: word characters
// (any letter, digit or underscore) survive instead of only ASCII [a-z0-9].
func NormalizeWords(text string) string {
	return collapse(reNonWord.ReplaceAllString(strings.ToLower(text), " "))
}

// Tokens splits normalized text on single spaces.
func Tokens(normalized string) []string {
	return strings.Fields(normalized)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
