// Package skills extracts controlled-vocabulary skills from normalized text.
package skills

import (
	"strings"

	"github.com/spigell/onlyjobs/internal/textnorm"
)

// DefaultEntries is the built-in controlled vocabulary.
var DefaultEntries = []string{
	"python", "java", "c++", "c#", "javascript", "typescript",
	"sql", "mysql", "postgresql", "mongodb",
	"machine learning", "deep learning", "data science",
	"flask", "django", "fastapi",
	"react", "angular", "node.js",
	"html", "css", "bootstrap",
	"git", "github", "docker", "kubernetes",
	"aws", "azure", "gcp",
	"linux", "api", "rest", "json",
}

// Vocabulary is an ordered, deduplicated set of canonical lowercase skills.
// It is immutable once built.
type Vocabulary struct {
	entries []string
	keys    []string
}

type term struct {
	entry string
	key   string
}

// NewVocabulary lowercases and trims the entries, dropping blanks and
// duplicates while preserving the first-seen order.
func NewVocabulary(entries ...string) Vocabulary {
	v := Vocabulary{
		entries: make([]string, 0, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}
	seen := make(map[string]struct{}, len(entries))

	for _, raw := range entries {
		entry := strings.ToLower(strings.TrimSpace(raw))
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}

		v.entries = append(v.entries, entry)
		v.keys = append(v.keys, matchKey(entry))
	}

	return v
}

// Default returns the built-in vocabulary.
func Default() Vocabulary {
	return NewVocabulary(DefaultEntries...)
}

// Entries returns a copy of the canonical skill strings in vocabulary order.
func (v Vocabulary) Entries() []string {
	out := make([]string, len(v.entries))
	copy(out, v.entries)
	return out
}

func (v Vocabulary) Len() int {
	return len(v.entries)
}

func (v Vocabulary) Contains(skill string) bool {
	skill = strings.ToLower(strings.TrimSpace(skill))
	for _, entry := range v.entries {
		if entry == skill {
			return true
		}
	}
	return false
}

func (v Vocabulary) terms() []term {
	out := make([]term, 0, len(v.entries))
	for i, entry := range v.entries {
		if v.keys[i] == "" {
			continue
		}
		out = append(out, term{entry: entry, key: v.keys[i]})
	}
	return out
}

// matchKey is the phrase searched for in normalized text. An entry whose
// normalized form collapses to one-letter tokens ("c++" -> "c") would match
// stray letters, so it gets no key and never matches.
func matchKey(entry string) string {
	key := textnorm.Normalize(entry)
	if key == entry {
		return key
	}
	for _, token := range textnorm.Tokens(key) {
		if len(token) < 2 {
			return ""
		}
	}
	return key
}
