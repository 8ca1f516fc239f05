package skills

import (
	"sort"
	"strings"
)

// Extract returns the vocabulary entries that occur in the normalized text
// as whole words or contiguous phrases. The result is sorted and free of
// duplicates; empty text yields an empty result.
func Extract(normalized string, vocab Vocabulary) []string {
	found := make([]string, 0)
	padded := " " + strings.Join(strings.Fields(normalized), " ") + " "
	if strings.TrimSpace(padded) == "" {
		return found
	}

	for _, t := range vocab.terms() {
		if strings.Contains(padded, " "+t.key+" ") {
			found = append(found, t.entry)
		}
	}

	sort.Strings(found)
	return found
}

// Extractor binds a vocabulary so it can be injected into components.
type Extractor struct {
	vocab Vocabulary
}

func NewExtractor(vocab Vocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

func (e *Extractor) Extract(normalized string) []string {
	return Extract(normalized, e.vocab)
}

func (e *Extractor) Vocabulary() Vocabulary {
	return e.vocab
}

// ParseList splits a comma-separated skill string into a sorted set of
// trimmed lowercase skills.
func ParseList(csv string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})

	for _, part := range strings.Split(csv, ",") {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}

	sort.Strings(out)
	return out
}

// Set lowercases and trims the given skills into a lookup set.
func Set(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}
