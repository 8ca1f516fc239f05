// Package experience maps free text and job labels onto a three level
// seniority scale.
package experience

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Tier is an ordered seniority level. The zero value is not a valid tier.
type Tier int

const (
	Entry Tier = iota + 1
	Mid
	Senior
)

var (
	reSenior = regexp.MustCompile(`\b(senior|lead|principal|architect|manager)\b`)
	reEntry  = regexp.MustCompile(`\b(entry[-\s]?level|fresher|graduate|junior)\b`)
	reYears  = regexp.MustCompile(`(\d+)\+?\s+years?`)
)

func (t Tier) String() string {
	switch t {
	case Entry:
		return "Entry"
	case Mid:
		return "Mid"
	case Senior:
		return "Senior"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid experience tier %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, ok := ParseTier(string(text))
	if !ok {
		return fmt.Errorf("unknown experience level %q", string(text))
	}
	*t = parsed
	return nil
}

func (t Tier) Valid() bool {
	return t >= Entry && t <= Senior
}

// ParseTier reads a job or request label. Matching is case-insensitive and
// accepts the spelled out forms used in job postings ("Entry Level",
// "Mid Level", "Senior Level"). Unknown labels return Mid and false.
func ParseTier(label string) (Tier, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.TrimSuffix(label, " level")
	label = strings.TrimSuffix(label, "-level")

	switch label {
	case "entry", "junior":
		return Entry, true
	case "mid", "middle", "intermediate":
		return Mid, true
	case "senior":
		return Senior, true
	default:
		return Mid, false
	}
}

// Classify infers the tier of a résumé. Rules are applied in order and the
// first one that fires wins:
//  1. a senior keyword,
//  2. an entry keyword,
//  3. the largest "N years" figure (<=1 entry, 2-4 mid, >=5 senior),
//  4. Mid.
func Classify(text string) Tier {
	text = strings.ToLower(text)

	if reSenior.MatchString(text) {
		return Senior
	}
	if reEntry.MatchString(text) {
		return Entry
	}

	years := -1
	for _, m := range reYears.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Only overflow can fail here; that many years is senior.
			return Senior
		}
		if n > years {
			years = n
		}
	}

	switch {
	case years < 0:
		return Mid
	case years <= 1:
		return Entry
	case years <= 4:
		return Mid
	default:
		return Senior
	}
}

// Distance is the absolute gap between two tiers.
func Distance(a, b Tier) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
