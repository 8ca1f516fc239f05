package experience

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect Tier
	}{
		{name: "years only senior", text: "5 years of experience", expect: Senior},
		{name: "senior keyword beats years", text: "senior developer with 2 years experience", expect: Senior},
		{name: "manager keyword", text: "project manager", expect: Senior},
		{name: "entry level hyphen", text: "an entry-level position", expect: Entry},
		{name: "entry level space", text: "entry level analyst", expect: Entry},
		{name: "entrylevel joined", text: "entrylevel analyst", expect: Entry},
		{name: "graduate", text: "recent graduate in cs", expect: Entry},
		{name: "senior beats junior", text: "junior then senior engineer", expect: Senior},
		{name: "one year", text: "1 year of python", expect: Entry},
		{name: "plus sign", text: "3+ years with go", expect: Mid},
		{name: "largest figure wins", text: "2 years at acme and 7 years overall", expect: Senior},
		{name: "boundary four", text: "4 years", expect: Mid},
		{name: "zero years", text: "0 years", expect: Entry},
		{name: "overflowing number", text: "99999999999999999999999 years", expect: Senior},
		{name: "keyword inside word ignored", text: "leadership and seniority", expect: Mid},
		{name: "uppercase input", text: "SENIOR ENGINEER", expect: Senior},
		{name: "nothing", text: "", expect: Mid},
		{name: "years without space", text: "5years", expect: Mid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Classify(tt.text))
		})
	}
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label  string
		expect Tier
		ok     bool
	}{
		{"Entry", Entry, true},
		{"entry level", Entry, true},
		{"Junior", Entry, true},
		{" MID ", Mid, true},
		{"Mid-Level", Mid, true},
		{"Senior Level", Senior, true},
		{"", Mid, false},
		{"Director", Mid, false},
	}

	for _, tt := range tests {
		got, ok := ParseTier(tt.label)
		assert.Equal(t, tt.expect, got, tt.label)
		assert.Equal(t, tt.ok, ok, tt.label)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	t.Parallel()

	tiers := []Tier{Entry, Mid, Senior}
	for _, a := range tiers {
		for _, b := range tiers {
			assert.Equal(t, Distance(a, b), Distance(b, a))
		}
		assert.Zero(t, Distance(a, a))
	}
	assert.Equal(t, 2, Distance(Entry, Senior))
}

func TestTierJSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(struct {
		Level Tier `json:"level"`
	}{Level: Senior})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"Senior"}`, string(raw))

	var decoded struct {
		Level Tier `json:"level"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"level":"entry"}`), &decoded))
	assert.Equal(t, Entry, decoded.Level)

	require.Error(t, json.Unmarshal([]byte(`{"level":"wizard"}`), &decoded))

	_, err = json.Marshal(Tier(0))
	require.Error(t, err)
}
