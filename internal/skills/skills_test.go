package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/onlyjobs/internal/textnorm"
)

func TestNewVocabularyDedupesAndLowercases(t *testing.T) {
	vocab := NewVocabulary(" Python ", "python", "", "SQL", "Machine Learning")

	assert.Equal(t, []string{"python", "sql", "machine learning"}, vocab.Entries())
	assert.Equal(t, 3, vocab.Len())
	assert.True(t, vocab.Contains("PYTHON"))
	assert.False(t, vocab.Contains("go"))
}

func TestEntriesReturnsCopy(t *testing.T) {
	vocab := NewVocabulary("go", "rust")
	entries := vocab.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"go", "rust"}, vocab.Entries())
}

func TestExtract(t *testing.T) {
	vocab := Default()

	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{
			name:   "empty text",
			text:   "",
			expect: []string{},
		},
		{
			name:   "whole words only",
			text:   "javascript developer with typescript",
			expect: []string{"javascript", "typescript"},
		},
		{
			name:   "multi word phrase",
			text:   "applied machine learning and data science",
			expect: []string{"data science", "machine learning"},
		},
		{
			name:   "phrase must be contiguous",
			text:   "machine vision and deep reinforcement learning",
			expect: []string{},
		},
		{
			name:   "dotted entry matches normalized form",
			text:   textnorm.Normalize("Built services in Node.js and Docker"),
			expect: []string{"docker", "node.js"},
		},
		{
			name:   "symbol only entries never match stray letters",
			text:   textnorm.Normalize("C++ and C# and plan c"),
			expect: []string{},
		},
		{
			name:   "sorted and deduplicated",
			text:   "sql python sql aws python",
			expect: []string{"aws", "python", "sql"},
		},
		{
			name:   "substring of larger word does not match",
			text:   "restful apis and gitops",
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Extract(tt.text, vocab))
		})
	}
}

func TestExtractIsSubsetOfVocabulary(t *testing.T) {
	vocab := NewVocabulary("go", "kubernetes", "rest api")
	found := Extract("go services on kubernetes exposing a rest api and grpc", vocab)

	require.Len(t, found, 3)
	for _, skill := range found {
		assert.True(t, vocab.Contains(skill), "%q is not in the vocabulary", skill)
	}
}

func TestExtractIsMonotonic(t *testing.T) {
	vocab := Default()
	base := "python sql docker"
	before := Extract(base, vocab)

	after := Extract(base+" some unrelated hobbies like hiking and chess", vocab)
	for _, skill := range before {
		assert.Contains(t, after, skill)
	}
}

func TestExtractorUsesInjectedVocabulary(t *testing.T) {
	extractor := NewExtractor(NewVocabulary("terraform"))

	assert.Equal(t, []string{"terraform"}, extractor.Extract("terraform and python"))
	assert.Equal(t, 1, extractor.Vocabulary().Len())
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"docker", "git", "python", "sql"}, ParseList("Python, SQL, Git, Docker"))
	assert.Equal(t, []string{"python"}, ParseList(" python ,PYTHON,, "))
	assert.Empty(t, ParseList(""))
	assert.Empty(t, ParseList(" , ,"))
}

func TestSet(t *testing.T) {
	set := Set([]string{" Python", "sql", ""})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "python")
}
