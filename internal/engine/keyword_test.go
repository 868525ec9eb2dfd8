package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumelens/internal/types"
)

func TestAnalyzeKeywordsCoverage(t *testing.T) {
	text := "react javascript typescript node python sql docker kubernetes git agile"

	result := analyzeKeywords(text, types.Profile{TargetRole: "Software Engineer"}, DefaultVocabulary())

	// 11 of 31 curated terms match ("javascript" also contains "java").
	assert.Equal(t, 35, result.Score)
	assert.Equal(t, types.StatusFail, result.Status)

	found := findCheck(t, result.Checks, "Found Keywords (11)")
	assert.Equal(t, types.StatusWarn, found.Status)

	missing := findCheck(t, result.Checks, "Missing Keywords (20)")
	assert.Equal(t, types.StatusFail, missing.Status)

	assert.Len(t, result.Rewrites, 2)
}

func TestAnalyzeKeywordsAddingKeywordsNeverLowersScore(t *testing.T) {
	vocab := DefaultVocabulary()
	profile := types.Profile{TargetRole: "Software Engineer"}
	text := "worked with react and javascript on a small product team"
	additions := []string{"typescript", "docker", "kubernetes", "graphql", "postgresql"}

	prev := analyzeKeywords(text, profile, vocab).Score
	for _, kw := range additions {
		text += " " + kw
		score := analyzeKeywords(text, profile, vocab).Score
		assert.GreaterOrEqual(t, score, prev, "score dropped after adding %q", kw)
		prev = score
	}
}

func TestAnalyzeKeywordsEmptyTechnologyEntryCountsAsFound(t *testing.T) {
	profile := types.Profile{
		TargetRole:             "Backend Developer",
		InterestedTechnologies: []string{"Redis", ""},
	}

	result := analyzeKeywords("redis caching work", profile, DefaultVocabulary())

	// An empty entry is a substring of any text, so it always counts as found.
	check := findCheck(t, result.Checks, "Your Technologies Match")
	assert.Equal(t, types.StatusPass, check.Status)
	assert.Contains(t, check.Detail, "All 2")
}

func TestAnalyzeKeywordsUserTechnologies(t *testing.T) {
	profile := types.Profile{
		TargetRole:             "Backend Developer",
		InterestedTechnologies: []string{"Redis", "Elixir"},
	}

	result := analyzeKeywords("redis postgresql docker api", profile, DefaultVocabulary())

	check := findCheck(t, result.Checks, "Your Technologies Match")
	assert.Equal(t, types.StatusWarn, check.Status)
	assert.Contains(t, check.Detail, "elixir")
}

func TestAnalyzeKeywordsIndustryRelevance(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.Status
	}{
		{
			name:     "two modern terms",
			text:     "cloud devops platform work",
			expected: types.StatusPass,
		},
		{
			name:     "one modern term",
			text:     "cloud platform work",
			expected: types.StatusWarn,
		},
		{
			name:     "none",
			text:     "legacy cobol screens",
			expected: types.StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeKeywords(tt.text, types.Profile{}, DefaultVocabulary())
			check := findCheck(t, result.Checks, "2026 Industry Relevance")
			assert.Equal(t, tt.expected, check.Status)
		})
	}
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, dedupe([]string{}))
}
