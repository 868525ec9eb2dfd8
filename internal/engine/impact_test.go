package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumelens/internal/types"
)

func TestAnalyzeImpactStrongBullets(t *testing.T) {
	text := "- Engineered a new billing service that reduced invoice errors\n" +
		"- Optimized the query planner and cut latency for customers\n" +
		"- Launched a self-serve onboarding flow for enterprise accounts"

	result := analyzeImpact(text, DefaultVocabulary())

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, types.StatusPass, result.Status)

	strong := findCheck(t, result.Checks, "Strong Action Verbs")
	assert.Equal(t, types.StatusPass, strong.Status)

	weak := findCheck(t, result.Checks, "Weak/Passive Language")
	assert.Equal(t, types.StatusPass, weak.Status)

	par := findCheck(t, result.Checks, "Problem → Action → Result")
	assert.Equal(t, types.StatusPass, par.Status)

	assert.Empty(t, result.Rewrites)
}

func TestAnalyzeImpactWeakBullets(t *testing.T) {
	text := "- Responsible for maintaining the legacy billing system\n" +
		"- Helped the team with support tickets and documentation\n" +
		"- Worked on various internal tools for the operations group"

	result := analyzeImpact(text, DefaultVocabulary())

	assert.Equal(t, 10, result.Score)
	assert.Equal(t, types.StatusFail, result.Status)

	weak := findCheck(t, result.Checks, "Weak/Passive Language")
	assert.Equal(t, types.StatusFail, weak.Status)

	par := findCheck(t, result.Checks, "Problem → Action → Result")
	assert.Equal(t, types.StatusFail, par.Status)

	// At most two weak lines are quoted back as rewrites.
	assert.Len(t, result.Rewrites, 2)
}

func TestAnalyzeImpactStrongVerbWinsOverWeakPhrase(t *testing.T) {
	text := "- Helped migrate the platform and reduced infrastructure costs"

	result := analyzeImpact(text, DefaultVocabulary())

	weak := findCheck(t, result.Checks, "Weak/Passive Language")
	assert.Equal(t, types.StatusPass, weak.Status)
	assert.Equal(t, 100, result.Score)
}

func TestAnalyzeImpactAddingStrongBulletsNeverLowersScore(t *testing.T) {
	vocab := DefaultVocabulary()
	lines := []string{
		"- Responsible for maintaining the legacy billing system",
		"- Helped the team with support tickets and documentation",
		"- Worked on various internal tools for the operations group",
	}
	additions := []string{
		"- Engineered a caching layer that cut page load times in half",
		"- Optimized the nightly ingestion job for the platform group",
		"- Delivered the customer billing migration ahead of schedule",
		"- Automated the release checklist used by every product team",
	}

	prev := analyzeImpact(strings.Join(lines, "\n"), vocab).Score
	for _, bullet := range additions {
		lines = append(lines, bullet)
		score := analyzeImpact(strings.Join(lines, "\n"), vocab).Score
		assert.GreaterOrEqual(t, score, prev, "score dropped after adding %q", bullet)
		prev = score
	}
}

func TestAnalyzeImpactFallsBackToProseLines(t *testing.T) {
	// No bullet markers at all: the first prose lines are graded instead.
	text := "Engineered the ingestion pipeline from scratch.\n" +
		"Automated the nightly reports for the finance group."

	result := analyzeImpact(text, DefaultVocabulary())

	strong := findCheck(t, result.Checks, "Strong Action Verbs")
	assert.NotEqual(t, types.StatusFail, strong.Status)
	assert.Greater(t, result.Score, 50)
}
