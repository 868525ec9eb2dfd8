package interview

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/types"
)

func TestEvaluateSessionEmpty(t *testing.T) {
	result := EvaluateSession(types.SessionInput{
		Role:       "Backend Developer",
		Difficulty: types.DifficultyStandard,
	})

	assert.Equal(t, "Backend Developer", result.Role)
	assert.Zero(t, result.TechScore)
	assert.Zero(t, result.CommScore)
	assert.Zero(t, result.Overall)
	assert.Equal(t, "Needs Practice", result.Verdict)
	assert.Empty(t, result.Questions)
}

func TestEvaluateSessionStrongAnswers(t *testing.T) {
	input := types.SessionInput{
		Role:       "Backend Developer",
		Difficulty: types.DifficultyStandard,
		Exchanges: []types.QuestionAnswer{
			{Question: "How do you approach caching?", Answer: richAnswer},
			{Question: "Tell me about a performance win.", Answer: richAnswer},
		},
	}

	result := EvaluateSession(input)

	require.Len(t, result.Questions, 2)
	assert.Equal(t, 85, result.TechScore)
	assert.Equal(t, 60, result.CommScore)
	assert.Equal(t, 75, result.Overall)
	assert.Equal(t, "Hire", result.Verdict)

	assert.Len(t, result.Strengths, 5)
	assert.Empty(t, result.Weaknesses)

	for _, q := range result.Questions {
		expected := int(math.Round(float64(q.TechScore)*0.6 + float64(q.CommScore)*0.4))
		assert.Equal(t, expected, q.Overall, "per-question overall is the 0.6/0.4 blend")
		assert.Equal(t, len(strings.Fields(q.Answer)), q.WordCount)
		assert.Contains(t, q.Feedback, "Strong answer")
	}
}

func TestEvaluateSessionStrongHire(t *testing.T) {
	// Adding structure markers lifts communication enough for a Strong Hire.
	structured := richAnswer + " First, we profiled the system; finally, we shipped the fix."

	result := EvaluateSession(types.SessionInput{
		Role:       "Backend Developer",
		Difficulty: types.DifficultyStrict,
		Exchanges: []types.QuestionAnswer{
			{Question: "Walk me through a latency investigation.", Answer: structured},
		},
	})

	assert.Equal(t, 81, result.Overall)
	assert.Equal(t, "Strong Hire", result.Verdict)
	assert.Len(t, result.Strengths, 5, "observations are capped at five")
}

func TestEvaluateSessionWeakAnswers(t *testing.T) {
	result := EvaluateSession(types.SessionInput{
		Role:       "Frontend Developer",
		Difficulty: types.DifficultyFriendly,
		Exchanges: []types.QuestionAnswer{
			{Question: "Explain the virtual DOM.", Answer: "I do not know"},
		},
	})

	require.Len(t, result.Questions, 1)
	assert.Equal(t, 20, result.TechScore)
	assert.Equal(t, 30, result.CommScore)
	assert.Equal(t, 24, result.Overall)
	assert.Equal(t, "Needs Practice", result.Verdict)

	assert.Empty(t, result.Strengths)
	assert.Len(t, result.Weaknesses, 5)
	assert.Contains(t, result.Questions[0].Feedback, "Weak answer")
}

func TestEvaluateSessionDeduplicatesObservations(t *testing.T) {
	// The same weak answer repeated must not repeat its observations.
	input := types.SessionInput{
		Difficulty: types.DifficultyStandard,
		Exchanges: []types.QuestionAnswer{
			{Question: "Q1", Answer: "I do not know"},
			{Question: "Q2", Answer: "I do not know"},
			{Question: "Q3", Answer: "I do not know"},
		},
	}

	result := EvaluateSession(input)

	seen := make(map[string]int)
	for _, w := range result.Weaknesses {
		seen[w]++
	}
	for w, n := range seen {
		assert.Equal(t, 1, n, "weakness %q repeated", w)
	}
	assert.Len(t, result.Weaknesses, 5)
}

func TestEvaluateSessionTruncatesLongQuestionInFeedback(t *testing.T) {
	longQuestion := strings.Repeat("design a system that scales ", 10)

	result := EvaluateSession(types.SessionInput{
		Exchanges: []types.QuestionAnswer{{Question: longQuestion, Answer: richAnswer}},
	})

	require.Len(t, result.Questions, 1)
	snippet := string([]rune(longQuestion)[:50])
	assert.Contains(t, result.Questions[0].Feedback, snippet+"...")
}
