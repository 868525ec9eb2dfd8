package interview

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/types"
)

func TestCoachScoreAttachesFeedbackFromPool(t *testing.T) {
	coach := NewCoach(rand.New(rand.NewSource(1)))

	for _, d := range Difficulties() {
		result := coach.Score(richAnswer, d)
		require.Equal(t, "good", result.Level)

		pool := FeedbackPool(d, result.Level)
		assert.Contains(t, pool, result.Feedback, "feedback must come from the %s/good pool", d)
	}
}

func TestCoachScoreWeakAnswer(t *testing.T) {
	coach := NewCoach(rand.New(rand.NewSource(7)))

	result := coach.Score("", types.DifficultyStrict)

	assert.Equal(t, "weak", result.Level)
	assert.Equal(t, 15, result.Score)
	assert.Contains(t, FeedbackPool(types.DifficultyStrict, "weak"), result.Feedback)
}

func TestNewCoachNilSource(t *testing.T) {
	coach := NewCoach(nil)

	result := coach.Score(richAnswer, types.DifficultyStandard)
	assert.NotEmpty(t, result.Feedback)
}

func TestFeedbackPool(t *testing.T) {
	for _, d := range Difficulties() {
		for _, level := range []string{"good", "avg", "weak"} {
			pool := FeedbackPool(d, level)
			assert.Len(t, pool, 3, "%s/%s", d, level)
		}
	}
}

func TestFeedbackPoolUnknownKeysFallBack(t *testing.T) {
	fallback := FeedbackPool(types.DifficultyStandard, "avg")

	assert.Equal(t, fallback, FeedbackPool(types.Difficulty("Brutal"), "good"))
	assert.Equal(t, fallback, FeedbackPool(types.DifficultyFriendly, "excellent"))
}
