package interview

import (
	"math/rand"
	"sync"

	"resumelens/internal/types"
)

// feedbackBank holds three spoken-feedback strings per (difficulty, level).
// Draws are random for flavor; the pool itself is the contract.
var feedbackBank = map[types.Difficulty]map[string][]string{
	types.DifficultyFriendly: {
		"good": {
			"That was a solid answer! You explained it clearly. Let us continue.",
			"Nice work! I can see you have practical experience here.",
			"Good answer! You covered the key points well.",
		},
		"avg": {
			"Decent answer. Try to add a specific example next time.",
			"You are on the right track. A bit more detail would strengthen your response.",
			"Fair enough. Consider mentioning the tradeoffs in your next answer.",
		},
		"weak": {
			"That could use more depth, but I appreciate the attempt. Let us try another.",
			"A bit vague. Try to be more specific with technologies or numbers.",
			"Needs work, but do not worry — practice helps. Next question.",
		},
	},
	types.DifficultyStandard: {
		"good": {
			"Strong answer. Good technical depth and structure. Moving on.",
			"Well articulated. You demonstrated solid understanding.",
			"Impressive answer. The specific examples were effective.",
		},
		"avg": {
			"Acceptable, but you missed discussing the tradeoffs.",
			"You covered the basics. Deeper implementation details would be expected.",
			"Okay, but quantify the impact next time. Numbers are convincing.",
		},
		"weak": {
			"That answer lacks specificity. Practice articulating concrete solutions.",
			"Too surface-level. Discuss implementation details and edge cases.",
			"Not strong enough. Study the underlying concepts more.",
		},
	},
	types.DifficultyStrict: {
		"good": {
			"Acceptable. You demonstrated strong fundamentals. Continue.",
			"That meets the bar. Good use of specific details and tradeoffs.",
			"Solid. Your systems thinking is evident.",
		},
		"avg": {
			"Partially correct. You missed critical failure modes.",
			"The basic idea is right, but a senior candidate would go deeper.",
			"Decent attempt, but I expect precise terminology and quantified impact.",
		},
		"weak": {
			"That would not pass the bar at a top company. More depth needed.",
			"Too vague. In a real interview, this would be a red flag.",
			"Insufficient. Study the fundamentals and practice precision.",
		},
	},
}

// Coach scores live answers and attaches a feedback line drawn from the bank.
// The random source is injectable so tests can pin the draw.
type Coach struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCoach creates a coach with its own seeded random source. A nil source
// is replaced with a time-seeded one.
func NewCoach(rng *rand.Rand) *Coach {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Coach{rng: rng}
}

// Score grades an answer and picks a matching feedback line.
func (c *Coach) Score(answer string, difficulty types.Difficulty) types.AnswerScore {
	result := ScoreAnswer(answer, difficulty)
	result.Feedback = c.pickFeedback(difficulty, result.Level)
	return result
}

// pickFeedback draws from the (difficulty, level) pool, falling back to the
// Standard average pool for unknown keys.
func (c *Coach) pickFeedback(difficulty types.Difficulty, level string) string {
	pool := feedbackBank[types.DifficultyStandard]["avg"]
	if byLevel, ok := feedbackBank[difficulty]; ok {
		if list, ok := byLevel[level]; ok {
			pool = list
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return pool[c.rng.Intn(len(pool))]
}

// FeedbackPool exposes the pool for a (difficulty, level) pair so callers and
// tests can assert membership without duplicating the bank.
func FeedbackPool(difficulty types.Difficulty, level string) []string {
	if byLevel, ok := feedbackBank[difficulty]; ok {
		if list, ok := byLevel[level]; ok {
			return list
		}
	}
	return feedbackBank[types.DifficultyStandard]["avg"]
}
