package interview

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

// Per-turn scorer vocabulary. Deliberately smaller than the session
// evaluator's list; the live scorer favors speed-of-judgment features.
var quickTechTerms = []string{
	"api", "database", "component", "algorithm", "architecture", "performance",
	"cache", "server", "client", "function", "class", "module", "deploy", "test",
	"security", "scale", "optimize", "pattern", "framework", "library",
}

var (
	digitPattern    = regexp.MustCompile(`\d+`)
	examplePattern  = regexp.MustCompile(`(?i)for example|for instance|such as|like when|in my project|i built|i used|i implemented`)
	tradeoffPattern = regexp.MustCompile(`(?i)however|although|tradeoff|downside|alternatively|on the other hand|but|drawback`)
)

// levelThresholds is the difficulty-dependent cut for qualitative levels: the
// same numeric score reads as a lower level under a stricter interviewer.
type levelThresholds struct {
	good int
	avg  int
}

var difficultyThresholds = map[types.Difficulty]levelThresholds{
	types.DifficultyFriendly: {good: 55, avg: 35},
	types.DifficultyStandard: {good: 65, avg: 45},
	types.DifficultyStrict:   {good: 75, avg: 55},
}

// ScoreAnswer grades a single live answer. Answers shorter than 5 characters
// short-circuit to a weak 15 without further analysis. The returned score is
// difficulty-independent; only the level interpretation shifts.
func ScoreAnswer(answer string, difficulty types.Difficulty) types.AnswerScore {
	if len(strings.TrimSpace(answer)) < 5 {
		return types.AnswerScore{Level: "weak", Score: 15}
	}

	words := len(strings.Fields(answer))
	lower := strings.ToLower(answer)

	score := 30
	switch {
	case words >= 40:
		score += 20
	case words >= 20:
		score += 12
	case words >= 10:
		score += 5
	}

	termCount := 0
	for _, t := range quickTechTerms {
		if strings.Contains(lower, t) {
			termCount++
		}
	}
	score += min(20, termCount*5)

	if digitPattern.MatchString(answer) {
		score += 8
	}
	if examplePattern.MatchString(lower) {
		score += 12
	}
	if tradeoffPattern.MatchString(lower) {
		score += 10
	}
	score = min(98, score)

	t, ok := difficultyThresholds[difficulty]
	if !ok {
		t = difficultyThresholds[types.DifficultyStandard]
	}

	level := "weak"
	switch {
	case score >= t.good:
		level = "good"
	case score >= t.avg:
		level = "avg"
	}

	return types.AnswerScore{Level: level, Score: score}
}
