package interview

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"resumelens/internal/types"
)

// Session evaluator vocabulary. Wider than the live scorer's: the report can
// afford to reward concrete technology names, not just generic terms.
var sessionTechTerms = []string{
	"api", "database", "component", "algorithm", "architecture", "performance",
	"cache", "server", "function", "class", "deploy", "test", "security",
	"scale", "optimize", "framework", "library", "react", "node", "python",
	"sql", "docker", "kubernetes", "aws", "css", "html", "javascript",
	"typescript", "git", "http", "rest", "graphql", "mongodb", "redis",
}

var (
	sessionExamplePattern  = regexp.MustCompile(`(?i)for example|for instance|such as|in my project|i built|i used|i implemented|we developed`)
	sessionTradeoffPattern = regexp.MustCompile(`(?i)however|although|tradeoff|downside|alternatively|on the other hand|drawback|limitation`)
	structurePattern       = regexp.MustCompile(`(?i)first|second|third|finally|additionally|moreover|in conclusion|to summarize`)
	fillerPattern          = regexp.MustCompile(`(?i)um+|uh+|like,|you know|basically|actually|literally|sort of|kind of`)
)

// EvaluateSession produces the end-of-session report: per-answer technical
// and communication sub-scores (weighted 0.6/0.4 into an overall), plus
// deduplicated strength and weakness observations capped at five each.
func EvaluateSession(input types.SessionInput) types.SessionResult {
	var questions []types.QuestionResult
	strengths := newObservationSet()
	weaknesses := newObservationSet()

	for _, qa := range input.Exchanges {
		lower := strings.ToLower(qa.Answer)
		words := len(strings.Fields(qa.Answer))
		hasNumbers := digitPattern.MatchString(qa.Answer)

		foundTerms := 0
		for _, t := range sessionTechTerms {
			if strings.Contains(lower, t) {
				foundTerms++
			}
		}
		hasExamples := sessionExamplePattern.MatchString(lower)
		hasTradeoffs := sessionTradeoffPattern.MatchString(lower)
		hasStructure := structurePattern.MatchString(lower)
		fillerCount := len(fillerPattern.FindAllString(qa.Answer, -1))

		techScore := 25
		techScore += min(25, foundTerms*5)
		if hasExamples {
			techScore += 15
		}
		if hasTradeoffs {
			techScore += 10
		}
		if hasNumbers {
			techScore += 10
		}
		if words < 8 {
			techScore = min(techScore, 20)
		}
		techScore = min(98, techScore)

		commScore := 30
		switch {
		case words >= 30:
			commScore += 20
		case words >= 15:
			commScore += 10
		}
		if hasStructure {
			commScore += 15
		}
		commScore -= fillerCount * 5
		if hasExamples {
			commScore += 10
		}
		commScore = max(10, min(98, commScore))

		overall := int(math.Round(float64(techScore)*0.6 + float64(commScore)*0.4))

		if foundTerms >= 3 {
			strengths.add("Strong technical vocabulary")
		}
		if hasExamples {
			strengths.add("Uses concrete real-world examples")
		}
		if hasTradeoffs {
			strengths.add("Discusses tradeoffs and alternatives")
		}
		if hasNumbers {
			strengths.add("Quantifies impact with numbers")
		}
		if hasStructure {
			strengths.add("Well-structured and organized answers")
		}
		if words >= 40 {
			strengths.add("Provides detailed, comprehensive responses")
		}

		if words < 15 {
			weaknesses.add("Answers are too short — expand with details")
		}
		if foundTerms < 2 {
			weaknesses.add("Low technical depth — use more domain terms")
		}
		if !hasExamples {
			weaknesses.add("Missing concrete examples from real projects")
		}
		if !hasTradeoffs {
			weaknesses.add("Does not discuss tradeoffs or limitations")
		}
		if fillerCount > 2 {
			weaknesses.add("Too many filler words — practice clarity")
		}
		if !hasNumbers {
			weaknesses.add("No quantified metrics — add numbers for credibility")
		}

		snippet := qa.Question
		if len([]rune(snippet)) > 50 {
			snippet = string([]rune(snippet)[:50])
		}
		var feedback string
		switch {
		case overall >= 75:
			feedback = fmt.Sprintf("Strong answer on \"%s...\". You showed solid understanding.", snippet)
		case overall >= 50:
			feedback = fmt.Sprintf("Decent answer on \"%s...\". Could use more depth and specifics.", snippet)
		default:
			feedback = fmt.Sprintf("Weak answer on \"%s...\". Need much more technical detail and examples.", snippet)
		}

		questions = append(questions, types.QuestionResult{
			Question:  qa.Question,
			Answer:    qa.Answer,
			TechScore: techScore,
			CommScore: commScore,
			Overall:   overall,
			WordCount: words,
			Feedback:  feedback,
		})
	}

	avgTech, avgComm, avgOverall := 0, 0, 0
	if len(questions) > 0 {
		var sumTech, sumComm, sumOverall int
		for _, q := range questions {
			sumTech += q.TechScore
			sumComm += q.CommScore
			sumOverall += q.Overall
		}
		n := float64(len(questions))
		avgTech = int(math.Round(float64(sumTech) / n))
		avgComm = int(math.Round(float64(sumComm) / n))
		avgOverall = int(math.Round(float64(sumOverall) / n))
	}

	verdict := "Needs Practice"
	switch {
	case avgOverall >= 80:
		verdict = "Strong Hire"
	case avgOverall >= 60:
		verdict = "Hire"
	}

	return types.SessionResult{
		Role:       input.Role,
		Difficulty: input.Difficulty,
		TechScore:  avgTech,
		CommScore:  avgComm,
		Overall:    avgOverall,
		Verdict:    verdict,
		Strengths:  strengths.take(5),
		Weaknesses: weaknesses.take(5),
		Questions:  questions,
	}
}

// observationSet deduplicates while preserving first-seen order.
type observationSet struct {
	seen  map[string]struct{}
	items []string
}

func newObservationSet() *observationSet {
	return &observationSet{seen: make(map[string]struct{})}
}

func (s *observationSet) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s *observationSet) take(n int) []string {
	if len(s.items) <= n {
		return s.items
	}
	return s.items[:n]
}
