package engine

import (
	"fmt"
	"math"
	"strings"

	"resumelens/internal/types"
)

// analyzeImpact classifies bullet-style content lines into weak (passive
// phrasing, no strong verb) and strong (any strong verb — a strong verb
// always wins over a co-occurring weak phrase).
func analyzeImpact(text string, vocab *Vocabulary) types.LensResult {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if len(strings.TrimSpace(l)) > 15 {
			lines = append(lines, l)
		}
	}

	var bulletLines []string
	for _, l := range lines {
		if bulletPattern.MatchString(l) || numberedPattern.MatchString(l) {
			bulletLines = append(bulletLines, l)
		}
	}

	contentLines := bulletLines
	if len(contentLines) == 0 {
		contentLines = lines
		if len(contentLines) > 15 {
			contentLines = contentLines[:15]
		}
	}

	weakCount := 0
	strongCount := 0
	var weakExamples []string
	for _, line := range contentLines {
		lower := strings.TrimSpace(strings.ToLower(line))
		hasWeak := containsAny(lower, vocab.WeakPhrases)
		hasStrong := containsAny(lower, vocab.StrongVerbs)
		switch {
		case hasWeak && !hasStrong:
			weakCount++
			if len(weakExamples) < 2 {
				weakExamples = append(weakExamples, truncate(strings.TrimSpace(line), 80))
			}
		case hasStrong:
			strongCount++
		}
	}

	total := max(len(contentLines), 1)
	strongRatio := float64(strongCount) / float64(total)
	raw := strongRatio * 100
	if weakCount == 0 {
		raw += 20
	}
	if strongCount >= 3 {
		raw += 15
	}
	score := int(math.Round(math.Min(100, raw)))

	lowerText := strings.ToLower(text)
	var checks []types.CheckItem

	strongStatus := types.StatusFail
	switch {
	case strongCount >= 3:
		strongStatus = types.StatusPass
	case strongCount >= 1:
		strongStatus = types.StatusWarn
	}
	strongDetail := `No strong action verbs detected. Use "Engineered", "Optimized", "Delivered" instead of "Worked on".`
	if strongCount > 0 {
		strongDetail = fmt.Sprintf("Found %d strong verbs: %s",
			strongCount, headList(filterContained(lowerText, vocab.StrongVerbs), 4, ""))
	}
	checks = append(checks, types.CheckItem{Label: "Strong Action Verbs", Status: strongStatus, Detail: strongDetail})

	weakStatus := types.StatusFail
	switch {
	case weakCount == 0:
		weakStatus = types.StatusPass
	case weakCount <= 2:
		weakStatus = types.StatusWarn
	}
	weakDetail := "No passive language detected. Your bullets read confidently."
	if weakCount > 0 {
		weakDetail = fmt.Sprintf("%d instances of weak language: %s",
			weakCount, headList(filterContained(lowerText, vocab.WeakPhrases), 3, ""))
	}
	checks = append(checks, types.CheckItem{Label: "Weak/Passive Language", Status: weakStatus, Detail: weakDetail})

	hasResults := false
	for _, l := range contentLines {
		if resultPattern.MatchString(l) {
			hasResults = true
			break
		}
	}
	parStatus := types.StatusFail
	parDetail := "No result-oriented language found. Bullets describe tasks, not achievements."
	if hasResults {
		parStatus = types.StatusPass
		parDetail = "Some bullets follow the PAR framework showing outcomes."
	}
	checks = append(checks, types.CheckItem{Label: "Problem → Action → Result", Status: parStatus, Detail: parDetail})

	var summary string
	if score >= 75 {
		summary = "Your bullets are impact-driven. Strong narrative with action verbs."
	} else {
		summary = fmt.Sprintf("%d bullet points describe tasks instead of results. Narrative needs strengthening.", weakCount)
	}

	var rewrites []types.RewriteSuggestion
	for _, ex := range weakExamples {
		orig := fmt.Sprintf("\"%s\"", ex)
		if len([]rune(ex)) >= 80 {
			orig = fmt.Sprintf("\"%s...\"", ex)
		}
		rewrites = append(rewrites, types.RewriteSuggestion{
			Original: orig,
			Rewrite:  `Replace with: "Engineered/Optimized [specific thing], resulting in [measurable outcome] for [stakeholder]"`,
			Reason:   "Recruiters spend 7 seconds scanning. Impact-driven bullets survive that filter.",
		})
	}

	return types.LensResult{
		Score:    clamp(score, 10, 100),
		Status:   lensStatus(score, 75, 45),
		Summary:  summary,
		Checks:   checks,
		Rewrites: rewrites,
	}
}
