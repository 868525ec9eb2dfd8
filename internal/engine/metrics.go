package engine

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// analyzeMetrics counts quantifiable evidence across five regex families and
// scores metric density per bullet. Families can overlap on the same numeric
// substring; that imprecision is intentional and kept stable.
func analyzeMetrics(text string) types.LensResult {
	totalMetrics := 0
	var foundTypes []string

	pcts := percentPattern.FindAllString(text, -1)
	if len(pcts) > 0 {
		totalMetrics += len(pcts)
		foundTypes = append(foundTypes, fmt.Sprintf("%d percentage(s)", len(pcts)))
	}

	currency := currencyPattern.FindAllString(text, -1)
	if len(currency) == 0 {
		currency = rupeePattern.FindAllString(text, -1)
	}
	if len(currency) > 0 {
		totalMetrics += len(currency)
		foundTypes = append(foundTypes, fmt.Sprintf("%d currency figure(s)", len(currency)))
	}

	bigNums := bigNumberPattern.FindAllString(text, -1)
	if len(bigNums) > 0 {
		totalMetrics += len(bigNums)
		foundTypes = append(foundTypes, fmt.Sprintf("%d large number(s)", len(bigNums)))
	}

	multipliers := multiplierPattern.FindAllString(text, -1)
	if len(multipliers) > 0 {
		totalMetrics += len(multipliers)
		foundTypes = append(foundTypes, fmt.Sprintf("%d multiplier(s)", len(multipliers)))
	}

	timeBased := durationPattern.FindAllString(text, -1)
	if len(timeBased) > 0 {
		totalMetrics += len(timeBased)
		foundTypes = append(foundTypes, fmt.Sprintf("%d time metric(s)", len(timeBased)))
	}

	bulletCount := 0
	for _, l := range strings.Split(text, "\n") {
		if bulletPattern.MatchString(l) {
			bulletCount++
		}
	}
	if bulletCount == 0 {
		bulletCount = 5
	}
	density := roundPct(totalMetrics, bulletCount)
	score := density
	if density > 100 {
		score = 95
	}
	score = clamp(score, 0, 100)

	var checks []types.CheckItem

	pctStatus := types.StatusFail
	switch {
	case len(pcts) >= 2:
		pctStatus = types.StatusPass
	case len(pcts) >= 1:
		pctStatus = types.StatusWarn
	}
	pctDetail := "No percentages found. Add improvement rates and growth numbers."
	if len(pcts) > 0 {
		pctDetail = fmt.Sprintf("Found: %s", headList(pcts, 3, ""))
	}
	checks = append(checks, types.CheckItem{Label: "Percentage Metrics", Status: pctStatus, Detail: pctDetail})

	curStatus := types.StatusFail
	curDetail := "No financial metrics. Quantify savings, revenue, or budget managed."
	if len(currency) > 0 {
		curStatus = types.StatusPass
		curDetail = fmt.Sprintf("Found: %s", headList(currency, 3, ""))
	}
	checks = append(checks, types.CheckItem{Label: "Revenue / Cost Impact", Status: curStatus, Detail: curDetail})

	scaleStatus := types.StatusFail
	switch {
	case len(bigNums) >= 2:
		scaleStatus = types.StatusPass
	case len(bigNums) >= 1:
		scaleStatus = types.StatusWarn
	}
	scaleDetail := "No scale metrics. Add user counts, data volumes, request numbers."
	if len(bigNums) > 0 {
		scaleDetail = fmt.Sprintf("%d scale numbers found (users, records, etc.)", len(bigNums))
	}
	checks = append(checks, types.CheckItem{Label: "Scale Indicators", Status: scaleStatus, Detail: scaleDetail})

	timeStatus := types.StatusFail
	timeDetail := "No timeline improvements. Add delivery speed, uptime stats."
	if len(timeBased) > 0 {
		timeStatus = types.StatusPass
		timeDetail = fmt.Sprintf("Found: %s", headList(timeBased, 3, ""))
	}
	checks = append(checks, types.CheckItem{Label: "Time-Based Metrics", Status: timeStatus, Detail: timeDetail})

	var summary string
	switch {
	case totalMetrics == 0:
		summary = "Zero quantifiable metrics found. This is a critical gap for recruiter attention."
	case totalMetrics <= 3:
		summary = fmt.Sprintf("Only %d metrics found (%s). Density is low.", totalMetrics, strings.Join(foundTypes, ", "))
	default:
		summary = fmt.Sprintf("%d metrics detected (%s). Good quantification.", totalMetrics, strings.Join(foundTypes, ", "))
	}

	// The two examples below are deliberately static coaching material, not
	// derived from the input text.
	rewrites := []types.RewriteSuggestion{
		{
			Original: `"Improved application performance"`,
			Rewrite:  `"Reduced API response time from 1.2s to 180ms (85% improvement), decreasing server costs by $2,400/month"`,
			Reason:   "One sentence, four metrics. This is what recruiters scan for.",
		},
		{
			Original: `"Managed intern onboarding"`,
			Rewrite:  `"Onboarded 12 interns across 2 cohorts, achieving 95% retention rate and reducing ramp-up time from 4 weeks to 10 days"`,
			Reason:   "Numbers transform soft skills into hard evidence.",
		},
	}

	return types.LensResult{
		Score:    clamp(score, 5, 100),
		Status:   lensStatus(score, 70, 40),
		Summary:  summary,
		Checks:   checks,
		Rewrites: rewrites,
	}
}
