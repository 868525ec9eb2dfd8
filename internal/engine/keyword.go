package engine

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// analyzeKeywords measures keyword coverage against the resolved role's
// curated list, widened by the candidate's own technologies. Coverage
// percentage is the lens score directly.
func analyzeKeywords(text string, profile types.Profile, vocab *Vocabulary) types.LensResult {
	lower := strings.ToLower(text)
	targetRole := effectiveRole(profile)
	userTechs := lowerAll(profile.InterestedTechnologies)

	roleKey := vocab.resolveRole(targetRole)
	universe := dedupe(append(append([]string{}, vocab.RoleKeywords[roleKey]...), userTechs...))

	found := filterContained(lower, universe)
	missing := filterMissing(lower, universe)
	coverage := roundPct(len(found), len(universe))

	var checks []types.CheckItem

	if len(found) > 0 {
		status := types.StatusWarn
		if float64(len(found)) >= float64(len(universe))*0.6 {
			status = types.StatusPass
		}
		detail := headList(found, 8, fmt.Sprintf(" + %d more", len(found)-8))
		checks = append(checks, types.CheckItem{
			Label:  fmt.Sprintf("Found Keywords (%d)", len(found)),
			Status: status,
			Detail: detail,
		})
	}

	if len(missing) > 0 {
		status := types.StatusWarn
		if float64(len(missing)) > float64(len(universe))*0.5 {
			status = types.StatusFail
		}
		detail := headList(missing, 6, fmt.Sprintf(" + %d more", len(missing)-6))
		checks = append(checks, types.CheckItem{
			Label:  fmt.Sprintf("Missing Keywords (%d)", len(missing)),
			Status: status,
			Detail: detail,
		})
	}

	if len(userTechs) > 0 {
		foundTechs := filterContained(lower, userTechs)
		var status types.Status
		var detail string
		switch {
		case len(foundTechs) == len(userTechs):
			status = types.StatusPass
			detail = fmt.Sprintf("All %d of your technologies are mentioned.", len(userTechs))
		case len(foundTechs) > 0:
			status = types.StatusWarn
			detail = fmt.Sprintf("%d/%d of your technologies found. Missing: %s",
				len(foundTechs), len(userTechs), strings.Join(filterMissing(lower, userTechs), ", "))
		default:
			status = types.StatusFail
			detail = fmt.Sprintf("%d/%d of your technologies found. Missing: %s",
				len(foundTechs), len(userTechs), strings.Join(filterMissing(lower, userTechs), ", "))
		}
		checks = append(checks, types.CheckItem{Label: "Your Technologies Match", Status: status, Detail: detail})
	}

	modernTerms := filterContained(lower, vocab.IndustryTerms)
	var industryStatus types.Status
	var industryDetail string
	switch {
	case len(modernTerms) >= 2:
		industryStatus = types.StatusPass
		industryDetail = fmt.Sprintf("Modern terms found: %s", strings.Join(modernTerms, ", "))
	case len(modernTerms) == 1:
		industryStatus = types.StatusWarn
		industryDetail = "Few modern industry terms. Consider adding references to current technologies and trends."
	default:
		industryStatus = types.StatusFail
		industryDetail = "Few modern industry terms. Consider adding references to current technologies and trends."
	}
	checks = append(checks, types.CheckItem{Label: "2026 Industry Relevance", Status: industryStatus, Detail: industryDetail})

	score := clamp(coverage, 0, 100)

	var summary string
	if score >= 75 {
		summary = fmt.Sprintf("Strong keyword coverage (%d%%). Your resume aligns well with %s requirements.", coverage, targetRole)
	} else {
		summary = fmt.Sprintf("%d high-value keywords missing for %q. Coverage: %d%%.", len(missing), targetRole, coverage)
	}

	var rewrites []types.RewriteSuggestion
	for _, kw := range missing {
		if len(rewrites) >= 2 {
			break
		}
		rewrites = append(rewrites, types.RewriteSuggestion{
			Original: fmt.Sprintf("Missing keyword: %q", kw),
			Rewrite:  fmt.Sprintf("Add %q naturally into your Experience or Skills section. Example: \"Implemented %s-based solutions...\"", kw, kw),
			Reason:   fmt.Sprintf("%q is a high-value keyword for %s roles in 2026 job postings.", kw, targetRole),
		})
	}

	return types.LensResult{
		Score:    score,
		Status:   lensStatus(score, 75, 50),
		Summary:  summary,
		Checks:   checks,
		Rewrites: rewrites,
	}
}

// dedupe keeps the first occurrence of each term, preserving order.
func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
