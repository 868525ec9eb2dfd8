package engine

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// analyzeRoleAlignment measures how well skills, education, projects, and
// experience line up with the target role's keyword set.
func analyzeRoleAlignment(text string, profile types.Profile, vocab *Vocabulary) types.LensResult {
	lower := strings.ToLower(text)
	targetRole := effectiveRole(profile)
	roleKey := vocab.resolveRole(targetRole)
	roleKws := vocab.RoleKeywords[roleKey]

	matchedSkills := filterContained(lower, roleKws)
	skillMatch := roundPct(len(matchedSkills), len(roleKws))

	hasRelevantEdu := containsAny(lower, vocab.EduTerms)
	projectMentions := len(filterContained(lower, vocab.ProjectTerms))
	hasExp := containsAny(lower, vocab.ExpTerms)

	var checks []types.CheckItem
	score := skillMatch

	skillStatus := types.StatusFail
	switch {
	case skillMatch >= 60:
		skillStatus = types.StatusPass
	case skillMatch >= 35:
		skillStatus = types.StatusWarn
	}
	skillDetail := fmt.Sprintf("%d/%d required skills found (%d%% match). ", len(matchedSkills), len(roleKws), skillMatch)
	if len(matchedSkills) > 0 {
		skillDetail += "Top: " + headList(matchedSkills, 5, "")
	}
	checks = append(checks, types.CheckItem{Label: "Skills → Role Match", Status: skillStatus, Detail: skillDetail})

	eduStatus := types.StatusWarn
	eduDetail := "No clear academic background detected. Consider adding your degree and field of study."
	if hasRelevantEdu {
		eduStatus = types.StatusPass
		eduDetail = "Relevant academic background detected for this role."
	}
	checks = append(checks, types.CheckItem{Label: "Academic Alignment", Status: eduStatus, Detail: eduDetail})
	if !hasRelevantEdu {
		score -= 10
	}

	projStatus := types.StatusFail
	switch {
	case projectMentions >= 4:
		projStatus = types.StatusPass
	case projectMentions >= 2:
		projStatus = types.StatusWarn
	}
	projDetail := fmt.Sprintf("Only %d project mentions. Add 2-3 role-specific projects to strengthen alignment.", projectMentions)
	if projectMentions >= 4 {
		projDetail = fmt.Sprintf("Strong project presence with %d project-related mentions.", projectMentions)
	}
	checks = append(checks, types.CheckItem{Label: "Project Portfolio", Status: projStatus, Detail: projDetail})
	if projectMentions < 2 {
		score -= 15
	}

	expStatus := types.StatusWarn
	expDetail := "No clear professional experience section. Add internships, freelance work, or open-source contributions."
	if hasExp {
		expStatus = types.StatusPass
		expDetail = "Professional experience section detected and relevant."
	}
	checks = append(checks, types.CheckItem{Label: "Experience Relevance", Status: expStatus, Detail: expDetail})
	if !hasExp {
		score -= 10
	}

	score = clamp(score, 10, 100)

	var summary string
	if score >= 75 {
		summary = fmt.Sprintf("Strong alignment with %q role. Skills and experience match well.", targetRole)
	} else {
		summary = fmt.Sprintf("Your profile needs strengthening for %q. %d relevant skills are missing.",
			targetRole, len(roleKws)-len(matchedSkills))
	}

	rewrites := []types.RewriteSuggestion{
		{
			Original: fmt.Sprintf("Current role alignment: %d%%", skillMatch),
			Rewrite:  fmt.Sprintf("Add missing skills to your projects section: %s", headList(filterMissing(lower, roleKws), 5, "")),
			Reason:   fmt.Sprintf("These keywords appear in 80%%+ of %q job postings for 2026.", targetRole),
		},
	}

	return types.LensResult{
		Score:    score,
		Status:   lensStatus(score, 75, 50),
		Summary:  summary,
		Checks:   checks,
		Rewrites: rewrites,
	}
}
