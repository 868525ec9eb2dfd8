package engine

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// analyzeATS scores structural parseability: section headers, plain-text
// contact info, overall length, and decorative glyphs that confuse parsers.
// Starts at 100 and only subtracts.
func analyzeATS(text string, vocab *Vocabulary) types.LensResult {
	lower := strings.ToLower(text)
	var checks []types.CheckItem
	score := 100

	goodHeaders := filterContained(lower, vocab.GoodHeaders)
	badHeaders := filterContained(lower, vocab.BadHeaders)
	switch {
	case len(goodHeaders) >= 3:
		checks = append(checks, types.CheckItem{
			Label:  "Standard Section Headers",
			Status: types.StatusPass,
			Detail: fmt.Sprintf("Found: %s. ATS parsers will identify your sections correctly.", headList(goodHeaders, 4, "")),
		})
	case len(badHeaders) > 0:
		checks = append(checks, types.CheckItem{
			Label:  "Standard Section Headers",
			Status: types.StatusFail,
			Detail: fmt.Sprintf("Non-standard headers detected: %q. Use standard headers like \"Experience\", \"Education\", \"Skills\".", strings.Join(badHeaders, `", "`)),
		})
		score -= 25
	default:
		checks = append(checks, types.CheckItem{
			Label:  "Standard Section Headers",
			Status: types.StatusWarn,
			Detail: fmt.Sprintf("Only %d standard headers found. Add clear sections for Experience, Education, Skills.", len(goodHeaders)),
		})
		score -= 12
	}

	hasEmail := emailPattern.MatchString(text)
	hasPhone := phonePattern.MatchString(text)
	if hasEmail && hasPhone {
		checks = append(checks, types.CheckItem{
			Label:  "Contact Information",
			Status: types.StatusPass,
			Detail: "Email and phone number detected in plain text. Parsers can extract these.",
		})
	} else {
		status := types.StatusFail
		emailPart := "No email detected"
		if hasEmail {
			status = types.StatusWarn
			emailPart = "Email found"
		}
		phonePart := "No phone number detected"
		if hasPhone {
			phonePart = "Phone found"
		}
		checks = append(checks, types.CheckItem{
			Label:  "Contact Information",
			Status: status,
			Detail: fmt.Sprintf("%s. %s. Ensure contact info is in plain text.", emailPart, phonePart),
		})
		if hasEmail {
			score -= 8
		} else {
			score -= 20
		}
	}

	words := wordCount(text)
	switch {
	case words > 200 && words < 1200:
		kind := "standard"
		if words > 700 {
			kind = "senior"
		}
		checks = append(checks, types.CheckItem{
			Label:  "Resume Length",
			Status: types.StatusPass,
			Detail: fmt.Sprintf("%d words — good length for a %s resume.", words, kind),
		})
	case words <= 200:
		checks = append(checks, types.CheckItem{
			Label:  "Resume Length",
			Status: types.StatusFail,
			Detail: fmt.Sprintf("Only %d words. Modern resumes should be 300-800 words to pass ATS filters.", words),
		})
		score -= 20
	default:
		checks = append(checks, types.CheckItem{
			Label:  "Resume Length",
			Status: types.StatusWarn,
			Detail: fmt.Sprintf("%d words — quite long. Consider trimming to 600-800 words for better parsing.", words),
		})
		score -= 8
	}

	specialCount := len(specialCharPattern.FindAllString(text, -1))
	if specialCount > 5 {
		checks = append(checks, types.CheckItem{
			Label:  "Special Characters",
			Status: types.StatusFail,
			Detail: fmt.Sprintf("%d non-standard characters/symbols found. ATS may misread these. Use simple bullets (•) or dashes (-).", specialCount),
		})
		score -= 15
	} else {
		checks = append(checks, types.CheckItem{
			Label:  "Character Encoding",
			Status: types.StatusPass,
			Detail: "No problematic special characters detected. Clean text encoding.",
		})
	}

	score = clamp(score, 0, 100)

	var summary string
	switch {
	case score >= 80:
		summary = "Your resume structure is ATS-friendly. Minor optimizations possible."
	case score >= 50:
		passCount := 0
		for _, c := range checks {
			if c.Status == types.StatusPass {
				passCount++
			}
		}
		summary = fmt.Sprintf("%d structural issues may affect ATS parsing.", 4-passCount)
	default:
		summary = "Critical formatting issues detected. Your resume may not parse correctly in most ATS systems."
	}

	var rewrites []types.RewriteSuggestion
	if len(badHeaders) > 0 {
		for _, h := range badHeaders {
			rewrites = append(rewrites, types.RewriteSuggestion{
				Original: fmt.Sprintf("Section header: %q", h),
				Rewrite:  fmt.Sprintf("Use standard header: %q or %q", vocab.GoodHeaders[0], vocab.GoodHeaders[1]),
				Reason:   "ATS parsers look for standard headers. Non-standard names cause sections to be skipped entirely.",
			})
		}
	} else {
		rewrites = append(rewrites, types.RewriteSuggestion{
			Original: "Current structure",
			Rewrite:  "Ensure clear separation: Summary → Experience → Education → Skills → Projects",
			Reason:   "A predictable structure helps ATS parsers extract maximum information.",
		})
	}

	return types.LensResult{
		Score:    score,
		Status:   lensStatus(score, 80, 50),
		Summary:  summary,
		Checks:   checks,
		Rewrites: rewrites,
	}
}
