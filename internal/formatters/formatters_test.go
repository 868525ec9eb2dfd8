package formatters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/types"
)

func sampleAuditResult() types.AuditResult {
	lens := types.LensResult{
		Score:   82,
		Status:  types.StatusPass,
		Summary: "Looks solid.",
		Checks: []types.CheckItem{
			{Label: "Contact Information", Status: types.StatusPass, Detail: "Email and phone found."},
		},
		Rewrites: []types.RewriteSuggestion{
			{Original: "old line", Rewrite: "new line", Reason: "clearer"},
		},
	}
	return types.AuditResult{
		IsResume:     true,
		OverallScore: 82,
		Lenses: &types.LensSet{
			ATS:     lens,
			Keyword: lens,
			Impact:  lens,
			Metrics: lens,
			Role:    lens,
		},
	}
}

func sampleSessionResult() types.SessionResult {
	return types.SessionResult{
		Role:       "Backend Developer",
		Difficulty: types.DifficultyStandard,
		TechScore:  80,
		CommScore:  70,
		Overall:    76,
		Verdict:    "Hire",
		Strengths:  []string{"Strong technical vocabulary"},
		Weaknesses: []string{"Missing concrete examples from real projects"},
		Questions: []types.QuestionResult{
			{
				Question:  "How do you approach caching?",
				Answer:    "With a cache.",
				TechScore: 80,
				CommScore: 70,
				Overall:   76,
				WordCount: 3,
				Feedback:  "Decent answer.",
			},
		},
	}
}

func TestRegistryJSONFallback(t *testing.T) {
	registry := NewFormatterRegistry()

	// JSON handles any data type through the "any" formatter.
	out, err := registry.Format(map[string]int{"a": 1}, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, out)

	out, err = registry.Format(sampleAuditResult(), "json")
	require.NoError(t, err)

	var decoded types.AuditResult
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.True(t, decoded.IsResume)
	assert.Equal(t, 82, decoded.OverallScore)
}

func TestRegistryUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()

	_, err := registry.Format(sampleAuditResult(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no formatter found")
}

func TestRegistryTextHasNoGenericFallback(t *testing.T) {
	registry := NewFormatterRegistry()

	_, err := registry.Format(struct{ X int }{1}, "text")
	assert.Error(t, err)
}

func TestGetSupportedFormats(t *testing.T) {
	formats := NewFormatterRegistry().GetSupportedFormats()

	assert.ElementsMatch(t, []string{"json", "text", "markdown"}, formats)
}

func TestAuditTextFormatter(t *testing.T) {
	out, err := (&AuditTextFormatter{}).Format(sampleAuditResult())
	require.NoError(t, err)

	assert.Contains(t, out, "=== RESUME AUDIT ===")
	assert.Contains(t, out, "Overall Score: 82/100")
	for _, title := range []string{"ATS READINESS", "KEYWORD MATCH", "IMPACT LANGUAGE", "QUANTIFIED RESULTS", "ROLE ALIGNMENT"} {
		assert.Contains(t, out, "=== "+title+" ===")
	}
	assert.Contains(t, out, "[PASS] Contact Information")
	assert.Contains(t, out, "Suggested Rewrites:")
}

func TestAuditTextFormatterNotAResume(t *testing.T) {
	out, err := (&AuditTextFormatter{}).Format(types.AuditResult{IsResume: false})
	require.NoError(t, err)

	assert.Contains(t, out, "does not look like a resume")
	assert.NotContains(t, out, "Overall Score")
}

func TestAuditMarkdownFormatter(t *testing.T) {
	out, err := (&AuditMarkdownFormatter{}).Format(sampleAuditResult())
	require.NoError(t, err)

	assert.Contains(t, out, "# Resume Audit")
	assert.Contains(t, out, "**Overall Score:** 82/100")
	assert.Contains(t, out, "## ATS Readiness")
	assert.Contains(t, out, "| Check | Status | Detail |")
	assert.Contains(t, out, "### Suggested Rewrites")
}

func TestSessionTextFormatter(t *testing.T) {
	out, err := (&SessionTextFormatter{}).Format(sampleSessionResult())
	require.NoError(t, err)

	assert.Contains(t, out, "=== INTERVIEW REPORT ===")
	assert.Contains(t, out, "Role: Backend Developer")
	assert.Contains(t, out, "Verdict: Hire")
	assert.Contains(t, out, "Strengths:")
	assert.Contains(t, out, "Areas to Improve:")
	assert.Contains(t, out, "=== QUESTION BREAKDOWN ===")
	assert.Contains(t, out, "Tech: 80  Comm: 70  Overall: 76  Words: 3")
}

func TestSessionMarkdownFormatter(t *testing.T) {
	out, err := (&SessionMarkdownFormatter{}).Format(sampleSessionResult())
	require.NoError(t, err)

	assert.Contains(t, out, "# Interview Report")
	assert.Contains(t, out, "**Verdict:** Hire")
	assert.Contains(t, out, "## Question Breakdown")
}

func TestAnswerFormatters(t *testing.T) {
	score := types.AnswerScore{Level: "good", Score: 88, Feedback: "Strong answer."}

	text, err := (&AnswerTextFormatter{}).Format(score)
	require.NoError(t, err)
	assert.Contains(t, text, "Score: 88/100")
	assert.Contains(t, text, "Level: good")
	assert.Contains(t, text, "Strong answer.")

	md, err := (&AnswerMarkdownFormatter{}).Format(score)
	require.NoError(t, err)
	assert.Contains(t, md, "# Answer Score")
	assert.Contains(t, md, "**Score:** 88/100")
}

func TestFormattersRejectWrongType(t *testing.T) {
	_, err := (&AuditTextFormatter{}).Format("not an audit result")
	assert.Error(t, err)

	_, err = (&SessionMarkdownFormatter{}).Format(42)
	assert.Error(t, err)

	_, err = (&AnswerTextFormatter{}).Format(sampleAuditResult())
	assert.Error(t, err)
}

func TestRegistryDispatchByType(t *testing.T) {
	registry := NewFormatterRegistry()

	out, err := registry.Format(sampleSessionResult(), "text")
	require.NoError(t, err)
	assert.Contains(t, out, "=== INTERVIEW REPORT ===")

	out, err = registry.Format(types.AnswerScore{Level: "avg", Score: 50}, "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Answer Score")
}
