package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | +1 555-123-4567

Summary
Software engineer with 4 years of experience building web applications.

Experience
- Engineered a caching layer in Redis that reduced API response time by 40%
- Built CI/CD pipelines with Docker and Kubernetes, cutting deploy time from 2 hours to 15 minutes
- Optimized PostgreSQL queries, increasing throughput 3x for 12000 daily users

Education
Bachelor of Computer Science, State University

Skills
JavaScript, TypeScript, React, Node, Python, SQL, Git, AWS

Projects
- Designed and launched a REST API platform serving 50000 requests per day
`

const notAResume = "The quick brown fox jumps over the lazy dog."

func TestIsResume(t *testing.T) {
	a := NewAuditor(nil)

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "full resume text",
			text:     sampleResume,
			expected: true,
		},
		{
			name:     "plain prose with no resume signals",
			text:     notAResume,
			expected: false,
		},
		{
			name:     "single signal is not enough",
			text:     "I have experience with many things.",
			expected: false,
		},
		{
			name:     "two distinct signals pass the gate",
			text:     "My experience and education are listed below.",
			expected: true,
		},
		{
			name:     "empty text",
			text:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, a.IsResume(tt.text))
		})
	}
}

func TestAuditRejectsNonResume(t *testing.T) {
	a := NewAuditor(nil)

	result := a.Audit(types.AuditInput{Text: notAResume})

	assert.False(t, result.IsResume)
	assert.Zero(t, result.OverallScore)
	assert.Nil(t, result.Lenses)
}

func TestAuditRunsAllLenses(t *testing.T) {
	a := NewAuditor(nil)

	result := a.Audit(types.AuditInput{
		Text:    sampleResume,
		Profile: types.Profile{TargetRole: "Software Engineer"},
	})

	require.True(t, result.IsResume)
	require.NotNil(t, result.Lenses)

	lenses := []types.LensResult{
		result.Lenses.ATS,
		result.Lenses.Keyword,
		result.Lenses.Impact,
		result.Lenses.Metrics,
		result.Lenses.Role,
	}

	sum := 0
	for _, lr := range lenses {
		assert.GreaterOrEqual(t, lr.Score, 0)
		assert.LessOrEqual(t, lr.Score, 100)
		assert.NotEmpty(t, lr.Status)
		assert.NotEmpty(t, lr.Summary)
		assert.NotEmpty(t, lr.Checks)
		sum += lr.Score
	}

	expected := int(math.Round(float64(sum) / 5))
	assert.Equal(t, expected, result.OverallScore, "overall must be the rounded mean of the five lens scores")
}

func TestAuditIsDeterministic(t *testing.T) {
	a := NewAuditor(nil)
	input := types.AuditInput{
		Text:    sampleResume,
		Profile: types.Profile{TargetRole: "Backend Developer", InterestedTechnologies: []string{"redis"}},
	}

	first := a.Audit(input)
	second := a.Audit(input)

	assert.Equal(t, first, second)
}

func TestSetVocabulary(t *testing.T) {
	a := NewAuditor(nil)
	require.True(t, a.IsResume(sampleResume))

	custom := DefaultVocabulary()
	custom.ResumeSignals = []string{"zebra", "yeti"}
	a.SetVocabulary(custom)
	assert.False(t, a.IsResume(sampleResume))

	// A nil vocabulary is ignored.
	a.SetVocabulary(nil)
	assert.False(t, a.IsResume(sampleResume))
}

func TestAuditScoresStayInRangeOnUnusualText(t *testing.T) {
	a := NewAuditor(nil)

	// Each input carries at least two signal terms so the gate passes and
	// every lens runs over the hostile text.
	inputs := map[string]string{
		"emoji heavy":     "Experience 🚀🔥💯\nSkills 🧠⚡ JavaScript, Go\nEducation 🎓 B.Tech",
		"mixed scripts":   "खान Experience مهندس Education データ Skills Python",
		"combining marks": "résumé Education Skills à b́ ĉ",
		"control bytes":   "experience\x00education\x07skills\tprojects",
		"very long":       strings.Repeat("experience education skills projects 100% $500 3x ", 400),
	}

	for name, text := range inputs {
		t.Run(name, func(t *testing.T) {
			result := a.Audit(types.AuditInput{
				Text:    text,
				Profile: types.Profile{TargetRole: "Software Engineer", InterestedTechnologies: []string{"Δelta", "日本語"}},
			})

			require.True(t, result.IsResume)
			require.NotNil(t, result.Lenses)

			for _, lr := range []types.LensResult{
				result.Lenses.ATS,
				result.Lenses.Keyword,
				result.Lenses.Impact,
				result.Lenses.Metrics,
				result.Lenses.Role,
			} {
				assert.GreaterOrEqual(t, lr.Score, 0)
				assert.LessOrEqual(t, lr.Score, 100)
				assert.NotEmpty(t, lr.Checks)
			}
			assert.GreaterOrEqual(t, result.OverallScore, 0)
			assert.LessOrEqual(t, result.OverallScore, 100)
		})
	}
}

func TestKnownRole(t *testing.T) {
	a := NewAuditor(nil)

	assert.True(t, a.KnownRole("Senior Backend Developer"))
	assert.True(t, a.KnownRole("software engineer"))
	assert.False(t, a.KnownRole("Underwater Basket Weaver"))
	assert.False(t, a.KnownRole(""))
}

func TestEffectiveRole(t *testing.T) {
	assert.Equal(t, "software engineer", effectiveRole(types.Profile{}))
	assert.Equal(t, "data scientist", effectiveRole(types.Profile{TargetRole: "Data Scientist"}))
}

func TestLensStatus(t *testing.T) {
	assert.Equal(t, types.StatusPass, lensStatus(80, 80, 50))
	assert.Equal(t, types.StatusWarn, lensStatus(79, 80, 50))
	assert.Equal(t, types.StatusWarn, lensStatus(50, 80, 50))
	assert.Equal(t, types.StatusFail, lensStatus(49, 80, 50))
}
