package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/types"
)

func TestAnalyzeATSCleanResume(t *testing.T) {
	// Pad the sample past the 200-word floor without touching its structure.
	text := sampleResume + strings.Repeat("collaborated across teams to ship features ", 30)

	result := analyzeATS(text, DefaultVocabulary())

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, types.StatusPass, result.Status)
	require.Len(t, result.Checks, 4)
	for _, check := range result.Checks {
		assert.Equal(t, types.StatusPass, check.Status, check.Label)
	}
	assert.NotEmpty(t, result.Rewrites)
}

func TestAnalyzeATSNonStandardHeaders(t *testing.T) {
	text := "My Journey\nI am a person who likes computers and my story is long."

	result := analyzeATS(text, DefaultVocabulary())

	// -25 bad headers, -20 missing email, -20 too short.
	assert.Equal(t, 35, result.Score)
	assert.Equal(t, types.StatusFail, result.Status)

	headerCheck := findCheck(t, result.Checks, "Standard Section Headers")
	assert.Equal(t, types.StatusFail, headerCheck.Status)
	assert.Contains(t, headerCheck.Detail, "my journey")

	// One rewrite per offending header.
	assert.Len(t, result.Rewrites, 2)
	for _, rw := range result.Rewrites {
		assert.Contains(t, rw.Original, "Section header")
	}
}

func TestAnalyzeATSMissingContact(t *testing.T) {
	var b strings.Builder
	b.WriteString("Experience\nEducation\nSkills\n")
	b.WriteString(strings.Repeat("shipped features across several product areas ", 50))

	result := analyzeATS(b.String(), DefaultVocabulary())

	contact := findCheck(t, result.Checks, "Contact Information")
	assert.Equal(t, types.StatusFail, contact.Status)
	assert.Contains(t, contact.Detail, "No email detected")
	assert.Equal(t, 80, result.Score)
}

func TestAnalyzeATSSpecialCharacters(t *testing.T) {
	text := sampleResume + "\n★★★ ► ◆ ● ✓ decorative ruler │┃\n" +
		strings.Repeat("cloud platform delivery work ", 40)

	result := analyzeATS(text, DefaultVocabulary())

	check := findCheck(t, result.Checks, "Special Characters")
	assert.Equal(t, types.StatusFail, check.Status)
	assert.Equal(t, 85, result.Score)
}

func findCheck(t *testing.T, checks []types.CheckItem, label string) types.CheckItem {
	t.Helper()
	for _, c := range checks {
		if c.Label == label {
			return c
		}
	}
	t.Fatalf("check %q not found", label)
	return types.CheckItem{}
}
