package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerAll(t *testing.T) {
	original := []string{"React", "SQL", "aws"}
	lowered := lowerAll(original)

	assert.Equal(t, []string{"react", "sql", "aws"}, lowered)
	assert.Equal(t, []string{"React", "SQL", "aws"}, original, "input must not be mutated")
}

func TestFilterContained(t *testing.T) {
	text := "built a react frontend over a sql backend"

	assert.Equal(t, []string{"react", "sql"}, filterContained(text, []string{"react", "vue", "sql"}))
	assert.Empty(t, filterContained(text, []string{"elixir"}))
}

func TestFilterMissing(t *testing.T) {
	text := "built a react frontend"

	assert.Equal(t, []string{"vue", "sql"}, filterMissing(text, []string{"react", "vue", "sql"}))
	assert.Empty(t, filterMissing(text, []string{"react"}))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("docker and kubernetes", []string{"vue", "docker"}))
	assert.False(t, containsAny("docker and kubernetes", []string{"vue", "angular"}))
	assert.False(t, containsAny("anything", nil))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, wordCount(""))
	assert.Equal(t, 0, wordCount("   \n\t "))
	assert.Equal(t, 3, wordCount("one  two\nthree"))
}

func TestRoundPct(t *testing.T) {
	assert.Equal(t, 0, roundPct(5, 0), "zero denominator guards to zero")
	assert.Equal(t, 50, roundPct(1, 2))
	assert.Equal(t, 33, roundPct(1, 3))
	assert.Equal(t, 67, roundPct(2, 3))
	assert.Equal(t, 100, roundPct(3, 3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10, clamp(-5, 10, 100))
	assert.Equal(t, 100, clamp(150, 10, 100))
	assert.Equal(t, 42, clamp(42, 10, 100))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcd", 2))
	// Rune-aware, not byte-aware.
	assert.Equal(t, "héll", truncate("héllo", 4))
}

func TestHeadList(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	assert.Equal(t, "a, b, c, d", headList(items, 4, " + more"))
	assert.Equal(t, "a, b + 2 more", headList(items, 2, " + 2 more"))
	assert.Equal(t, "", headList(nil, 3, ""))
}
