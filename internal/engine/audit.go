package engine

import (
	"math"
	"strings"
	"sync"

	"resumelens/internal/types"
)

// Auditor runs the five-lens resume analysis. It is safe for concurrent use;
// each audit snapshots the vocabulary once, so a hot reload mid-audit never
// mixes tables within a single run.
type Auditor struct {
	mu    sync.RWMutex
	vocab *Vocabulary
}

// NewAuditor creates an auditor over the given vocabulary. A nil vocabulary
// selects the built-in defaults.
func NewAuditor(vocab *Vocabulary) *Auditor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Auditor{vocab: vocab}
}

// SetVocabulary swaps the vocabulary used by subsequent audits.
func (a *Auditor) SetVocabulary(vocab *Vocabulary) {
	if vocab == nil {
		return
	}
	a.mu.Lock()
	a.vocab = vocab
	a.mu.Unlock()
}

func (a *Auditor) vocabulary() *Vocabulary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.vocab
}

// Audit gates the text through the resume classifier and, when it passes,
// runs all five lenses. Lenses are independent: none reads another's output.
// The overall score is the rounded mean of the five lens scores.
func (a *Auditor) Audit(input types.AuditInput) types.AuditResult {
	vocab := a.vocabulary()

	if !isResume(input.Text, vocab) {
		return types.AuditResult{IsResume: false}
	}

	lenses := &types.LensSet{
		ATS:     analyzeATS(input.Text, vocab),
		Keyword: analyzeKeywords(input.Text, input.Profile, vocab),
		Impact:  analyzeImpact(input.Text, vocab),
		Metrics: analyzeMetrics(input.Text),
		Role:    analyzeRoleAlignment(input.Text, input.Profile, vocab),
	}

	sum := lenses.ATS.Score + lenses.Keyword.Score + lenses.Impact.Score +
		lenses.Metrics.Score + lenses.Role.Score

	return types.AuditResult{
		IsResume:     true,
		OverallScore: int(math.Round(float64(sum) / 5)),
		Lenses:       lenses,
	}
}

// IsResume reports whether the text looks like a resume under the auditor's
// current vocabulary.
func (a *Auditor) IsResume(text string) bool {
	return isResume(text, a.vocabulary())
}

// KnownRole reports whether the role maps to a curated keyword table rather
// than the generic default set.
func (a *Auditor) KnownRole(role string) bool {
	return a.vocabulary().resolveRole(strings.ToLower(role)) != "default"
}

// isResume checks for at least two distinct resume-signal terms.
func isResume(text string, vocab *Vocabulary) bool {
	lower := strings.ToLower(text)
	count := 0
	for _, signal := range vocab.ResumeSignals {
		if strings.Contains(lower, signal) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// effectiveRole lowercases the profile's target role, falling back to the
// default role when the profile carries none.
func effectiveRole(profile types.Profile) string {
	role := profile.TargetRole
	if role == "" {
		role = DefaultRole
	}
	return strings.ToLower(role)
}

// lensStatus maps a score onto pass/warn/fail given per-lens thresholds.
func lensStatus(score, passAt, warnAt int) types.Status {
	switch {
	case score >= passAt:
		return types.StatusPass
	case score >= warnAt:
		return types.StatusWarn
	default:
		return types.StatusFail
	}
}
