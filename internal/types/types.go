package types

// Status is the tri-state outcome attached to checks, lenses, and whole audits.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// CheckItem represents a single named finding inside a lens
type CheckItem struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail"`
}

// RewriteSuggestion pairs a problematic fragment with a suggested replacement
type RewriteSuggestion struct {
	Original string `json:"original"`
	Rewrite  string `json:"rewrite"`
	Reason   string `json:"reason"`
}

// LensResult represents the outcome of one analysis lens
type LensResult struct {
	Score    int                 `json:"score"` // 0-100
	Status   Status              `json:"status"`
	Summary  string              `json:"summary"`
	Checks   []CheckItem         `json:"checks"`
	Rewrites []RewriteSuggestion `json:"rewrites,omitempty"`
}

// Profile carries the candidate context that parameterizes an audit
type Profile struct {
	TargetRole             string   `json:"targetRole"`
	InterestedTechnologies []string `json:"interestedTechnologies,omitempty"`
}

// AuditInput represents the input for auditing a resume
type AuditInput struct {
	Text    string  `json:"text"`
	Profile Profile `json:"profile"`
}

// LensSet holds the five lens results keyed by lens name
type LensSet struct {
	ATS     LensResult `json:"ats"`
	Keyword LensResult `json:"keyword"`
	Impact  LensResult `json:"impact"`
	Metrics LensResult `json:"metrics"`
	Role    LensResult `json:"role"`
}

// AuditResult represents the full output of a resume audit.
// Lenses is nil and OverallScore is zero when IsResume is false.
type AuditResult struct {
	IsResume     bool     `json:"isResume"`
	OverallScore int      `json:"overallScore"`
	Lenses       *LensSet `json:"lenses,omitempty"`
}

// Difficulty selects the grading strictness for interview answers
type Difficulty string

const (
	DifficultyFriendly Difficulty = "Friendly"
	DifficultyStandard Difficulty = "Standard"
	DifficultyStrict   Difficulty = "Strict"
)

// AnswerScore represents the quick verdict on a single live answer
type AnswerScore struct {
	Level    string `json:"level"` // "good", "avg", or "weak"
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// QuestionAnswer pairs an interview question with the candidate's answer
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SessionInput represents a full interview transcript to evaluate
type SessionInput struct {
	Role       string           `json:"role"`
	Difficulty Difficulty       `json:"difficulty"`
	Exchanges  []QuestionAnswer `json:"exchanges"`
}

// QuestionResult represents the per-question breakdown in a session report
type QuestionResult struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	TechScore int    `json:"techScore"`
	CommScore int    `json:"commScore"`
	Overall   int    `json:"overall"`
	WordCount int    `json:"wordCount"`
	Feedback  string `json:"feedback"`
}

// SessionResult represents the aggregated interview report
type SessionResult struct {
	Role       string           `json:"role"`
	Difficulty Difficulty       `json:"difficulty"`
	TechScore  int              `json:"techScore"`
	CommScore  int              `json:"commScore"`
	Overall    int              `json:"overall"`
	Verdict    string           `json:"verdict"` // "Strong Hire", "Hire", or "Needs Practice"
	Strengths  []string         `json:"strengths"`
	Weaknesses []string         `json:"weaknesses"`
	Questions  []QuestionResult `json:"questions"`
}
