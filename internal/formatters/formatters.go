package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AuditResult", &AuditTextFormatter{})
	registry.RegisterFormatter("markdown", "AuditResult", &AuditMarkdownFormatter{})
	registry.RegisterFormatter("text", "SessionResult", &SessionTextFormatter{})
	registry.RegisterFormatter("markdown", "SessionResult", &SessionMarkdownFormatter{})
	registry.RegisterFormatter("text", "AnswerScore", &AnswerTextFormatter{})
	registry.RegisterFormatter("markdown", "AnswerScore", &AnswerMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AuditResult:
		return "AuditResult"
	case types.SessionResult:
		return "SessionResult"
	case types.AnswerScore:
		return "AnswerScore"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// lensOrder fixes the display order of the five lenses.
var lensOrder = []struct {
	Key   string
	Title string
}{
	{"ats", "ATS Readiness"},
	{"keyword", "Keyword Match"},
	{"impact", "Impact Language"},
	{"metrics", "Quantified Results"},
	{"role", "Role Alignment"},
}

func lensByKey(set *types.LensSet, key string) types.LensResult {
	switch key {
	case "ats":
		return set.ATS
	case "keyword":
		return set.Keyword
	case "impact":
		return set.Impact
	case "metrics":
		return set.Metrics
	case "role":
		return set.Role
	}
	return types.LensResult{}
}

// AuditTextFormatter handles text formatting for audit results
type AuditTextFormatter struct{}

func (atf *AuditTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AuditResult)
	if !ok {
		return "", fmt.Errorf("expected AuditResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME AUDIT ===\n\n")
	if !result.IsResume {
		output.WriteString("This document does not look like a resume.\n")
		output.WriteString("Paste the full resume text and try again.\n")
		return output.String(), nil
	}

	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n\n", result.OverallScore))

	for _, lens := range lensOrder {
		lr := lensByKey(result.Lenses, lens.Key)
		output.WriteString(fmt.Sprintf("=== %s ===\n", strings.ToUpper(lens.Title)))
		output.WriteString(fmt.Sprintf("Score: %d/100 [%s]\n", lr.Score, strings.ToUpper(string(lr.Status))))
		output.WriteString(lr.Summary)
		output.WriteString("\n\n")

		for _, check := range lr.Checks {
			output.WriteString(fmt.Sprintf("  [%s] %s\n", strings.ToUpper(string(check.Status)), check.Label))
			output.WriteString(fmt.Sprintf("        %s\n", check.Detail))
		}
		output.WriteString("\n")

		if len(lr.Rewrites) > 0 {
			output.WriteString("  Suggested Rewrites:\n")
			for i, rewrite := range lr.Rewrites {
				output.WriteString(fmt.Sprintf("  %d. Original: %s\n", i+1, rewrite.Original))
				output.WriteString(fmt.Sprintf("     Rewrite:  %s\n", rewrite.Rewrite))
				output.WriteString(fmt.Sprintf("     Reason:   %s\n", rewrite.Reason))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (atf *AuditTextFormatter) SupportedType() string {
	return "AuditResult"
}

// AuditMarkdownFormatter handles markdown formatting for audit results
type AuditMarkdownFormatter struct{}

func (amf *AuditMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AuditResult)
	if !ok {
		return "", fmt.Errorf("expected AuditResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Audit\n\n")
	if !result.IsResume {
		output.WriteString("This document does not look like a resume. ")
		output.WriteString("Paste the full resume text and try again.\n")
		return output.String(), nil
	}

	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", result.OverallScore))

	for _, lens := range lensOrder {
		lr := lensByKey(result.Lenses, lens.Key)
		output.WriteString(fmt.Sprintf("## %s\n\n", lens.Title))
		output.WriteString(fmt.Sprintf("**Score:** %d/100 (%s)\n\n", lr.Score, lr.Status))
		output.WriteString(lr.Summary)
		output.WriteString("\n\n")

		output.WriteString("| Check | Status | Detail |\n")
		output.WriteString("|-------|--------|--------|\n")
		for _, check := range lr.Checks {
			output.WriteString(fmt.Sprintf("| %s | %s | %s |\n", check.Label, check.Status, check.Detail))
		}
		output.WriteString("\n")

		if len(lr.Rewrites) > 0 {
			output.WriteString("### Suggested Rewrites\n\n")
			for _, rewrite := range lr.Rewrites {
				output.WriteString(fmt.Sprintf("- **Original:** %s\n", rewrite.Original))
				output.WriteString(fmt.Sprintf("  **Rewrite:** %s\n", rewrite.Rewrite))
				output.WriteString(fmt.Sprintf("  **Reason:** %s\n", rewrite.Reason))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (amf *AuditMarkdownFormatter) SupportedType() string {
	return "AuditResult"
}

// SessionTextFormatter handles text formatting for interview session reports
type SessionTextFormatter struct{}

func (stf *SessionTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SessionResult)
	if !ok {
		return "", fmt.Errorf("expected SessionResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== INTERVIEW REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Role: %s\n", result.Role))
	output.WriteString(fmt.Sprintf("Difficulty: %s\n\n", result.Difficulty))
	output.WriteString(fmt.Sprintf("Technical Score: %d/100\n", result.TechScore))
	output.WriteString(fmt.Sprintf("Communication Score: %d/100\n", result.CommScore))
	output.WriteString(fmt.Sprintf("Overall: %d/100\n", result.Overall))
	output.WriteString(fmt.Sprintf("Verdict: %s\n\n", result.Verdict))

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Weaknesses) > 0 {
		output.WriteString("Areas to Improve:\n")
		for _, weakness := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", weakness))
		}
		output.WriteString("\n")
	}

	if len(result.Questions) > 0 {
		output.WriteString("=== QUESTION BREAKDOWN ===\n\n")
		for i, q := range result.Questions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Question))
			output.WriteString(fmt.Sprintf("   Tech: %d  Comm: %d  Overall: %d  Words: %d\n",
				q.TechScore, q.CommScore, q.Overall, q.WordCount))
			output.WriteString(fmt.Sprintf("   %s\n\n", q.Feedback))
		}
	}

	return output.String(), nil
}

func (stf *SessionTextFormatter) SupportedType() string {
	return "SessionResult"
}

// SessionMarkdownFormatter handles markdown formatting for interview session reports
type SessionMarkdownFormatter struct{}

func (smf *SessionMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SessionResult)
	if !ok {
		return "", fmt.Errorf("expected SessionResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Interview Report\n\n")
	output.WriteString(fmt.Sprintf("**Role:** %s  \n", result.Role))
	output.WriteString(fmt.Sprintf("**Difficulty:** %s\n\n", result.Difficulty))
	output.WriteString(fmt.Sprintf("**Technical Score:** %d/100  \n", result.TechScore))
	output.WriteString(fmt.Sprintf("**Communication Score:** %d/100  \n", result.CommScore))
	output.WriteString(fmt.Sprintf("**Overall:** %d/100  \n", result.Overall))
	output.WriteString(fmt.Sprintf("**Verdict:** %s\n\n", result.Verdict))

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Weaknesses) > 0 {
		output.WriteString("## Areas to Improve\n\n")
		for _, weakness := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", weakness))
		}
		output.WriteString("\n")
	}

	if len(result.Questions) > 0 {
		output.WriteString("## Question Breakdown\n\n")
		for i, q := range result.Questions {
			output.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, q.Question))
			output.WriteString(fmt.Sprintf("**Tech:** %d · **Comm:** %d · **Overall:** %d · **Words:** %d\n\n",
				q.TechScore, q.CommScore, q.Overall, q.WordCount))
			output.WriteString(q.Feedback)
			output.WriteString("\n\n")
		}
	}

	return output.String(), nil
}

func (smf *SessionMarkdownFormatter) SupportedType() string {
	return "SessionResult"
}

// AnswerTextFormatter handles text formatting for single answer scores
type AnswerTextFormatter struct{}

func (atf *AnswerTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnswerScore)
	if !ok {
		return "", fmt.Errorf("expected AnswerScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ANSWER SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n", result.Score))
	output.WriteString(fmt.Sprintf("Level: %s\n\n", result.Level))
	output.WriteString(result.Feedback)
	output.WriteString("\n")

	return output.String(), nil
}

func (atf *AnswerTextFormatter) SupportedType() string {
	return "AnswerScore"
}

// AnswerMarkdownFormatter handles markdown formatting for single answer scores
type AnswerMarkdownFormatter struct{}

func (amf *AnswerMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnswerScore)
	if !ok {
		return "", fmt.Errorf("expected AnswerScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Answer Score\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100  \n", result.Score))
	output.WriteString(fmt.Sprintf("**Level:** %s\n\n", result.Level))
	output.WriteString(result.Feedback)
	output.WriteString("\n")

	return output.String(), nil
}

func (amf *AnswerMarkdownFormatter) SupportedType() string {
	return "AnswerScore"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
