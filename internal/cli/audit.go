package cli

import (
	"context"
	"fmt"
	"strings"

	"resumelens/internal/common"
	"resumelens/internal/config"
	"resumelens/internal/engine"
	"resumelens/internal/errors"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit [resume-file]",
	Short: "Audit a resume through the five analysis lenses",
	Long: `Audit a resume text file through five independent lenses: ATS readiness,
keyword match, impact language, quantified results, and role alignment.
Each lens reports a 0-100 score, named checks, and rewrite suggestions.

The target role parameterizes the keyword and role-alignment lenses. Use
--tech to add technologies you want matched beyond the role's built-in
keyword list.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if auditConfig.OutputFormat == "" {
			auditConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(auditConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAudit,
}

var auditConfig common.CommandConfig

var (
	auditRole string
	auditTech []string
)

func init() {
	auditCmd.Flags().StringVarP(&auditConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	auditCmd.Flags().StringVar(&auditConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	auditCmd.Flags().StringVarP(&auditRole, "role", "r", "", "Target role (default from config)")
	auditCmd.Flags().StringSliceVarP(&auditTech, "tech", "t", nil, "Technologies to match (repeatable or comma-separated)")

	// Add completion for format flag
	_ = auditCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	auditor, err := newAuditorFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	role := auditRole
	if role == "" {
		role = cfg.Engine.DefaultRole
	}
	if !auditor.KnownRole(role) {
		logger.Warn("No curated keyword table for role, scoring against the generic set",
			"role", role, "code", errors.ErrCodeUnknownRole)
	}

	createInput := func(contents []string) (types.AuditInput, error) {
		if len(contents) != 1 {
			return types.AuditInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		if len(strings.TrimSpace(contents[0])) < cfg.Engine.MinTextLength {
			return types.AuditInput{}, errors.NewValidationError(
				errors.ErrCodeTextTooShort,
				fmt.Sprintf("resume text must be at least %d characters", cfg.Engine.MinTextLength),
				nil,
			).WithContext("file", args[0])
		}
		return types.AuditInput{
			Text: contents[0],
			Profile: types.Profile{
				TargetRole:             role,
				InterestedTechnologies: auditTech,
			},
		}, nil
	}

	logDetails := func(input types.AuditInput, cfg common.CommandConfig) {
		logger.Info("Starting resume audit",
			"resume_chars", len(input.Text),
			"target_role", input.Profile.TargetRole,
			"tech_count", len(input.Profile.InterestedTechnologies),
			"output_format", cfg.OutputFormat)
	}

	auditOperation := func(ctx context.Context, input types.AuditInput) (types.AuditResult, error) {
		result := auditor.Audit(input)
		if !result.IsResume {
			logger.LogError(errors.NewEngineError(errors.ErrCodeNotAResume,
				"document does not look like a resume", nil).WithContext("file", args[0]),
				"Audit rejected document")
		}
		return result, nil
	}

	err = common.RunEngineCommand(
		cmd.Context(),
		logger,
		auditConfig,
		args,
		createInput,
		auditOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to audit resume: %w", err)
	}
	logger.Info("Resume audit completed successfully")
	return nil
}

// newAuditorFromConfig builds an auditor, layering the configured vocabulary
// overlay over the built-in tables when one is set.
func newAuditorFromConfig(cfg *config.Config, logger *errors.Logger) (*engine.Auditor, error) {
	if cfg.Engine.VocabFile == "" {
		return engine.NewAuditor(nil), nil
	}
	vocab, err := engine.LoadVocabulary(cfg.Engine.VocabFile)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded vocabulary overlay", "file", cfg.Engine.VocabFile)
	return engine.NewAuditor(vocab), nil
}
