package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"resumelens/internal/common"
	"resumelens/internal/errors"
	"resumelens/internal/interview"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview [transcript-file]",
	Short: "Evaluate a mock interview transcript",
	Long: `Evaluate a mock interview transcript and produce a hiring report with
technical and communication scores, a verdict, and per-question feedback.

The transcript is a JSON file with the shape:

  {
    "role": "Frontend Developer",
    "difficulty": "Standard",
    "exchanges": [
      {"question": "...", "answer": "..."}
    ]
  }

With --answer, no transcript is needed: the single answer is scored on the
spot with coaching feedback, the way a live session grades each response.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if interviewConfig.OutputFormat == "" {
			interviewConfig.OutputFormat = cfg.App.DefaultFormat
		}
		if interviewAnswer == "" && len(args) != 1 {
			return fmt.Errorf("requires a transcript file unless --answer is set")
		}
		return common.ValidateOutputFormat(interviewConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runInterview,
}

var interviewConfig common.CommandConfig

var (
	interviewAnswer     string
	interviewDifficulty string
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	interviewCmd.Flags().StringVar(&interviewConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	interviewCmd.Flags().StringVarP(&interviewAnswer, "answer", "a", "", "Score a single answer instead of a transcript")
	interviewCmd.Flags().StringVarP(&interviewDifficulty, "difficulty", "d", "Standard", "Difficulty for --answer: Friendly, Standard, or Strict")

	_ = interviewCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = interviewCmd.RegisterFlagCompletionFunc("difficulty", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		choices := make([]string, 0, 3)
		for _, d := range interview.Difficulties() {
			choices = append(choices, string(d))
		}
		return choices, cobra.ShellCompDirectiveNoFileComp
	})
}

func runInterview(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	if interviewAnswer != "" {
		return runSingleAnswer(cmd, logger)
	}

	createInput := func(contents []string) (types.SessionInput, error) {
		if len(contents) != 1 {
			return types.SessionInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		var input types.SessionInput
		if err := json.Unmarshal([]byte(contents[0]), &input); err != nil {
			return types.SessionInput{}, errors.NewValidationError(
				errors.ErrCodeInvalidFormat,
				"transcript file is not valid JSON",
				err,
			).WithContext("file", args[0])
		}
		if len(input.Exchanges) == 0 {
			return types.SessionInput{}, errors.NewValidationError(
				errors.ErrCodeInvalidRequest,
				"transcript has no question/answer exchanges",
				nil,
			).WithContext("file", args[0])
		}
		return input, nil
	}

	logDetails := func(input types.SessionInput, cfg common.CommandConfig) {
		logger.Info("Starting interview evaluation",
			"role", input.Role,
			"difficulty", input.Difficulty,
			"exchanges", len(input.Exchanges),
			"output_format", cfg.OutputFormat)
	}

	evaluateOperation := func(ctx context.Context, input types.SessionInput) (types.SessionResult, error) {
		return interview.EvaluateSession(input), nil
	}

	err := common.RunEngineCommand(
		cmd.Context(),
		logger,
		interviewConfig,
		args,
		createInput,
		evaluateOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to evaluate interview: %w", err)
	}
	logger.Info("Interview evaluation completed successfully")
	return nil
}

func runSingleAnswer(cmd *cobra.Command, logger *errors.Logger) error {
	difficulty := types.Difficulty(interviewDifficulty)
	coach := interview.NewCoach(nil)

	logger.Info("Scoring single answer",
		"difficulty", difficulty,
		"answer_chars", len(interviewAnswer))

	result := coach.Score(interviewAnswer, difficulty)

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(result, interviewConfig)
}
