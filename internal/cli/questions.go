package cli

import (
	"encoding/json"
	"fmt"

	"resumelens/internal/interview"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List interview questions for a role and difficulty",
	Long: `List the interview question set for a role and difficulty. Transcripts
evaluated with the interview command are expected to use these questions.

Unknown roles fall back to the Frontend Developer set, and unknown
difficulties fall back to Standard.`,
	RunE: runQuestions,
}

var (
	questionsRole       string
	questionsDifficulty string
	questionsJSON       bool
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsRole, "role", "r", "Frontend Developer", "Interview role")
	questionsCmd.Flags().StringVarP(&questionsDifficulty, "difficulty", "d", "Standard", "Difficulty: Friendly, Standard, or Strict")
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Output as JSON")

	_ = questionsCmd.RegisterFlagCompletionFunc("role", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return interview.Roles(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = questionsCmd.RegisterFlagCompletionFunc("difficulty", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		choices := make([]string, 0, 3)
		for _, d := range interview.Difficulties() {
			choices = append(choices, string(d))
		}
		return choices, cobra.ShellCompDirectiveNoFileComp
	})
}

func runQuestions(cmd *cobra.Command, args []string) error {
	questions := interview.Questions(questionsRole, types.Difficulty(questionsDifficulty))

	if questionsJSON {
		payload := struct {
			Role       string   `json:"role"`
			Difficulty string   `json:"difficulty"`
			Questions  []string `json:"questions"`
		}{questionsRole, questionsDifficulty, questions}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s (%s):\n", questionsRole, questionsDifficulty)
	for i, q := range questions {
		fmt.Printf("%d. %s\n", i+1, q)
	}
	return nil
}
