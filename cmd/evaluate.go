package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/assistant"
	"github.com/abhisek/docent/internal/evaluate"
	"github.com/abhisek/docent/internal/store"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <question-id> <answer>",
	Short: "Grade an answer to a challenge question",
	Long: `Grade an answer against a stored challenge question:

  docent evaluate <question-id> "<your answer>"

Or grade a free-form answer against the document itself, deriving the
reference answer from its content:

  docent evaluate --doc <document-id> "<question>" "<your answer>"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		documentID, _ := cmd.Flags().GetString("doc")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		provider, err := newLLMProvider(cmd, s)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		eng := assistant.New(provider, assistant.StoresFrom(s), engineConfig(dbPath))

		var ev *evaluate.Evaluation
		if documentID != "" {
			if len(args) != 2 {
				return fmt.Errorf("free-form grading takes exactly a question and an answer")
			}
			ev, err = eng.EvaluateFree(ctx, documentID, args[0], args[1])
		} else {
			ev, err = eng.EvaluateChallenge(ctx, args[0], strings.Join(args[1:], " "))
		}
		if err != nil {
			return err
		}

		fmt.Printf("Score: %d/100\n", ev.Score)
		if ev.Correct {
			fmt.Println("Correct!")
		}
		fmt.Println(ev.Feedback)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringP("doc", "D", "", "Grade against this document instead of a stored question")
}
