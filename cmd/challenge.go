package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/assistant"
	"github.com/abhisek/docent/internal/challenge"
	"github.com/abhisek/docent/internal/store"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge <document-id>",
	Short: "Generate multiple-choice questions from a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

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

		questions, err := eng.Challenge(ctx, args[0], difficulty, count)
		var insufficient *challenge.InsufficientContentError
		if errors.As(err, &insufficient) {
			fmt.Printf("Only %d of %d questions could be generated: %s\n\n",
				insufficient.Generated, insufficient.Requested, insufficient.Reason)
		} else if err != nil {
			return err
		}

		for i, q := range questions {
			fmt.Printf("%d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'A'+j, opt)
			}
			fmt.Printf("   ID: %s\n\n", q.ID)
		}
		if len(questions) > 0 {
			fmt.Println(`Answer with: docent evaluate <question-id> "<your answer>"`)
		}
		return nil
	},
}

func init() {
	challengeCmd.Flags().StringP("difficulty", "d", "medium", "Question difficulty: easy, medium or hard")
	challengeCmd.Flags().IntP("count", "n", 3, "Number of questions to generate (1-10)")
}
