package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/assistant"
	"github.com/abhisek/docent/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history <document-id>",
	Short: "Show the question log and scores for a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		eng := assistant.New(nil, assistant.StoresFrom(s), assistant.DefaultConfig())

		entries, err := eng.History(ctx, args[0], limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No questions asked yet.")
			return nil
		}

		fmt.Printf("%-16s  %-9s  %-40s  %-5s  %-4s  %s\n",
			"Time", "Type", "Question", "Conf", "OK", "Ms")
		fmt.Println(strings.Repeat("─", 90))
		for _, e := range entries {
			found := "✓"
			if !e.Found {
				found = "✗"
			}
			fmt.Printf("%-16s  %-9s  %-40s  %4.0f%%  %-4s  %d\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04"),
				e.Type,
				truncate(e.Question, 40),
				e.Confidence*100,
				found,
				e.ResponseTimeMs,
			)
		}

		evals, err := eng.Evaluations(ctx, args[0])
		if err != nil {
			return fmt.Errorf("list evaluations: %w", err)
		}
		if len(evals) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Graded answers")
		fmt.Println(strings.Repeat("─", 90))
		fmt.Printf("%-16s  %-5s  %-7s  %s\n", "Time", "Score", "Correct", "Question")
		for _, ev := range evals {
			fmt.Printf("%-16s  %5d  %-7v  %s\n",
				ev.CreatedAt.Local().Format("2006-01-02 15:04"),
				ev.Score,
				ev.Correct,
				truncate(ev.Question, 50),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show (0 for all)")
}
