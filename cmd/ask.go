package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/assistant"
	"github.com/abhisek/docent/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask <document-id> <question>",
	Short: "Ask a question grounded in a document",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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

		question := strings.Join(args[1:], " ")
		ans, err := eng.Ask(ctx, args[0], question)
		if err != nil {
			return err
		}

		fmt.Println(ans.Text)
		if len(ans.Citations) > 0 {
			fmt.Printf("\nSources: %s\n", strings.Join(ans.Citations, "; "))
		}
		fmt.Printf("Confidence: %.0f%%\n", ans.Confidence*100)
		return nil
	},
}
