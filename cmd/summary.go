package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/assistant"
	"github.com/abhisek/docent/internal/store"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <document-id>",
	Short: "Regenerate and print a document's summary",
	Args:  cobra.ExactArgs(1),
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

		eng := assistant.New(provider, assistant.StoresFrom(s), assistant.DefaultConfig())

		text, err := eng.Summarize(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}
