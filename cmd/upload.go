package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/assistant"
	"github.com/abhisek/docent/internal/challenge"
	"github.com/abhisek/docent/internal/store"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Ingest a document (txt, md, pdf, docx)",
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

		// The upload works without an LLM; only the summary needs one.
		provider, err := newLLMProvider(cmd, s)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The document will be stored without a summary.")
		}

		eng := assistant.New(provider, assistant.StoresFrom(s), engineConfig(dbPath))

		doc, err := eng.Ingest(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Uploaded %s\n", doc.Filename)
		fmt.Printf("  ID:      %s\n", doc.ID)
		fmt.Printf("  Format:  %s\n", doc.Format)
		fmt.Printf("  Status:  %s\n", doc.Status)
		fmt.Printf("  Chunks:  %d\n", doc.ChunkCount)

		if doc.Summary != "" {
			fmt.Printf("\n%s\n", doc.Summary)
		}
		if doc.ChunkCount < challenge.DefaultConfig().MinChunks {
			fmt.Println("\nNote: this document is too short for challenge questions.")
		}
		return nil
	},
}
