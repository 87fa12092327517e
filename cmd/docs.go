package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/assistant"
	"github.com/abhisek/docent/internal/store"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage uploaded documents",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
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

		eng := assistant.New(nil, assistant.StoresFrom(s), assistant.DefaultConfig())

		docs, err := eng.Documents(ctx)
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		if len(docs) == 0 {
			fmt.Println("No documents uploaded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-28s  %-6s  %-7s  %s\n",
			"ID", "Name", "Chunks", "Status", "Uploaded")
		fmt.Println(strings.Repeat("─", 100))
		for _, d := range docs {
			name := d.Filename
			if len(name) > 28 {
				name = name[:28]
			}
			fmt.Printf("%-36s  %-28s  %-6d  %-7s  %s\n",
				d.ID,
				name,
				d.ChunkCount,
				d.Status,
				d.CreatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

var docsShowCmd = &cobra.Command{
	Use:   "show <document-id>",
	Short: "Show a document's summary and preview",
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

		eng := assistant.New(nil, assistant.StoresFrom(s), assistant.DefaultConfig())

		doc, err := eng.Document(ctx, args[0])
		if err != nil {
			return err
		}
		questions, err := eng.ChallengeQuestions(ctx, doc.ID)
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}

		fmt.Printf("ID:        %s\n", doc.ID)
		fmt.Printf("Name:      %s\n", doc.Filename)
		fmt.Printf("Format:    %s\n", doc.Format)
		fmt.Printf("Status:    %s\n", doc.Status)
		fmt.Printf("Chunks:    %d\n", doc.ChunkCount)
		fmt.Printf("Size:      %d bytes\n", doc.FileSize)
		fmt.Printf("Questions: %d\n", len(questions))
		fmt.Printf("Uploaded:  %s\n", doc.CreatedAt.Local().Format("2006-01-02 15:04:05"))

		if doc.Summary != "" {
			fmt.Println()
			fmt.Println("SUMMARY")
			fmt.Println(strings.Repeat("─", 60))
			fmt.Println(doc.Summary)
		}
		if doc.Preview != "" {
			fmt.Println()
			fmt.Println("PREVIEW")
			fmt.Println(strings.Repeat("─", 60))
			fmt.Println(doc.Preview)
		}
		return nil
	},
}

var docsDeleteCmd = &cobra.Command{
	Use:   "delete <document-id>",
	Short: "Delete a document and everything derived from it",
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

		// engineConfig so a vector collection, when one exists, is
		// dropped along with the document.
		eng := assistant.New(nil, assistant.StoresFrom(s), engineConfig(dbPath))

		if err := eng.DeleteDocument(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsShowCmd)
	docsCmd.AddCommand(docsDeleteCmd)
}
