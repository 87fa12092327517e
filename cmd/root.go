package cmd

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "docent",
	Short: "AI study assistant for your documents",
	Long: "Docent ingests text, markdown, PDF and DOCX files, answers questions\n" +
		"grounded in their content, quizzes you on them and grades your answers.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		level := zerolog.WarnLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DOCENT_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int("llm-retries", 0, "Retry failed LLM calls up to this many times with backoff")

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DOCENT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
