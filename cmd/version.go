package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("docent", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker()
		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if result.UpdateAvailable {
			fmt.Printf("Update available: %s (run: docent update)\n", result.LatestVersion)
		} else {
			fmt.Println("Up to date.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
