// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is the release identifier, overridden at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "profile-cards",
	Short: "A CLI tool to generate GitHub profile SVG cards.",
	Long: `profile-cards aggregates a GitHub user's public, non-fork repository
metadata and renders two SVG summary cards: account statistics
(followers, repos, stars, account age) and a top-languages breakdown.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). Any failure is reported as a single
// diagnostic line with a non-zero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
