// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yotsuba-lab/profile-cards/internal/gateway"
	"github.com/yotsuba-lab/profile-cards/internal/render"
	"github.com/yotsuba-lab/profile-cards/internal/usecase"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Aggregates a user's repository data and writes the SVG cards",
	Long: `Aggregates follower, star, and per-language byte counts across all of a
user's owned non-fork repositories, and writes the stats card and the
top-languages card as standalone SVG documents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Level:           log.WarnLevel,
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		// Get other flags.
		username, _ := cmd.Flags().GetString("username")
		statsOut, _ := cmd.Flags().GetString("stats-output")
		langsOut, _ := cmd.Flags().GetString("langs-output")

		// A .env file is a local-run convenience; absence is not an error.
		_ = godotenv.Load()
		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			token = os.Getenv("GH_TOKEN")
		}
		if token == "" {
			logger.Warn("no GITHUB_TOKEN or GH_TOKEN set, requests are unauthenticated and rate limited harder")
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		aggregator := usecase.NewAggregator(githubGateway, logger)

		stats, err := aggregator.Aggregate(ctx, username)
		if err != nil {
			return err
		}

		statsSVG := render.StatsCard(username, stats)
		langsSVG := render.TopLanguagesCard(username, stats.Languages)

		if err := writeCard(statsOut, statsSVG); err != nil {
			return err
		}
		if err := writeCard(langsOut, langsSVG); err != nil {
			return err
		}

		fmt.Printf("Wrote %s and %s\n", statsOut, langsOut)
		return nil
	},
}

// writeCard persists a rendered document, creating parent directories as needed.
func writeCard(path, svg string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("username", "u", "", "Target GitHub user name (required)")
	generateCmd.MarkFlagRequired("username")
	generateCmd.Flags().String("stats-output", "assets/github-stats.svg", "Stats card output path")
	generateCmd.Flags().String("langs-output", "assets/top-langs.svg", "Top languages card output path")
}
