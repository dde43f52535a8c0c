// Package cli provides the command-line interface for the Nasdaq data client.
package cli

import (
	"github.com/spf13/cobra"

	"nasdaq-client/internal/config"
)

// addHelpCommands adds help and documentation commands.
func addHelpCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newExamplesCmd(app))
	rootCmd.AddCommand(newQuickstartCmd(app))
}

func newExamplesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show common workflows",
		Long:  "Display examples of common command workflows.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			output.Bold("Common Workflows")
			output.Println()

			workflows := []struct {
				name     string
				commands []string
			}{
				{
					name: "Research a company",
					commands: []string{
						"nasdaq profile AAPL",
						"nasdaq overview AAPL",
						"nasdaq revenue AAPL",
						"nasdaq ratios AAPL",
					},
				},
				{
					name: "Track price history",
					commands: []string{
						"nasdaq historical AAPL --period 90",
						"nasdaq historical SPY --asset etf --period 365",
						"nasdaq dividends AAPL",
					},
				},
				{
					name: "Watch ownership changes",
					commands: []string{
						"nasdaq insider AAPL",
						"nasdaq institutional AAPL",
						"nasdaq short_interest GME",
					},
				},
				{
					name: "Follow the market",
					commands: []string{
						"nasdaq earnings --days-ahead 14",
						"nasdaq screener --json > screener.json",
						"nasdaq news AAPL",
						"nasdaq press AAPL",
					},
				},
				{
					name: "Feed a pipeline",
					commands: []string{
						"nasdaq revenue AAPL --json | jq '.[].revenue'",
						"nasdaq filings AAPL --type 10-K --json",
						"nasdaq historical NVDA --json > nvda.json",
					},
				},
			}

			for _, workflow := range workflows {
				output.Info("%s", workflow.name)
				for _, command := range workflow.commands {
					output.Printf("  %s\n", command)
				}
				output.Println()
			}

			return nil
		},
	}
}

func newQuickstartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Getting started guide",
		Long:  "Display a short guide for first-time setup.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			output.Bold("Getting Started")
			output.Println()

			output.Info("1. Check your configuration")
			output.Printf("   nasdaq config show\n")
			output.Printf("   A template is written to %s on first run.\n", config.DefaultConfigDir())
			output.Println()

			output.Info("2. Warm up the cookie session")
			output.Printf("   nasdaq session refresh\n")
			output.Printf("   Chrome must be installed; the harvest runs headless.\n")
			output.Println()

			output.Info("3. Fetch some data")
			output.Printf("   nasdaq profile AAPL\n")
			output.Printf("   nasdaq screener\n")
			output.Println()

			output.Dim("Failed fetches print empty results; run with --debug to see why.")
			return nil
		},
	}
}
