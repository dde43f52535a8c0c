// Package cli provides the command-line interface for the Nasdaq data client.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nasdaq-client/internal/models"
)

// addRegulatoryCommands adds SEC filing commands.
func addRegulatoryCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newFilingsCmd(app))
}

func newFilingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filings <symbol>",
		Short: "Get recent SEC filings",
		Long: `Fetch recent SEC filings with direct links to the documents on
sec.gov.`,
		Example: `  nasdaq filings AAPL
  nasdaq filings TSLA --type 10-K`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			filingType, _ := cmd.Flags().GetString("type")

			filings := app.Client.FetchSECFilings(ctx, symbol, strings.ToUpper(filingType))

			if output.IsJSON() {
				return output.JSON(filings)
			}
			return displayFilings(output, symbol, filings)
		},
	}

	cmd.Flags().String("type", "ALL", "form type filter (ALL, 10-K, 10-Q, 8-K, ...)")

	return cmd
}

func displayFilings(output *Output, symbol string, filings []models.SECFiling) error {
	color.Cyan("📄 SEC Filings - %s", symbol)
	output.Println()

	if len(filings) == 0 {
		output.Dim("  No filings available")
		return nil
	}

	for _, filing := range filings {
		output.Printf("%s  %s  %s\n",
			PadRight(filing.Filed, 12),
			output.BoldText(PadRight(filing.FormType, 10)),
			TruncateString(filing.CompanyName, 40),
		)
		if filing.Period != "" {
			output.Printf("%s  %s\n", strings.Repeat(" ", 12), output.DimText("Period: "+filing.Period))
		}
		output.Printf("%s  %s\n", strings.Repeat(" ", 12), output.DimText(filing.URL))
		output.Println()
	}
	output.Dim("  %d filings", len(filings))
	return nil
}
