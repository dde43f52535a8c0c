// Package cli provides the command-line interface for the Nasdaq data client.
package cli

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nasdaq-client/internal/models"
)

// addOwnershipCommands adds insider and institutional ownership commands.
func addOwnershipCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newInsiderCmd(app))
	rootCmd.AddCommand(newInstitutionalCmd(app))
	rootCmd.AddCommand(newShortInterestCmd(app))
}

func newInsiderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insider <symbol>",
		Short: "Get insider trading activity",
		Long: `Fetch insider trading activity: trade counts, share totals, and the
individual transaction table.`,
		Example: `  nasdaq insider AAPL
  nasdaq insider NVDA --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			activity := app.Client.FetchInsiderActivity(ctx, symbol)

			if output.IsJSON() {
				return output.JSON(activity)
			}
			return displayInsiderActivity(output, symbol, activity)
		},
	}
}

func displayInsiderActivity(output *Output, symbol string, activity models.InsiderActivity) error {
	color.Cyan("👥 Insider Activity - %s", symbol)
	output.Println()

	if activity.Empty() {
		output.Dim("  No insider activity available")
		return nil
	}

	if len(activity.NumberOfTrades) > 0 {
		output.Bold("  Number of Trades")
		summaryTable(output, activity.NumberOfTrades).Render()
		output.Println()
	}

	if len(activity.NumberOfSharesTraded) > 0 {
		output.Bold("  Shares Traded")
		summaryTable(output, activity.NumberOfSharesTraded).Render()
		output.Println()
	}

	if len(activity.Transactions) > 0 {
		output.Bold("  Recent Transactions")
		table := NewTable(output, "Insider", "Relation", "Date", "Type", "Shares", "Price", "Held")
		for _, tx := range activity.Transactions {
			table.AddRow(
				TruncateString(tx.Insider, 24),
				TruncateString(tx.Relation, 18),
				dateOrDash(tx.LastDate),
				stringOrDash(tx.TransactionType),
				quantityOrDash(tx.SharesTraded),
				priceOrDash(tx.LastPrice),
				quantityOrDash(tx.SharesHeld),
			)
		}
		table.Render()
	}
	return nil
}

func summaryTable(output *Output, rows []models.InsiderSummaryRow) *Table {
	table := NewTable(output, "Metric", "3 Months", "12 Months")
	for _, row := range rows {
		table.AddRow(
			row.Metric,
			quantityOrDash(row.Months3),
			quantityOrDash(row.Months12),
		)
	}
	return table
}

func newInstitutionalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "institutional <symbol>",
		Short: "Get institutional holdings",
		Long: `Fetch institutional ownership: the ownership summary, position
counts, and the largest holders with their recent changes.`,
		Example: `  nasdaq institutional AAPL
  nasdaq institutional MSFT --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			summary := app.Client.FetchInstitutionalHoldings(ctx, symbol)

			if output.IsJSON() {
				return output.JSON(summary)
			}
			return displayInstitutional(output, symbol, summary)
		},
	}
}

func displayInstitutional(output *Output, symbol string, summary models.InstitutionalSummary) error {
	color.Cyan("🏦 Institutional Holdings - %s", symbol)
	output.Println()

	if len(summary.OwnershipSummary) > 0 {
		keys := make([]string, 0, len(summary.OwnershipSummary))
		for key := range summary.OwnershipSummary {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			entry := summary.OwnershipSummary[key]
			output.Printf("  %s %s\n", PadRight(entry.Label+":", 34), output.BoldText(entry.Value))
		}
		output.Println()
	}

	if len(summary.ActivePositions) > 0 {
		output.Bold("  Active Positions")
		positionTable(output, summary.ActivePositions).Render()
		output.Println()
	}

	if len(summary.NewSoldOutPositions) > 0 {
		output.Bold("  New and Sold Out Positions")
		positionTable(output, summary.NewSoldOutPositions).Render()
		output.Println()
	}

	if len(summary.HoldingsTransactions) > 0 {
		output.Bold("  Largest Holders")
		table := NewTable(output, "Owner", "Date", "Shares Held", "Change", "Change %", "Value")
		for _, holding := range summary.HoldingsTransactions {
			table.AddRow(
				TruncateString(holding.OwnerName, 32),
				dateOrDash(holding.Date),
				quantityOrDash(holding.SharesHeld),
				quantityOrDash(holding.SharesChange),
				percentOrDash(holding.SharesChangePct),
				compactOrDash(holding.MarketValue),
			)
		}
		table.Render()
	}

	if len(summary.OwnershipSummary) == 0 && len(summary.ActivePositions) == 0 &&
		len(summary.NewSoldOutPositions) == 0 && len(summary.HoldingsTransactions) == 0 {
		output.Dim("  No institutional data available")
	}
	return nil
}

func positionTable(output *Output, rows []models.PositionSummaryRow) *Table {
	table := NewTable(output, "Positions", "Holders", "Shares")
	for _, row := range rows {
		table.AddRow(
			row.Positions,
			quantityOrDash(row.Holders),
			quantityOrDash(row.Shares),
		)
	}
	return table
}

func newShortInterestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "short_interest <symbol>",
		Aliases: []string{"short-interest"},
		Short:   "Get recent short interest",
		Long: `Fetch the most recent short interest settlements: total shares short,
average daily volume, and days to cover.`,
		Example: `  nasdaq short_interest GME
  nasdaq short-interest AMC --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			records := app.Client.FetchShortInterest(ctx, symbol)

			if output.IsJSON() {
				return output.JSON(records)
			}
			return displayShortInterest(output, symbol, records)
		},
	}
}

func displayShortInterest(output *Output, symbol string, records []models.ShortInterestRecord) error {
	color.Cyan("🩳 Short Interest - %s", symbol)
	output.Println()

	if len(records) == 0 {
		output.Dim("  No short interest data available")
		return nil
	}

	table := NewTable(output, "Settlement", "Shares Short", "Avg Daily Volume", "Days to Cover")
	for _, record := range records {
		daysToCover := "-"
		if record.DaysToCover != nil {
			daysToCover = FormatPrice(*record.DaysToCover)
		}
		table.AddRow(
			dateOrDash(record.SettlementDate),
			quantityOrDash(record.Interest),
			quantityOrDash(record.AvgDailyShareVolume),
			daysToCover,
		)
	}
	table.Render()
	return nil
}
