// Package cli provides the command-line interface for the Nasdaq data client.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nasdaq-client/internal/models"
	"nasdaq-client/pkg/utils"
)

// screenerDisplayLimit caps the rows printed in text mode. The full
// result set is available with --json.
const screenerDisplayLimit = 50

// addMarketCommands adds market-wide data commands.
func addMarketCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newEarningsCmd(app))
	rootCmd.AddCommand(newScreenerCmd(app))
	rootCmd.AddCommand(newNewsCmd(app))
	rootCmd.AddCommand(newPressCmd(app))
}

func newEarningsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "earnings",
		Short: "Get the upcoming earnings calendar",
		Long: `Fetch the earnings calendar for the coming days.

Each calendar day is fetched separately; days the endpoint rejects are
skipped rather than failing the whole calendar.`,
		Example: `  nasdaq earnings
  nasdaq earnings --days-ahead 14`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
			defer cancel()

			daysAhead, _ := cmd.Flags().GetInt("days-ahead")
			if daysAhead <= 0 {
				daysAhead = app.Config.Fetch.EarningsDaysAhead
			}

			events := app.Client.FetchEarningsCalendar(ctx, daysAhead)

			if output.IsJSON() {
				return output.JSON(events)
			}
			return displayEarnings(output, daysAhead, events)
		},
	}

	cmd.Flags().IntP("days-ahead", "d", 0, "calendar days to fetch (default from config)")

	return cmd
}

func displayEarnings(output *Output, daysAhead int, events []models.EarningsCalendarEvent) error {
	color.Cyan("📅 Earnings Calendar - next %d days", daysAhead)
	output.Printf("  Market: %s\n", output.MarketStatus(utils.MarketStatus(time.Now())))
	output.Println()

	if len(events) == 0 {
		output.Dim("  No earnings events found")
		return nil
	}

	table := NewTable(output, "Symbol", "Days", "Next Earnings Call")
	for _, event := range events {
		days := "-"
		if event.DaysToEarnings != nil {
			days = FormatQuantity(*event.DaysToEarnings)
		}
		table.AddRow(event.Symbol, days, event.NextEarningCall)
	}
	table.Render()

	output.Println()
	output.Dim("  %d companies reporting", len(events))
	return nil
}

func newScreenerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "screener",
		Short: "Get the full stock and ETF screener",
		Long: `Fetch the market screener: every listed stock and ETF with price,
change, market cap, and sector columns.

The two asset classes are merged into one result set. If either request
fails the whole screener degrades to empty.`,
		Example: `  nasdaq screener
  nasdaq screener --json > screener.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
			defer cancel()

			results := app.Client.FetchScreener(ctx)

			if output.IsJSON() {
				return output.JSON(results)
			}
			return displayScreener(output, results)
		},
	}
}

func displayScreener(output *Output, results []models.MarketScreenerResult) error {
	color.Cyan("🔎 Market Screener")
	output.Printf("  Market: %s\n", output.MarketStatus(utils.MarketStatus(time.Now())))
	output.Println()

	if len(results) == 0 {
		output.Dim("  No screener data available")
		return nil
	}

	table := NewTable(output, "Symbol", "Name", "Price", "Change", "Mkt Cap", "Volume", "Type")
	shown := len(results)
	if shown > screenerDisplayLimit {
		shown = screenerDisplayLimit
	}
	for _, r := range results[:shown] {
		change := "-"
		if r.PercentageChange != nil {
			change = output.FormatPercentColored(*r.PercentageChange * 100)
		}
		table.AddRow(
			r.Symbol,
			TruncateString(r.Name, 28),
			priceOrDash(r.LastSalePrice),
			change,
			compactOrDash(r.MarketCap),
			volumeOrDash(r.Volume),
			r.AssetType,
		)
	}
	table.Render()

	output.Println()
	if shown < len(results) {
		output.Dim("  Showing %d of %d instruments; use --json for all", shown, len(results))
	} else {
		output.Dim("  %d instruments", len(results))
	}
	return nil
}

func newNewsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "news <symbol>",
		Short: "Get recent news articles",
		Long: `Fetch recent news articles for a symbol.

Articles older than the configured window or carrying no parseable date
are dropped.`,
		Example: `  nasdaq news AAPL
  nasdaq news TSLA --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			articles := app.Client.FetchNews(ctx, symbol, app.Config.Fetch.NewsDaysBack)

			if output.IsJSON() {
				return output.JSON(articles)
			}
			color.Cyan("📰 News - %s (last %d days)", symbol, app.Config.Fetch.NewsDaysBack)
			output.Println()
			return displayArticles(output, articles)
		},
	}
}

func newPressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "press <symbol>",
		Short: "Get recent press releases",
		Long:  "Fetch recent company press releases for a symbol.",
		Example: `  nasdaq press AAPL
  nasdaq press MSFT --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			releases := app.Client.FetchPressReleases(ctx, symbol, app.Config.Fetch.PressDaysBack)

			if output.IsJSON() {
				return output.JSON(releases)
			}
			color.Cyan("📣 Press Releases - %s (last %d days)", symbol, app.Config.Fetch.PressDaysBack)
			output.Println()

			articles := make([]models.NewsArticle, 0, len(releases))
			for _, release := range releases {
				articles = append(articles, release.NewsArticle)
			}
			return displayArticles(output, articles)
		},
	}
}

func displayArticles(output *Output, articles []models.NewsArticle) error {
	if len(articles) == 0 {
		output.Dim("  Nothing published in the window")
		return nil
	}

	for _, article := range articles {
		output.Printf("%s  %s\n", PadRight(article.Created, 12), output.BoldText(article.Title))
		if article.Publisher != "" {
			output.Printf("%s  %s\n", strings.Repeat(" ", 12), output.DimText(article.Publisher))
		}
		output.Printf("%s  %s\n", strings.Repeat(" ", 12), output.DimText(article.URL))
		output.Println()
	}
	output.Dim("  %d articles", len(articles))
	return nil
}
