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

// addFinancialCommands adds company financial data commands.
func addFinancialCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newProfileCmd(app))
	rootCmd.AddCommand(newOverviewCmd(app))
	rootCmd.AddCommand(newRevenueCmd(app))
	rootCmd.AddCommand(newHistoricalCmd(app))
	rootCmd.AddCommand(newDividendsCmd(app))
	rootCmd.AddCommand(newRatiosCmd(app))
	rootCmd.AddCommand(newChainCmd(app))
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <symbol>",
		Short: "Get the company description",
		Long: `Fetch the long-form company description for a symbol.

Text mode prints the description verbatim so it can be piped into other
tools. An unknown symbol prints an empty result.`,
		Example: `  nasdaq profile AAPL
  nasdaq profile MSFT --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			description := app.Client.FetchCompanyProfile(ctx, symbol)

			if output.IsJSON() {
				return output.JSON(map[string]string{
					"symbol":      symbol,
					"description": description,
				})
			}
			output.Println(description)
			return nil
		},
	}
}

func newOverviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview <symbol>",
		Short: "Get the company overview",
		Long:  "Fetch the labeled company overview: name, sector, industry, region, and website.",
		Example: `  nasdaq overview AAPL
  nasdaq overview TSLA --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			profile := app.Client.FetchCompanyOverview(ctx, symbol)

			if output.IsJSON() {
				return output.JSON(profile)
			}
			return displayOverview(output, profile)
		},
	}
}

func displayOverview(output *Output, profile models.CompanyProfile) error {
	color.Cyan("🏢 Company Overview - %s", profile.Symbol)
	output.Println()

	output.Printf("  Name:      %s\n", stringOrDash(profile.Name))
	output.Printf("  Sector:    %s\n", stringOrDash(profile.Sector))
	output.Printf("  Industry:  %s\n", stringOrDash(profile.Industry))
	output.Printf("  Region:    %s\n", stringOrDash(profile.Region))
	output.Printf("  Address:   %s\n", stringOrDash(profile.Address))
	output.Printf("  Website:   %s\n", stringOrDash(profile.Website))
	if profile.MarketCap != nil {
		output.Printf("  Market Cap: %s\n", FormatCompact(*profile.MarketCap))
	}
	if profile.Employees != nil {
		output.Printf("  Employees: %s\n", FormatQuantity(*profile.Employees))
	}

	if profile.Description != "" {
		output.Println()
		output.Println(profile.Description)
	}
	return nil
}

func newRevenueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revenue <symbol>",
		Short: "Get quarterly revenue and earnings",
		Long: `Fetch the quarterly revenue, EPS, and dividend table.

Only the most recent quarters are shown. Revenue figures are in
millions of dollars as reported by Nasdaq.`,
		Example: `  nasdaq revenue AAPL
  nasdaq revenue NVDA --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			quarters := app.Client.FetchRevenueEarnings(ctx, symbol)

			if output.IsJSON() {
				return output.JSON(quarters)
			}
			return displayRevenue(output, symbol, quarters)
		},
	}
}

func displayRevenue(output *Output, symbol string, quarters []models.RevenueEarningsQuarter) error {
	color.Cyan("💰 Revenue & Earnings - %s", symbol)
	output.Println()

	if len(quarters) == 0 {
		output.Dim("  No revenue data available")
		return nil
	}

	table := NewTable(output, "Quarter", "Revenue (M)", "EPS", "Dividends")
	for _, q := range quarters {
		table.AddRow(
			q.Quarter,
			usdOrDash(q.Revenue),
			usdOrDash(q.EPS),
			usdOrDash(q.Dividends),
		)
	}
	table.Render()
	return nil
}

func newHistoricalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "historical <symbol>",
		Short: "Get historical OHLCV quotes",
		Long: `Fetch daily open, high, low, close, and volume history.

Periods of 150 days or more widen the request window so weekends and
holidays do not shrink the sample.`,
		Example: `  nasdaq historical AAPL
  nasdaq historical AAPL --period 90
  nasdaq historical SPY --asset etf --period 365`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			period, _ := cmd.Flags().GetInt("period")
			if period <= 0 {
				period = app.Config.Fetch.HistoricalPeriodDays
			}
			asset := models.AssetStock
			if flag, _ := cmd.Flags().GetString("asset"); strings.EqualFold(flag, string(models.AssetETF)) {
				asset = models.AssetETF
			}

			quotes := app.Client.FetchHistoricalQuotes(ctx, symbol, period, asset)

			if output.IsJSON() {
				return output.JSON(quotes)
			}
			return displayHistorical(output, symbol, quotes)
		},
	}

	cmd.Flags().IntP("period", "p", 0, "trading days to fetch (default from config)")
	cmd.Flags().String("asset", string(models.AssetStock), "asset class (stock, etf)")

	return cmd
}

func displayHistorical(output *Output, symbol string, quotes map[string]models.HistoricalQuote) error {
	color.Cyan("📈 Historical Quotes - %s", symbol)
	output.Println()

	if len(quotes) == 0 {
		output.Dim("  No historical data available")
		return nil
	}

	// Map order is random; show newest first.
	dates := make([]string, 0, len(quotes))
	for date := range quotes {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	table := NewTable(output, "Date", "Open", "High", "Low", "Close", "Volume")
	for _, date := range dates {
		q := quotes[date]
		table.AddRow(
			q.Date,
			priceOrDash(q.Open),
			priceOrDash(q.High),
			priceOrDash(q.Low),
			priceOrDash(q.Close),
			volumeOrDash(q.Volume),
		)
	}
	table.Render()

	output.Println()
	output.Dim("  %d trading days", len(quotes))
	return nil
}

func newDividendsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dividends <symbol>",
		Short: "Get dividend history",
		Long:  "Fetch the dividend history: ex-dates, amounts, and payment schedule.",
		Example: `  nasdaq dividends AAPL
  nasdaq dividends KO --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			dividends := app.Client.FetchDividends(ctx, symbol)

			if output.IsJSON() {
				return output.JSON(dividends)
			}
			return displayDividends(output, symbol, dividends)
		},
	}
}

func displayDividends(output *Output, symbol string, dividends []models.DividendRecord) error {
	color.Cyan("💵 Dividend History - %s", symbol)
	output.Println()

	if len(dividends) == 0 {
		output.Dim("  No dividend data available")
		return nil
	}

	table := NewTable(output, "Ex/Eff Date", "Type", "Amount", "Declared", "Record", "Payment")
	for _, d := range dividends {
		table.AddRow(
			dateOrDash(d.ExOrEffDate),
			stringOrDash(d.Type),
			usdOrDash(d.Amount),
			dateOrDash(d.DeclarationDate),
			dateOrDash(d.RecordDate),
			dateOrDash(d.PaymentDate),
		)
	}
	table.Render()
	return nil
}

func newRatiosCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ratios <symbol>",
		Short: "Get key financial ratios",
		Long: `Fetch key financial ratios and statistics.

Three endpoints are consulted in order and the current price and percent
change are merged in from the quote summary.`,
		Example: `  nasdaq ratios AAPL
  nasdaq ratios MSFT --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			ratios := app.Client.FetchRatios(ctx, symbol)

			if output.IsJSON() {
				return output.JSON(ratios)
			}
			return displayRatios(output, symbol, ratios)
		},
	}
}

func displayRatios(output *Output, symbol string, ratios map[string]models.FinancialRatio) error {
	color.Cyan("📊 Financial Ratios - %s", symbol)
	output.Println()

	if len(ratios) == 0 {
		output.Dim("  No ratio data available")
		return nil
	}

	names := make([]string, 0, len(ratios))
	for name := range ratios {
		names = append(names, name)
	}
	sort.Strings(names)

	table := NewTable(output, "Ratio", "Value")
	for _, name := range names {
		r := ratios[name]
		value := r.DisplayValue
		if value == "" {
			value = r.Value
		}
		table.AddRow(name, stringOrDash(value))
	}
	table.Render()
	return nil
}

func newChainCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain <symbol>",
		Short: "Get the option chain",
		Long: `Fetch the raw option chain payload.

The chain is a large nested structure; use --json to capture the full
payload. Text mode prints a summary only.`,
		Example: `  nasdaq chain AAPL --json
  nasdaq chain TSLA --money in`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			money, _ := cmd.Flags().GetString("money")

			chain := app.Client.FetchOptionChain(ctx, symbol, strings.ToUpper(money))

			if output.IsJSON() {
				return output.JSON(chain)
			}
			return displayChain(output, symbol, chain)
		},
	}

	cmd.Flags().String("money", "ALL", "moneyness filter (ALL, IN, OUT, NEAR)")

	return cmd
}

func displayChain(output *Output, symbol string, chain map[string]interface{}) error {
	color.Cyan("⛓  Option Chain - %s", symbol)
	output.Println()

	if len(chain) == 0 {
		output.Dim("  No option chain data available")
		return nil
	}

	if total, ok := chain["totalRecord"].(float64); ok {
		output.Printf("  Contracts: %d\n", int64(total))
	}
	if trade, ok := chain["lastTrade"].(string); ok && trade != "" {
		output.Printf("  %s\n", trade)
	}

	keys := make([]string, 0, len(chain))
	for key := range chain {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	output.Printf("  Sections: %s\n", strings.Join(keys, ", "))

	output.Println()
	output.Dim("  Use --json for the full chain")
	return nil
}
