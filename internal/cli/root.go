// Package cli provides the command-line interface for the Nasdaq data client.
package cli

import (
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"nasdaq-client/internal/browser"
	"nasdaq-client/internal/config"
	"nasdaq-client/internal/logging"
	"nasdaq-client/internal/nasdaq"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-25"
)

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Session *nasdaq.Session
	Client  *nasdaq.Client
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	source := browser.NewChrome(logger,
		browser.WithHomepage(cfg.Browser.Homepage),
		browser.WithUserAgent(cfg.Browser.UserAgent),
		browser.WithHeadless(cfg.Browser.Headless),
		browser.WithSettleTime(cfg.Browser.SettleTime()),
		browser.WithWindowSize(cfg.Browser.WindowWidth, cfg.Browser.WindowHeight),
	)
	app.Session = nasdaq.NewSession(source, logger,
		nasdaq.WithRefreshInterval(cfg.Session.RefreshInterval()))
	app.Client = nasdaq.NewClient(app.Session, logger,
		nasdaq.WithBaseURLs(cfg.HTTP.BaseAPIURL, cfg.HTTP.BaseWebURL),
		nasdaq.WithTimeout(cfg.HTTP.Timeout()))
	logger.Debug().Msg("Nasdaq client initialized")

	if !cfg.UI.ColorEnabled {
		color.NoColor = true
	}
	if cfg.UI.DateFormat != "" {
		dateFormat = cfg.UI.DateFormat
	}

	rootCmd := &cobra.Command{
		Use:   "nasdaq",
		Short: "Nasdaq Data Client - financial data from Nasdaq's public API",
		Long: `Nasdaq Data Client fetches company, market, ownership, and regulatory
data from Nasdaq's public JSON API.

A headless Chrome session collects the anti-bot cookies the API expects;
cookies are reused across calls and refreshed automatically when stale.
Failed fetches degrade to empty results so pipelines keep moving.

Use 'nasdaq help <command>' for more information about a command.
Use 'nasdaq examples' to see common workflows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle debug flag
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/nasdaq-client)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Add all command groups
	addCoreCommands(rootCmd, app)
	addFinancialCommands(rootCmd, app)
	addMarketCommands(rootCmd, app)
	addOwnershipCommands(rootCmd, app)
	addRegulatoryCommands(rootCmd, app)
	addSessionCommands(rootCmd, app)
	addHelpCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Nasdaq Data Client v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Session Configuration")
	output.Printf("  Refresh Interval: %s\n", cfg.Session.RefreshInterval())
	output.Println()

	output.Bold("HTTP Configuration")
	output.Printf("  Timeout:          %s\n", cfg.HTTP.Timeout())
	output.Printf("  API Base URL:     %s\n", cfg.HTTP.BaseAPIURL)
	output.Printf("  Web Base URL:     %s\n", cfg.HTTP.BaseWebURL)
	output.Println()

	output.Bold("Browser Configuration")
	output.Printf("  Headless:         %v\n", cfg.Browser.Headless)
	output.Printf("  Homepage:         %s\n", cfg.Browser.Homepage)
	output.Printf("  Settle Time:      %s\n", cfg.Browser.SettleTime())
	output.Printf("  Window Size:      %dx%d\n", cfg.Browser.WindowWidth, cfg.Browser.WindowHeight)
	output.Println()

	output.Bold("Fetch Defaults")
	output.Printf("  News Days Back:   %d\n", cfg.Fetch.NewsDaysBack)
	output.Printf("  Press Days Back:  %d\n", cfg.Fetch.PressDaysBack)
	output.Printf("  Earnings Window:  %d days\n", cfg.Fetch.EarningsDaysAhead)
	output.Printf("  Historical Period: %d days\n", cfg.Fetch.HistoricalPeriodDays)
	output.Println()

	output.Bold("UI Configuration")
	output.Printf("  Color Enabled:    %v\n", cfg.UI.ColorEnabled)
	output.Printf("  Date Format:      %s\n", cfg.UI.DateFormat)

	return nil
}
