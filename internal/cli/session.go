// Package cli provides the command-line interface for the Nasdaq data client.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"nasdaq-client/internal/models"
)

// addSessionCommands adds cookie session commands.
func addSessionCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newSessionCmd(app))
}

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect the cookie session",
		Long: `Show the state of the cookie session replayed on API calls.

The session holds a browser-equivalent header set plus the cookies
harvested from the Nasdaq homepage. Cookies refresh automatically once
stale; 'session refresh' forces a harvest immediately.`,
		Example: `  nasdaq session
  nasdaq session refresh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			state := app.Session.State()

			if output.IsJSON() {
				return output.JSON(state)
			}
			return displaySessionState(output, state)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Force a cookie refresh now",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
			defer cancel()

			refreshed := app.Session.Refresh(ctx)
			state := app.Session.State()

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"refreshed": refreshed,
					"state":     state,
				})
			}

			if state.HasCookie() {
				output.Success("✓ Session refreshed (%d cookies)", cookiePairs(state.Cookie))
			} else {
				output.Warning("No cookies collected; API calls proceed without a cookie header")
			}
			output.Println()
			return displaySessionState(output, state)
		},
	})

	return cmd
}

func displaySessionState(output *Output, state models.SessionState) error {
	cookie := "absent"
	if state.HasCookie() {
		cookie = output.Green("present")
	}

	lastRefresh := "never"
	age := "-"
	if state.LastRefresh != nil {
		lastRefresh = FormatDateTime(*state.LastRefresh)
		age = FormatDuration(state.Age(time.Now()))
	}

	freshness := output.Green("fresh")
	if state.Stale {
		freshness = output.Yellow("stale, will refresh on next call")
	}

	output.Box("Cookie Session", []string{
		"Cookie:       " + cookie,
		"Pairs:        " + FormatQuantity(int64(cookiePairs(state.Cookie))),
		"Last Refresh: " + lastRefresh,
		"Age:          " + age,
		"Freshness:    " + freshness,
		"Headers:      " + FormatQuantity(int64(len(state.Headers))),
	})
	return nil
}

// cookiePairs counts the name=value pairs in a joined cookie header.
func cookiePairs(cookie string) int {
	if cookie == "" {
		return 0
	}
	return len(strings.Split(cookie, "; "))
}
