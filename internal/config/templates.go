package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Nasdaq Client Configuration

[session]
# How long harvested cookies stay fresh, in seconds
refresh_interval_seconds = 1800

[http]
# Per-request timeout in seconds
timeout_seconds = 30
# JSON API host
base_api_url = "https://api.nasdaq.com"
# Web host (news feeds, relative article links)
base_web_url = "https://www.nasdaq.com"

[browser]
# Run Chrome headless during the cookie harvest
headless = true
# Page loaded to acquire cookies
homepage = "https://www.nasdaq.com"
# Fixed wait after navigation before reading cookies, in seconds
settle_seconds = 10
# Browser window size
window_width = 1920
window_height = 1080
# Browser user agent (leave as-is unless the site starts blocking it)
user_agent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"

[fetch]
# Drop news articles older than this many days
news_days_back = 7
# Drop press releases older than this many days
press_days_back = 15
# How many days forward the earnings calendar scans
earnings_days_ahead = 7
# Default lookback window for historical quotes, in days
historical_period_days = 30

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
`

func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return fmt.Errorf("config file not found, created template at %s", path)
}
