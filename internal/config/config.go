// Package config provides configuration management for the client.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	apperrors "nasdaq-client/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Session SessionConfig `mapstructure:"session"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Browser BrowserConfig `mapstructure:"browser"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	UI      UIConfig      `mapstructure:"ui"`
}

// SessionConfig holds cookie session configuration.
type SessionConfig struct {
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds"`
}

// RefreshInterval returns the cookie staleness interval.
func (s SessionConfig) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalSeconds) * time.Second
}

// HTTPConfig holds transport configuration.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	BaseAPIURL     string `mapstructure:"base_api_url"`
	BaseWebURL     string `mapstructure:"base_web_url"`
}

// Timeout returns the per-request timeout.
func (h HTTPConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// BrowserConfig holds headless-browser configuration for the cookie
// harvest.
type BrowserConfig struct {
	Headless      bool   `mapstructure:"headless"`
	Homepage      string `mapstructure:"homepage"`
	SettleSeconds int    `mapstructure:"settle_seconds"`
	WindowWidth   int    `mapstructure:"window_width"`
	WindowHeight  int    `mapstructure:"window_height"`
	UserAgent     string `mapstructure:"user_agent"`
}

// SettleTime returns the fixed wait after the homepage navigation.
func (b BrowserConfig) SettleTime() time.Duration {
	return time.Duration(b.SettleSeconds) * time.Second
}

// FetchConfig holds per-endpoint fetch defaults.
type FetchConfig struct {
	NewsDaysBack         int `mapstructure:"news_days_back"`
	PressDaysBack        int `mapstructure:"press_days_back"`
	EarningsDaysAhead    int `mapstructure:"earnings_days_ahead"`
	HistoricalPeriodDays int `mapstructure:"historical_period_days"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/nasdaq-client"
	}
	return filepath.Join(home, ".config", "nasdaq-client")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target *Config) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template
			return createTemplateConfig(configDir, name)
		}
		return err
	}

	return v.Unmarshal(target)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("session.refresh_interval_seconds", 1800)

	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("http.base_api_url", "https://api.nasdaq.com")
	v.SetDefault("http.base_web_url", "https://www.nasdaq.com")

	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.homepage", "https://www.nasdaq.com")
	v.SetDefault("browser.settle_seconds", 10)
	v.SetDefault("browser.window_width", 1920)
	v.SetDefault("browser.window_height", 1080)
	v.SetDefault("browser.user_agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36")

	v.SetDefault("fetch.news_days_back", 7)
	v.SetDefault("fetch.press_days_back", 15)
	v.SetDefault("fetch.earnings_days_ahead", 7)
	v.SetDefault("fetch.historical_period_days", 30)

	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NASDAQ_REFRESH_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.RefreshIntervalSeconds = n
		}
	}
	if v := os.Getenv("NASDAQ_HTTP_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("NASDAQ_BROWSER_HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Browser.Headless = b
		}
	}
	if v := os.Getenv("NASDAQ_HOMEPAGE"); v != "" {
		cfg.Browser.Homepage = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Session.RefreshIntervalSeconds <= 0 {
		return apperrors.NewValidationError("session.refresh_interval_seconds",
			c.Session.RefreshIntervalSeconds, "must be positive")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return apperrors.NewValidationError("http.timeout_seconds",
			c.HTTP.TimeoutSeconds, "must be positive")
	}
	if !strings.HasPrefix(c.HTTP.BaseAPIURL, "http") {
		return apperrors.NewValidationError("http.base_api_url",
			c.HTTP.BaseAPIURL, "must be an absolute http(s) URL")
	}
	if !strings.HasPrefix(c.HTTP.BaseWebURL, "http") {
		return apperrors.NewValidationError("http.base_web_url",
			c.HTTP.BaseWebURL, "must be an absolute http(s) URL")
	}
	if !strings.HasPrefix(c.Browser.Homepage, "http") {
		return apperrors.NewValidationError("browser.homepage",
			c.Browser.Homepage, "must be an absolute http(s) URL")
	}
	if c.Browser.SettleSeconds < 0 {
		return apperrors.NewValidationError("browser.settle_seconds",
			c.Browser.SettleSeconds, "must be non-negative")
	}
	if c.Browser.WindowWidth <= 0 || c.Browser.WindowHeight <= 0 {
		return apperrors.NewValidationError("browser.window_size",
			fmt.Sprintf("%dx%d", c.Browser.WindowWidth, c.Browser.WindowHeight),
			"must be positive")
	}
	if c.Fetch.NewsDaysBack < 0 || c.Fetch.PressDaysBack < 0 {
		return apperrors.NewValidationError("fetch.days_back",
			fmt.Sprintf("%d/%d", c.Fetch.NewsDaysBack, c.Fetch.PressDaysBack),
			"must be non-negative")
	}
	if c.Fetch.EarningsDaysAhead <= 0 {
		return apperrors.NewValidationError("fetch.earnings_days_ahead",
			c.Fetch.EarningsDaysAhead, "must be positive")
	}
	if c.Fetch.HistoricalPeriodDays <= 0 {
		return apperrors.NewValidationError("fetch.historical_period_days",
			c.Fetch.HistoricalPeriodDays, "must be positive")
	}
	return nil
}
