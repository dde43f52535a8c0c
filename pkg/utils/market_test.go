package utils

import (
	"testing"
	"time"
)

func eastern(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, EasternLocation)
}

func TestMarketStatus(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"monday regular session", eastern(2026, time.August, 24, 10, 0), StatusOpen},
		{"open boundary", eastern(2026, time.August, 24, 9, 30), StatusOpen},
		{"last open minute", eastern(2026, time.August, 24, 15, 59), StatusOpen},
		{"pre-market start", eastern(2026, time.August, 24, 4, 0), StatusPreMarket},
		{"pre-market end", eastern(2026, time.August, 24, 9, 29), StatusPreMarket},
		{"after-hours start", eastern(2026, time.August, 24, 16, 0), StatusAfterHours},
		{"after-hours end", eastern(2026, time.August, 24, 19, 59), StatusAfterHours},
		{"evening", eastern(2026, time.August, 24, 20, 0), StatusClosed},
		{"overnight", eastern(2026, time.August, 24, 3, 59), StatusClosed},
		{"saturday", eastern(2026, time.August, 22, 12, 0), StatusClosed},
		{"sunday", eastern(2026, time.August, 23, 12, 0), StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarketStatus(tt.at); got != tt.want {
				t.Errorf("MarketStatus(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestMarketStatusConvertsZones(t *testing.T) {
	// 14:00 UTC on a Monday in August is 10:00 ET.
	utc := time.Date(2026, time.August, 24, 14, 0, 0, 0, time.UTC)
	if got := MarketStatus(utc); got != StatusOpen {
		t.Errorf("MarketStatus(%v) = %q, want %q", utc, got, StatusOpen)
	}
	if !IsMarketOpen(utc) {
		t.Error("expected IsMarketOpen for 14:00 UTC Monday")
	}
	if IsPreMarket(utc) || IsAfterHours(utc) {
		t.Error("expected neither pre-market nor after-hours")
	}
}

func TestNextMarketOpen(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want time.Time
	}{
		{
			"before open same day",
			eastern(2026, time.August, 24, 8, 0),
			eastern(2026, time.August, 24, 9, 30),
		},
		{
			"after close rolls to next day",
			eastern(2026, time.August, 24, 17, 0),
			eastern(2026, time.August, 25, 9, 30),
		},
		{
			"friday evening rolls to monday",
			eastern(2026, time.August, 21, 17, 0),
			eastern(2026, time.August, 24, 9, 30),
		},
		{
			"saturday rolls to monday",
			eastern(2026, time.August, 22, 12, 0),
			eastern(2026, time.August, 24, 9, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextMarketOpen(tt.at); !got.Equal(tt.want) {
				t.Errorf("NextMarketOpen(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestTimeUntilClose(t *testing.T) {
	at := eastern(2026, time.August, 24, 15, 0)
	if got := TimeUntilClose(at); got != time.Hour {
		t.Errorf("TimeUntilClose(%v) = %v, want 1h", at, got)
	}

	after := eastern(2026, time.August, 24, 17, 0)
	if got := TimeUntilClose(after); got >= 0 {
		t.Errorf("TimeUntilClose(%v) = %v, want negative", after, got)
	}
}
