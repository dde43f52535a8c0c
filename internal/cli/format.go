// Package cli provides the command-line interface for the Nasdaq data client.
package cli

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// dateFormat is the layout used for calendar dates in text output. It
// is overridden from ui.date_format when the root command is built.
var dateFormat = "02-Jan-2006"

// FormatUSD formats an amount as US dollars with thousands separators.
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	result := "$" + formatWesternNumber(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// formatWesternNumber inserts a comma before every group of three
// digits, counting from the right.
func formatWesternNumber(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var groups []string
	for n > 3 {
		groups = append([]string{s[n-3:]}, groups...)
		s = s[:n-3]
		n = len(s)
	}
	return s + "," + strings.Join(groups, ",")
}

// FormatQuantity formats a share count with thousands separators.
func FormatQuantity(qty int64) string {
	if qty < 0 {
		return "-" + formatWesternNumber(fmt.Sprintf("%d", -qty))
	}
	return formatWesternNumber(fmt.Sprintf("%d", qty))
}

// FormatCompact formats a dollar amount in compact form (K/M/B/T).
func FormatCompact(amount float64) string {
	abs := math.Abs(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%s$%.2fT", sign, abs/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%s$%.2fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s$%.2fM", sign, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s$%.2fK", sign, abs/1e3)
	}
	return FormatUSD(amount)
}

// FormatVolume formats share volume in compact form.
func FormatVolume(volume int64) string {
	switch {
	case volume >= 1e9:
		return fmt.Sprintf("%.2fB", float64(volume)/1e9)
	case volume >= 1e6:
		return fmt.Sprintf("%.2fM", float64(volume)/1e6)
	case volume >= 1e3:
		return fmt.Sprintf("%.2fK", float64(volume)/1e3)
	}
	return fmt.Sprintf("%d", volume)
}

// FormatPrice formats a share price. Sub-dollar prices keep four
// decimal places.
func FormatPrice(price float64) string {
	if math.Abs(price) < 1 {
		return fmt.Sprintf("%.4f", price)
	}
	return fmt.Sprintf("%.2f", price)
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatChange formats a price change.
func FormatChange(change, changePct float64) string {
	sign := ""
	if change > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f (%s%.2f%%)", sign, change, sign, changePct)
}

// FormatDate formats a calendar date. Table dates carry no timezone,
// so the value is rendered in its own location.
func FormatDate(t time.Time) string {
	return t.Format(dateFormat)
}

// FormatDateTime formats a timestamp.
func FormatDateTime(t time.Time) string {
	return t.Format(dateFormat + " 15:04:05")
}

// FormatDuration formats a duration in human-readable form.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	return fmt.Sprintf("%dd %dh", days, hours)
}

// TruncateString truncates a string to max length with ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PadRight pads a string to the right.
func PadRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// PadLeft pads a string to the left.
func PadLeft(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(" ", length-len(s)) + s
}

// Nil-safe cell renderers for the optional fields the endpoint tables
// leave blank.

func priceOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return FormatPrice(*v)
}

func usdOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return FormatUSD(*v)
}

func compactOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return FormatCompact(*v)
}

func volumeOrDash(v *int64) string {
	if v == nil {
		return "-"
	}
	return FormatVolume(*v)
}

func quantityOrDash(v *int64) string {
	if v == nil {
		return "-"
	}
	return FormatQuantity(*v)
}

func percentOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	// Stored as a decimal; 0.055 renders as +5.50%.
	return FormatPercent(*v * 100)
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return FormatDate(*t)
}

func stringOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
