// Package cli provides the command-line interface for the Nasdaq data client.
package cli

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// For any amount, FormatUSD should:
// 1. Start with $ (or -$ for negative)
// 2. Have exactly 2 decimal places
// 3. Group the integer digits in threes
// 4. Preserve the numeric value when parsed back
func TestProperty_USDFormatting(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("FormatUSD produces valid Western format", prop.ForAll(
		func(amount float64) bool {
			if math.IsNaN(amount) || math.IsInf(amount, 0) {
				return true
			}
			if math.Abs(amount) > 1e15 {
				return true
			}

			formatted := FormatUSD(amount)

			if amount >= 0 {
				if !strings.HasPrefix(formatted, "$") {
					t.Logf("Expected $ prefix for %f, got %s", amount, formatted)
					return false
				}
			} else {
				if !strings.HasPrefix(formatted, "-$") {
					t.Logf("Expected -$ prefix for %f, got %s", amount, formatted)
					return false
				}
			}

			parts := strings.Split(formatted, ".")
			if len(parts) != 2 || len(parts[1]) != 2 {
				t.Logf("Expected 2 decimal places for %f, got %s", amount, formatted)
				return false
			}

			numPart := strings.TrimPrefix(parts[0], "-")
			numPart = strings.TrimPrefix(numPart, "$")

			westernPattern := regexp.MustCompile(`^\d{1,3}(,\d{3})*$`)
			if !westernPattern.MatchString(numPart) {
				t.Logf("Invalid grouping for %f: %s (numPart: %s)", amount, formatted, numPart)
				return false
			}

			return true
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("FormatUSD preserves value", prop.ForAll(
		func(amount float64) bool {
			if math.IsNaN(amount) || math.IsInf(amount, 0) {
				return true
			}
			if math.Abs(amount) > 1e12 {
				return true
			}

			formatted := FormatUSD(amount)
			parsed := parseUSD(formatted)

			roundedAmount := math.Round(amount*100) / 100
			if diff := math.Abs(parsed - roundedAmount); diff > 0.01 {
				t.Logf("Value not preserved: original=%f, formatted=%s, parsed=%f", amount, formatted, parsed)
				return false
			}

			return true
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.Property("FormatPercent produces correct format", prop.ForAll(
		func(value float64) bool {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return true
			}

			formatted := FormatPercent(value)

			if !strings.HasSuffix(formatted, "%") {
				t.Logf("Expected %% suffix for %f, got %s", value, formatted)
				return false
			}
			if value > 0 && !strings.HasPrefix(formatted, "+") {
				t.Logf("Expected + prefix for positive %f, got %s", value, formatted)
				return false
			}

			return true
		},
		gen.Float64Range(-100, 100),
	))

	properties.Property("FormatCompact uses correct units", prop.ForAll(
		func(amount float64) bool {
			if math.IsNaN(amount) || math.IsInf(amount, 0) {
				return true
			}

			formatted := FormatCompact(amount)
			abs := math.Abs(amount)

			switch {
			case abs >= 1e12:
				if !strings.HasSuffix(formatted, "T") {
					t.Logf("Expected T for %f, got %s", amount, formatted)
					return false
				}
			case abs >= 1e9:
				if !strings.HasSuffix(formatted, "B") {
					t.Logf("Expected B for %f, got %s", amount, formatted)
					return false
				}
			case abs >= 1e6:
				if !strings.HasSuffix(formatted, "M") {
					t.Logf("Expected M for %f, got %s", amount, formatted)
					return false
				}
			case abs >= 1e3:
				if !strings.HasSuffix(formatted, "K") {
					t.Logf("Expected K for %f, got %s", amount, formatted)
					return false
				}
			default:
				if !strings.HasPrefix(formatted, "$") && !strings.HasPrefix(formatted, "-$") {
					t.Logf("Expected $ for %f, got %s", amount, formatted)
					return false
				}
			}

			return true
		},
		gen.Float64Range(-1e14, 1e14),
	))

	properties.Property("FormatVolume uses correct units", prop.ForAll(
		func(volume int64) bool {
			formatted := FormatVolume(volume)

			switch {
			case volume >= 1e9:
				return strings.HasSuffix(formatted, "B")
			case volume >= 1e6:
				return strings.HasSuffix(formatted, "M")
			case volume >= 1e3:
				return strings.HasSuffix(formatted, "K")
			}
			return !strings.ContainsAny(formatted, "KMB")
		},
		gen.Int64Range(0, 1e12),
	))

	properties.Property("TruncateString never exceeds the limit", prop.ForAll(
		func(s string, maxLen int) bool {
			truncated := TruncateString(s, maxLen)
			if len(truncated) > maxLen && len(s) > maxLen {
				t.Logf("TruncateString(%q, %d) = %q", s, maxLen, truncated)
				return false
			}
			if len(s) <= maxLen && truncated != s {
				t.Logf("Short string modified: %q -> %q", s, truncated)
				return false
			}
			return true
		},
		gen.AlphaString(),
		gen.IntRange(1, 40),
	))

	properties.Property("PadLeft and PadRight reach the requested width", prop.ForAll(
		func(s string, length int) bool {
			left := PadLeft(s, length)
			right := PadRight(s, length)

			want := length
			if len(s) > length {
				want = len(s)
			}
			if len(left) != want || len(right) != want {
				t.Logf("PadLeft/PadRight(%q, %d) = %q / %q", s, length, left, right)
				return false
			}
			return strings.HasSuffix(left, s) && strings.HasPrefix(right, s)
		},
		gen.AlphaString(),
		gen.IntRange(0, 30),
	))

	properties.TestingRun(t)
}

// parseUSD parses a dollar-formatted string back to float64.
func parseUSD(s string) float64 {
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	var parsed float64
	for i, c := range s {
		if c == '.' {
			decPart := s[i+1:]
			for j, d := range decPart {
				if d >= '0' && d <= '9' {
					parsed += float64(d-'0') / math.Pow(10, float64(j+1))
				}
			}
			break
		}
		if c >= '0' && c <= '9' {
			parsed = parsed*10 + float64(c-'0')
		}
	}

	if negative {
		parsed = -parsed
	}

	return parsed
}

// TestFormatUSDExamples tests specific examples of dollar formatting.
func TestFormatUSDExamples(t *testing.T) {
	testCases := []struct {
		amount   float64
		expected string
	}{
		{0, "$0.00"},
		{1, "$1.00"},
		{100, "$100.00"},
		{1000, "$1,000.00"},
		{10000, "$10,000.00"},
		{1000000, "$1,000,000.00"},
		{2800000000000, "$2,800,000,000,000.00"},
		{-1234.56, "-$1,234.56"},
		{1234567.89, "$1,234,567.89"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatUSD(tc.amount)
			if result != tc.expected {
				t.Errorf("FormatUSD(%f) = %s, want %s", tc.amount, result, tc.expected)
			}
		})
	}
}

// TestFormatCompactExamples tests unit selection boundaries.
func TestFormatCompactExamples(t *testing.T) {
	testCases := []struct {
		amount   float64
		expected string
	}{
		{2800000000000, "$2.80T"},
		{316036000000, "$316.04B"},
		{1500000, "$1.50M"},
		{2500, "$2.50K"},
		{999.99, "$999.99"},
		{-1200000000, "-$1.20B"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatCompact(tc.amount)
			if result != tc.expected {
				t.Errorf("FormatCompact(%f) = %s, want %s", tc.amount, result, tc.expected)
			}
		})
	}
}

// TestFormatPercentExamples tests specific examples of percentage formatting.
func TestFormatPercentExamples(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{0, "0.00%"},
		{1.5, "+1.50%"},
		{-2.5, "-2.50%"},
		{100, "+100.00%"},
		{-100, "-100.00%"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatPercent(tc.value)
			if result != tc.expected {
				t.Errorf("FormatPercent(%f) = %s, want %s", tc.value, result, tc.expected)
			}
		})
	}
}

// TestFormatQuantityExamples covers signed share counts.
func TestFormatQuantityExamples(t *testing.T) {
	testCases := []struct {
		qty      int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{3280180, "3,280,180"},
		{-5000000, "-5,000,000"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatQuantity(tc.qty)
			if result != tc.expected {
				t.Errorf("FormatQuantity(%d) = %s, want %s", tc.qty, result, tc.expected)
			}
		})
	}
}
