// Package models defines the typed records produced by the fetch layer
// and the normalizers that build them from raw API values.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormats is the priority-ordered set of date layouts the upstream
// mixes across endpoints. Parsers try them in order and the first match
// wins.
var DateFormats = []string{
	"01/02/2006",
	"2006-01-02",
	"Jan 2, 2006",
}

// NewsDateFormats additionally accepts the ISO timestamp used by the
// article and press-release feeds.
var NewsDateFormats = []string{
	"Jan 2, 2006",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"2006-01-02",
}

var monetarySuffixes = map[byte]float64{
	'M': 1e6,
	'B': 1e9,
	'T': 1e12,
}

// ParseMonetary converts a monetary representation into a float. It
// strips currency symbols and thousands separators, scales M/B/T
// suffixes, divides a trailing percent by 100, and treats a
// parenthesis-wrapped value as negative. Numeric input passes through
// unchanged. nil, the empty string, and the literal "N/A" yield nil, as
// does anything unparseable.
func ParseMonetary(value interface{}) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		f := v
		return &f
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		return &f
	case string:
		return parseMonetaryString(v)
	default:
		return nil
	}
}

func parseMonetaryString(s string) *float64 {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(s, "$", ""), ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" || strings.EqualFold(cleaned, "N/A") {
		return nil
	}

	negative := false
	if len(cleaned) > 2 && strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
	}

	multiplier := 1.0
	percent := false
	if n := len(cleaned); n > 0 {
		switch last := cleaned[n-1]; {
		case last == '%':
			percent = true
			cleaned = strings.TrimSpace(cleaned[:n-1])
		default:
			if m, ok := monetarySuffixes[upperByte(last)]; ok {
				multiplier = m
				cleaned = strings.TrimSpace(cleaned[:n-1])
			}
		}
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	if percent {
		f /= 100
	} else {
		f *= multiplier
	}
	if negative {
		f = -f
	}
	return &f
}

// ParsePercent converts a percentage representation into its decimal
// form: "5.5%" and "5.5" both become 0.055. nil in, nil out.
func ParsePercent(value interface{}) *float64 {
	f := ParseMonetary(value)
	if f == nil {
		return nil
	}
	d := *f
	if s, ok := value.(string); !ok || !strings.Contains(s, "%") {
		d /= 100
	}
	return &d
}

// ParseInt converts a count representation into an integer. It strips
// thousands separators and reads a parenthesis-wrapped value as
// negative ("(100)" is -100, the convention share-count and change
// columns use). Numeric input truncates. Unparseable input yields nil.
func ParseInt(value interface{}) *int64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		n := int64(v)
		return &n
	case int:
		n := int64(v)
		return &n
	case int64:
		n := v
		return &n
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		n := int64(f)
		return &n
	case string:
		return parseIntString(v)
	default:
		return nil
	}
}

func parseIntString(s string) *int64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if cleaned == "" || strings.EqualFold(cleaned, "N/A") {
		return nil
	}
	negative := false
	if len(cleaned) > 2 && strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		// Columns occasionally carry decimals ("1.0"); truncate rather
		// than reject.
		f, ferr := strconv.ParseFloat(cleaned, 64)
		if ferr != nil {
			return nil
		}
		n = int64(f)
	}
	if negative {
		n = -n
	}
	return &n
}

// ParseDate tries each layout in priority order and returns the first
// successful parse. A time.Time input passes through unchanged. Empty,
// "N/A", and fully unparseable input yield nil.
func ParseDate(value interface{}, formats []string) *time.Time {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		t := v
		return &t
	case *time.Time:
		return v
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "N/A") {
			return nil
		}
		for _, layout := range formats {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		return nil
	default:
		return nil
	}
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// field returns the first present, non-nil value among alias keys.
func field(row map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// stringField returns the first present value among alias keys rendered
// as a trimmed string, or "". Floats print in plain notation so large
// identifiers survive the round trip through JSON numbers.
func stringField(row map[string]interface{}, keys ...string) string {
	v := field(row, keys...)
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}
