package nasdaq

import (
	"fmt"
	"strconv"
)

// lookup walks a decoded JSON tree key-by-key and returns the value at
// the end of the path. It returns nil the instant a traversal step hits
// a non-object or a missing key; it never panics.
func lookup(data interface{}, keys ...string) interface{} {
	current := data
	for _, key := range keys {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return current
}

// lookupString returns the string at the key path, or def when the path
// is absent, malformed, or not a string.
func lookupString(data interface{}, def string, keys ...string) string {
	if s, ok := lookup(data, keys...).(string); ok {
		return s
	}
	return def
}

// lookupMap returns the object at the key path, or nil.
func lookupMap(data interface{}, keys ...string) map[string]interface{} {
	if m, ok := lookup(data, keys...).(map[string]interface{}); ok {
		return m
	}
	return nil
}

// lookupSlice returns the array at the key path, or nil.
func lookupSlice(data interface{}, keys ...string) []interface{} {
	if s, ok := lookup(data, keys...).([]interface{}); ok {
		return s
	}
	return nil
}

// stringValue renders a leaf value as a string. Nil becomes "" and
// floats print in plain notation, never scientific.
func stringValue(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}

// tableRows returns the array at the key path filtered to its object
// elements. Non-object entries are skipped rather than failing the
// whole table.
func tableRows(data interface{}, keys ...string) []map[string]interface{} {
	raw := lookupSlice(data, keys...)
	if raw == nil {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
