package models

import "time"

// SessionState is a point-in-time snapshot of the session manager's
// header and cookie state. LastRefresh stays nil until the first
// refresh completes.
type SessionState struct {
	Headers     map[string]string `json:"headers"`
	Cookie      string            `json:"cookie"`
	LastRefresh *time.Time        `json:"lastRefresh"`
	Stale       bool              `json:"stale"`
}

// HasCookie reports whether the session currently holds a cookie header.
func (s SessionState) HasCookie() bool {
	return s.Cookie != ""
}

// Age returns the time elapsed since the last refresh, or zero if no
// refresh has happened yet.
func (s SessionState) Age(now time.Time) time.Duration {
	if s.LastRefresh == nil {
		return 0
	}
	return now.Sub(*s.LastRefresh)
}
