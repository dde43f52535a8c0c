// Package nasdaq implements the session-managed client for Nasdaq's
// JSON API: cookie lifecycle, transport, and the per-category endpoint
// fetchers.
package nasdaq

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"nasdaq-client/internal/logging"
	"nasdaq-client/internal/models"
)

// DefaultRefreshInterval is how long harvested cookies stay fresh.
const DefaultRefreshInterval = 1800 * time.Second

// Cookie is one browser cookie as a name/value pair.
type Cookie struct {
	Name  string
	Value string
}

// CookieSource supplies the current cookie jar of a browser session.
type CookieSource interface {
	Cookies(ctx context.Context) ([]Cookie, error)
}

// defaultHeaders returns the browser-equivalent header set replayed on
// every API call. The cookie header is absent until the first refresh.
func defaultHeaders() map[string]string {
	return map[string]string{
		"accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
		"accept-encoding":           "gzip, deflate, br, zstd",
		"accept-language":           "en-GB,en;q=0.9,en-US;q=0.8",
		"cache-control":             "max-age=0",
		"dnt":                       "1",
		"priority":                  "u=0, i",
		"sec-ch-ua":                 `"Not A(Brand";v="8", "Chromium";v="132", "Microsoft Edge";v="132"`,
		"sec-ch-ua-mobile":          "?0",
		"sec-ch-ua-platform":        `"macOS"`,
		"sec-fetch-dest":            "document",
		"sec-fetch-mode":            "navigate",
		"sec-fetch-site":            "none",
		"sec-fetch-user":            "?1",
		"upgrade-insecure-requests": "1",
		"user-agent":                "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36 Edg/132.0.0.0",
	}
}

// Session maintains one reusable header set including the session
// cookie, refreshed through a CookieSource no more often than the
// configured interval. All state is mutex-guarded so concurrent
// fetchers cannot trigger overlapping browser launches.
type Session struct {
	mu          sync.RWMutex
	headers     map[string]string
	lastRefresh time.Time
	interval    time.Duration
	source      CookieSource
	logger      zerolog.Logger
	now         func() time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRefreshInterval overrides the default staleness interval.
func WithRefreshInterval(d time.Duration) SessionOption {
	return func(s *Session) { s.interval = d }
}

// WithClock overrides the session's time source.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession creates a session around the given cookie source.
func NewSession(source CookieSource, logger zerolog.Logger, opts ...SessionOption) *Session {
	s := &Session{
		headers:  defaultHeaders(),
		interval: DefaultRefreshInterval,
		source:   source,
		logger:   logging.WithOperation(logger, "session"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NeedsRefresh reports whether the cookie set is stale. It is true
// before the first refresh and again once the interval elapses.
func (s *Session) NeedsRefresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.needsRefreshLocked()
}

func (s *Session) needsRefreshLocked() bool {
	if s.lastRefresh.IsZero() {
		return true
	}
	return s.now().Sub(s.lastRefresh) > s.interval
}

// Headers returns a copy of the current header set, refreshing the
// cookie first when stale. Callers may mutate the returned map freely.
func (s *Session) Headers(ctx context.Context) map[string]string {
	s.refresh(ctx, false)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.headers))
	for k, v := range s.headers {
		out[k] = v
	}
	return out
}

// Refresh forces a cookie refresh regardless of staleness. It always
// reports success: a failing source is logged, the session still marks
// itself fresh, and the next API call surfaces any real problem.
func (s *Session) Refresh(ctx context.Context) bool {
	return s.refresh(ctx, true)
}

func (s *Session) refresh(ctx context.Context, force bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !force && !s.needsRefreshLocked() {
		return true
	}

	start := time.Now()
	cookies, err := s.harvest(ctx)
	duration := time.Since(start)

	// The timestamp advances on every outcome so callers are never
	// blocked behind a repeatedly failing browser.
	s.lastRefresh = s.now()

	if err != nil {
		logging.LogSessionRefresh(s.logger, 0, duration, err)
		return true
	}

	cookie := joinCookies(cookies)
	if cookie == "" {
		delete(s.headers, "cookie")
		logging.LogSessionRefresh(s.logger, 0, duration, nil)
		return true
	}

	s.headers["cookie"] = cookie
	logging.LogSessionRefresh(s.logger, len(cookies), duration, nil)
	return true
}

func (s *Session) harvest(ctx context.Context) ([]Cookie, error) {
	if s.source == nil {
		return nil, errors.New("no cookie source configured")
	}
	return s.source.Cookies(ctx)
}

// State returns a snapshot of the current session state.
func (s *Session) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	headers := make(map[string]string, len(s.headers))
	for k, v := range s.headers {
		headers[k] = v
	}
	st := models.SessionState{
		Headers: headers,
		Cookie:  s.headers["cookie"],
		Stale:   s.needsRefreshLocked(),
	}
	if !s.lastRefresh.IsZero() {
		t := s.lastRefresh
		st.LastRefresh = &t
	}
	return st
}

// joinCookies renders the jar as a single cookie header value. Pairs
// with an empty name or value are skipped.
func joinCookies(cookies []Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		if c.Name == "" || c.Value == "" {
			continue
		}
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}
