// Package browser harvests Nasdaq session cookies with a headless
// Chrome instance driven over the DevTools protocol.
package browser

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	apperrors "nasdaq-client/internal/errors"
	"nasdaq-client/internal/nasdaq"
)

const (
	// DefaultHomepage is the page visited to collect session cookies.
	DefaultHomepage = "https://www.nasdaq.com"

	// DefaultSettleTime is how long the homepage is left running before
	// the jar is read. Nasdaq's bot checks set their cookies within this
	// window.
	DefaultSettleTime = 10 * time.Second

	// nudgeSettleTime is the extra wait after the scroll nudge.
	nudgeSettleTime = 2 * time.Second

	defaultWindowWidth  = 1920
	defaultWindowHeight = 1080
)

// DefaultUserAgent is the identity the harvest browser presents. The
// header set replayed on API calls carries its own user agent.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"

// maskWebdriverJS hides navigator.webdriver from page scripts. It is
// installed as a new-document script so it is active before any page
// code runs.
const maskWebdriverJS = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`

// nudgeScrollJS produces a small scroll to wake consent and analytics
// scripts that write their cookies lazily.
const nudgeScrollJS = `window.scrollTo(0, 100);`

// Chrome implements nasdaq.CookieSource with a throwaway headless
// Chrome. Every Cookies call launches a fresh browser, loads the
// homepage, waits for its scripts to settle, and reads the cookie jar
// over CDP.
type Chrome struct {
	homepage     string
	userAgent    string
	headless     bool
	settleTime   time.Duration
	windowWidth  int
	windowHeight int
	logger       zerolog.Logger
}

// Option configures a Chrome source.
type Option func(*Chrome)

// WithHomepage overrides the page visited during the harvest.
func WithHomepage(url string) Option {
	return func(c *Chrome) { c.homepage = url }
}

// WithUserAgent overrides the browser user agent.
func WithUserAgent(ua string) Option {
	return func(c *Chrome) { c.userAgent = ua }
}

// WithHeadless toggles headless mode. Running headful helps when
// debugging a failing harvest.
func WithHeadless(headless bool) Option {
	return func(c *Chrome) { c.headless = headless }
}

// WithSettleTime overrides the wait between navigation and the jar
// read.
func WithSettleTime(d time.Duration) Option {
	return func(c *Chrome) { c.settleTime = d }
}

// WithWindowSize overrides the browser window dimensions.
func WithWindowSize(width, height int) Option {
	return func(c *Chrome) {
		c.windowWidth = width
		c.windowHeight = height
	}
}

// NewChrome returns a Chrome cookie source with production defaults.
func NewChrome(logger zerolog.Logger, opts ...Option) *Chrome {
	c := &Chrome{
		homepage:     DefaultHomepage,
		userAgent:    DefaultUserAgent,
		headless:     true,
		settleTime:   DefaultSettleTime,
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		logger:       logger.With().Str("component", "browser").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cookies launches Chrome, loads the homepage, and returns the cookie
// jar as name/value pairs. An empty jar is not an error; the caller
// decides how to proceed without cookies.
func (c *Chrome) Cookies(ctx context.Context) ([]nasdaq.Cookie, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(c.windowWidth, c.windowHeight),
		chromedp.UserAgent(c.userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			c.logger.Debug().Msgf(format, args...)
		}),
	)
	defer cancelBrowser()

	start := time.Now()
	c.logger.Debug().
		Str("homepage", c.homepage).
		Bool("headless", c.headless).
		Msg("Launching Chrome for cookie harvest")

	err := chromedp.Run(browserCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(maskWebdriverJS).Do(ctx)
			return err
		}),
		chromedp.Navigate(c.homepage),
		chromedp.Sleep(c.settleTime),
	)
	if err != nil {
		return nil, apperrors.Wrapf(err, "loading %s", c.homepage)
	}

	// Best effort; a failed nudge still leaves a usable jar.
	if err := chromedp.Run(browserCtx,
		chromedp.Evaluate(nudgeScrollJS, nil),
		chromedp.Sleep(nudgeSettleTime),
	); err != nil {
		c.logger.Debug().Err(err).Msg("Scroll nudge failed")
	}

	var raw []*network.Cookie
	err = chromedp.Run(browserCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		cookies, err := network.GetCookies().WithURLs([]string{c.homepage}).Do(ctx)
		if err != nil {
			return err
		}
		raw = cookies
		return nil
	}))
	if err != nil {
		return nil, apperrors.Wrap(err, "reading cookie jar")
	}

	cookies := make([]nasdaq.Cookie, 0, len(raw))
	for _, ck := range raw {
		cookies = append(cookies, nasdaq.Cookie{Name: ck.Name, Value: ck.Value})
	}

	c.logger.Debug().
		Int("cookies", len(cookies)).
		Dur("duration", time.Since(start)).
		Msg("Cookie harvest finished")
	return cookies, nil
}
