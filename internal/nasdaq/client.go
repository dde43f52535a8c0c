package nasdaq

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "nasdaq-client/internal/errors"
	"nasdaq-client/internal/logging"
)

const (
	defaultBaseAPIURL = "https://api.nasdaq.com"
	defaultBaseWebURL = "https://www.nasdaq.com"
)

// Client performs session-authenticated GETs against the JSON API and
// maps responses into typed records. Every fetch method shares one
// degrade-to-empty contract: failures are logged and yield the empty
// value of the result type, never an error.
type Client struct {
	httpClient *http.Client
	session    *Session
	logger     zerolog.Logger
	baseAPI    string
	baseWeb    string
	now        func() time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default tuned transport.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURLs points the client at alternate API and web hosts.
func WithBaseURLs(api, web string) ClientOption {
	return func(c *Client) {
		c.baseAPI = strings.TrimSuffix(api, "/")
		c.baseWeb = strings.TrimSuffix(web, "/")
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithNow overrides the client's time source.
func WithNow(now func() time.Time) ClientOption {
	return func(c *Client) { c.now = now }
}

// NewClient creates a client around the given session.
func NewClient(session *Session, logger zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        50,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		session: session,
		logger:  logger,
		baseAPI: defaultBaseAPIURL,
		baseWeb: defaultBaseWebURL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session manager the client was built around.
func (c *Client) Session() *Session {
	return c.session
}

// getJSON performs one session-authenticated GET and decodes the JSON
// response body into a generic tree.
func (c *Client) getJSON(ctx context.Context, url string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "building request")
	}

	for k, v := range c.session.Headers(ctx) {
		// Leaving accept-encoding unset keeps net/http's transparent
		// gzip decompression active.
		if strings.EqualFold(k, "accept-encoding") {
			continue
		}
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		logging.LogAPICall(c.logger, http.MethodGet, url, 0, duration, err)
		return nil, apperrors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	logging.LogAPICall(c.logger, http.MethodGet, url, resp.StatusCode, duration, nil)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, apperrors.NewAPIError(resp.StatusCode, url, http.StatusText(resp.StatusCode))
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.Wrap(err, "decoding response")
	}
	return body, nil
}

// dataObject returns the response's data payload when it is an object.
func dataObject(body map[string]interface{}) (map[string]interface{}, error) {
	if m, ok := body["data"].(map[string]interface{}); ok {
		return m, nil
	}
	return nil, apperrors.ErrNoData
}

// fullURL absolutizes site-relative links against the web host.
func (c *Client) fullURL(u string) string {
	if strings.HasPrefix(u, "/") {
		return c.baseWeb + u
	}
	return u
}
