// Package api talks to the calendar backend.
//
// Requests are retried with exponential backoff. The low-level request path
// returns errors; the Fetch* methods log them and hand back a sentinel (nil,
// or an empty slice for news) so callers can tell "no data" from a crash.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/april2040/singularity-calendar/internal/calendar"
	"github.com/april2040/singularity-calendar/internal/dateutil"
	"github.com/april2040/singularity-calendar/internal/retry"
)

const (
	DefaultBaseURL    = "http://localhost:3000"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 2
)

// Endpoints are the path suffixes appended to the base URL.
type Endpoints struct {
	Today   string
	History string
	Weekly  string
	News    string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Today:   "/api/today",
		History: "/api/history",
		Weekly:  "/api/weekly",
		News:    "/api/news",
	}
}

type Config struct {
	BaseURL    string
	Endpoints  Endpoints
	Timeout    time.Duration
	MaxRetries int
	Breaker    BreakerConfig
}

func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Endpoints:  DefaultEndpoints(),
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
	}
}

// Client fetches calendar data from the backend.
type Client struct {
	cfg     Config
	http    *http.Client
	policy  retry.Policy
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithSleep replaces the backoff wait, mainly for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) { c.policy.Sleep = sleep }
}

func New(cfg Config, opts ...Option) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Endpoints.Today == "" {
		cfg.Endpoints.Today = def.Endpoints.Today
	}
	if cfg.Endpoints.History == "" {
		cfg.Endpoints.History = def.Endpoints.History
	}
	if cfg.Endpoints.Weekly == "" {
		cfg.Endpoints.Weekly = def.Endpoints.Weekly
	}
	if cfg.Endpoints.News == "" {
		cfg.Endpoints.News = def.Endpoints.News
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = def.MaxRetries
	}

	c := &Client{
		cfg:    cfg,
		http:   &http.Client{},
		logger: zap.NewNop(),
		policy: retry.Policy{
			MaxRetries: cfg.MaxRetries,
			Delay:      retry.Exponential(time.Second),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.policy.OnRetry = func(attempt int, delay time.Duration, err error) {
		c.logger.Debug("request failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("wait", delay),
			zap.Error(err))
	}
	c.breaker = newBreaker(cfg.Breaker, c.logger)
	return c
}

// Config returns the effective configuration after defaults.
func (c *Client) Config() Config {
	return c.cfg
}

// GetToday requests the calendar entry for date. The returned entry is
// validated; an incomplete payload is a *DeserializationError.
func (c *Client) GetToday(ctx context.Context, date time.Time) (*calendar.Entry, error) {
	params := url.Values{"date": {dateutil.DayKey(date)}}
	return getJSON(ctx, c, c.cfg.Endpoints.Today, params, func(e *calendar.Entry) error {
		return e.Validate()
	})
}

func (c *Client) GetHistoryBenchmark(ctx context.Context, eventType string) (map[string]any, error) {
	params := url.Values{"type": {eventType}}
	v, err := getJSON[map[string]any](ctx, c, c.cfg.Endpoints.History, params, nil)
	if err != nil {
		return nil, err
	}
	return *v, nil
}

func (c *Client) GetWeeklyTheme(ctx context.Context, week int) (map[string]any, error) {
	params := url.Values{"week": {strconv.Itoa(week)}}
	v, err := getJSON[map[string]any](ctx, c, c.cfg.Endpoints.Weekly, params, nil)
	if err != nil {
		return nil, err
	}
	return *v, nil
}

// GetNews returns the backend's news list. Elements are passed through
// as decoded: usually objects, sometimes bare strings.
func (c *Client) GetNews(ctx context.Context) ([]any, error) {
	v, err := getJSON[[]any](ctx, c, c.cfg.Endpoints.News, nil, nil)
	if err != nil {
		return nil, err
	}
	return *v, nil
}

// FetchToday returns the backend's entry for date, or nil if it could not
// be fetched.
func (c *Client) FetchToday(ctx context.Context, date time.Time) *calendar.Entry {
	e, err := c.GetToday(ctx, date)
	if err != nil {
		c.logger.Warn("fetching today data failed", zap.String("date", dateutil.DayKey(date)), zap.Error(err))
		return nil
	}
	return e
}

// FetchHistoryBenchmark returns the history benchmark object or nil.
func (c *Client) FetchHistoryBenchmark(ctx context.Context, eventType string) map[string]any {
	v, err := c.GetHistoryBenchmark(ctx, eventType)
	if err != nil {
		c.logger.Warn("fetching history benchmark failed", zap.String("type", eventType), zap.Error(err))
		return nil
	}
	return v
}

// FetchWeeklyTheme returns the weekly theme object or nil.
func (c *Client) FetchWeeklyTheme(ctx context.Context, week int) map[string]any {
	v, err := c.GetWeeklyTheme(ctx, week)
	if err != nil {
		c.logger.Warn("fetching weekly theme failed", zap.Int("week", week), zap.Error(err))
		return nil
	}
	return v
}

// FetchNews returns the news list. Unlike the other fetchers it never
// returns nil: failures yield an empty slice.
func (c *Client) FetchNews(ctx context.Context) []any {
	v, err := c.GetNews(ctx)
	if err != nil {
		c.logger.Warn("fetching news failed", zap.Error(err))
		return []any{}
	}
	if v == nil {
		return []any{}
	}
	return v
}

func (c *Client) buildURL(endpoint string, params url.Values) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL + endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// getJSON performs a retried GET and decodes the body into a fresh T on
// every attempt. check, if non-nil, runs on the decoded value and its
// failure counts as a deserialization error.
func getJSON[T any](ctx context.Context, c *Client, endpoint string, params url.Values, check func(*T) error) (*T, error) {
	target, err := c.buildURL(endpoint, params)
	if err != nil {
		return nil, err
	}

	run := func() (*T, error) {
		return retry.Do(ctx, c.policy, func(ctx context.Context) (*T, error) {
			return getOnce(ctx, c, target, check)
		})
	}

	if c.breaker == nil {
		return run()
	}
	out, err := c.breaker.Execute(func() (any, error) { return run() })
	if err != nil {
		return nil, translateBreakerErr(err)
	}
	return out.(*T), nil
}

func getOnce[T any](ctx context.Context, c *Client, target string, check func(*T) error) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &HTTPStatusError{URL: target, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	v := new(T)
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		if ctx.Err() != nil {
			return nil, &TransportError{URL: target, Err: ctx.Err()}
		}
		return nil, &DeserializationError{URL: target, Err: err}
	}
	if check != nil {
		if err := check(v); err != nil {
			return nil, &DeserializationError{URL: target, Err: err}
		}
	}
	return v, nil
}
