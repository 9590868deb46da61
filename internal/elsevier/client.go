// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package elsevier is a client for the Elsevier search APIs (Scopus and
// ScienceDirect). It owns authentication headers, pagination, client-side
// pacing and 429 retries, and returns entries as raw records.
package elsevier

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

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/pdiddy/elsevier-search/internal/httputil"
	"github.com/pdiddy/elsevier-search/internal/record"
	"github.com/pdiddy/elsevier-search/internal/search"
	"github.com/pdiddy/elsevier-search/pkg/types"
)

const (
	// DefaultBaseURL is the Elsevier content API base URL.
	DefaultBaseURL = "https://api.elsevier.com/content"

	// DefaultRateLimit is the default pacing (requests per second).
	DefaultRateLimit = 5.0

	// DefaultBurstSize is the default limiter burst.
	DefaultBurstSize = 5

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultEntryCount is the page size when none is configured.
	DefaultEntryCount = 25

	// MaxResults is the most entries the API will page through for one query.
	MaxResults = 5000

	// DefaultUserAgent identifies this client.
	DefaultUserAgent = "elsevier-search/0.1"

	apiKeyHeader    = "X-ELS-APIKey"
	instTokenHeader = "X-ELS-Insttoken"

	maxBodyBytes  = 10 << 20
	maxErrorBytes = 1 << 16
)

// Config holds configuration for the client.
type Config struct {
	// BaseURL is the content API base URL.
	BaseURL string

	// APIKey is the Elsevier API key. Required.
	APIKey string

	// InstToken is an optional institution token.
	InstToken string

	// UserAgent is sent with every request.
	UserAgent string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// RateLimit is the maximum requests per second.
	RateLimit float64

	// BurstSize is the maximum burst of requests allowed.
	BurstSize int

	// EntryCount is the page size (count parameter).
	EntryCount int

	// GetAllResults follows next links up to MaxResults entries.
	GetAllResults bool

	// MaxRetries bounds 429 retries per page; 0 uses the httputil default.
	MaxRetries int
}

// NewConfig builds a client Config from search settings and credentials.
// The index is not part of Config; it is passed to Execute.
func NewConfig(sc types.SearchConfig, apiKey, instToken string) Config {
	return Config{
		BaseURL:       sc.BaseURL,
		APIKey:        apiKey,
		InstToken:     instToken,
		UserAgent:     sc.UserAgent,
		Timeout:       sc.Timeout,
		RateLimit:     sc.RateLimit,
		EntryCount:    sc.EntryCount,
		GetAllResults: sc.GetAllResults,
	}
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RateLimit == 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.BurstSize == 0 {
		c.BurstSize = DefaultBurstSize
	}
	if c.EntryCount <= 0 {
		c.EntryCount = DefaultEntryCount
	}
}

// Client executes searches against the Elsevier API.
type Client struct {
	config  Config
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

var _ search.Searcher = (*Client)(nil)

// New creates a client with its own http.Client.
func New(cfg Config, log zerolog.Logger) *Client {
	cfg.applyDefaults()
	return NewWithHTTPClient(cfg, &http.Client{Timeout: cfg.Timeout}, log)
}

// NewWithHTTPClient creates a client around hc. Useful for tests.
func NewWithHTTPClient(cfg Config, hc *http.Client, log zerolog.Logger) *Client {
	cfg.applyDefaults()
	return &Client{
		config:  cfg,
		http:    hc,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.BurstSize),
		log:     log,
	}
}

// Execute runs query against index and returns the raw entries in API
// order. With GetAllResults it pages through next links until the result
// set is exhausted or MaxResults entries have been collected.
func (c *Client) Execute(ctx context.Context, query string, index types.Index) ([]record.RawRecord, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	index, err := types.ParseIndex(string(index))
	if err != nil {
		return nil, err
	}

	pageURL, err := c.searchURL(query, index)
	if err != nil {
		return nil, err
	}

	var (
		entries []record.RawRecord
		total   int
	)
	for page := 1; pageURL != ""; page++ {
		resp, err := c.fetch(ctx, pageURL, index)
		if err != nil {
			return nil, err
		}
		if page == 1 {
			total, _ = strconv.Atoi(resp.SearchResults.TotalResults)
		}

		for _, e := range resp.SearchResults.Entries {
			if isEmptySentinel(e) {
				continue
			}
			entries = append(entries, e)
		}

		c.log.Debug().
			Int("page", page).
			Int("collected", len(entries)).
			Int("total", total).
			Msg("fetched page")

		if !c.config.GetAllResults || len(entries) >= MaxResults || len(resp.SearchResults.Entries) == 0 {
			break
		}
		pageURL = nextLink(resp.SearchResults.Links)
		if pageURL != "" && !c.sameHost(pageURL) {
			c.log.Warn().
				Str("next", pageURL).
				Msg("next link points off the API host, stopping pagination")
			break
		}
	}

	if len(entries) > MaxResults {
		entries = entries[:MaxResults]
	}

	c.log.Info().
		Str("index", string(index)).
		Int("results", len(entries)).
		Int("total", total).
		Msg("search returned results")
	return entries, nil
}

// searchURL builds the first page URL.
func (c *Client) searchURL(query string, index types.Index) (string, error) {
	u, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/search/" + string(index)

	params := url.Values{}
	params.Set("query", query)
	params.Set("count", strconv.Itoa(c.config.EntryCount))
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// fetch waits for the limiter, performs one GET and decodes the envelope.
func (c *Client) fetch(ctx context.Context, pageURL string, index types.Index) (*searchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.config.APIKey)
	if c.config.InstToken != "" {
		req.Header.Set(instTokenHeader, c.config.InstToken)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.config.MaxRetries, c.log)
	if err != nil {
		return nil, fmt.Errorf("elsevier %s request: %w", index, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return nil, &APIError{
			Index:      string(index),
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}

	var sr searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", index, err)
	}
	return &sr, nil
}

// sameHost reports whether rawURL has the scheme and host of the configured
// base URL. The API key is only ever sent there.
func (c *Client) sameHost(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	base, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, base.Scheme) && strings.EqualFold(u.Host, base.Host)
}

// nextLink returns the href of the "next" navigation link, or "".
func nextLink(links []pageLink) string {
	for _, l := range links {
		if l.Ref == "next" {
			return l.Href
		}
	}
	return ""
}

// isEmptySentinel reports whether e is the placeholder entry the API
// returns for an empty result set ({"error": "Result set was empty"}).
func isEmptySentinel(e record.RawRecord) bool {
	_, ok := e["error"]
	return ok
}

// errorMessage extracts statusText from a service-error body, falling back
// to the trimmed body.
func errorMessage(body []byte) string {
	var se serviceError
	if err := json.Unmarshal(body, &se); err == nil {
		if text := se.ServiceError.Status.StatusText; text != "" {
			return text
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}
