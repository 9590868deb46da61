package types

import "time"

// HTTPConfig holds shared HTTP settings for the Elsevier client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "elsevier-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for a single search invocation.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the content API base URL.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// RateLimit is the maximum requests per second sent to the API.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`

	// Index selects the back-end: scopus (default) or sciencedirect.
	Index Index `json:"index" yaml:"index"`

	// EntryCount is the page size requested when GetAllResults is false (default 25).
	EntryCount int `json:"entry_count" yaml:"entry_count"`

	// GetAllResults follows next-page links until the result set is
	// exhausted or the 5000-result API cap is reached.
	GetAllResults bool `json:"get_all_results" yaml:"get_all_results"`
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	// Level is the minimum level (trace, debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// Format is json or console.
	Format string `json:"format" yaml:"format"`
}
