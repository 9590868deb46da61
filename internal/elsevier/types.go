// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package elsevier

import (
	"errors"
	"fmt"

	"github.com/pdiddy/elsevier-search/internal/record"
)

// searchResponse is the envelope shared by the Scopus and ScienceDirect
// search APIs. Entries are kept as raw records; mapping happens elsewhere.
type searchResponse struct {
	SearchResults searchResults `json:"search-results"`
}

type searchResults struct {
	TotalResults string             `json:"opensearch:totalResults"`
	StartIndex   string             `json:"opensearch:startIndex"`
	ItemsPerPage string             `json:"opensearch:itemsPerPage"`
	Entries      []record.RawRecord `json:"entry"`
	Links        []pageLink         `json:"link"`
}

// pageLink is one of the first/prev/self/next/last navigation links.
type pageLink struct {
	Ref  string `json:"@ref"`
	Href string `json:"@href"`
}

// serviceError is the body Elsevier returns on 4xx/5xx.
type serviceError struct {
	ServiceError struct {
		Status struct {
			StatusCode string `json:"statusCode"`
			StatusText string `json:"statusText"`
		} `json:"status"`
	} `json:"service-error"`
}

var (
	// ErrEmptyQuery is returned by Execute when the built query is empty.
	ErrEmptyQuery = errors.New("empty query")

	// ErrUnauthorized is wrapped by APIError for HTTP 401 and 403.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited is wrapped by APIError for HTTP 429 after retries.
	ErrRateLimited = errors.New("rate limited")
)

// APIError is a non-200 response from the search API.
type APIError struct {
	Index      string
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("elsevier %s search returned HTTP %d", e.Index, e.StatusCode)
	}
	return fmt.Sprintf("elsevier %s search returned HTTP %d: %s", e.Index, e.StatusCode, e.Message)
}

// Unwrap maps the status code onto a sentinel, if any.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrUnauthorized
	case 429:
		return ErrRateLimited
	default:
		return nil
	}
}
