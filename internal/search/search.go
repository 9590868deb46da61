// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search composes a single search: build the query string, execute
// it through a Searcher, and map each raw entry to a normalized record.
package search

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/elsevier-search/internal/query"
	"github.com/pdiddy/elsevier-search/internal/record"
	"github.com/pdiddy/elsevier-search/pkg/types"
)

// Searcher executes a query string against an index and returns the raw
// entries in result order. *elsevier.Client is the production implementation.
type Searcher interface {
	Execute(ctx context.Context, query string, index types.Index) ([]record.RawRecord, error)
}

// ExecutionError wraps any failure reported by the Searcher. The underlying
// error is available through errors.As and errors.Is.
type ExecutionError struct {
	Query string
	Index types.Index
	Err   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("search %s for %q: %v", e.Index, e.Query, e.Err)
}

// Unwrap returns the Searcher's error.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Service runs searches with an injected Searcher.
type Service struct {
	searcher Searcher
	log      zerolog.Logger
}

// NewService returns a Service that executes queries through s.
func NewService(s Searcher, log zerolog.Logger) *Service {
	return &Service{searcher: s, log: log}
}

// Search builds the query for c, executes it against index and maps every
// entry. Searcher failures come back as *ExecutionError; a malformed entry
// fails the call with a *record.MalformedRecordError.
func (s *Service) Search(ctx context.Context, c types.SearchCriteria, index types.Index) ([]types.Record, error) {
	q := query.Build(c)
	s.log.Debug().Str("query", q).Str("index", string(index)).Msg("executing search")

	raws, err := s.searcher.Execute(ctx, q, index)
	if err != nil {
		return nil, &ExecutionError{Query: q, Index: index, Err: err}
	}

	records, err := record.MapAll(raws)
	if err != nil {
		return nil, fmt.Errorf("mapping %s results: %w", index, err)
	}
	return records, nil
}

// DocSearch runs Search and returns the records as a JSON array string.
func (s *Service) DocSearch(ctx context.Context, c types.SearchCriteria, index types.Index) (string, error) {
	records, err := s.Search(ctx, c, index)
	if err != nil {
		return "", err
	}
	return record.Marshal(records)
}
