// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// SearchCriteria holds the structured fields a query is built from.
// It is constructed per call and never stored.
type SearchCriteria struct {
	// BooleanExpression is a free-text fragment using AND, OR, AND NOT and
	// proximity operators (pre/n, w/n). May be empty when Format is true.
	BooleanExpression string `json:"boolean_expression,omitempty" yaml:"boolean_expression,omitempty"`

	// Affiliation restricts results to an institution (AFFIL).
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`

	// AuthorName restricts results to an author name and its variants (AUTHOR-NAME).
	AuthorName string `json:"author_name,omitempty" yaml:"author_name,omitempty"`

	// PublicationYear is a PUBYEAR constraint starting with <, > or =
	// (e.g. "> 2015"). It is passed through unvalidated.
	PublicationYear string `json:"publication_year,omitempty" yaml:"publication_year,omitempty"`

	// Format controls clause assembly. When false BooleanExpression is used
	// verbatim and every other field is ignored.
	Format bool `json:"format" yaml:"format"`
}

// Index names an Elsevier search back-end.
type Index string

const (
	IndexScopus        Index = "scopus"
	IndexScienceDirect Index = "sciencedirect"
)

// ParseIndex validates an index name. The empty string selects Scopus.
func ParseIndex(s string) (Index, error) {
	switch Index(s) {
	case "", IndexScopus:
		return IndexScopus, nil
	case IndexScienceDirect:
		return IndexScienceDirect, nil
	default:
		return "", fmt.Errorf("unknown index %q: must be %q or %q", s, IndexScopus, IndexScienceDirect)
	}
}
