// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query builds Elsevier search query strings from structured criteria.
// Grammar reference: https://dev.elsevier.com/sc_search_tips.html
package query

import (
	"strings"
	"unicode"

	"github.com/pdiddy/elsevier-search/pkg/types"
)

// danglingAnd is the prefix left behind when the first appended clause
// follows an empty boolean expression.
const danglingAnd = " AND"

// Build returns the query string for c. With c.Format set, the affiliation,
// author and publication year clauses are appended in that order, each only
// when non-empty. Build never fails; malformed input yields a malformed
// query that the search engine will reject.
func Build(c types.SearchCriteria) string {
	q := c.BooleanExpression
	if c.Format {
		if c.Affiliation != "" {
			q += " AND AFFIL(" + c.Affiliation + ")"
		}
		if c.AuthorName != "" {
			q += " AND AUTHOR-NAME(" + c.AuthorName + ")"
		}
		if c.PublicationYear != "" {
			q += " AND PUBYEAR " + c.PublicationYear
		}
	}

	// Literal prefix check, not "was the expression empty": an expression
	// that itself starts with " AND" is stripped too.
	if strings.HasPrefix(q, danglingAnd) {
		return strings.TrimLeftFunc(q[len(danglingAnd):], unicode.IsSpace)
	}
	return q
}
