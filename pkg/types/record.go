// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the query builder,
// the record mapper, the Elsevier client and the CLI.
package types

// OriginScopus is the origin stamped on every normalized record.
const OriginScopus = "Scopus"

// Record is the fixed-shape output record built from one search hit.
// Fields are declared in alphabetical order so that encoding/json emits
// sorted keys. Build values with NewRecord; a Record is never mutated after
// construction.
type Record struct {
	// Author is the first author as reported by dc:creator.
	Author string `json:"author" yaml:"author"`

	// Date is the cover date exactly as supplied by the source (e.g. "2020-01-01").
	Date string `json:"date" yaml:"date"`

	// Origin names the database the record came from. Always "Scopus".
	Origin string `json:"origin" yaml:"origin"`

	// Title is the document title.
	Title string `json:"title" yaml:"title"`

	// URI is the Scopus landing page link (the link whose @ref is "scopus").
	URI string `json:"uri" yaml:"uri"`
}

// NewRecord returns a fully-formed Record. Empty arguments stay empty.
func NewRecord(title, author, date, uri string) Record {
	return Record{
		Author: author,
		Date:   date,
		Origin: OriginScopus,
		Title:  title,
		URI:    uri,
	}
}
