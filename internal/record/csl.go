// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/elsevier-search/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML form, consumable by Pandoc
// and reference managers.
type CSLItem struct {
	ID     string    `yaml:"id"`
	Type   string    `yaml:"type"`
	Title  string    `yaml:"title"`
	Author []CSLName `yaml:"author,omitempty"`
	Issued *CSLDate  `yaml:"issued,omitempty"`
	URL    string    `yaml:"URL,omitempty"`
	Source string    `yaml:"source,omitempty"`
}

// CSLName is a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes records as a CSL-YAML list to w.
func FormatCSL(w io.Writer, records []types.Record) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(i, r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(i int, r types.Record) CSLItem {
	item := CSLItem{
		ID:     cslID(i, r.URI),
		Type:   "article-journal",
		Title:  r.Title,
		URL:    r.URI,
		Source: r.Origin,
	}
	if r.Author != "" {
		item.Author = []CSLName{parseCreator(r.Author)}
	}
	if t, err := time.Parse("2006-01-02", r.Date); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{t.Year(), int(t.Month()), t.Day()}}}
	}
	return item
}

// cslID prefers the Scopus document number carried in the scp parameter of
// the landing page URI and falls back to a positional key.
func cslID(i int, uri string) string {
	if u, err := url.Parse(uri); err == nil {
		if scp := u.Query().Get("scp"); scp != "" {
			return "scopus-" + scp
		}
	}
	return fmt.Sprintf("item-%d", i+1)
}

// parseCreator splits a Scopus creator ("Surname I." or "Surname, Given")
// into CSL family/given parts. Single tokens use the literal field.
func parseCreator(name string) CSLName {
	name = strings.TrimSpace(name)
	if family, given, ok := strings.Cut(name, ","); ok {
		return CSLName{Family: strings.TrimSpace(family), Given: strings.TrimSpace(given)}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{Family: name[:idx], Given: name[idx+1:]}
}
