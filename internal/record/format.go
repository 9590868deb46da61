// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/elsevier-search/pkg/types"
)

const jsonIndent = "    "

// FormatJSON writes records as a JSON array of objects with sorted keys and
// four-space indentation. HTML characters are left unescaped so links keep
// their query strings readable. A nil slice is written as [].
func FormatJSON(w io.Writer, records []types.Record) error {
	if records == nil {
		records = []types.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// Marshal returns the FormatJSON rendering of records as a single string
// without the trailing newline.
func Marshal(records []types.Record) (string, error) {
	var buf bytes.Buffer
	if err := FormatJSON(&buf, records); err != nil {
		return "", fmt.Errorf("encoding records: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// FormatTable writes records as a human-readable table to w.
func FormatTable(w io.Writer, records []types.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-10s  %s\n", "#", "Title", "Author", "Date", "URI")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range records {
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-10s  %s\n",
			i+1, truncate(r.Title, 60), truncate(r.Author, 20), r.Date, r.URI)
	}

	fmt.Fprintf(w, "\n%d results\n", len(records))
}

// truncate shortens s to at most max runes so multi-byte characters are
// never split.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
