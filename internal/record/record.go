// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record maps raw Elsevier search entries to normalized records and
// renders record lists as JSON, tables, or CSL-YAML.
//
// Mapping is strict: absent keys (or JSON null) leave the field empty, but a
// value of the wrong shape fails the whole record with a MalformedRecordError.
package record

import (
	"errors"
	"fmt"

	"github.com/pdiddy/elsevier-search/pkg/types"
)

// RawRecord is one search hit as decoded from the API response by
// encoding/json: nested objects are map[string]any, arrays are []any.
type RawRecord map[string]any

// Source keys read from a raw entry.
const (
	keyTitle     = "dc:title"
	keyCreator   = "dc:creator"
	keyCoverDate = "prism:coverDate"
	keyLink      = "link"
	keyRef       = "@ref"
	keyHref      = "@href"

	scopusRef = "scopus"
)

// ErrMalformedRecord is the sentinel wrapped by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports a raw entry whose value under Key does not
// have the expected shape.
type MalformedRecordError struct {
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: %s: %s", e.Key, e.Reason)
}

// Unwrap returns ErrMalformedRecord for use with errors.Is.
func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// Map extracts title, author, cover date and Scopus link from raw.
func Map(raw RawRecord) (types.Record, error) {
	title, err := stringField(raw, keyTitle)
	if err != nil {
		return types.Record{}, err
	}
	author, err := stringField(raw, keyCreator)
	if err != nil {
		return types.Record{}, err
	}
	date, err := stringField(raw, keyCoverDate)
	if err != nil {
		return types.Record{}, err
	}
	uri, err := scopusLink(raw)
	if err != nil {
		return types.Record{}, err
	}
	return types.NewRecord(title, author, date, uri), nil
}

// MapAll maps raws in order and stops at the first malformed entry.
func MapAll(raws []RawRecord) ([]types.Record, error) {
	records := make([]types.Record, 0, len(raws))
	for i, raw := range raws {
		r, err := Map(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// stringField returns the string under key, or "" when absent or null.
func stringField(raw RawRecord, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedRecordError{Key: key, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
	return s, nil
}

// scopusLink scans the link sequence in order and returns the @href of the
// first entry whose @ref is "scopus" and that carries an @href.
func scopusLink(raw RawRecord) (string, error) {
	v, ok := raw[keyLink]
	if !ok || v == nil {
		return "", nil
	}
	links, ok := v.([]any)
	if !ok {
		return "", &MalformedRecordError{Key: keyLink, Reason: fmt.Sprintf("expected sequence, got %T", v)}
	}

	for i, item := range links {
		entry, ok := asMap(item)
		if !ok {
			return "", &MalformedRecordError{
				Key:    fmt.Sprintf("%s[%d]", keyLink, i),
				Reason: fmt.Sprintf("expected mapping, got %T", item),
			}
		}
		if ref, _ := entry[keyRef].(string); ref != scopusRef {
			continue
		}
		href, ok := entry[keyHref]
		if !ok || href == nil {
			continue
		}
		s, ok := href.(string)
		if !ok {
			return "", &MalformedRecordError{
				Key:    fmt.Sprintf("%s[%d].%s", keyLink, i, keyHref),
				Reason: fmt.Sprintf("expected string, got %T", href),
			}
		}
		return s, nil
	}
	return "", nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case RawRecord:
		return m, true
	default:
		return nil, false
	}
}
