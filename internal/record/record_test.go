// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/elsevier-search/pkg/types"
)

func TestMapFullEntry(t *testing.T) {
	raw := RawRecord{
		"dc:title":        "T",
		"dc:creator":      "A",
		"prism:coverDate": "2020-01-01",
		"link": []any{
			map[string]any{"@ref": "self", "@href": "x"},
			map[string]any{"@ref": "scopus", "@href": "http://scopus/1"},
		},
	}

	got, err := Map(raw)
	require.NoError(t, err)
	assert.Equal(t, types.Record{
		Title:  "T",
		Author: "A",
		Date:   "2020-01-01",
		URI:    "http://scopus/1",
		Origin: "Scopus",
	}, got)
}

func TestMapEmptyEntry(t *testing.T) {
	got, err := Map(RawRecord{})
	require.NoError(t, err)
	assert.Equal(t, types.Record{Origin: "Scopus"}, got)
}

func TestMapLinks(t *testing.T) {
	tests := []struct {
		name  string
		links []any
		want  string
	}{
		{
			name:  "first scopus match wins",
			links: []any{map[string]any{"@ref": "scopus", "@href": "first"}, map[string]any{"@ref": "scopus", "@href": "second"}},
			want:  "first",
		},
		{
			name:  "scopus entry without href is skipped",
			links: []any{map[string]any{"@ref": "scopus"}, map[string]any{"@ref": "scopus", "@href": "second"}},
			want:  "second",
		},
		{
			name:  "entry without ref is skipped",
			links: []any{map[string]any{"@href": "orphan"}, map[string]any{"@ref": "scopus", "@href": "ok"}},
			want:  "ok",
		},
		{
			name:  "no scopus link",
			links: []any{map[string]any{"@ref": "self", "@href": "x"}, map[string]any{"@ref": "author-affiliation", "@href": "y"}},
			want:  "",
		},
		{
			name:  "empty sequence",
			links: []any{},
			want:  "",
		},
		{
			name:  "null href is absent",
			links: []any{map[string]any{"@ref": "scopus", "@href": nil}},
			want:  "",
		},
		{
			name:  "non-string ref never matches",
			links: []any{map[string]any{"@ref": 7, "@href": "x"}},
			want:  "",
		},
		{
			name:  "RawRecord entries are accepted",
			links: []any{RawRecord{"@ref": "scopus", "@href": "raw"}},
			want:  "raw",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Map(RawRecord{"link": tt.links})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.URI)
		})
	}
}

func TestMapNullFieldsAreAbsent(t *testing.T) {
	got, err := Map(RawRecord{"dc:title": nil, "dc:creator": nil, "prism:coverDate": nil, "link": nil})
	require.NoError(t, err)
	assert.Equal(t, types.NewRecord("", "", "", ""), got)
}

func TestMapMalformed(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawRecord
		wantKey string
	}{
		{"numeric title", RawRecord{"dc:title": 42.0}, "dc:title"},
		{"object creator", RawRecord{"dc:creator": map[string]any{"$": "x"}}, "dc:creator"},
		{"array cover date", RawRecord{"prism:coverDate": []any{"2020"}}, "prism:coverDate"},
		{"link not a sequence", RawRecord{"link": "http://x"}, "link"},
		{"link entry not a mapping", RawRecord{"link": []any{"http://x"}}, "link[0]"},
		{"scopus href not a string", RawRecord{"link": []any{
			map[string]any{"@ref": "self", "@href": "x"},
			map[string]any{"@ref": "scopus", "@href": 1.0},
		}}, "link[1].@href"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Map(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRecord)

			var mre *MalformedRecordError
			require.True(t, errors.As(err, &mre))
			assert.Equal(t, tt.wantKey, mre.Key)
		})
	}
}

func TestMapDecodedJSON(t *testing.T) {
	body := `{
		"dc:title": "Underwater simulation of AUVs",
		"dc:creator": "Smith J.",
		"prism:coverDate": "2019-05-01",
		"citedby-count": "3",
		"link": [
			{"@_fa": "true", "@ref": "self", "@href": "https://api.elsevier.com/content/abstract/scopus_id/1"},
			{"@_fa": "true", "@ref": "scopus", "@href": "https://www.scopus.com/inward/record.uri?partnerID=HzOxMe3b&scp=1&origin=inward"}
		]
	}`
	var raw RawRecord
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	got, err := Map(raw)
	require.NoError(t, err)
	assert.Equal(t, "Underwater simulation of AUVs", got.Title)
	assert.Equal(t, "Smith J.", got.Author)
	assert.Equal(t, "2019-05-01", got.Date)
	assert.Equal(t, "https://www.scopus.com/inward/record.uri?partnerID=HzOxMe3b&scp=1&origin=inward", got.URI)
}

func TestMapAll(t *testing.T) {
	raws := []RawRecord{
		{"dc:title": "one"},
		{"dc:title": "two"},
	}
	got, err := MapAll(raws)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Title)
	assert.Equal(t, "two", got[1].Title)
}

func TestMapAllStopsAtMalformed(t *testing.T) {
	raws := []RawRecord{
		{"dc:title": "one"},
		{"link": 3.0},
	}
	got, err := MapAll(raws)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestMapAllEmpty(t *testing.T) {
	got, err := MapAll(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
