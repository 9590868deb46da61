// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/elsevier-search/pkg/types"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		criteria types.SearchCriteria
		want     string
	}{
		{
			name:     "all fields empty",
			criteria: types.SearchCriteria{Format: true},
			want:     "",
		},
		{
			name: "expression with publication year",
			criteria: types.SearchCriteria{
				BooleanExpression: "(underwater simulation) OR (subaquatic simulation)",
				PublicationYear:   "> 2015",
				Format:            true,
			},
			want: "(underwater simulation) OR (subaquatic simulation) AND PUBYEAR > 2015",
		},
		{
			name:     "affiliation only strips dangling AND",
			criteria: types.SearchCriteria{Affiliation: "MIT", Format: true},
			want:     "AFFIL(MIT)",
		},
		{
			name:     "unformatted ignores other fields",
			criteria: types.SearchCriteria{BooleanExpression: "X", Affiliation: "Y", Format: false},
			want:     "X",
		},
		{
			name:     "unformatted empty expression",
			criteria: types.SearchCriteria{Affiliation: "Y", AuthorName: "Smith", PublicationYear: "= 2020"},
			want:     "",
		},
		{
			name: "clauses appended in fixed order",
			criteria: types.SearchCriteria{
				BooleanExpression: "robot",
				Affiliation:       "ETH Zurich",
				AuthorName:        "Siegwart",
				PublicationYear:   "< 2010",
				Format:            true,
			},
			want: "robot AND AFFIL(ETH Zurich) AND AUTHOR-NAME(Siegwart) AND PUBYEAR < 2010",
		},
		{
			name:     "author and year without expression",
			criteria: types.SearchCriteria{AuthorName: "Smith", PublicationYear: "= 2020", Format: true},
			want:     "AUTHOR-NAME(Smith) AND PUBYEAR = 2020",
		},
		{
			name:     "year constraint is not validated",
			criteria: types.SearchCriteria{BooleanExpression: "a", PublicationYear: "2020", Format: true},
			want:     "a AND PUBYEAR 2020",
		},
		{
			name:     "expression starting with AND is stripped literally",
			criteria: types.SearchCriteria{BooleanExpression: " AND  heat", Format: true},
			want:     "heat",
		},
		{
			name:     "unformatted expression starting with AND is stripped literally",
			criteria: types.SearchCriteria{BooleanExpression: " ANDROID", Format: false},
			want:     "ROID",
		},
		{
			name:     "ANDROID without leading space is kept",
			criteria: types.SearchCriteria{BooleanExpression: "ANDROID", Format: true},
			want:     "ANDROID",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.criteria))
		})
	}
}

func TestBuildIsPure(t *testing.T) {
	c := types.SearchCriteria{BooleanExpression: "x", Affiliation: "MIT", Format: true}
	first := Build(c)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Build(c))
	}
	assert.Equal(t, "MIT", c.Affiliation, "criteria must not be modified")
}
