// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/elsevier-search/pkg/types"
)

// ReadCriteriaFile loads search criteria from a YAML file. The format key
// defaults to true when the file omits it.
//
//	boolean_expression: (underwater simulation) OR (subaquatic simulation)
//	affiliation: MIT
//	publication_year: "> 2015"
func ReadCriteriaFile(path string) (types.SearchCriteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SearchCriteria{}, fmt.Errorf("reading criteria file: %w", err)
	}
	c := types.SearchCriteria{Format: true}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return types.SearchCriteria{}, fmt.Errorf("parsing criteria file: %w", err)
	}
	return c, nil
}

// WriteCriteriaFile saves c as YAML so the same search can be rerun later.
func WriteCriteriaFile(path string, c types.SearchCriteria) error {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("marshaling criteria: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
