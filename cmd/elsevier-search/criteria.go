package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pdiddy/elsevier-search/internal/search"
	"github.com/pdiddy/elsevier-search/pkg/types"
)

// addCriteriaFlags registers the query-building flags shared by the search
// and query commands.
func addCriteriaFlags(fs *pflag.FlagSet) {
	fs.StringP("query", "q", "", "boolean expression (AND, OR, AND NOT, pre/n, w/n); positional args are appended")
	fs.String("affil", "", "institution or organization (AFFIL)")
	fs.String("author", "", "author name (AUTHOR-NAME)")
	fs.String("pubyear", "", `publication year constraint, e.g. "> 2015", "< 2000", "= 2020"`)
	fs.Bool("no-format", false, "use the boolean expression verbatim and ignore the other fields")
	fs.String("criteria-file", "", "YAML file with criteria; explicit flags override its values")
}

// criteriaFromFlags assembles SearchCriteria from an optional criteria file,
// then the flags the user set, then positional arguments.
func criteriaFromFlags(cmd *cobra.Command, args []string) (types.SearchCriteria, error) {
	fs := cmd.Flags()

	c := types.SearchCriteria{Format: true}
	if path, _ := fs.GetString("criteria-file"); path != "" {
		loaded, err := search.ReadCriteriaFile(path)
		if err != nil {
			return types.SearchCriteria{}, err
		}
		c = loaded
	}

	if fs.Changed("query") {
		c.BooleanExpression, _ = fs.GetString("query")
	}
	if fs.Changed("affil") {
		c.Affiliation, _ = fs.GetString("affil")
	}
	if fs.Changed("author") {
		c.AuthorName, _ = fs.GetString("author")
	}
	if fs.Changed("pubyear") {
		c.PublicationYear, _ = fs.GetString("pubyear")
	}
	if fs.Changed("no-format") {
		noFormat, _ := fs.GetBool("no-format")
		c.Format = !noFormat
	}

	if len(args) > 0 {
		parts := append([]string{}, args...)
		if c.BooleanExpression != "" {
			parts = append([]string{c.BooleanExpression}, parts...)
		}
		c.BooleanExpression = strings.Join(parts, " ")
	}
	return c, nil
}
