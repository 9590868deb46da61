package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/elsevier-search/internal/query"
	"github.com/pdiddy/elsevier-search/internal/search"
)

var queryCmd = &cobra.Command{
	Use:   "query [boolean expression...]",
	Short: "Print the Elsevier query string built from the criteria flags",
	Long: `Query builds the search string exactly as the search command would and
prints it without contacting the API. Use --save to write the criteria to a
YAML file that search --criteria-file can replay.`,
	RunE: runQuery,
}

func init() {
	addCriteriaFlags(queryCmd.Flags())
	queryCmd.Flags().String("save", "", "write the criteria to this YAML file")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	criteria, err := criteriaFromFlags(cmd, args)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := search.WriteCriteriaFile(path, criteria); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("saved criteria")
	}

	fmt.Fprintln(cmd.OutOrStdout(), query.Build(criteria))
	return nil
}
