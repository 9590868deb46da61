package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/elsevier-search/internal/elsevier"
	"github.com/pdiddy/elsevier-search/internal/record"
	"github.com/pdiddy/elsevier-search/internal/search"
	"github.com/pdiddy/elsevier-search/internal/secrets"
	"github.com/pdiddy/elsevier-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [boolean expression...]",
	Short: "Search Scopus or ScienceDirect and print normalized records",
	Long: `Search builds a query from the criteria flags, executes it against the
selected Elsevier index, and prints one record per hit. The default output
is a JSON array of {author, date, origin, title, uri} objects.

Example:
  elsevier-search search -q "(underwater simulation) OR (subaquatic simulation)" --pubyear "> 2015"`,
	RunE: runSearch,
}

func init() {
	fs := searchCmd.Flags()
	addCriteriaFlags(fs)
	fs.String("index", string(types.IndexScopus), "search index: scopus or sciencedirect")
	fs.Int("count", elsevier.DefaultEntryCount, "entries per page")
	fs.Bool("all", false, "page through all results (up to 5000)")
	fs.String("api-key", "", "Elsevier API key")
	fs.String("inst-token", "", "Elsevier institution token")
	fs.String("base-url", elsevier.DefaultBaseURL, "Elsevier content API base URL")
	fs.Duration("timeout", elsevier.DefaultTimeout, "HTTP request timeout")
	fs.Float64("rate-limit", elsevier.DefaultRateLimit, "maximum requests per second")
	fs.String("secrets-dir", ".secrets", "directory of credential files")
	fs.String("output", "json", "output format: json, table, or csl")

	for key, flag := range map[string]string{
		"index":      "index",
		"count":      "count",
		"all":        "all",
		"api_key":    "api-key",
		"inst_token": "inst-token",
		"base_url":   "base-url",
		"timeout":    "timeout",
		"rate_limit": "rate-limit",
	} {
		viper.BindPFlag(key, fs.Lookup(flag))
	}

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	criteria, err := criteriaFromFlags(cmd, args)
	if err != nil {
		return err
	}
	index, err := types.ParseIndex(viper.GetString("index"))
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json", "table", "csl":
	default:
		return fmt.Errorf("unknown output format %q: must be json, table, or csl", output)
	}

	secretsDir, _ := cmd.Flags().GetString("secrets-dir")
	files, err := secrets.Load(secretsDir, logger)
	if err != nil {
		return err
	}
	creds, err := secrets.Resolve(secrets.Credentials{
		APIKey:    viper.GetString("api_key"),
		InstToken: viper.GetString("inst_token"),
	}, files)
	if err != nil {
		return err
	}

	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: "elsevier-search/" + version,
		},
		BaseURL:       viper.GetString("base_url"),
		RateLimit:     viper.GetFloat64("rate_limit"),
		Index:         index,
		EntryCount:    viper.GetInt("count"),
		GetAllResults: viper.GetBool("all"),
	}
	client := elsevier.New(elsevier.NewConfig(cfg, creds.APIKey, creds.InstToken), logger)

	records, err := search.NewService(client, logger).Search(cmd.Context(), criteria, cfg.Index)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch output {
	case "table":
		record.FormatTable(w, records)
		return nil
	case "csl":
		return record.FormatCSL(w, records)
	default:
		return record.FormatJSON(w, records)
	}
}
