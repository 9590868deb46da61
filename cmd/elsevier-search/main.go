// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the elsevier-search CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/elsevier-search/internal/observability"
	"github.com/pdiddy/elsevier-search/internal/secrets"
	"github.com/pdiddy/elsevier-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the log.* settings in initConfig.
var logger = zerolog.Nop()

// rootCmd is the base command for the elsevier-search CLI.
var rootCmd = &cobra.Command{
	Use:   "elsevier-search",
	Short: "Search Scopus and ScienceDirect and print normalized records",
	Long: `elsevier-search builds an Elsevier query from structured fields (boolean
expression, affiliation, author, publication year), runs it against the
Scopus or ScienceDirect search API, and prints one record per hit with
title, author, cover date, Scopus link and origin.

The API key is read from --api-key, ELSEVIER_API_KEY (environment or .env),
api_key in the config file, or .secrets/elsevier-api-key.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./elsevier-search.yaml or ~/.config/elsevier-search/elsevier-search.yaml)")
	pf.String("env-file", ".env", "dotenv file loaded into the environment before reading settings")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console or json)")

	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("log.format", pf.Lookup("log-format"))
}

func initConfig() {
	envFile, _ := rootCmd.PersistentFlags().GetString("env-file")
	envErr := secrets.LoadDotEnv(envFile)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("elsevier-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "elsevier-search"))
		}
	}

	viper.SetEnvPrefix("ELSEVIER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	cfgErr := viper.ReadInConfig()

	logger = observability.NewLogger(types.LoggingConfig{
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
	}, os.Stderr)

	if envErr != nil {
		logger.Warn().Err(envErr).Msg("ignoring env file")
	}
	if cfgErr == nil {
		logger.Debug().Str("path", viper.ConfigFileUsed()).Msg("using config file")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
