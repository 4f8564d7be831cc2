// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the idea-engine CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/idea-engine/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from --log-level before any subcommand runs.
var logger = zap.NewNop()

// rootCmd is the base command for the idea-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "idea-engine",
	Short: "Generate, derive and archive story and business ideas",
	Long: `idea-engine generates story ideas by sampling a fixed taxonomy of genres,
characters, plot devices, settings, themes and conflicts, then derives new
ideas from existing ones: variations, sequels and directed evolutions.

Every idea is recorded in a JSON history file together with the idea it was
derived from. The archive subcommands mirror that history into SQLite for
search, lineage queries and export. The business subcommand generates
business concepts from an industry, audience or trend.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetString("log-level"))
		if err != nil {
			return err
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Info("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./idea-engine.yaml or ~/.config/idea-engine/idea-engine.yaml)")
	pf.Int64("seed", 0, "random seed (0 = time-based)")
	pf.String("history", "story_ideas.json", "JSON history file holding every generated idea")
	pf.String("taxonomy", "", "YAML file replacing the built-in story taxonomy")
	pf.String("archive-dir", "archive", "directory holding ideas.db and export files")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.Int("variations", 3, "variations attached to each generated idea")
	pf.Int("variation-min", 2, "minimum attributes a variation changes")
	pf.Int("variation-max", 3, "maximum attributes a variation changes")

	for _, name := range []string{
		"seed", "history", "taxonomy", "archive-dir", "log-level",
		"variations", "variation-min", "variation-max",
	} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("idea-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "idea-engine"))
		}
	}

	viper.SetEnvPrefix("IDEA_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
