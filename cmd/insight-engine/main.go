// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the insight-engine CLI. It reads
// search results or LLM output from files or stdin, categorizes and scores
// them, extracts insights, and synthesizes a fallback answer when no LLM
// answer is available.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/insight-engine/internal/logging"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Populated by the root command before any subcommand runs.
var (
	engineCfg types.EngineConfig
	logger    *slog.Logger
)

// rootCmd is the base command for the insight-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "insight-engine",
	Short: "Categorize, score and summarize search results",
	Long: `insight-engine turns raw web-search hits and LLM output into topical
categories scored on relevance, credibility and accuracy, extracts short
insights, and synthesizes a structured answer from the hits when no LLM
answer is available.

Input is read from files or stdin: JSON or YAML search results, chat
histories, RSS/Atom/JSON feeds, saved query files, or plain text.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		engineCfg = cfg
		logger = logging.New(cfg.Log, os.Stderr)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./insight-engine.yaml or $XDG_CONFIG_HOME/insight-engine/insight-engine.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored table output")
	rootCmd.PersistentFlags().String("taxonomy", "", "YAML or JSON file with extra or replacement categories")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("taxonomy.file", rootCmd.PersistentFlags().Lookup("taxonomy"))
}

func initConfig() {
	// A missing .env is not an error.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("insight-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "insight-engine"))
	}

	viper.SetEnvPrefix("INSIGHT_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
