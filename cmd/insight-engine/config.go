// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/insight-engine/internal/report"
	"github.com/pdiddy/insight-engine/internal/taxonomy"
	"github.com/pdiddy/insight-engine/pkg/types"
)

var validate = validator.New()

// setDefaults registers every config key so environment variables can
// override keys that no config file sets.
func setDefaults(v *viper.Viper) {
	d := types.DefaultEngineConfig()
	v.SetDefault("scoring.threshold", d.Scoring.Threshold)
	v.SetDefault("scoring.max_categories", d.Scoring.MaxCategories)
	v.SetDefault("scoring.insights", d.Scoring.Insights)
	v.SetDefault("scoring.dedup", d.Scoring.Dedup)
	v.SetDefault("taxonomy.file", d.Taxonomy.File)
	v.SetDefault("synthesis.max_key_points", d.Synthesis.MaxKeyPoints)
	v.SetDefault("synthesis.max_follow_ups", d.Synthesis.MaxFollowUps)
	v.SetDefault("output.format", string(d.Output.Format))
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// loadConfig decodes and validates the engine configuration from viper.
func loadConfig() (types.EngineConfig, error) {
	setDefaults(viper.GetViper())

	var cfg types.EngineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadTaxonomy returns the built-in taxonomy merged with the configured
// extension file, if any.
func loadTaxonomy(cfg types.TaxonomyConfig) (*taxonomy.Taxonomy, error) {
	tx := taxonomy.Default()
	if cfg.File == "" {
		return tx, nil
	}
	defs, err := taxonomy.LoadFile(cfg.File)
	if err != nil {
		return nil, err
	}
	merged, err := tx.Merge(defs...)
	if err != nil {
		return nil, fmt.Errorf("merging taxonomy file %s: %w", cfg.File, err)
	}
	logger.Debug("taxonomy loaded", "file", cfg.File, "categories", merged.Len())
	return merged, nil
}

// outputFormat returns the --format flag when set, else the configured
// format.
func outputFormat(cmd *cobra.Command) types.OutputFormat {
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		return types.OutputFormat(f)
	}
	return engineCfg.Output.Format
}

func reportOptions(cmd *cobra.Command) report.Options {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return report.Options{Color: engineCfg.Output.Color && !noColor}
}

// intFlag returns the flag value when the user set it, else fallback.
func intFlag(cmd *cobra.Command, name string, fallback int) int {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

// boolFlag returns the flag value when the user set it, else fallback.
func boolFlag(cmd *cobra.Command, name string, fallback bool) bool {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}
