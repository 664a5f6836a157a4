// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/matcher"
	"github.com/pdiddy/insight-engine/internal/report"
	"github.com/pdiddy/insight-engine/pkg/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank every category against one text",
	Long: `Match scores a single text against each category of the taxonomy and
prints the categories ranked by final score: a blend of the text's quality
score and the category's keyword score.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().String("query", "", "query the text answers")
	matchCmd.Flags().String("text", "", "text to match (default: stdin)")
	matchCmd.Flags().StringSlice("source", nil, "source URL of the text (repeatable)")
	matchCmd.Flags().Int("top", 10, "number of categories to show (0 for all)")
	matchCmd.Flags().String("format", "", "output format: table, json, yaml")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	tx, err := loadTaxonomy(engineCfg.Taxonomy)
	if err != nil {
		return err
	}

	text, _ := cmd.Flags().GetString("text")
	if strings.TrimSpace(text) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}
	query, _ := cmd.Flags().GetString("query")
	urls, _ := cmd.Flags().GetStringSlice("source")
	sources := make([]types.Source, 0, len(urls))
	for _, u := range urls {
		sources = append(sources, types.Source{URL: u})
	}
	top, _ := cmd.Flags().GetInt("top")

	ranked := matcher.New(nil).MatchCategories(text, tx.All(), query, sources, matcher.Options{
		Threshold: engineCfg.Scoring.Threshold,
	})
	for _, m := range ranked {
		if m.Err != nil {
			logger.Warn("category scorer failed", "category", m.Definition.ID, "error", m.Err)
		}
	}
	return report.WriteMatches(cmd.OutOrStdout(), report.NewMatches(ranked, top), outputFormat(cmd), reportOptions(cmd))
}
