// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/categorize"
	"github.com/pdiddy/insight-engine/internal/report"
)

var insightsCmd = &cobra.Command{
	Use:   "insights [file]",
	Short: "Extract short insights from search results",
	Long: `Insights categorizes the input, extracts up to five insights per
category, and merges them into one de-duplicated list. With --business the
merged list is grouped into market, financial, strategy, competitive and
risk themes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().String("query", "", "query the results answer (default: the query saved in a query file)")
	insightsCmd.Flags().String("format", "", "output format: table, json, yaml, markdown")
	insightsCmd.Flags().Bool("business", false, "group insights by business theme")
	insightsCmd.Flags().Bool("dedup", false, "merge results sharing a URL or title first")

	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	tx, err := loadTaxonomy(engineCfg.Taxonomy)
	if err != nil {
		return err
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	src, err := readSource(path, os.Stdin)
	if err != nil {
		return err
	}
	query, _ := cmd.Flags().GetString("query")
	query = resolveQuery(query, src)
	business, _ := cmd.Flags().GetBool("business")
	items, _ := prepareItems(src, boolFlag(cmd, "dedup", engineCfg.Scoring.Dedup))

	out := categorize.New(categorize.Options{
		Taxonomy:  tx,
		Threshold: engineCfg.Scoring.Threshold,
		Insights:  true,
		Logger:    logger,
	}).Process(items, query)

	r := report.NewInsights(query, out.Categories, business)
	return report.WriteInsights(cmd.OutOrStdout(), r, outputFormat(cmd), reportOptions(cmd))
}
