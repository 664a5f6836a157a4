// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/insight-engine/internal/categorize"
	"github.com/pdiddy/insight-engine/internal/report"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize [files...]",
	Short: "Group search results into scored topical categories",
	Long: `Categorize normalizes each input document, attaches every item to the
categories it qualifies for, scores items and categories on relevance,
credibility and accuracy, and prints the categories that pass selection.

Several files are processed in parallel. With no file, stdin is read.`,
	RunE: runCategorize,
}

func init() {
	categorizeCmd.Flags().String("query", "", "query the results answer (default: the query saved in a query file)")
	categorizeCmd.Flags().String("format", "", "output format: table, json, yaml, markdown")
	categorizeCmd.Flags().Bool("insights", false, "extract insights for each category")
	categorizeCmd.Flags().Int("threshold", 0, "minimum relevance, credibility and accuracy for a category (0 disables the gate)")
	categorizeCmd.Flags().Int("max-categories", 0, "maximum number of categories to show (0 for no cap)")
	categorizeCmd.Flags().Bool("dedup", false, "merge results sharing a URL or title before scoring")
	categorizeCmd.Flags().Bool("all", false, "show every non-empty category without threshold or cap")

	rootCmd.AddCommand(categorizeCmd)
}

func runCategorize(cmd *cobra.Command, args []string) error {
	tx, err := loadTaxonomy(engineCfg.Taxonomy)
	if err != nil {
		return err
	}
	query, _ := cmd.Flags().GetString("query")
	all, _ := cmd.Flags().GetBool("all")
	dedup := boolFlag(cmd, "dedup", engineCfg.Scoring.Dedup)

	sel := categorize.SelectOptions{
		Threshold:          intFlag(cmd, "threshold", 0),
		MaxCategories:      intFlag(cmd, "max-categories", engineCfg.Scoring.MaxCategories),
		KeepAlwaysEvaluate: true,
	}
	if all {
		sel = categorize.SelectOptions{}
	}

	proc := categorize.New(categorize.Options{
		Taxonomy:  tx,
		Threshold: engineCfg.Scoring.Threshold,
		Insights:  boolFlag(cmd, "insights", engineCfg.Scoring.Insights),
		Logger:    logger,
	})

	paths := args
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	if err := checkInputs(paths); err != nil {
		return err
	}
	reports := make([]report.Categories, len(paths))

	g, gCtx := errgroup.WithContext(cmd.Context())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			src, err := readSource(path, os.Stdin)
			if err != nil {
				return err
			}
			items, removed := prepareItems(src, dedup)
			q := resolveQuery(query, src)

			out := proc.Process(items, q)
			fmt.Fprintf(os.Stderr, "%s: %d items, %d categories\n", src.Name, out.ItemCount, len(out.Categories))

			r := report.NewCategories(q, out, categorize.Select(out.Categories, sel))
			r.Duplicates = removed
			if len(paths) > 1 {
				r.Source = src.Name
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return report.WriteCategories(cmd.OutOrStdout(), reports, outputFormat(cmd), reportOptions(cmd))
}
