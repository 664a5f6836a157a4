// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/report"
	"github.com/pdiddy/insight-engine/pkg/types"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "List the category taxonomy",
	Long: `Taxonomy prints the categories in evaluation order: the Special tier,
then Specific subtopics, then Broad catch-all buckets. Categories from the
configured taxonomy file are merged in first.`,
	RunE: runTaxonomy,
}

func init() {
	taxonomyCmd.Flags().String("tier", "", "only list one tier: special, specific, broad")
	taxonomyCmd.Flags().Bool("json", false, "output definitions as JSON")
	taxonomyCmd.Flags().String("format", "", "output format: table, json, yaml")

	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	tx, err := loadTaxonomy(engineCfg.Taxonomy)
	if err != nil {
		return err
	}

	defs := tx.All()
	if tier, _ := cmd.Flags().GetString("tier"); tier != "" {
		switch t := types.Tier(tier); t {
		case types.TierSpecial, types.TierSpecific, types.TierBroad:
			defs = tx.Tier(t)
		default:
			return fmt.Errorf("unknown tier %q (want special, specific or broad)", tier)
		}
	}

	format := outputFormat(cmd)
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		format = types.OutputJSON
	}
	return report.WriteTaxonomy(cmd.OutOrStdout(), defs, format, reportOptions(cmd))
}
