// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/report"
	"github.com/pdiddy/insight-engine/internal/synth"
	"github.com/pdiddy/insight-engine/pkg/types"
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize [file]",
	Short: "Build a markdown answer from raw search results",
	Long: `Synthesize assembles a structured markdown answer (summary, key points,
analysis, perspectives and follow-up questions) from search result titles
and snippets. Use it when no LLM answer is available; a query file that
already carries an answer prints that answer unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSynthesize,
}

func init() {
	synthesizeCmd.Flags().String("query", "", "query the results answer (default: the query saved in a query file)")
	synthesizeCmd.Flags().String("format", "markdown", "output format: markdown, json, yaml, csl")
	synthesizeCmd.Flags().Bool("force", false, "synthesize even when the input carries an LLM answer")
	synthesizeCmd.Flags().Bool("dedup", false, "merge results sharing a URL or title first")
	synthesizeCmd.Flags().Int("max-key-points", 0, "cap on generic key point bullets")
	synthesizeCmd.Flags().Int("max-follow-ups", 0, "cap on follow-up questions")

	rootCmd.AddCommand(synthesizeCmd)
}

func runSynthesize(cmd *cobra.Command, args []string) error {
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
	force, _ := cmd.Flags().GetBool("force")
	format := outputFormat(cmd)

	if src.Answer != "" && !force {
		logger.Info("using the answer stored with the query", "source", src.Name)
		return report.WriteSynthesis(cmd.OutOrStdout(), types.SyntheticResponse{
			Query:     query,
			Content:   src.Answer,
			SourceMap: map[string]types.SourceRef{},
		}, format)
	}

	items, _ := prepareItems(src, boolFlag(cmd, "dedup", engineCfg.Scoring.Dedup))

	cfg := engineCfg.Synthesis
	cfg.MaxKeyPoints = intFlag(cmd, "max-key-points", cfg.MaxKeyPoints)
	cfg.MaxFollowUps = intFlag(cmd, "max-follow-ups", cfg.MaxFollowUps)
	s := synth.FromConfig(cfg, time.Now)

	resp := s.SynthesizeFromResults(query, items)
	fmt.Fprintf(os.Stderr, "%s: synthesized from %d of %d results\n", src.Name, resp.SourceCount, len(items))
	return report.WriteSynthesis(cmd.OutOrStdout(), resp, format)
}
