// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/ingest"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Convert collaborator output into a saved query file",
	Long: `Normalize decodes any supported input (search results, chat history,
feeds, plain text) into content items with stable IDs and writes them with
the query as a YAML query file that the other commands accept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().String("query", "", "query to store with the results")
	normalizeCmd.Flags().String("out", "", "query file to write (required)")
	normalizeCmd.Flags().Bool("dedup", false, "merge results sharing a URL or title")
	_ = normalizeCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
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
	out, _ := cmd.Flags().GetString("out")
	items, _ := prepareItems(src, boolFlag(cmd, "dedup", engineCfg.Scoring.Dedup))

	if err := ingest.WriteQueryFile(out, query, items); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d items to %s\n", len(items), out)
	return nil
}
