// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/pkg/types"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the insight-engine build version",
	Long: `Version prints the version stamped at build time. With --verbose it also
reports the Go runtime, the module path and the size of the taxonomy that
the other commands would load.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().Bool("verbose", false, "include runtime and taxonomy details")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "insight-engine %s\n", version)
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		return nil
	}

	fmt.Fprintf(w, "go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Path != "" {
		fmt.Fprintf(w, "module:   %s\n", bi.Main.Path)
	}
	tx, err := loadTaxonomy(engineCfg.Taxonomy)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "taxonomy: %d categories (%d specific)\n", tx.Len(), len(tx.Tier(types.TierSpecific)))
	return nil
}
