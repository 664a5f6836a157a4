// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// WriteTaxonomy lists category definitions. JSON and YAML emit the
// definitions themselves; other formats print one line per category.
func WriteTaxonomy(w io.Writer, defs []types.CategoryDefinition, format types.OutputFormat, opts Options) error {
	switch format {
	case types.OutputJSON:
		return writeJSON(w, defs)
	case types.OutputYAML:
		return writeYAML(w, defs)
	}

	st := newStyles(opts.Color)
	fmt.Fprintf(w, "%-8s  %-4s  %-*s  %s\n", "Tier", "Prio", nameWidth, "Category", "Keywords")
	fmt.Fprintln(w, st.render(st.dim, strings.Repeat("-", 80)))
	for _, d := range defs {
		kws := truncate(strings.Join(d.Keywords, ", "), 60)
		if d.IsStructural() {
			kws = st.render(st.dim, "(structural)")
		}
		name := st.category(fmt.Sprintf("%-*s", nameWidth, truncate(d.Name, nameWidth)), d.Color)
		fmt.Fprintf(w, "%-8s  %-4d  %s  %s\n", d.Tier, d.Priority, name, kws)
	}
	fmt.Fprintf(w, "\n%d categories\n", len(defs))
	return nil
}
