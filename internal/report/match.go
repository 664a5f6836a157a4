// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// Match is one ranked category for a single text.
type Match struct {
	Rank          int      `json:"rank" yaml:"rank"`
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	FinalScore    float64  `json:"final_score" yaml:"final_score"`
	CategoryScore float64  `json:"category_score" yaml:"category_score"`
	Combined      float64  `json:"combined_score" yaml:"combined_score"`
	Keywords      []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Passes        bool     `json:"passes_threshold" yaml:"passes_threshold"`
	Error         string   `json:"error,omitempty" yaml:"error,omitempty"`

	color string
}

// NewMatches converts a ranking into report rows, keeping at most top rows
// (all when top is zero).
func NewMatches(ranked []types.CategoryMatch, top int) []Match {
	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}
	out := make([]Match, 0, len(ranked))
	for i, m := range ranked {
		row := Match{
			Rank:          i + 1,
			ID:            m.Definition.ID,
			Name:          m.Definition.Name,
			FinalScore:    m.Metrics.FinalScore,
			CategoryScore: m.Metrics.CategoryScore,
			Combined:      m.Metrics.CombinedScore,
			Keywords:      m.KeywordMatches.Matches,
			Passes:        m.Metrics.PassesThreshold,
			color:         m.Definition.Color,
		}
		if m.Err != nil {
			row.Error = m.Err.Error()
		}
		out = append(out, row)
	}
	return out
}

// WriteMatches renders a ranking.
func WriteMatches(w io.Writer, rows []Match, format types.OutputFormat, opts Options) error {
	switch format {
	case types.OutputJSON:
		return writeJSON(w, rows)
	case types.OutputYAML:
		return writeYAML(w, rows)
	case types.OutputTable, types.OutputMarkdown, "":
	default:
		return fmt.Errorf("unsupported format %q for matches", format)
	}

	st := newStyles(opts.Color && format != types.OutputMarkdown)
	fmt.Fprintf(w, "%-4s  %-*s  %-6s  %-6s  %s\n", "Rank", nameWidth, "Category", "Final", "Cat", "Keywords")
	fmt.Fprintln(w, st.render(st.dim, strings.Repeat("-", 80)))
	for _, r := range rows {
		name := st.category(fmt.Sprintf("%-*s", nameWidth, truncate(r.Name, nameWidth)), r.color)
		kws := strings.Join(r.Keywords, ", ")
		if r.Error != "" {
			kws = st.render(st.fail, r.Error)
		}
		fmt.Fprintf(w, "%-4d  %s  %-6.1f  %-6.1f  %s\n", r.Rank, name, r.FinalScore, r.CategoryScore, kws)
	}
	return nil
}
