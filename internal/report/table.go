// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	nameWidth    = 28
	itemsPerCat  = 3
	itemTitleLen = 64
)

type styles struct {
	enabled bool
	heading lipgloss.Style
	dim     lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
}

func newStyles(enabled bool) styles {
	if !enabled {
		return styles{}
	}
	return styles{
		enabled: true,
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// category styles a category name with its own color.
func (s styles) category(name, color string) string {
	if !s.enabled || color == "" {
		return name
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(name)
}

func writeCategoryTable(w io.Writer, r Categories, opts Options) {
	st := newStyles(opts.Color)

	if r.Source != "" {
		fmt.Fprintln(w, st.render(st.heading, r.Source))
	}
	if len(r.Categories) == 0 {
		fmt.Fprintln(w, "No categories found.")
		writeErrors(w, r, st)
		return
	}

	fmt.Fprintf(w, "%-4s  %-*s  %-6s  %-4s  %-4s  %-4s  %-4s  %s\n",
		"Rank", nameWidth, "Category", "Final", "Rel", "Cred", "Acc", "Pass", "Items")
	fmt.Fprintln(w, st.render(st.dim, strings.Repeat("-", 80)))

	for i, c := range r.Categories {
		name := st.category(fmt.Sprintf("%-*s", nameWidth, truncate(c.Name, nameWidth)), c.Color)
		pass := st.render(st.fail, "no  ")
		if c.Metrics.PassesThreshold {
			pass = st.render(st.pass, "yes ")
		}
		fmt.Fprintf(w, "%-4d  %s  %-6.1f  %-4d  %-4d  %-4d  %s  %d\n",
			i+1, name, c.Metrics.FinalScore,
			c.Metrics.RelevanceScore, c.Metrics.CredibilityScore, c.Metrics.AccuracyScore,
			pass, len(c.Items))

		for j, it := range c.Items {
			if j == itemsPerCat {
				fmt.Fprintln(w, st.render(st.dim, fmt.Sprintf("        ... %d more", len(c.Items)-itemsPerCat)))
				break
			}
			label := it.Title
			if label == "" {
				label = it.Preview
			}
			fmt.Fprintf(w, "      %s %s\n",
				st.render(st.dim, fmt.Sprintf("[%d]", it.Index+1)),
				truncate(label, itemTitleLen)+st.render(st.dim, fmt.Sprintf(" (%d)", it.Relevance)))
		}
		for _, s := range c.Insights {
			fmt.Fprintf(w, "      * %s\n", s)
		}
	}

	fmt.Fprintf(w, "\n%d categories from %d items", len(r.Categories), r.ItemCount)
	if r.Duplicates > 0 {
		fmt.Fprintf(w, " (%d duplicates removed)", r.Duplicates)
	}
	if r.Query != "" {
		fmt.Fprintf(w, " for %q", r.Query)
	}
	fmt.Fprintln(w)
	writeErrors(w, r, st)
}

func writeErrors(w io.Writer, r Categories, st styles) {
	for _, e := range r.Errors {
		fmt.Fprintln(w, st.render(st.fail, "scoring error: "+e))
	}
}
