// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders categorization results, insights and synthesized
// answers as tables, JSON, YAML, markdown or CSL-YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/insight-engine/internal/categorize"
	"github.com/pdiddy/insight-engine/internal/insight"
	"github.com/pdiddy/insight-engine/pkg/types"
)

const previewLen = 80

// Options controls rendering.
type Options struct {
	// Color enables lipgloss styling in table output.
	Color bool
}

// Item is one categorized content item as reported.
type Item struct {
	Index     int           `json:"index" yaml:"index"`
	ID        string        `json:"id" yaml:"id"`
	Title     string        `json:"title,omitempty" yaml:"title,omitempty"`
	URL       string        `json:"url,omitempty" yaml:"url,omitempty"`
	Relevance int           `json:"relevance" yaml:"relevance"`
	Metrics   types.Metrics `json:"metrics" yaml:"metrics"`

	// Preview is the item text passed through the category's formatter.
	Preview string `json:"preview,omitempty" yaml:"preview,omitempty"`
}

// Category is one category as reported.
type Category struct {
	ID       string                `json:"id" yaml:"id"`
	Name     string                `json:"name" yaml:"name"`
	Tier     types.Tier            `json:"tier" yaml:"tier"`
	Priority int                   `json:"priority" yaml:"priority"`
	Color    string                `json:"color,omitempty" yaml:"color,omitempty"`
	Icon     string                `json:"icon,omitempty" yaml:"icon,omitempty"`
	Metrics  types.CategoryMetrics `json:"metrics" yaml:"metrics"`
	Items    []Item                `json:"items" yaml:"items"`
	Insights []string              `json:"insights,omitempty" yaml:"insights,omitempty"`
}

// Categories is the report for one categorization run.
type Categories struct {
	Source     string     `json:"source,omitempty" yaml:"source,omitempty"`
	Query      string     `json:"query" yaml:"query"`
	ItemCount  int        `json:"item_count" yaml:"item_count"`
	Duplicates int        `json:"duplicates_removed,omitempty" yaml:"duplicates_removed,omitempty"`
	Categories []Category `json:"categories" yaml:"categories"`
	Errors     []string   `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewCategories builds a report from a run's output and the categories
// selected for display.
func NewCategories(query string, out categorize.Output, selected []types.Category) Categories {
	r := Categories{Query: query, ItemCount: out.ItemCount, Categories: []Category{}}
	for _, c := range selected {
		r.Categories = append(r.Categories, newCategory(c))
	}
	for _, e := range out.Errors {
		r.Errors = append(r.Errors, e.Error())
	}
	return r
}

func newCategory(c types.Category) Category {
	rc := Category{
		ID:       c.ID,
		Name:     c.Name,
		Tier:     c.Tier,
		Priority: c.Priority,
		Color:    c.Color,
		Icon:     c.Icon,
		Metrics:  c.Metrics,
		Insights: c.Insights,
	}
	for _, si := range c.Content {
		text := si.Item.SearchText()
		if c.Format != nil {
			text = c.Format(text)
		}
		rc.Items = append(rc.Items, Item{
			Index:     si.Index,
			ID:        si.Item.ID,
			Title:     si.Item.Title,
			URL:       si.Item.URL,
			Relevance: si.Relevance,
			Metrics:   si.Metrics,
			Preview:   truncate(oneLine(text), previewLen),
		})
	}
	return rc
}

// WriteCategories renders reports in the given format. Table and markdown
// output separate multiple reports with a blank line; JSON and YAML emit a
// single report as an object and several as a list.
func WriteCategories(w io.Writer, reports []Categories, format types.OutputFormat, opts Options) error {
	switch format {
	case types.OutputTable, "":
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeCategoryTable(w, r, opts)
		}
		return nil
	case types.OutputMarkdown:
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeCategoryMarkdown(w, r)
		}
		return nil
	case types.OutputJSON:
		if len(reports) == 1 {
			return writeJSON(w, reports[0])
		}
		return writeJSON(w, reports)
	case types.OutputYAML:
		if len(reports) == 1 {
			return writeYAML(w, reports[0])
		}
		return writeYAML(w, reports)
	}
	return fmt.Errorf("unsupported format %q for categories", format)
}

func writeCategoryMarkdown(w io.Writer, r Categories) {
	if r.Source != "" {
		fmt.Fprintf(w, "# %s\n\n", r.Source)
	}
	if len(r.Categories) == 0 {
		fmt.Fprintln(w, "No categories found.")
		return
	}
	for _, c := range r.Categories {
		fmt.Fprintf(w, "## %s (%.1f)\n\n", c.Name, c.Metrics.FinalScore)
		for _, it := range c.Items {
			label := it.Title
			if label == "" {
				label = it.Preview
			}
			if it.URL != "" {
				fmt.Fprintf(w, "- [%s](%s) (relevance %d)\n", label, it.URL, it.Relevance)
			} else {
				fmt.Fprintf(w, "- %s (relevance %d)\n", label, it.Relevance)
			}
		}
		if len(c.Insights) > 0 {
			fmt.Fprintln(w, "\n**Insights**")
			for _, s := range c.Insights {
				fmt.Fprintf(w, "- %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}
}

// Insights is the report for the insights command.
type Insights struct {
	Query      string                    `json:"query" yaml:"query"`
	Categories []CategoryInsights        `json:"categories" yaml:"categories"`
	All        []string                  `json:"all" yaml:"all"`
	Business   *insight.BusinessInsights `json:"business,omitempty" yaml:"business,omitempty"`
}

// CategoryInsights lists one category's insights.
type CategoryInsights struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Insights []string `json:"insights" yaml:"insights"`
}

// NewInsights collects per-category insights, merges them across
// categories, and optionally buckets the merged list by business theme.
func NewInsights(query string, cats []types.Category, business bool) Insights {
	r := Insights{Query: query, Categories: []CategoryInsights{}}
	var lists [][]string
	for _, c := range cats {
		ins := c.Insights
		if ins == nil {
			ins = insight.Extract(c, query)
		}
		if len(ins) == 0 {
			continue
		}
		r.Categories = append(r.Categories, CategoryInsights{ID: c.ID, Name: c.Name, Insights: ins})
		lists = append(lists, ins)
	}
	r.All = insight.Merge(lists...)
	if r.All == nil {
		r.All = []string{}
	}
	if business {
		b := insight.CategorizeBusinessInsights(r.All)
		r.Business = &b
	}
	return r
}

// WriteInsights renders an insights report.
func WriteInsights(w io.Writer, r Insights, format types.OutputFormat, opts Options) error {
	switch format {
	case types.OutputJSON:
		return writeJSON(w, r)
	case types.OutputYAML:
		return writeYAML(w, r)
	case types.OutputTable, types.OutputMarkdown, "":
		writeInsightsText(w, r, newStyles(opts.Color && format == types.OutputTable))
		return nil
	}
	return fmt.Errorf("unsupported format %q for insights", format)
}

func writeInsightsText(w io.Writer, r Insights, st styles) {
	if len(r.All) == 0 {
		fmt.Fprintln(w, "No insights available.")
		return
	}
	if r.Business != nil {
		for _, s := range r.Business.Sections() {
			fmt.Fprintln(w, st.render(st.heading, s.Name))
			for _, line := range s.Insights {
				fmt.Fprintf(w, "  - %s\n", line)
			}
			fmt.Fprintln(w)
		}
		return
	}
	for _, c := range r.Categories {
		fmt.Fprintln(w, st.render(st.heading, c.Name))
		for _, line := range c.Insights {
			fmt.Fprintf(w, "  - %s\n", line)
		}
		fmt.Fprintln(w)
	}
}

// WriteSynthesis renders a synthesized response. Markdown and table output
// print the body; CSL prints the source map as bibliography entries.
func WriteSynthesis(w io.Writer, resp types.SyntheticResponse, format types.OutputFormat) error {
	switch format {
	case types.OutputMarkdown, types.OutputTable, "":
		_, err := io.WriteString(w, resp.Content)
		return err
	case types.OutputJSON:
		return writeJSON(w, resp)
	case types.OutputYAML:
		return writeYAML(w, resp)
	case types.OutputCSL:
		return WriteCSL(w, resp)
	}
	return fmt.Errorf("unsupported format %q for synthesis", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
