// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synth builds a structured markdown answer from raw search hits
// when no LLM answer is available. Every section is assembled from templates
// and snippet fragments; the output is flagged as synthesized so consumers
// can tell it apart from a model response.
package synth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/insight-engine/internal/ingest"
	"github.com/pdiddy/insight-engine/pkg/types"
)

const (
	defaultMaxKeyPoints = 5
	defaultMaxFollowUps = 5
)

// Options configures a Synthesizer.
type Options struct {
	// MaxKeyPoints caps the generic bullets in Key Points.
	MaxKeyPoints int

	// MaxFollowUps caps the follow-up questions.
	MaxFollowUps int

	// Now stamps the response. Defaults to time.Now.
	Now func() time.Time
}

// Synthesizer produces SyntheticResponses. It holds no per-query state.
type Synthesizer struct {
	maxKeyPoints int
	maxFollowUps int
	now          func() time.Time
}

// New returns a Synthesizer configured by opts.
func New(opts Options) *Synthesizer {
	s := &Synthesizer{
		maxKeyPoints: opts.MaxKeyPoints,
		maxFollowUps: opts.MaxFollowUps,
		now:          opts.Now,
	}
	if s.maxKeyPoints <= 0 {
		s.maxKeyPoints = defaultMaxKeyPoints
	}
	if s.maxFollowUps <= 0 {
		s.maxFollowUps = defaultMaxFollowUps
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// FromConfig returns a Synthesizer using the configured caps.
func FromConfig(cfg types.SynthesisConfig, now func() time.Time) *Synthesizer {
	return New(Options{MaxKeyPoints: cfg.MaxKeyPoints, MaxFollowUps: cfg.MaxFollowUps, Now: now})
}

// source is one usable hit with its citation number.
type source struct {
	n       int
	item    types.ContentItem
	title   string
	snippet string
	domain  string
	kind    string
}

func (s source) cite() string { return "[" + strconv.Itoa(s.n) + "]" }

// usable keeps hits that carry both a title and a snippet, in input order.
func usable(results []types.ContentItem) []source {
	var out []source
	for _, item := range results {
		title := strings.TrimSpace(ingest.StripHTML(item.Title))
		snippet := strings.TrimSpace(ingest.StripHTML(item.SnippetText()))
		if title == "" || snippet == "" {
			continue
		}
		src := source{n: len(out) + 1, item: item, title: title, snippet: snippet}
		src.domain = domainOf(item)
		src.kind = classify(src)
		out = append(out, src)
	}
	return out
}

// SynthesizeFromResults assembles a markdown answer for query from results.
// Results without a title or snippet are ignored; when none remain, a fixed
// troubleshooting response is returned.
func (s *Synthesizer) SynthesizeFromResults(query string, results []types.ContentItem) types.SyntheticResponse {
	query = strings.TrimSpace(query)
	resp := types.SyntheticResponse{
		Query:       query,
		SourceMap:   map[string]types.SourceRef{},
		Synthesized: true,
		GeneratedAt: s.now().UTC(),
	}

	sources := usable(results)
	if len(sources) == 0 {
		resp.FollowUpQuestions = s.troubleshootingQuestions(query)
		resp.Content = emptyContent(query, resp.FollowUpQuestions)
		return resp
	}

	for _, src := range sources {
		resp.SourceMap[strconv.Itoa(src.n)] = types.SourceRef{
			Title: src.title,
			URL:   src.item.URL,
			Type:  src.kind,
		}
	}
	resp.SourceCount = len(sources)
	resp.Categories = presentKinds(sources)
	resp.FollowUpQuestions = s.followUpQuestions(query)

	var b strings.Builder
	writeSection(&b, "Summary", summary(query, sources))
	writeSection(&b, "Key Points", s.keyPoints(query, sources))
	writeSection(&b, "Detailed Analysis", analysis(query, sources))
	writeSection(&b, "Different Perspectives", perspectives(query, sources))
	writeSection(&b, "Follow-up Questions", numbered(resp.FollowUpQuestions))
	b.WriteString(footer(len(sources), resp.GeneratedAt))
	resp.Content = b.String()
	return resp
}

func writeSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "## %s\n\n%s\n\n", title, strings.TrimRight(body, "\n"))
}

func footer(count int, at time.Time) string {
	noun := "sources"
	if count == 1 {
		noun = "source"
	}
	return fmt.Sprintf("---\n\n*Synthesized from %d search %s on %s. No language model was consulted.*\n",
		count, noun, at.Format(time.RFC3339))
}

func numbered(lines []string) string {
	var b strings.Builder
	for i, l := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, l)
	}
	return b.String()
}

func emptyContent(query string, followUps []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## No Results\n\nNo search results with both a title and a snippet were found for \"%s\", so no answer could be assembled.\n\n", query)
	b.WriteString("## Troubleshooting\n\n")
	b.WriteString("- Check the query for typos or uncommon abbreviations.\n")
	b.WriteString("- Use broader or more common terms.\n")
	b.WriteString("- Remove filters such as dates or sites and search again.\n\n")
	writeSection(&b, "Follow-up Questions", numbered(followUps))
	return b.String()
}
