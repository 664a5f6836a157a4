// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package categorize groups normalized content items under the taxonomy
// categories they qualify for, scores each item and category, and drops
// categories that end up empty.
package categorize

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/insight-engine/internal/ingest"
	"github.com/pdiddy/insight-engine/internal/insight"
	"github.com/pdiddy/insight-engine/internal/matcher"
	"github.com/pdiddy/insight-engine/internal/metrics"
	"github.com/pdiddy/insight-engine/internal/taxonomy"
	"github.com/pdiddy/insight-engine/pkg/types"
)

const (
	wildcardRelevance = 100

	// defaultPredicateRelevance applies to structural categories that do
	// not set their own.
	defaultPredicateRelevance = 90
)

// Options configures a Processor.
type Options struct {
	// Taxonomy defaults to taxonomy.Default().
	Taxonomy *taxonomy.Taxonomy

	// Scorer defaults to metrics.Heuristic.
	Scorer metrics.Scorer

	// Threshold for PassesThreshold. Zero means metrics.DefaultThreshold.
	Threshold int

	// Insights enables insight extraction for every surviving category.
	Insights bool

	// Now is the reference time for recency bonuses on dated items. Zero
	// means the wall clock, which is only consulted for dated items.
	Now time.Time

	// Logger receives warnings for recovered scoring failures. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Processor categorizes content against a taxonomy. It holds no per-query
// state and is safe for concurrent use.
type Processor struct {
	tx        *taxonomy.Taxonomy
	scorer    metrics.Scorer
	threshold int
	insights  bool
	now       time.Time
	log       *slog.Logger
}

// New returns a Processor configured by opts.
func New(opts Options) *Processor {
	p := &Processor{
		tx:        opts.Taxonomy,
		scorer:    opts.Scorer,
		threshold: opts.Threshold,
		insights:  opts.Insights,
		now:       opts.Now,
		log:       opts.Logger,
	}
	if p.tx == nil {
		p.tx = taxonomy.Default()
	}
	if p.scorer == nil {
		p.scorer = metrics.Heuristic{}
	}
	if p.threshold == 0 {
		p.threshold = metrics.DefaultThreshold
	}
	if p.log == nil {
		p.log = slog.Default()
	}
	return p
}

// ScoringError records a failure while scoring one item. CategoryID is empty
// when the item's metrics could not be computed.
type ScoringError struct {
	ItemIndex  int
	CategoryID string
	Err        error
}

func (e ScoringError) Error() string {
	if e.CategoryID == "" {
		return fmt.Sprintf("item %d: %v", e.ItemIndex, e.Err)
	}
	return fmt.Sprintf("item %d, category %s: %v", e.ItemIndex, e.CategoryID, e.Err)
}

func (e ScoringError) Unwrap() error { return e.Err }

// Output is the result of one categorization run.
type Output struct {
	// Categories are the non-empty categories in taxonomy order.
	Categories []types.Category

	// Errors lists recovered per-item scoring failures.
	Errors []ScoringError

	// ItemCount is the number of normalized items processed.
	ItemCount int
}

// ProcessCategories normalizes content of any supported shape and
// categorizes it. Malformed content yields an empty Output.
func (p *Processor) ProcessCategories(content any, query string) Output {
	return p.Process(ingest.NormalizeAny(content), query)
}

// Process categorizes already-normalized items. Every item is attached to
// each category it scores above zero in; wildcard categories take every
// item at relevance 100; structural categories take items that no specific
// category claimed.
func (p *Processor) Process(items []types.ContentItem, query string) Output {
	defs := p.tx.All()
	buckets := make([][]types.ScoredItem, len(defs))
	out := Output{ItemCount: len(items)}

	for idx, item := range items {
		text := item.SearchText()
		m, err := p.itemMetrics(item, text, query)
		if err != nil {
			p.fail(&out, idx, "", err)
			continue
		}

		claimed := false
		for i, def := range defs {
			if def.IsStructural() {
				continue
			}
			rel, err := p.relevance(def, text, query)
			if err != nil {
				p.fail(&out, idx, def.ID, err)
				continue
			}
			if rel <= 0 {
				continue
			}
			buckets[i] = append(buckets[i], types.ScoredItem{Item: item, Relevance: rel, Index: idx, Metrics: m})
			if def.Tier == types.TierSpecific {
				claimed = true
			}
		}
		if claimed {
			continue
		}
		for i, def := range defs {
			if !def.IsStructural() {
				continue
			}
			ok, err := matches(def, item)
			if err != nil {
				p.fail(&out, idx, def.ID, err)
				continue
			}
			if !ok {
				continue
			}
			rel := def.PredicateRelevance
			if rel == 0 {
				rel = defaultPredicateRelevance
			}
			buckets[i] = append(buckets[i], types.ScoredItem{Item: item, Relevance: rel, Index: idx, Metrics: m})
		}
	}

	for i, def := range defs {
		content := buckets[i]
		if len(content) == 0 {
			continue
		}
		sort.SliceStable(content, func(a, b int) bool {
			return content[a].Relevance > content[b].Relevance
		})
		cat := types.Category{
			CategoryDefinition: def,
			Content:            content,
			Metrics:            Aggregate(content, p.threshold),
		}
		if p.insights {
			cat.Insights = insight.Extract(cat, query)
		}
		out.Categories = append(out.Categories, cat)
	}
	return out
}

func (p *Processor) fail(out *Output, idx int, categoryID string, err error) {
	se := ScoringError{ItemIndex: idx, CategoryID: categoryID, Err: err}
	out.Errors = append(out.Errors, se)
	p.log.Warn("scoring failed", "item", idx, "category", categoryID, "error", err)
}

// itemMetrics scores one item with its own sources. A panicking scorer is
// reported as an error.
func (p *Processor) itemMetrics(item types.ContentItem, text, query string) (m types.Metrics, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scorer panicked: %v", r)
		}
	}()
	opts := metrics.RelevanceOptions{Now: p.now}
	if d, ok := ParseDate(item.Date); ok {
		opts.ContentDate = d
	}
	return p.scorer.Score(text, query, item.Sources(), opts), nil
}

// relevance returns the item-level relevance of text for a non-structural
// category.
func (p *Processor) relevance(def types.CategoryDefinition, text, query string) (rel int, err error) {
	defer func() {
		if r := recover(); r != nil {
			rel, err = 0, fmt.Errorf("relevance panicked: %v", r)
		}
	}()
	switch {
	case def.IsWildcard():
		return wildcardRelevance, nil
	case def.AlwaysEvaluate && def.Score != nil:
		s := def.Score(text, query)
		if s > taxonomy.KeyInsightBase {
			return min(s, 100), nil
		}
		return 0, nil
	default:
		return matcher.ItemRelevance(text, query, def.Keywords), nil
	}
}

func matches(def types.CategoryDefinition, item types.ContentItem) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("predicate panicked: %v", r)
		}
	}()
	return def.Predicate(item), nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDate parses the free-form dates collaborators send.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
