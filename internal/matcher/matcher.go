// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package matcher ranks category definitions against a single text and
// provides the item-level relevance used during bulk categorization.
package matcher

import (
	"fmt"
	"math"
	"sort"

	"github.com/pdiddy/insight-engine/internal/keyword"
	"github.com/pdiddy/insight-engine/internal/metrics"
	"github.com/pdiddy/insight-engine/pkg/types"
)

const (
	combinedWeight = 0.7
	categoryWeight = 0.3

	// keywordScale lifts a keyword match ratio into the 0-100 range used by
	// custom scorers.
	keywordScale = 20
)

// Options configures a ranking run.
type Options struct {
	// Threshold for PassesThreshold. Zero means metrics.DefaultThreshold.
	Threshold int

	Relevance metrics.RelevanceOptions
}

// Matcher ranks categories for a text.
type Matcher struct {
	scorer metrics.Scorer
}

// New returns a Matcher using scorer. A nil scorer selects metrics.Heuristic.
func New(scorer metrics.Scorer) *Matcher {
	if scorer == nil {
		scorer = metrics.Heuristic{}
	}
	return &Matcher{scorer: scorer}
}

// MatchCategories scores content against every definition and returns the
// results sorted by descending FinalScore. Ties keep input order.
func (m *Matcher) MatchCategories(content string, defs []types.CategoryDefinition, query string, sources []types.Source, opts Options) []types.CategoryMatch {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = metrics.DefaultThreshold
	}

	// The quality axes depend only on the text, so they are shared by every
	// category.
	q := m.scorer.Score(content, query, sources, opts.Relevance)
	combined := metrics.Combined(q.Relevance, q.Credibility, q.Accuracy)

	out := make([]types.CategoryMatch, 0, len(defs))
	for _, def := range defs {
		var km types.KeywordMatch
		if def.IsWildcard() {
			km = types.KeywordMatch{Matched: true, Score: 1, Matches: []string{types.Wildcard}}
		} else {
			km = keyword.Match(content, def.Keywords)
		}

		catScore, err := categoryScore(def, km, content, query)
		out = append(out, types.CategoryMatch{
			Definition:     def,
			KeywordMatches: km,
			Metrics: types.CategoryMetrics{
				RelevanceScore:   q.Relevance,
				CredibilityScore: q.Credibility,
				AccuracyScore:    q.Accuracy,
				CombinedScore:    combined,
				CategoryScore:    catScore,
				FinalScore:       FinalScore(combined, catScore),
				PassesThreshold:  metrics.MeetsThreshold(q.Relevance, q.Credibility, q.Accuracy, threshold),
			},
			Err: err,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Metrics.FinalScore > out[j].Metrics.FinalScore
	})
	return out
}

// categoryScore runs the definition's custom scorer, recovering a panic into
// an error and a zero score.
func categoryScore(def types.CategoryDefinition, km types.KeywordMatch, content, query string) (score float64, err error) {
	if def.Score == nil {
		return km.Score * keywordScale, nil
	}
	defer func() {
		if r := recover(); r != nil {
			score = 0
			err = fmt.Errorf("category %s: scorer panicked: %v", def.ID, r)
		}
	}()
	return float64(def.Score(content, query)), nil
}

// FinalScore blends the combined quality score with the category score and
// clamps the result to [0,100].
func FinalScore(combined, category float64) float64 {
	return math.Max(0, math.Min(100, combinedWeight*combined+categoryWeight*category))
}
