// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categorize

import (
	"math"
	"sort"

	"github.com/pdiddy/insight-engine/internal/matcher"
	"github.com/pdiddy/insight-engine/internal/metrics"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// Aggregate rolls member scores up into category metrics: the mean of each
// quality axis, their weighted combination, the mean member relevance as
// the category score, and the blended final score.
func Aggregate(content []types.ScoredItem, threshold int) types.CategoryMetrics {
	if len(content) == 0 {
		return types.CategoryMetrics{}
	}
	var r, c, a, rel int
	for _, si := range content {
		r += si.Metrics.Relevance
		c += si.Metrics.Credibility
		a += si.Metrics.Accuracy
		rel += si.Relevance
	}
	n := float64(len(content))
	mr := int(math.Round(float64(r) / n))
	mc := int(math.Round(float64(c) / n))
	ma := int(math.Round(float64(a) / n))

	combined := metrics.Combined(mr, mc, ma)
	catScore := float64(rel) / n
	return types.CategoryMetrics{
		RelevanceScore:   mr,
		CredibilityScore: mc,
		AccuracyScore:    ma,
		CombinedScore:    combined,
		CategoryScore:    catScore,
		FinalScore:       matcher.FinalScore(combined, catScore),
		PassesThreshold:  metrics.MeetsThreshold(mr, mc, ma, threshold),
	}
}

// SortByPriority orders categories by ascending priority. Equal priorities
// keep their order.
func SortByPriority(cats []types.Category) []types.Category {
	out := append([]types.Category(nil), cats...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// SortByScore orders categories by descending final score. Ties keep their
// order.
func SortByScore(cats []types.Category) []types.Category {
	out := append([]types.Category(nil), cats...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Metrics.FinalScore > out[j].Metrics.FinalScore
	})
	return out
}

// SelectOptions controls which categories are displayed.
type SelectOptions struct {
	// Threshold gates categories on all three quality axes. Zero disables
	// the gate.
	Threshold int

	// MaxCategories caps the result. Zero means no cap.
	MaxCategories int

	// KeepAlwaysEvaluate exempts always-evaluated categories (Key Insights)
	// from the threshold and places them first.
	KeepAlwaysEvaluate bool
}

// Select resolves the categories to display: it applies the threshold,
// orders by descending final score, and truncates to MaxCategories.
func Select(cats []types.Category, opts SelectOptions) []types.Category {
	var pinned, rest []types.Category
	for _, c := range cats {
		if opts.KeepAlwaysEvaluate && c.AlwaysEvaluate {
			pinned = append(pinned, c)
			continue
		}
		m := c.Metrics
		if opts.Threshold > 0 && !metrics.MeetsThreshold(m.RelevanceScore, m.CredibilityScore, m.AccuracyScore, opts.Threshold) {
			continue
		}
		rest = append(rest, c)
	}

	out := append(SortByScore(pinned), SortByScore(rest)...)
	if opts.MaxCategories > 0 && len(out) > opts.MaxCategories {
		out = out[:opts.MaxCategories]
	}
	return out
}
