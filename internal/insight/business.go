// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package insight

import (
	"strings"

	"github.com/pdiddy/insight-engine/internal/keyword"
)

// BusinessInsights groups insights by business theme.
type BusinessInsights struct {
	Market        []string `json:"market" yaml:"market"`
	Financial     []string `json:"financial" yaml:"financial"`
	Strategy      []string `json:"strategy" yaml:"strategy"`
	Competitive   []string `json:"competitive" yaml:"competitive"`
	Risk          []string `json:"risk" yaml:"risk"`
	Uncategorized []string `json:"uncategorized" yaml:"uncategorized"`
}

// Section is one named bucket, for ordered rendering.
type Section struct {
	Name     string
	Insights []string
}

// Sections returns the buckets in display order, skipping empty ones.
func (b BusinessInsights) Sections() []Section {
	all := []Section{
		{"Market", b.Market},
		{"Financial", b.Financial},
		{"Strategy", b.Strategy},
		{"Competitive", b.Competitive},
		{"Risk", b.Risk},
		{"Uncategorized", b.Uncategorized},
	}
	var out []Section
	for _, s := range all {
		if len(s.Insights) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Buckets are tested in this order; the first match wins.
var (
	marketBucket      = keyword.New([]string{"market", "customer", "demand", "segment", "industry", "consumer", "adoption", "share of"})
	financialBucket   = keyword.New([]string{"revenue", "profit", "margin", "ebitda", "cash", "earnings", "cost", "funding", "valuation", "income"})
	strategyBucket    = keyword.New([]string{"strategy", "strategic", "plan", "expansion", "partnership", "initiative", "roadmap", "launch"})
	competitiveBucket = keyword.New([]string{"competitor", "competition", "competitive", "rival", "advantage", "differentiat", "moat"})
	riskBucket        = keyword.New([]string{"risk", "regulat", "compliance", "threat", "uncertain", "volatil", "exposure"})
)

// CategorizeBusinessInsights assigns each insight to the first matching
// bucket in the order market, financial, strategy, competitive, risk.
// Insights matching none are uncategorized.
func CategorizeBusinessInsights(insights []string) BusinessInsights {
	var b BusinessInsights
	for _, s := range insights {
		text := strings.ToLower(s)
		switch {
		case marketBucket.Match(text).Matched:
			b.Market = append(b.Market, s)
		case financialBucket.Match(text).Matched:
			b.Financial = append(b.Financial, s)
		case strategyBucket.Match(text).Matched:
			b.Strategy = append(b.Strategy, s)
		case competitiveBucket.Match(text).Matched:
			b.Competitive = append(b.Competitive, s)
		case riskBucket.Match(text).Matched:
			b.Risk = append(b.Risk, s)
		default:
			b.Uncategorized = append(b.Uncategorized, s)
		}
	}
	return b
}
