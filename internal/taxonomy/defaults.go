// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"github.com/pdiddy/insight-engine/pkg/types"
)

// KeyInsightsID is the id of the Special tier category.
const KeyInsightsID = "key-insights"

// Broad category ids.
const (
	AllResultsID = "all-results"
	WebID        = "web"
	TextID       = "text"
	CodeID       = "code"
	ImagesID     = "images"
)

var keyInsightKeywords = []string{
	"key", "insight", "finding", "important", "significant", "notable",
	"trend", "growth", "increase", "decrease", "percent", "record",
}

// KeyInsights returns the Special tier definition.
func KeyInsights() types.CategoryDefinition {
	return types.CategoryDefinition{
		ID:             KeyInsightsID,
		Name:           "Key Insights",
		Keywords:       append([]string(nil), keyInsightKeywords...),
		Color:          "#7c3aed",
		Icon:           "lightbulb",
		Priority:       0,
		Tier:           types.TierSpecial,
		AlwaysEvaluate: true,
		Score:          keyInsightScore,
		Format:         keyInsightFormat,
	}
}

func specific(id, name, color, icon string, priority int, keywords ...string) types.CategoryDefinition {
	return types.CategoryDefinition{
		ID:       id,
		Name:     name,
		Keywords: keywords,
		Color:    color,
		Icon:     icon,
		Priority: priority,
		Tier:     types.TierSpecific,
	}
}

// Specific returns the business and finance subtopics.
func Specific() []types.CategoryDefinition {
	return []types.CategoryDefinition{
		specific("market-intelligence", "Market Intelligence", "#2563eb", "chart-bar", 3,
			"market size", "market share", "market trend", "industry", "addressable market", "segment", "landscape", "forecast", "demand"),
		specific("growth-strategy", "Growth Strategy", "#16a34a", "trending-up", 3,
			"growth strategy", "expansion", "scale", "new market", "go-to-market", "organic growth", "roadmap", "acquisition strategy"),
		specific("investment-strategy", "Investment Strategy", "#0891b2", "briefcase", 3,
			"investment", "investor", "portfolio", "venture", "private equity", "allocation", "thesis", "fund"),
		specific("financial-performance", "Financial Performance", "#059669", "dollar-sign", 3,
			"revenue", "profit", "margin", "ebitda", "earnings", "cash flow", "income", "quarterly", "fiscal"),
		specific("valuation-benchmarking", "Valuation & Benchmarking", "#0d9488", "scale", 4,
			"valuation", "multiple", "benchmark", "comparable", "dcf", "enterprise value", "price-to-earnings", "premium"),
		specific("exit-liquidity", "Exit & Liquidity", "#9333ea", "log-out", 5,
			"exit", "ipo", "liquidity", "secondary", "buyout", "spin-off", "listing", "divest"),
		specific("mergers-acquisitions", "M&A & Consolidation", "#c026d3", "git-merge", 4,
			"merger", "acquisition", "acquire", "consolidation", "dealmaking", "takeover", "roll-up", "integration"),
		specific("technology-digital", "Technology & Digital", "#4f46e5", "cpu", 4,
			"technology", "digital", "software", "cloud", "artificial intelligence", "machine learning", "automation", "saas", "platform engineering"),
		specific("operational-efficiency", "Operational Efficiency", "#ca8a04", "settings", 5,
			"efficiency", "operations", "productivity", "cost reduction", "supply chain", "process", "optimization"),
		specific("data-strategy", "Data Strategy", "#2dd4bf", "database", 5,
			"data strategy", "analytics", "data-driven", "data governance", "dataset", "insights platform", "business intelligence"),
		specific("platform-economics", "Platform Economics", "#f97316", "layers", 5,
			"platform", "marketplace", "network effect", "ecosystem", "two-sided", "take rate", "developer"),
		specific("customer-market", "Customer & Market", "#e11d48", "users", 4,
			"customer", "consumer", "user", "retention", "churn", "acquisition cost", "lifetime value", "satisfaction", "adoption"),
		specific("risk-compliance", "Risk & Compliance", "#dc2626", "shield", 4,
			"risk", "compliance", "regulation", "regulatory", "legal", "lawsuit", "governance", "audit", "sanction"),
		specific("sustainability-esg", "Sustainability & ESG", "#65a30d", "leaf", 6,
			"sustainability", "esg", "climate", "emission", "carbon", "renewable", "social impact", "diversity"),
		specific("capital-markets", "Capital Markets", "#1d4ed8", "landmark", 5,
			"capital market", "stock", "bond", "equity", "debt", "yield", "interest rate", "ipo", "shares"),
		specific("economic-trends", "Economic Trends", "#b45309", "globe", 6,
			"economy", "economic", "inflation", "gdp", "recession", "unemployment", "monetary", "macro"),
		specific("performance-metrics", "Performance Metrics", "#0284c7", "activity", 5,
			"kpi", "metric", "performance", "return on investment", "conversion", "recurring revenue", "year-over-year"),
		specific("competitive-advantage", "Competitive Advantage", "#be123c", "award", 4,
			"competitive", "competitor", "advantage", "moat", "differentiation", "market leader", "rival", "positioning"),
	}
}

// Broad returns the catch-all buckets. Only all-results is a wildcard; the
// others are structural and use a predicate instead of keywords.
func Broad() []types.CategoryDefinition {
	return []types.CategoryDefinition{
		{
			ID:       AllResultsID,
			Name:     "All Results",
			Keywords: []string{types.Wildcard},
			Color:    "#64748b",
			Icon:     "list",
			Priority: 7,
			Tier:     types.TierBroad,
		},
		{
			ID:                 WebID,
			Name:               "Web",
			Color:              "#475569",
			Icon:               "globe",
			Priority:           8,
			Tier:               types.TierBroad,
			Predicate:          hasURL,
			PredicateRelevance: 90,
		},
		{
			ID:                 TextID,
			Name:               "Text",
			Color:              "#94a3b8",
			Icon:               "file-text",
			Priority:           9,
			Tier:               types.TierBroad,
			Predicate:          isPlainText,
			PredicateRelevance: 80,
		},
		{
			ID:                 CodeID,
			Name:               "Code",
			Color:              "#334155",
			Icon:               "code",
			Priority:           10,
			Tier:               types.TierBroad,
			Predicate:          isCode,
			PredicateRelevance: 85,
		},
		{
			ID:                 ImagesID,
			Name:               "Images",
			Color:              "#a855f7",
			Icon:               "image",
			Priority:           11,
			Tier:               types.TierBroad,
			Predicate:          isImage,
			PredicateRelevance: 85,
		},
	}
}

// Definitions returns the full built-in definition list.
func Definitions() []types.CategoryDefinition {
	defs := []types.CategoryDefinition{KeyInsights()}
	defs = append(defs, Specific()...)
	return append(defs, Broad()...)
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t, err := New(Definitions()...)
	if err != nil {
		panic("taxonomy: invalid built-in definitions: " + err.Error())
	}
	return t
}
