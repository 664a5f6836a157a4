// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Tier groups category definitions by how they are evaluated.
type Tier string

const (
	// TierSpecial categories are evaluated for every item (e.g. Key Insights).
	TierSpecial Tier = "special"

	// TierSpecific categories are keyword-driven business subtopics.
	TierSpecific Tier = "specific"

	// TierBroad categories are catch-all buckets matched by wildcard or by a
	// structural predicate.
	TierBroad Tier = "broad"
)

// Wildcard is the keyword that makes a category match every item.
const Wildcard = "*"

// ScoreFunc scores content against a category for a query, returning 0-100.
type ScoreFunc func(content, query string) int

// FormatFunc renders a category's content for display.
type FormatFunc func(content string) string

// PredicateFunc reports whether an item structurally belongs to a category
// (e.g. "has a URL").
type PredicateFunc func(item ContentItem) bool

// CategoryDefinition is a static taxonomy entry. Definitions are built once
// and never modified.
type CategoryDefinition struct {
	// ID is unique across the whole taxonomy (e.g. "market-intelligence").
	ID string `json:"id" yaml:"id" validate:"required"`

	// Name is the display name.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Keywords drive matching. Empty only for wildcard or predicate categories.
	Keywords []string `json:"keywords" yaml:"keywords" validate:"dive,required"`

	// Color is a hex color used by the presentation layer.
	Color string `json:"color" yaml:"color" validate:"omitempty,hexcolor"`

	// Icon names the presentation icon.
	Icon string `json:"icon" yaml:"icon"`

	// Priority orders categories for display; lower is more important.
	Priority int `json:"priority" yaml:"priority" validate:"gte=0"`

	Tier Tier `json:"tier" yaml:"tier" validate:"oneof=special specific broad"`

	// AlwaysEvaluate marks categories scored for every item regardless of
	// keyword hits.
	AlwaysEvaluate bool `json:"always_evaluate,omitempty" yaml:"always_evaluate,omitempty"`

	// Score is an optional custom scorer returning 0-100.
	Score ScoreFunc `json:"-" yaml:"-"`

	// Format is an optional content formatter.
	Format FormatFunc `json:"-" yaml:"-"`

	// Predicate is an optional structural membership test.
	Predicate PredicateFunc `json:"-" yaml:"-"`

	// PredicateRelevance is the fixed relevance given to predicate matches.
	PredicateRelevance int `json:"predicate_relevance,omitempty" yaml:"predicate_relevance,omitempty" validate:"gte=0,lte=100"`
}

// IsWildcard reports whether the category matches every item.
func (d CategoryDefinition) IsWildcard() bool {
	for _, kw := range d.Keywords {
		if kw == Wildcard {
			return true
		}
	}
	return false
}

// IsStructural reports whether membership is decided by a predicate.
func (d CategoryDefinition) IsStructural() bool {
	return d.Predicate != nil
}

// CategoryMetrics holds the aggregated scores for a category.
type CategoryMetrics struct {
	RelevanceScore   int     `json:"relevance_score" yaml:"relevance_score"`
	CredibilityScore int     `json:"credibility_score" yaml:"credibility_score"`
	AccuracyScore    int     `json:"accuracy_score" yaml:"accuracy_score"`
	CombinedScore    float64 `json:"combined_score" yaml:"combined_score"`
	CategoryScore    float64 `json:"category_score" yaml:"category_score"`

	// FinalScore blends CombinedScore (70%) and CategoryScore (30%); 0-100.
	FinalScore float64 `json:"final_score" yaml:"final_score"`

	// PassesThreshold is true when relevance, credibility and accuracy all
	// reach the configured threshold. It does not depend on FinalScore.
	PassesThreshold bool `json:"passes_threshold" yaml:"passes_threshold"`
}

// Category is a definition bound to the items that qualified for it under
// one query. Content is sorted by descending relevance and never empty for
// a category that reaches the caller.
type Category struct {
	CategoryDefinition `yaml:",inline"`

	Content  []ScoredItem    `json:"content" yaml:"content"`
	Metrics  CategoryMetrics `json:"metrics" yaml:"metrics"`
	Insights []string        `json:"insights,omitempty" yaml:"insights,omitempty"`
}

// KeywordMatch is the outcome of a plain keyword-ratio match.
type KeywordMatch struct {
	Matched bool     `json:"matched" yaml:"matched"`
	Score   float64  `json:"score" yaml:"score"`
	Matches []string `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// CategoryMatch is one category's ranking result for a single text.
type CategoryMatch struct {
	Definition     CategoryDefinition `json:"definition" yaml:"definition"`
	KeywordMatches KeywordMatch       `json:"keyword_matches" yaml:"keyword_matches"`
	Metrics        CategoryMetrics    `json:"metrics" yaml:"metrics"`

	// Err records a recovered failure in the category's custom scorer.
	Err error `json:"-" yaml:"-"`
}
