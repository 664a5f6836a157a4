// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/insight-engine/pkg/types"
)

func category(keywords []string, items ...types.ContentItem) types.Category {
	c := types.Category{CategoryDefinition: types.CategoryDefinition{ID: "c", Name: "C", Keywords: keywords}}
	for i, it := range items {
		c.Content = append(c.Content, types.ScoredItem{Item: it, Index: i})
	}
	return c
}

func TestExtractCached(t *testing.T) {
	c := category([]string{"x"})
	c.Insights = []string{"one", "two", "three", "four", "five", "six"}
	got := Extract(c, "q")
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, got)

	got[0] = "mutated"
	assert.Equal(t, "one", c.Insights[0])
}

func TestExtractFromLists(t *testing.T) {
	c := category([]string{"revenue"},
		types.ContentItem{
			KeyInsights: []string{"Revenue grew 20% year over year", "short", "Revenue grew 20% year over year"},
			KeyPoints:   []string{"Margins expanded to 30 percent"},
		},
		types.ContentItem{KeyInsights: []string{"revenue grew 20% year over year!", "Cloud adoption doubled in 2024"}},
	)
	got := Extract(c, "")
	assert.Equal(t, []string{
		"Revenue grew 20% year over year",
		"Margins expanded to 30 percent",
		"Cloud adoption doubled in 2024",
	}, got)
}

func TestExtractFallsBackToSentences(t *testing.T) {
	c := category([]string{"revenue", "margin"},
		types.ContentItem{
			KeyPoints:   []string{"Guidance was raised for the year"},
			Description: "Revenue rose 17.5% to $4.2 billion. The weather was fine today. Gross margin improved by two points! Tiny.",
		},
	)
	got := Extract(c, "")
	assert.Equal(t, []string{
		"Guidance was raised for the year",
		"Revenue rose 17.5% to $4.2 billion.",
		"Gross margin improved by two points!",
	}, got)
}

func TestExtractUsesQueryTerms(t *testing.T) {
	c := category([]string{types.Wildcard},
		types.ContentItem{Description: "Quantum computing startups raised record funding. Unrelated filler sentence here."},
	)
	got := Extract(c, "quantum startups")
	assert.Equal(t, []string{"Quantum computing startups raised record funding."}, got)
}

func TestExtractCapAndLength(t *testing.T) {
	var items []types.ContentItem
	for _, s := range []string{
		"Revenue alpha grew strongly.", "Revenue beta grew strongly.", "Revenue gamma grew strongly.",
		"Revenue delta grew strongly.", "Revenue epsilon grew strongly.", "Revenue zeta grew strongly.",
	} {
		items = append(items, types.ContentItem{Description: s})
	}
	got := Extract(category([]string{"revenue"}, items...), "")
	require.Len(t, got, MaxInsights)

	seen := map[string]bool{}
	for _, s := range got {
		assert.GreaterOrEqual(t, len(s), 10)
		assert.False(t, seen[s], "duplicate %q", s)
		seen[s] = true
	}
}

func TestExtractCountsCharacters(t *testing.T) {
	// 56 characters, 168 bytes.
	sentence := strings.Repeat("云计算市场增长", 8)
	got := Extract(category([]string{"云计算"}, types.ContentItem{Description: sentence}), "")
	assert.Equal(t, []string{sentence}, got)

	// Five characters is too short even though it is 15 bytes.
	got = Extract(category([]string{"x"}, types.ContentItem{KeyInsights: []string{"云计算市场"}}), "")
	assert.Empty(t, got)
}

func TestExtractEmpty(t *testing.T) {
	assert.Empty(t, Extract(category([]string{"x"}), "q"))
}

func TestSentences(t *testing.T) {
	got := Sentences("Cloud grew 17.5% in 2023. Margins held!\nNext line? end")
	assert.Equal(t, []string{"Cloud grew 17.5% in 2023.", "Margins held!", "Next line?", "end"}, got)
	assert.Empty(t, Sentences("   "))
}

func TestMerge(t *testing.T) {
	got := Merge(
		[]string{"Revenue grew 20%", "Costs fell"},
		[]string{"revenue grew 20%!", "New entrants"},
		nil,
		[]string{"  ", "Costs fell."},
	)
	assert.Equal(t, []string{"Revenue grew 20%", "Costs fell", "New entrants"}, got)
}

// --- Business buckets ---

func TestCategorizeBusinessInsightsScenario(t *testing.T) {
	got := CategorizeBusinessInsights([]string{
		"Revenue grew 20%",
		"New competitor entered market",
		"Unrelated sentence about weather",
	})
	assert.Equal(t, []string{"Revenue grew 20%"}, got.Financial)
	inMarketOrCompetitive := append(append([]string(nil), got.Market...), got.Competitive...)
	assert.Contains(t, inMarketOrCompetitive, "New competitor entered market")
	assert.Equal(t, []string{"Unrelated sentence about weather"}, got.Uncategorized)
}

func TestCategorizeBusinessInsightsBuckets(t *testing.T) {
	got := CategorizeBusinessInsights([]string{
		"Customer demand is rising",
		"EBITDA margin reached 25%",
		"The company announced a partnership",
		"A rival cut prices",
		"Regulatory exposure increased",
	})
	assert.Equal(t, []string{"Customer demand is rising"}, got.Market)
	assert.Equal(t, []string{"EBITDA margin reached 25%"}, got.Financial)
	assert.Equal(t, []string{"The company announced a partnership"}, got.Strategy)
	assert.Equal(t, []string{"A rival cut prices"}, got.Competitive)
	assert.Equal(t, []string{"Regulatory exposure increased"}, got.Risk)
	assert.Empty(t, got.Uncategorized)

	var names []string
	for _, s := range got.Sections() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Market", "Financial", "Strategy", "Competitive", "Risk"}, names)
}

func TestCategorizeFirstBucketWins(t *testing.T) {
	got := CategorizeBusinessInsights([]string{"Market revenue and risk"})
	assert.Equal(t, []string{"Market revenue and risk"}, got.Market)
	assert.Empty(t, got.Financial)
	assert.Empty(t, got.Risk)
}
