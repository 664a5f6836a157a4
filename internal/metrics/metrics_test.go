// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/insight-engine/pkg/types"
)

const cloudSnippet = "Cloud computing grew 17.5% in 2023, reaching $590 billion."

// --- Relevance ---

func TestRelevanceCloudScenario(t *testing.T) {
	got := Relevance(cloudSnippet, "cloud computing market growth", RelevanceOptions{})
	assert.Greater(t, got, baselineRelevance)
	assert.GreaterOrEqual(t, got, 70)
	// 50 + 2*(20/4) + 2*5 first-line + 0.5*50.
	assert.Equal(t, 95, got)
}

func TestRelevanceBlankQuery(t *testing.T) {
	assert.Equal(t, 50, Relevance(cloudSnippet, "", RelevanceOptions{}))
	assert.Equal(t, 50, Relevance(cloudSnippet, "   ", RelevanceOptions{}))
}

func TestRelevanceNoMatch(t *testing.T) {
	assert.Equal(t, 50, Relevance("clinical trial outcomes", "cloud market", RelevanceOptions{}))
}

func TestRelevancePhraseBonus(t *testing.T) {
	// Both words are too short to be terms, so only the phrase can match.
	assert.Equal(t, 65, Relevance("new ai ml chips", "ai ml", RelevanceOptions{}))
	assert.Equal(t, 50, Relevance("ml and ai", "ai ml", RelevanceOptions{}))
}

func TestRelevanceFirstLineOnly(t *testing.T) {
	query := "pricing zzzz yyyy qqqq wwww"
	first := Relevance("pricing update\nother text", query, RelevanceOptions{})
	later := Relevance("other text\npricing update", query, RelevanceOptions{})
	assert.Equal(t, 64, later)
	assert.Equal(t, 5, first-later)
}

func TestRelevanceRecency(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	base := Relevance("pricing\nx", "zzz", RelevanceOptions{})

	tests := []struct {
		name string
		age  time.Duration
		want int
	}{
		{"under 30 days", 10 * 24 * time.Hour, 10},
		{"under 90 days", 60 * 24 * time.Hour, 5},
		{"under a year", 200 * 24 * time.Hour, 2},
		{"older", 400 * 24 * time.Hour, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relevance("pricing\nx", "zzz", RelevanceOptions{ContentDate: now.Add(-tt.age), Now: now})
			assert.Equal(t, tt.want, got-base)
		})
	}
}

func TestRelevanceClamped(t *testing.T) {
	text := "growth growth growth growth growth growth growth growth growth growth"
	assert.Equal(t, 100, Relevance(text, "growth", RelevanceOptions{}))
}

// --- Credibility ---

func TestCredibilityScenario(t *testing.T) {
	empty := Credibility(nil)
	two := Credibility([]types.Source{{URL: "https://a.com"}, {URL: "https://b.com"}})
	assert.Equal(t, 75, empty)
	assert.Greater(t, two, empty)
	assert.Equal(t, 79, two)
}

func TestCredibilityCaps(t *testing.T) {
	var sources []types.Source
	for _, host := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		sources = append(sources, types.Source{URL: "https://" + host + ".example.org/x"})
	}
	assert.Equal(t, 95, Credibility(sources))
}

func TestCredibilitySameDomain(t *testing.T) {
	got := Credibility([]types.Source{
		{URL: "https://www.reuters.com/a"},
		{URL: "https://reuters.com/b"},
		{URL: "reuters.com/c"},
	})
	assert.Equal(t, 79, got, "three sources, one domain")
}

// --- Accuracy ---

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 75},
		{"no signals", "a plain sentence without figures", 75},
		{"numbers only", cloudSnippet, 78},
		{"citation and marker", "According to a study (2021), revenue rose 12% [1].", 85},
		{"et al", "Smith et al. describe the effect", 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Accuracy(tt.text))
		})
	}
}

func TestAccuracyNumericCap(t *testing.T) {
	assert.Equal(t, 85, Accuracy("1 2 3 4 5 6 7 8 9 10 11 12 13 14"))
}

func TestCitationMarkers(t *testing.T) {
	got := CitationMarkers("Shown in (2019) and [3], again [3], by Lee et al. in (2019).")
	assert.Equal(t, []string{"(2019)", "[3]", "et al."}, got)
	assert.Empty(t, CitationMarkers("no citations here"))
}

// --- Combine / threshold ---

func TestCombined(t *testing.T) {
	assert.InDelta(t, 80.0, Combined(90, 70, 70), 1e-9)
	assert.InDelta(t, 0.0, Combined(0, 0, 0), 1e-9)
}

func TestMeetsThreshold(t *testing.T) {
	for r := 60; r <= 80; r += 5 {
		for c := 60; c <= 80; c += 5 {
			for a := 60; a <= 80; a += 5 {
				want := r >= 70 && c >= 70 && a >= 70
				assert.Equal(t, want, MeetsThreshold(r, c, a, DefaultThreshold), "r=%d c=%d a=%d", r, c, a)
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	sources := []types.Source{{URL: "https://a.com"}, {URL: "https://b.com"}}
	first := Compute(cloudSnippet, "cloud market", sources, RelevanceOptions{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Heuristic{}.Score(cloudSnippet, "cloud market", sources, RelevanceOptions{}))
	}
	assert.Equal(t, (first.Relevance+first.Accuracy+first.Credibility+1)/3, first.Overall)
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{"", "x", cloudSnippet, "According to research shows data shows study shows (2020) [1] et al. 1 2 3 4 5 6 7 8 9 10 11 12"}
	for _, in := range inputs {
		m := Compute(in, "cloud growth data", nil, RelevanceOptions{})
		for _, v := range []int{m.Relevance, m.Accuracy, m.Credibility, m.Overall} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
	}
}

func TestQueryTerms(t *testing.T) {
	assert.Equal(t, []string{"cloud", "market", "growth"}, QueryTerms("Cloud, market? AI growth cloud"))
	assert.Empty(t, QueryTerms("a an to"))
}

func TestDomain(t *testing.T) {
	assert.Equal(t, "example.com", Domain("https://WWW.Example.com/path"))
	assert.Equal(t, "example.com", Domain("example.com/x"))
	assert.Equal(t, "", Domain(""))
}
