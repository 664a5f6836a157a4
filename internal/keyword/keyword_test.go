// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		keywords    []string
		wantMatched bool
		wantScore   float64
		wantMatches []string
	}{
		{
			name:        "all keywords present",
			text:        "Cloud market growth accelerated",
			keywords:    []string{"cloud", "market"},
			wantMatched: true,
			wantScore:   1.0,
			wantMatches: []string{"cloud", "market"},
		},
		{
			name:        "partial match keeps keyword order",
			text:        "The MARKET for widgets",
			keywords:    []string{"revenue", "market", "profit", "widget"},
			wantMatched: true,
			wantScore:   0.5,
			wantMatches: []string{"market", "widget"},
		},
		{
			name:        "substring containment",
			text:        "acquisitions closed this quarter",
			keywords:    []string{"acquisition"},
			wantMatched: true,
			wantScore:   1.0,
			wantMatches: []string{"acquisition"},
		},
		{
			name:        "multi-word keyword",
			text:        "Their market share doubled",
			keywords:    []string{"market share", "pricing"},
			wantMatched: true,
			wantScore:   0.5,
			wantMatches: []string{"market share"},
		},
		{
			name:     "no match",
			text:     "clinical trial results",
			keywords: []string{"cloud", "market"},
		},
		{
			name:     "empty text",
			text:     "   ",
			keywords: []string{"cloud"},
		},
		{
			name: "empty keywords",
			text: "cloud market",
		},
		{
			name:     "blank keywords are ignored",
			text:     "cloud market",
			keywords: []string{"", "  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.text, tt.keywords)
			assert.Equal(t, tt.wantMatched, got.Matched)
			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
			assert.Equal(t, tt.wantMatches, got.Matches)
		})
	}
}

func TestNewDropsDuplicates(t *testing.T) {
	m := New([]string{"Cloud", "cloud ", "market"})
	assert.Equal(t, []string{"cloud", "market"}, m.Keywords())

	got := m.Match("cloud only")
	assert.InDelta(t, 0.5, got.Score, 1e-9)
}

func TestMatcherReusable(t *testing.T) {
	m := New([]string{"revenue", "margin"})
	for i := 0; i < 3; i++ {
		got := m.Match("Revenue rose while margin held")
		assert.Equal(t, []string{"revenue", "margin"}, got.Matches)
	}
}

func TestNilMatcher(t *testing.T) {
	var m *Matcher
	assert.False(t, m.Match("anything").Matched)
}
