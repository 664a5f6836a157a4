// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/insight-engine/pkg/types"
)

func TestDefaultShape(t *testing.T) {
	tx := Default()

	special := tx.Tier(types.TierSpecial)
	require.Len(t, special, 1)
	assert.Equal(t, KeyInsightsID, special[0].ID)
	assert.Equal(t, 0, special[0].Priority)
	assert.True(t, special[0].AlwaysEvaluate)
	assert.NotNil(t, special[0].Score)
	assert.NotNil(t, special[0].Format)

	specific := tx.Tier(types.TierSpecific)
	assert.Len(t, specific, 18)
	for _, d := range specific {
		assert.NotEmpty(t, d.Keywords, d.ID)
		assert.GreaterOrEqual(t, d.Priority, 3, d.ID)
		assert.LessOrEqual(t, d.Priority, 6, d.ID)
	}

	broad := tx.Tier(types.TierBroad)
	require.Len(t, broad, 5)
	assert.True(t, broad[0].IsWildcard())
	for _, d := range broad[1:] {
		assert.True(t, d.IsStructural(), d.ID)
	}

	assert.Equal(t, 24, tx.Len())
	assert.Equal(t, KeyInsightsID, tx.All()[0].ID)
}

func TestLookupAndKeywords(t *testing.T) {
	tx := Default()

	d, ok := tx.Lookup("financial-performance")
	require.True(t, ok)
	assert.Equal(t, "Financial Performance", d.Name)
	assert.Contains(t, tx.Keywords("financial-performance"), "revenue")

	_, ok = tx.Lookup("nope")
	assert.False(t, ok)
	assert.Nil(t, tx.Keywords("nope"))
	assert.Equal(t, -1, tx.Position("nope"))

	assert.Nil(t, tx.Matcher(AllResultsID))
	assert.True(t, tx.Matcher("financial-performance").Match("Revenue doubled").Matched)
}

func TestKeywordsReturnsCopy(t *testing.T) {
	tx := Default()
	kws := tx.Keywords("risk-compliance")
	kws[0] = "mutated"
	assert.NotEqual(t, "mutated", tx.Keywords("risk-compliance")[0])
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	a := types.CategoryDefinition{ID: "x", Name: "X", Keywords: []string{"a"}, Tier: types.TierSpecific}
	_, err := New(a, a)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "id", ve.Errors[0].Field)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		def   types.CategoryDefinition
		field string
	}{
		{"missing name", types.CategoryDefinition{ID: "x", Keywords: []string{"a"}, Tier: types.TierSpecific}, "name"},
		{"bad tier", types.CategoryDefinition{ID: "x", Name: "X", Keywords: []string{"a"}, Tier: "other"}, "tier"},
		{"bad color", types.CategoryDefinition{ID: "x", Name: "X", Keywords: []string{"a"}, Color: "blue", Tier: types.TierSpecific}, "color"},
		{"no keywords", types.CategoryDefinition{ID: "x", Name: "X", Tier: types.TierSpecific}, "keywords"},
		{"blank keyword", types.CategoryDefinition{ID: "x", Name: "X", Keywords: []string{""}, Tier: types.TierSpecific}, "keywords[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.def)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "err = %v", err)
			var fields []string
			for _, fe := range ve.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestNewAllowsStructuralWithoutKeywords(t *testing.T) {
	d := types.CategoryDefinition{
		ID:        "links",
		Name:      "Links",
		Tier:      types.TierBroad,
		Predicate: func(item types.ContentItem) bool { return item.URL != "" },
	}
	_, err := New(d)
	assert.NoError(t, err)
}

func TestNewOrdersByTier(t *testing.T) {
	broad := types.CategoryDefinition{ID: "b", Name: "B", Keywords: []string{types.Wildcard}, Tier: types.TierBroad}
	specific := types.CategoryDefinition{ID: "s", Name: "S", Keywords: []string{"x"}, Tier: types.TierSpecific}
	special := types.CategoryDefinition{ID: "k", Name: "K", Keywords: []string{"y"}, Tier: types.TierSpecial}

	tx, err := New(broad, specific, special)
	require.NoError(t, err)

	var ids []string
	for _, d := range tx.All() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"k", "s", "b"}, ids)
}

func TestMerge(t *testing.T) {
	base := Default()
	replacement := types.CategoryDefinition{
		ID: "economic-trends", Name: "Macro Trends", Keywords: []string{"macro"}, Priority: 6, Tier: types.TierSpecific,
	}
	added := types.CategoryDefinition{
		ID: "healthcare", Name: "Healthcare", Keywords: []string{"clinical", "patient"}, Priority: 5, Tier: types.TierSpecific,
	}

	merged, err := base.Merge(replacement, added)
	require.NoError(t, err)

	d, _ := merged.Lookup("economic-trends")
	assert.Equal(t, "Macro Trends", d.Name)
	assert.Equal(t, base.Position("economic-trends"), merged.Position("economic-trends"))

	_, ok := merged.Lookup("healthcare")
	assert.True(t, ok)
	assert.Less(t, merged.Position("healthcare"), merged.Position(AllResultsID))

	// Receiver unchanged.
	orig, _ := base.Lookup("economic-trends")
	assert.Equal(t, "Economic Trends", orig.Name)
	_, ok = base.Lookup("healthcare")
	assert.False(t, ok)
}

// --- Key Insights rules ---

func TestKeyInsightScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"plain", "nothing of note here", 70},
		{"numbers", "sales hit 40 units", 80},
		{"bullets", "- first item\n- second item", 80},
		{"keyword", "a significant shift", 80},
		{"all", "- Revenue growth of 12%\n- more", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyInsightScore(tt.content, ""))
		})
	}
}

func TestKeyInsightFormat(t *testing.T) {
	got := keyInsightFormat("Revenue rose 12% this year. The team grew. Margins hit 30%.")
	assert.Equal(t, "• Revenue rose 12% this year.\n• Margins hit 30%.", got)
	assert.Equal(t, "No numbers here.", keyInsightFormat("  No numbers here.  "))
}

func TestBroadPredicates(t *testing.T) {
	web := types.ContentItem{URL: "https://example.com/a"}
	text := types.ContentItem{Text: "just words"}
	code := types.ContentItem{Text: "```go\nfmt.Println()\n```"}
	img := types.ContentItem{URL: "https://cdn.example.com/chart.PNG?w=200"}

	assert.True(t, hasURL(web))
	assert.False(t, hasURL(text))
	assert.True(t, isPlainText(text))
	assert.False(t, isPlainText(web))
	assert.True(t, isCode(code))
	assert.False(t, isCode(text))
	assert.True(t, isImage(img))
	assert.False(t, isImage(web))
	assert.True(t, isImage(types.ContentItem{Type: "image"}))
}

// --- Loading ---

func TestParseYAML(t *testing.T) {
	doc := `
categories:
  - id: healthcare
    name: Healthcare
    keywords: [clinical, patient, hospital]
    color: "#10b981"
  - id: energy
    name: Energy
    keywords: [oil, solar]
    priority: 4
`
	defs, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, types.TierSpecific, defs[0].Tier)
	assert.Equal(t, defaultLoadedPriority, defs[0].Priority)
	assert.Equal(t, 4, defs[1].Priority)
	assert.Equal(t, []string{"clinical", "patient", "hospital"}, defs[0].Keywords)
}

func TestParseJSON(t *testing.T) {
	defs, err := Parse([]byte(`{"categories":[{"id":"legal","name":"Legal","keywords":["court"]}]}`))
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "legal", defs[0].ID)
}

func TestParseSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing keywords", "categories:\n  - id: a\n    name: A\n"},
		{"empty keywords", "categories:\n  - id: a\n    name: A\n    keywords: []\n"},
		{"bad id", "categories:\n  - id: Not Valid\n    name: A\n    keywords: [x]\n"},
		{"unknown field", "categories:\n  - id: a\n    name: A\n    keywords: [x]\n    weight: 3\n"},
		{"no categories", "other: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve), "err = %v", err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]byte(""))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - id: retail\n    name: Retail\n    keywords: [store, shopper]\n"), 0o644))

	defs, err := LoadFile(path)
	require.NoError(t, err)

	merged, err := Default().Merge(defs...)
	require.NoError(t, err)
	assert.True(t, merged.Matcher("retail").Match("Shoppers returned").Matched)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "reading taxonomy file"))
}
