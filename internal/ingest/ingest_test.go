// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// --- Classify ---

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Input
	}{
		{"nil", nil, Empty{}},
		{"number", 42, Empty{}},
		{"bool", true, Empty{}},
		{"blank string", "   ", Empty{}},
		{"empty array", []any{}, Empty{}},
		{"empty object", map[string]any{}, Empty{}},
		{"string", "hello", PlainString{Text: "hello"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassifyVariants(t *testing.T) {
	hits := []any{map[string]any{"title": "A", "link": "https://a.com"}}
	assert.IsType(t, RawArray{}, Classify(hits))

	chat := []any{
		map[string]any{"role": "user", "content": "q"},
		map[string]any{"type": "assistant", "content": "a"},
	}
	assert.IsType(t, ChatHistory{}, Classify(chat))

	// One element without a role makes it a plain array.
	mixed := append(append([]any(nil), chat...), map[string]any{"title": "x", "content": "y"})
	assert.IsType(t, RawArray{}, Classify(mixed))

	assert.IsType(t, SingleObject{}, Classify(map[string]any{"title": "A"}))
	assert.IsType(t, Items{}, Classify([]types.ContentItem{{Title: "A"}}))
	assert.IsType(t, Items{}, Classify(types.ContentItem{Title: "A"}))
	assert.IsType(t, RawArray{}, Classify([]string{"a", "b"}))
}

func TestClassifyWrapperPrecedence(t *testing.T) {
	obj := map[string]any{
		"data":    []any{map[string]any{"title": "from data"}},
		"results": []any{map[string]any{"title": "from results"}},
	}
	items := NormalizeAny(obj)
	require.Len(t, items, 1)
	assert.Equal(t, "from results", items[0].Title)

	// A non-list "results" field does not unwrap.
	assert.IsType(t, SingleObject{}, Classify(map[string]any{"results": "none", "title": "A"}))
}

// --- Normalize ---

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(Empty{}))
	assert.Empty(t, NormalizeAny(nil))
	assert.Empty(t, NormalizeAny(3.14))
}

func TestNormalizePlainString(t *testing.T) {
	items := NormalizeAny("An LLM answer.")
	require.Len(t, items, 1)
	assert.Equal(t, "An LLM answer.", items[0].Text)
	assert.Equal(t, "text", items[0].Type)
	assert.NotEmpty(t, items[0].ID)
}

func TestNormalizeSearchHits(t *testing.T) {
	hits := []any{
		map[string]any{
			"title":   "Cloud <b>market</b> report",
			"link":    "https://example.com/cloud",
			"snippet": "Cloud spend rose 20% &amp; more.",
			"source":  map[string]any{"name": "Example", "url": "https://example.com"},
			"date":    "2024-05-01",
			"rank":    1,
		},
		map[string]any{"title": "Second", "url": "https://b.com", "description": "desc", "snippet": "snip", "source": "B News"},
		"a bare string",
		42,
		map[string]any{"unrelated": true},
	}
	items := NormalizeAny(hits)
	require.Len(t, items, 3)

	first := items[0]
	assert.Equal(t, "Cloud market report", first.Title)
	assert.Equal(t, "https://example.com/cloud", first.URL)
	assert.Equal(t, "Cloud spend rose 20% & more.", first.Description)
	assert.Equal(t, types.Source{Name: "Example", URL: "https://example.com"}, first.Source)
	assert.Equal(t, "2024-05-01", first.Date)
	assert.Equal(t, map[string]any{"rank": 1}, first.Extra)

	second := items[1]
	assert.Equal(t, "desc", second.Description)
	assert.Equal(t, "snip", second.Snippet)
	assert.Equal(t, types.Source{Name: "B News"}, second.Source)

	assert.Equal(t, "a bare string", items[2].Text)
}

func TestNormalizeCamelAndSnakeKeys(t *testing.T) {
	obj := map[string]any{
		"title":       "T",
		"keyInsights": []any{"Revenue grew 20% year over year"},
		"key_points":  []any{"Margins expanded", 7},
		"metrics":     map[string]any{"relevance": 80.0, "accuracy": 70, "credibility": "75", "overall": 75.4},
	}
	items := NormalizeAny(obj)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"Revenue grew 20% year over year"}, items[0].KeyInsights)
	assert.Equal(t, []string{"Margins expanded"}, items[0].KeyPoints)
	assert.Equal(t, &types.Metrics{Relevance: 80, Accuracy: 70, Credibility: 75, Overall: 75}, items[0].Metrics)
}

func TestNormalizeChatHistory(t *testing.T) {
	chat := []any{
		map[string]any{"role": "user", "content": "tell me about cloud"},
		map[string]any{"role": "assistant", "content": "old answer"},
		map[string]any{"role": "user", "content": "more"},
		map[string]any{"role": "assistant", "content": "Cloud revenue grew 20%."},
	}
	items := NormalizeAny(chat)
	require.Len(t, items, 1)
	assert.Equal(t, "Cloud revenue grew 20%.", items[0].Text)
}

func TestNormalizeChatHistoryStructuredContent(t *testing.T) {
	chat := []any{
		map[string]any{"role": "user", "content": "q"},
		map[string]any{"role": "assistant", "content": `{"results":[{"title":"A","url":"https://a.com"},{"title":"B","url":"https://b.com"}]}`},
	}
	items := NormalizeAny(chat)
	require.Len(t, items, 2)
	assert.Equal(t, "https://b.com", items[1].URL)
}

func TestNormalizeChatWithoutAssistant(t *testing.T) {
	chat := []any{map[string]any{"role": "user", "content": "q"}}
	assert.Empty(t, NormalizeAny(chat))
}

func TestNormalizeDeterministicIDs(t *testing.T) {
	hits := []any{map[string]any{"title": "A", "url": "https://a.com"}, map[string]any{"title": "B"}}
	first := NormalizeAny(hits)
	second := NormalizeAny(hits)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first[0].ID, first[1].ID)
}

func TestNormalizeItemsKeepsIDs(t *testing.T) {
	items := Normalize(Items{Items: []types.ContentItem{{ID: "given", Title: "A"}, {Title: "B"}}})
	assert.Equal(t, "given", items[0].ID)
	assert.NotEmpty(t, items[1].ID)
}

// --- StripHTML ---

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "plain text", StripHTML("plain text"))
	assert.Equal(t, "Hello world !", StripHTML("<p>Hello <em>world</em></p> !"))
	assert.Equal(t, "AT&T", StripHTML("AT&amp;T"))
}

// --- ParseDocument ---

const rssDoc = `<?xml version="1.0"?>
<rss version="2.0">
<channel>
  <title>Market Wire</title>
  <link>https://wire.example.com</link>
  <item>
    <title>Cloud spend rises</title>
    <link>https://wire.example.com/1</link>
    <description><![CDATA[<p>Spend rose <b>20%</b>.</p>]]></description>
    <pubDate>Mon, 06 May 2024 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Chip demand</title>
    <link>https://wire.example.com/2</link>
    <description>Demand for chips grew.</description>
  </item>
</channel>
</rss>`

func TestParseDocumentRSS(t *testing.T) {
	in, err := ParseDocument([]byte(rssDoc))
	require.NoError(t, err)
	items := Normalize(in)
	require.Len(t, items, 2)
	assert.Equal(t, "Cloud spend rises", items[0].Title)
	assert.Equal(t, "https://wire.example.com/1", items[0].URL)
	assert.Equal(t, "Spend rose 20%.", items[0].Description)
	assert.Equal(t, "Market Wire", items[0].Source.Name)
	assert.NotEmpty(t, items[0].Date)
}

func TestParseDocumentJSON(t *testing.T) {
	in, err := ParseDocument([]byte(`{"results":[{"title":"A","link":"https://a.com","snippet":"s"}]}`))
	require.NoError(t, err)
	items := Normalize(in)
	require.Len(t, items, 1)
	assert.Equal(t, "https://a.com", items[0].URL)
	assert.Equal(t, "s", items[0].Description)
}

func TestParseDocumentYAML(t *testing.T) {
	doc := "- title: A\n  url: https://a.com\n- title: B\n  url: https://b.com\n"
	in, err := ParseDocument([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, Normalize(in), 2)
}

func TestParseDocumentPlainText(t *testing.T) {
	in, err := ParseDocument([]byte("Summary: revenue grew 20% this quarter."))
	require.NoError(t, err)
	assert.Equal(t, PlainString{Text: "Summary: revenue grew 20% this quarter."}, in)
}

func TestParseDocumentErrors(t *testing.T) {
	_, err := ParseDocument([]byte(`{"broken":`))
	assert.Error(t, err)

	in, err := ParseDocument([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, Empty{}, in)
}

// --- Deduplicate ---

func TestDeduplicateByURL(t *testing.T) {
	items := []types.ContentItem{
		{Title: "Cloud report", URL: "https://www.example.com/a/"},
		{Title: "Cloud report (mirror)", URL: "http://example.com/a", Description: "filled"},
		{Title: "Other", URL: "https://b.com"},
	}
	deduped, removed := Deduplicate(items)
	assert.Equal(t, 1, removed)
	require.Len(t, deduped, 2)
	assert.Equal(t, "Cloud report", deduped[0].Title)
	assert.Equal(t, "filled", deduped[0].Description)
}

func TestDeduplicateByTitle(t *testing.T) {
	items := []types.ContentItem{
		{Title: "Attention Is All You Need", URL: "https://a.com"},
		{Title: "attention is all you need!", URL: "https://b.com"},
	}
	deduped, removed := Deduplicate(items)
	assert.Equal(t, 1, removed)
	assert.Len(t, deduped, 1)
}

func TestDeduplicateNoDuplicates(t *testing.T) {
	items := []types.ContentItem{{Title: "A"}, {Title: "B"}, {Text: "untitled"}}
	deduped, removed := Deduplicate(items)
	assert.Equal(t, 0, removed)
	assert.Len(t, deduped, 3)
}

// --- Query files ---

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.yaml")
	items := NormalizeAny([]any{
		map[string]any{"title": "A", "url": "https://a.com", "snippet": "alpha", "keyPoints": []any{"point one is long"}},
	})
	require.NoError(t, WriteQueryFile(path, "cloud market", items))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cloud market", qf.Query)
	assert.Equal(t, items, qf.Items())
}

func TestReadQueryFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"query":"q","results":[{"title":"A","link":"https://a.com"}],"answer":"text"}`), 0o644))
	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, "text", qf.Answer)
	assert.Len(t, qf.Items(), 1)
}

func TestParseQueryFileShape(t *testing.T) {
	qf, err := ParseQueryFile([]byte("query: q\nanswer: a\nresults:\n  - title: A\n"))
	require.NoError(t, err)
	assert.True(t, qf.IsSaved())
	assert.Equal(t, "a", qf.Answer)

	qf, err = ParseQueryFile([]byte(`[{"title":"A"}]`))
	if err == nil {
		assert.False(t, qf.IsSaved())
	}

	qf, err = ParseQueryFile([]byte(`{"results":[{"title":"A"}]}`))
	require.NoError(t, err)
	assert.False(t, qf.IsSaved())
}

func TestReadQueryFileMissing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
