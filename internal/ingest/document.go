// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// StripHTML removes markup and decodes entities, collapsing whitespace.
// Strings without markup are returned unchanged.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// itemKeys mark a YAML mapping as structured collaborator output rather
// than prose that happens to contain a colon.
var itemKeys = []string{"results", "items", "data", "title", "url", "link", "content", "text", "snippet", "description"}

// ParseDocument decodes a collaborator document: an RSS, Atom or JSON feed,
// a JSON value, a YAML document, or plain text. Feeds become typed Items;
// everything else goes through Classify.
func ParseDocument(data []byte) (Input, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Empty{}, nil
	}

	switch trimmed[0] {
	case '<':
		items, err := parseFeed(trimmed)
		if err != nil {
			return nil, err
		}
		return Classify(items), nil
	case '{', '[':
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, fmt.Errorf("parsing JSON document: %w", err)
		}
		if m, ok := v.(map[string]any); ok && isJSONFeed(m) {
			items, err := parseFeed(trimmed)
			if err != nil {
				return nil, err
			}
			return Classify(items), nil
		}
		return Classify(v), nil
	}

	var v any
	if err := yaml.Unmarshal(trimmed, &v); err == nil {
		switch x := v.(type) {
		case []any:
			return Classify(x), nil
		case map[string]any:
			for _, k := range itemKeys {
				if _, ok := x[k]; ok {
					return Classify(x), nil
				}
			}
		}
	}
	return Classify(string(data)), nil
}

func isJSONFeed(m map[string]any) bool {
	v, _ := m["version"].(string)
	return strings.Contains(v, "jsonfeed.org")
}

// parseFeed converts feed entries into content items. The feed itself is
// recorded as each item's source.
func parseFeed(data []byte) ([]types.ContentItem, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	src := types.Source{Name: feed.Title, URL: feed.Link}
	items := make([]types.ContentItem, 0, len(feed.Items))
	for _, fi := range feed.Items {
		item := types.ContentItem{
			Title:       StripHTML(fi.Title),
			URL:         fi.Link,
			Description: StripHTML(fi.Description),
			Content:     StripHTML(fi.Content),
			Source:      src,
			Date:        fi.Published,
			Type:        "web",
		}
		if item.Date == "" {
			item.Date = fi.Updated
		}
		item.ID = ItemID(item)
		items = append(items, item)
	}
	return items, nil
}
