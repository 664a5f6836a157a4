// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"strings"
	"unicode"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// Deduplicate merges items that share a URL or a normalized title. The
// first occurrence keeps its position; later duplicates fill its empty
// fields. It returns the merged list and the number of items removed.
func Deduplicate(items []types.ContentItem) ([]types.ContentItem, int) {
	seen := make(map[string]int) // dedup key → index in deduped
	var deduped []types.ContentItem
	removed := 0

	for _, item := range items {
		urlKey := ""
		if u := normalizeURL(item.URL); u != "" {
			urlKey = "url:" + u
		}
		titleKey := ""
		if t := normalizeTitle(item.Title); t != "" {
			titleKey = "title:" + t
		}

		idx, dup := -1, false
		if urlKey != "" {
			idx, dup = seen[urlKey]
		}
		if !dup && titleKey != "" {
			idx, dup = seen[titleKey]
		}
		if dup {
			mergeInto(&deduped[idx], item)
			removed++
			if urlKey != "" {
				seen[urlKey] = idx
			}
			continue
		}

		idx = len(deduped)
		deduped = append(deduped, item)
		if urlKey != "" {
			seen[urlKey] = idx
		}
		if titleKey != "" {
			seen[titleKey] = idx
		}
	}
	return deduped, removed
}

// mergeInto fills empty fields of dst from src.
func mergeInto(dst *types.ContentItem, src types.ContentItem) {
	fill := func(d *string, s string) {
		if *d == "" && s != "" {
			*d = s
		}
	}
	fill(&dst.Title, src.Title)
	fill(&dst.URL, src.URL)
	fill(&dst.Text, src.Text)
	fill(&dst.Content, src.Content)
	fill(&dst.Description, src.Description)
	fill(&dst.Snippet, src.Snippet)
	fill(&dst.Summary, src.Summary)
	fill(&dst.Date, src.Date)
	fill(&dst.Type, src.Type)
	if dst.Source.IsZero() {
		dst.Source = src.Source
	}
	if len(dst.KeyInsights) == 0 {
		dst.KeyInsights = src.KeyInsights
	}
	if len(dst.KeyPoints) == 0 {
		dst.KeyPoints = src.KeyPoints
	}
	if src.Metrics != nil && (dst.Metrics == nil || src.Metrics.Overall > dst.Metrics.Overall) {
		dst.Metrics = src.Metrics
	}
}

// normalizeURL lower-cases the URL and drops the scheme, a leading "www."
// and trailing slashes.
func normalizeURL(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	u = strings.TrimPrefix(u, "www.")
	return strings.TrimRight(u, "/")
}

// normalizeTitle returns a lowercased, punctuation-stripped version of the title.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
