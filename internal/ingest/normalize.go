// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// contentNamespace scopes name-based IDs for items without a URL.
var contentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("insight-engine:content"))

// Normalize converts a classified input into content items. The result is
// deterministic: IDs are name-based UUIDs, never random.
func Normalize(in Input) []types.ContentItem {
	switch x := in.(type) {
	case PlainString:
		return []types.ContentItem{textItem(x.Text)}
	case Items:
		out := make([]types.ContentItem, len(x.Items))
		for i, item := range x.Items {
			if item.ID == "" {
				item.ID = ItemID(item)
			}
			out[i] = item
		}
		return out
	case RawArray:
		var out []types.ContentItem
		for _, e := range x.Elements {
			switch v := e.(type) {
			case string:
				if strings.TrimSpace(v) != "" {
					out = append(out, textItem(v))
				}
			case map[string]any:
				if item, ok := itemFromMap(v); ok {
					out = append(out, item)
				}
			}
		}
		return out
	case ChatHistory:
		return normalizeChat(x.Messages)
	case SingleObject:
		if item, ok := itemFromMap(x.Object); ok {
			return []types.ContentItem{item}
		}
	}
	return nil
}

// NormalizeAny is Classify followed by Normalize.
func NormalizeAny(v any) []types.ContentItem {
	return Normalize(Classify(v))
}

// normalizeChat uses the content of the latest assistant message. String
// content that holds JSON is decoded and classified again.
func normalizeChat(msgs []map[string]any) []types.ContentItem {
	for i := len(msgs) - 1; i >= 0; i-- {
		if messageRole(msgs[i]) != "assistant" {
			continue
		}
		content := msgs[i]["content"]
		if s, ok := content.(string); ok {
			if decoded, ok := decodeJSON(s); ok {
				content = decoded
			}
		}
		if _, nested := Classify(content).(ChatHistory); nested {
			return nil
		}
		return NormalizeAny(content)
	}
	return nil
}

func decodeJSON(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

func textItem(text string) types.ContentItem {
	item := types.ContentItem{Text: text, Type: "text"}
	item.ID = ItemID(item)
	return item
}

// ItemID derives a stable identifier from the item's URL, title, or text.
func ItemID(item types.ContentItem) string {
	switch {
	case item.URL != "":
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(item.URL)).String()
	case item.Title != "":
		return uuid.NewSHA1(contentNamespace, []byte("title:"+item.Title)).String()
	default:
		return uuid.NewSHA1(contentNamespace, []byte("text:"+item.SearchText())).String()
	}
}

// normKey folds camelCase, snake_case and kebab-case field names together.
func normKey(k string) string {
	k = strings.ToLower(k)
	k = strings.ReplaceAll(k, "_", "")
	return strings.ReplaceAll(k, "-", "")
}

// itemFromMap maps a loosely shaped object onto a ContentItem. Collaborator
// aliases are folded: link/href become URL, snippet becomes Description when
// no description is present. HTML markup is stripped from display fields.
// Unrecognized fields are kept in Extra.
func itemFromMap(m map[string]any) (types.ContentItem, bool) {
	fields := foldKeys(m)
	used := make(map[string]bool)
	get := func(aliases ...string) (any, bool) {
		for _, a := range aliases {
			if f, ok := fields[a]; ok && f.value != nil {
				used[a] = true
				return f.value, true
			}
		}
		return nil, false
	}
	getStr := func(aliases ...string) string {
		v, _ := get(aliases...)
		return str(v)
	}

	var item types.ContentItem
	item.Title = StripHTML(getStr("title", "name", "headline"))
	item.URL = strings.TrimSpace(getStr("url", "link", "href"))
	item.Text = getStr("text")
	if v, ok := get("content", "answer"); ok {
		if s, isStr := v.(string); isStr {
			item.Content = s
		} else {
			used["content"], used["answer"] = false, false
		}
	}
	item.Description = StripHTML(getStr("description"))
	if snippet := StripHTML(getStr("snippet")); snippet != "" {
		if item.Description == "" {
			item.Description = snippet
		} else if snippet != item.Description {
			item.Snippet = snippet
		}
	}
	item.Summary = StripHTML(getStr("summary", "abstract"))
	if v, ok := get("source"); ok {
		item.Source = toSource(v)
	}
	item.Date = getStr("date", "published", "publisheddate")
	item.Type = getStr("type", "kind")
	if v, ok := get("keyinsights", "insights"); ok {
		item.KeyInsights = strList(v)
	}
	if v, ok := get("keypoints"); ok {
		item.KeyPoints = strList(v)
	}
	if v, ok := get("metrics"); ok {
		item.Metrics = toMetrics(v)
	}
	used["id"] = true

	for nk, f := range fields {
		if used[nk] {
			continue
		}
		if item.Extra == nil {
			item.Extra = make(map[string]any)
		}
		item.Extra[f.key] = f.value
	}

	if item.Title == "" && item.URL == "" && item.Text == "" && item.Content == "" &&
		item.Description == "" && item.Summary == "" && len(item.KeyInsights) == 0 && len(item.KeyPoints) == 0 {
		return types.ContentItem{}, false
	}
	item.ID = ItemID(item)
	return item, true
}

type field struct {
	key   string
	value any
}

// foldKeys indexes m by folded key. When two keys fold together the
// lexically smallest source key wins.
func foldKeys(m map[string]any) map[string]field {
	out := make(map[string]field, len(m))
	for k, v := range m {
		nk := normKey(k)
		if prev, ok := out[nk]; ok && prev.key < k {
			continue
		}
		out[nk] = field{key: k, value: v}
	}
	return out
}

func str(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func strList(v any) []string {
	var out []string
	switch x := v.(type) {
	case []string:
		out = append(out, x...)
	case []any:
		for _, e := range x {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
	case string:
		out = append(out, x)
	}
	return out
}

func toSource(v any) types.Source {
	switch x := v.(type) {
	case string:
		return types.Source{Name: strings.TrimSpace(x)}
	case map[string]any:
		f := foldKeys(x)
		var s types.Source
		for _, k := range []string{"name", "title"} {
			if s.Name == "" {
				s.Name = str(f[k].value)
			}
		}
		for _, k := range []string{"url", "link"} {
			if s.URL == "" {
				s.URL = str(f[k].value)
			}
		}
		return s
	}
	return types.Source{}
}

func toMetrics(v any) *types.Metrics {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := &types.Metrics{
		Relevance:   toInt(m["relevance"]),
		Accuracy:    toInt(m["accuracy"]),
		Credibility: toInt(m["credibility"]),
		Overall:     toInt(m["overall"]),
	}
	return out
}

func toInt(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x + 0.5)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(x))
		return n
	}
	return 0
}
