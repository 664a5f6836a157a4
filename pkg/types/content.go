// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the insight-engine pipeline:
// normalized content items, category definitions and their scored runtime
// instances, quality metrics, synthesized responses, and configuration.
package types

import (
	"encoding/json"
	"strings"
)

// Source identifies where a content item came from. Collaborators send either
// a bare name string or an object with a name and URL; both decode here.
type Source struct {
	// Name is the publisher or site name (e.g. "Reuters").
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// URL is the source's canonical location.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// IsZero reports whether the source carries no information.
func (s Source) IsZero() bool {
	return s.Name == "" && s.URL == ""
}

// Metrics holds the three quality axes for a piece of content. Each value is
// an integer in [0,100].
type Metrics struct {
	Relevance   int `json:"relevance" yaml:"relevance"`
	Accuracy    int `json:"accuracy" yaml:"accuracy"`
	Credibility int `json:"credibility" yaml:"credibility"`

	// Overall is round((Relevance+Accuracy+Credibility)/3).
	Overall int `json:"overall" yaml:"overall"`
}

// ContentItem is one unit of search or LLM output after normalization.
// Items are never mutated once normalized; scoring results live in
// ScoredItem.
type ContentItem struct {
	// ID is a deterministic identifier derived from the URL, title, or text.
	ID string `json:"id" yaml:"id"`

	// Title is the headline of a search hit.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// URL is the hit's link (collaborators may call it "link").
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Text is free-form text, used for bare strings and LLM answers.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Content is the body of an LLM answer or a fetched page.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// Description is the hit summary (collaborators may call it "snippet").
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Snippet is kept when both snippet and description were supplied.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`

	// Summary is an optional short abstract.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	Source Source `json:"source,omitempty" yaml:"source,omitempty"`

	// Date is the publication date as supplied (free-form).
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Type is a collaborator-supplied kind such as "text", "web", "image".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// KeyInsights and KeyPoints are pre-extracted statements from an LLM.
	KeyInsights []string `json:"key_insights,omitempty" yaml:"key_insights,omitempty"`
	KeyPoints   []string `json:"key_points,omitempty" yaml:"key_points,omitempty"`

	// Metrics are raw metrics supplied by the collaborator, if any.
	Metrics *Metrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// Extra keeps fields the normalizer did not recognize.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// SearchText returns the item's searchable text: the non-empty fields in
// priority order text, content, title, description, snippet, summary, joined
// by newlines. Items with none of those fall back to the JSON encoding of
// their remaining fields, without the ID.
func (c ContentItem) SearchText() string {
	var parts []string
	for _, s := range []string{c.Text, c.Content, c.Title, c.Description, c.Snippet, c.Summary} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "\n")
	}
	if c.isEmpty() {
		return ""
	}
	// Only collaborator fields are encoded: the derived ID and an empty
	// source would otherwise leak into keyword and number signals.
	raw := struct {
		ContentItem
		ID     string  `json:"id,omitempty"`
		Source *Source `json:"source,omitempty"`
	}{ContentItem: c}
	if !c.Source.IsZero() {
		src := c.Source
		raw.Source = &src
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return ""
	}
	return string(data)
}

// SnippetText returns the description, falling back to the snippet.
func (c ContentItem) SnippetText() string {
	if c.Description != "" {
		return c.Description
	}
	return c.Snippet
}

// Sources returns the item's source as a slice suitable for credibility
// scoring. The item URL stands in when no explicit source was supplied.
func (c ContentItem) Sources() []Source {
	if !c.Source.IsZero() {
		s := c.Source
		if s.URL == "" {
			s.URL = c.URL
		}
		return []Source{s}
	}
	if c.URL != "" {
		return []Source{{URL: c.URL}}
	}
	return nil
}

func (c ContentItem) isEmpty() bool {
	return c.URL == "" && c.Source.IsZero() && c.Date == "" && c.Type == "" &&
		len(c.KeyInsights) == 0 && len(c.KeyPoints) == 0 && c.Metrics == nil && len(c.Extra) == 0
}

// ScoredItem wraps a ContentItem with the scores computed for it within one
// category.
type ScoredItem struct {
	Item ContentItem `json:"item" yaml:"item"`

	// Relevance is the item-level relevance for the owning category (0-100).
	Relevance int `json:"relevance" yaml:"relevance"`

	// Index is the item's position in the normalized input.
	Index int `json:"index" yaml:"index"`

	// Metrics are the item's quality metrics for the current query.
	Metrics Metrics `json:"metrics" yaml:"metrics"`
}
