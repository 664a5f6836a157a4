// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchTextJoinsFields(t *testing.T) {
	c := ContentItem{ID: "x", Title: "Title", Description: " Desc "}
	assert.Equal(t, "Title\nDesc", c.SearchText())
}

func TestSearchTextFallbackOmitsDerivedFields(t *testing.T) {
	c := ContentItem{ID: "08e654da-e272-585c-a009-0086ef53689f", URL: "https://example.com/page"}
	assert.Equal(t, `{"url":"https://example.com/page"}`, c.SearchText())

	c.Source = Source{Name: "Example"}
	assert.Equal(t, `{"url":"https://example.com/page","source":{"name":"Example"}}`, c.SearchText())
}

func TestSearchTextEmpty(t *testing.T) {
	assert.Equal(t, "", ContentItem{ID: "x"}.SearchText())
}
