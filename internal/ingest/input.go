// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest turns collaborator output of arbitrary shape into a uniform
// list of content items. The shape is resolved once by Classify into an
// Input variant; Normalize then converts that variant without further
// probing. Malformed input never produces an error here: it classifies as
// Empty and normalizes to no items.
package ingest

import (
	"strings"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// Input is the classified form of raw collaborator output. The concrete
// types are Empty, PlainString, RawArray, ChatHistory, SingleObject and
// Items.
type Input interface {
	isInput()
}

// Empty is nil, blank, or otherwise unusable input.
type Empty struct{}

// PlainString is a bare string such as an LLM answer.
type PlainString struct {
	Text string
}

// RawArray is a list of search hits, objects, or strings.
type RawArray struct {
	Elements []any
}

// ChatHistory is a list of chat messages with user/assistant/system roles.
type ChatHistory struct {
	Messages []map[string]any
}

// SingleObject is one bare object.
type SingleObject struct {
	Object map[string]any
}

// Items is input that is already typed.
type Items struct {
	Items []types.ContentItem
}

func (Empty) isInput()        {}
func (PlainString) isInput()  {}
func (RawArray) isInput()     {}
func (ChatHistory) isInput()  {}
func (SingleObject) isInput() {}
func (Items) isInput()        {}

// collectionKeys are the fields of a wrapper object that carry the actual
// list, in precedence order.
var collectionKeys = []string{"results", "items", "data"}

var chatRoles = map[string]bool{"user": true, "assistant": true, "system": true}

// Classify inspects v once and returns its Input variant.
func Classify(v any) Input {
	switch x := v.(type) {
	case nil:
		return Empty{}
	case Input:
		return x
	case string:
		if strings.TrimSpace(x) == "" {
			return Empty{}
		}
		return PlainString{Text: x}
	case []byte:
		return Classify(string(x))
	case types.ContentItem:
		return Items{Items: []types.ContentItem{x}}
	case []types.ContentItem:
		if len(x) == 0 {
			return Empty{}
		}
		return Items{Items: x}
	case []string:
		elems := make([]any, len(x))
		for i, s := range x {
			elems[i] = s
		}
		return Classify(elems)
	case []map[string]any:
		elems := make([]any, len(x))
		for i, m := range x {
			elems[i] = m
		}
		return Classify(elems)
	case []any:
		if len(x) == 0 {
			return Empty{}
		}
		if msgs, ok := chatMessages(x); ok {
			return ChatHistory{Messages: msgs}
		}
		return RawArray{Elements: x}
	case map[string]any:
		for _, key := range collectionKeys {
			if inner, ok := x[key]; ok && isList(inner) {
				return Classify(inner)
			}
		}
		if len(x) == 0 {
			return Empty{}
		}
		return SingleObject{Object: x}
	default:
		return Empty{}
	}
}

func isList(v any) bool {
	switch v.(type) {
	case []any, []map[string]any, []string, []types.ContentItem:
		return true
	}
	return false
}

// chatMessages reports whether every element is a chat message: an object
// with a user, assistant or system role (under "type" or "role") and a
// "content" field.
func chatMessages(elems []any) ([]map[string]any, bool) {
	msgs := make([]map[string]any, 0, len(elems))
	for _, e := range elems {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, false
		}
		if _, ok := m["content"]; !ok {
			return nil, false
		}
		if !chatRoles[messageRole(m)] {
			return nil, false
		}
		msgs = append(msgs, m)
	}
	return msgs, true
}

func messageRole(m map[string]any) string {
	for _, key := range []string{"role", "type"} {
		if s, ok := m[key].(string); ok && s != "" {
			return strings.ToLower(s)
		}
	}
	return ""
}
