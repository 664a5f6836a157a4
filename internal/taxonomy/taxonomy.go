// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy holds the category registry: one Special entry (Key
// Insights), the Specific business subtopics, and the Broad fallback buckets.
// A Taxonomy is immutable once built and is passed explicitly to the matcher
// and processor.
package taxonomy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/insight-engine/internal/keyword"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// Taxonomy is an ordered, validated set of category definitions.
type Taxonomy struct {
	defs     []types.CategoryDefinition
	index    map[string]int
	matchers map[string]*keyword.Matcher
}

// FieldError is a single validation failure.
type FieldError struct {
	Category string
	Field    string
	Message  string
}

// ValidationError lists every problem found while building a taxonomy.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid taxonomy:")
	for _, fe := range e.Errors {
		if fe.Category != "" {
			fmt.Fprintf(&sb, " [%s] %s: %s;", fe.Category, fe.Field, fe.Message)
		} else {
			fmt.Fprintf(&sb, " %s: %s;", fe.Field, fe.Message)
		}
	}
	return strings.TrimSuffix(sb.String(), ";")
}

var validate = validator.New()

// New validates defs and builds a Taxonomy. Definitions are grouped by tier
// (special, specific, broad), keeping their relative order within a tier.
func New(defs ...types.CategoryDefinition) (*Taxonomy, error) {
	if err := check(defs); err != nil {
		return nil, err
	}

	ordered := append([]types.CategoryDefinition(nil), defs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return tierRank(ordered[i].Tier) < tierRank(ordered[j].Tier)
	})

	t := &Taxonomy{
		defs:     ordered,
		index:    make(map[string]int, len(ordered)),
		matchers: make(map[string]*keyword.Matcher, len(ordered)),
	}
	for i, d := range ordered {
		t.index[d.ID] = i
		if !d.IsWildcard() {
			t.matchers[d.ID] = keyword.New(d.Keywords)
		}
	}
	return t, nil
}

func check(defs []types.CategoryDefinition) error {
	ve := &ValidationError{}
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		name := d.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if d.ID != "" && seen[d.ID] {
			ve.Errors = append(ve.Errors, FieldError{Category: name, Field: "id", Message: "duplicate id"})
		}
		seen[d.ID] = true

		if err := validate.Struct(d); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return fmt.Errorf("validating category %s: %w", name, err)
			}
			for _, fe := range verrs {
				ve.Errors = append(ve.Errors, FieldError{
					Category: name,
					Field:    strings.ToLower(fe.Field()),
					Message:  "failed " + fe.Tag(),
				})
			}
		}

		if len(d.Keywords) == 0 && d.Predicate == nil {
			ve.Errors = append(ve.Errors, FieldError{
				Category: name,
				Field:    "keywords",
				Message:  "required unless the category is structural",
			})
		}
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func tierRank(t types.Tier) int {
	switch t {
	case types.TierSpecial:
		return 0
	case types.TierSpecific:
		return 1
	default:
		return 2
	}
}

// All returns every definition in taxonomy order.
func (t *Taxonomy) All() []types.CategoryDefinition {
	return append([]types.CategoryDefinition(nil), t.defs...)
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int { return len(t.defs) }

// Tier returns the definitions belonging to tier, in taxonomy order.
func (t *Taxonomy) Tier(tier types.Tier) []types.CategoryDefinition {
	var out []types.CategoryDefinition
	for _, d := range t.defs {
		if d.Tier == tier {
			out = append(out, d)
		}
	}
	return out
}

// Lookup returns the definition with the given id.
func (t *Taxonomy) Lookup(id string) (types.CategoryDefinition, bool) {
	i, ok := t.index[id]
	if !ok {
		return types.CategoryDefinition{}, false
	}
	return t.defs[i], true
}

// Position returns the index of id in taxonomy order, or -1.
func (t *Taxonomy) Position(id string) int {
	if i, ok := t.index[id]; ok {
		return i
	}
	return -1
}

// Keywords returns a copy of the category's keyword list.
func (t *Taxonomy) Keywords(id string) []string {
	d, ok := t.Lookup(id)
	if !ok {
		return nil
	}
	return append([]string(nil), d.Keywords...)
}

// Matcher returns the compiled keyword matcher for a category. Wildcard and
// unknown categories return nil.
func (t *Taxonomy) Matcher(id string) *keyword.Matcher {
	return t.matchers[id]
}

// Merge returns a new Taxonomy in which defs replace existing categories
// with the same id and are otherwise added. The receiver is unchanged.
func (t *Taxonomy) Merge(defs ...types.CategoryDefinition) (*Taxonomy, error) {
	replaced := make(map[string]types.CategoryDefinition, len(defs))
	for _, d := range defs {
		replaced[d.ID] = d
	}

	merged := make([]types.CategoryDefinition, 0, len(t.defs)+len(defs))
	for _, d := range t.defs {
		if r, ok := replaced[d.ID]; ok {
			merged = append(merged, r)
			delete(replaced, d.ID)
			continue
		}
		merged = append(merged, d)
	}
	for _, d := range defs {
		if r, pending := replaced[d.ID]; pending {
			merged = append(merged, r)
			delete(replaced, d.ID)
		}
	}
	return New(merged...)
}
