// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/insight-engine/pkg/types"
)

//go:embed schema.json
var schemaJSON string

// defaultLoadedPriority is used for file categories that omit a priority.
const defaultLoadedPriority = 5

// File is the on-disk form of a taxonomy extension. JSON is accepted as a
// subset of YAML.
type File struct {
	Categories []types.CategoryDefinition `json:"categories" yaml:"categories"`
}

// LoadFile reads a taxonomy extension file and returns its definitions.
// Merge them into a base taxonomy with (*Taxonomy).Merge.
func LoadFile(path string) ([]types.CategoryDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy file: %w", err)
	}
	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("taxonomy file %s: %w", path, err)
	}
	return defs, nil
}

// Parse validates data against the extension schema and decodes it.
// Categories without a tier are Specific.
func Parse(data []byte) ([]types.CategoryDefinition, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing taxonomy: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("taxonomy document is empty")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("validating taxonomy: %w", err)
	}
	if !result.Valid() {
		ve := &ValidationError{}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
		}
		return nil, ve
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding taxonomy: %w", err)
	}
	for i := range f.Categories {
		d := &f.Categories[i]
		if d.Tier == "" {
			d.Tier = types.TierSpecific
		}
		if d.Priority == 0 && d.Tier == types.TierSpecific {
			d.Priority = defaultLoadedPriority
		}
	}
	return f.Categories, nil
}
