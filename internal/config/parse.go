package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ParseLabels splits comma-separated input into trimmed, non-empty labels.
// Order and duplicates are preserved.
func ParseLabels(raw string) ([]string, error) {
	var labels []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			labels = append(labels, tok)
		}
	}
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	return labels, nil
}

// LabelDescriptionsTemplate returns one "<label>: [description]" line per label.
func LabelDescriptionsTemplate(labels []string) string {
	lines := make([]string, len(labels))
	for i, l := range labels {
		lines[i] = l + ": [description]"
	}
	return strings.Join(lines, "\n")
}

const categoriesSchemaURL = "schema://categories.json"

// categoriesSchema requires a non-empty object whose values are non-empty
// arrays of non-empty strings.
const categoriesSchema = `{
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": "array",
		"minItems": 1,
		"items": {"type": "string", "minLength": 1}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func categoriesValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(categoriesSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse categories schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(categoriesSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(categoriesSchemaURL)
	})
	return compiledSchema, compileErr
}

// ParseCategories decodes a JSON object mapping category names to type
// lists. Malformed JSON or a value of the wrong shape yields *CategoriesError.
func ParseCategories(raw string) (map[string][]string, error) {
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, &CategoriesError{Err: fmt.Errorf("decode JSON: %w", err)}
	}

	sch, err := categoriesValidator()
	if err != nil {
		return nil, &CategoriesError{Err: err}
	}
	if err := sch.Validate(inst); err != nil {
		return nil, &CategoriesError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var out map[string][]string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &CategoriesError{Err: fmt.Errorf("decode categories: %w", err)}
	}
	return out, nil
}

// FormatCategories renders categories as indented JSON for display and
// for pre-seeding the categories editor.
func FormatCategories(ct map[string][]string) string {
	if len(ct) == 0 {
		return "{}"
	}
	b, err := json.MarshalIndent(ct, "", "    ")
	if err != nil {
		return fmt.Sprintf("%v", ct)
	}
	return string(b)
}
