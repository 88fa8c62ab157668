// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Schema validates payloads against a schema document (the OpenAPI 3
// flavour of JSON Schema), delegating the actual checks to kin-openapi.
type Schema struct {
	schema *openapi3.Schema
}

// NewSchema parses document, written in YAML or JSON, and verifies that it
// is a well-formed schema.
func NewSchema(document []byte) (*Schema, error) {
	var doc any
	if err := yaml.Unmarshal(document, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: document root must be an object", ErrInvalidSchema)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	schema := openapi3.NewSchema()
	if err := json.Unmarshal(raw, schema); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if err := schema.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	return &Schema{schema: schema}, nil
}

// LoadSchemaFile reads and parses the schema document stored at path.
func LoadSchemaFile(path string) (*Schema, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading schema file: %w", err)
	}
	return NewSchema(document)
}

// Validate implements Validator. Violations match ErrSchemaViolation and
// carry the path reported by the schema engine.
func (s *Schema) Validate(body any) error {
	err := s.schema.VisitJSON(plain(body))
	if err == nil {
		return nil
	}

	var path []string
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		path = schemaErr.JSONPointer()
	}

	return newPathError(path, fmt.Errorf("%w: %w", ErrSchemaViolation, err))
}

// plain returns a copy of v with every json.Number turned into float64,
// the number representation the schema engine works with.
func plain(v any) any {
	switch value := v.(type) {
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return value.String()
		}
		return f
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}
