package schema

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON schema document together with its parsed source.
type Schema struct {
	doc      map[string]any
	compiled *gojsonschema.Schema
}

// compileSchema parses and compiles a schema document.
func compileSchema(data []byte) (*Schema, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema document: %w", err)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("compile schema document: %w", err)
	}

	return &Schema{doc: doc, compiled: compiled}, nil
}

// Document returns the parsed schema document.
func (s *Schema) Document() map[string]any { return s.doc }

// Validate runs the compiled schema against a decoded payload value.
func (s *Schema) Validate(payload any) (*gojsonschema.Result, error) {
	return s.compiled.Validate(gojsonschema.NewGoLoader(payload))
}
