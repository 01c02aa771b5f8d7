package typeconfig

import (
	"encoding/json"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

const draft7 = "http://json-schema.org/draft-07/schema#"

// JSONSchema describes the options as a Draft 7 JSON Schema for a flat
// object. Defaults are emitted as strings because values are only typed once
// a [Type] casts them. The option's type name is kept under "x-type".
//
// Additional properties are rejected, since an undefined option is always an
// error. An option is required when it can't be empty and has no default.
func (tc *TypeConfig) JSONSchema() *jsonschema.Schema {
	defs := tc.Options()

	s := &jsonschema.Schema{
		Schema:               draft7,
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema, len(defs)),
		AdditionalProperties: falseSchema(),
	}

	for _, def := range defs {
		s.Properties[def.Name] = propertySchema(def)
		s.PropertyOrder = append(s.PropertyOrder, def.Name)

		if !def.CanBeEmpty && def.Default == "" {
			s.Required = append(s.Required, def.Name)
		}
	}

	return s
}

func propertySchema(def Definition) *jsonschema.Schema {
	prop := &jsonschema.Schema{
		Description: description(def),
		Extra:       map[string]any{"x-type": def.Type},
	}

	if def.Default != "" {
		prop.Default = defaultValue(def.Default)
	}

	return prop
}

// description joins important help and help into one paragraph each.
func description(def Definition) string {
	var parts []string

	for _, text := range []string{def.ImportantHelp, def.Help} {
		if lines := splitText(text); len(lines) > 0 {
			parts = append(parts, strings.Join(lines, " "))
		}
	}

	return strings.Join(parts, "\n\n")
}

// defaultValue converts a Go value to a [json.RawMessage]. Returns nil if
// marshaling fails.
func defaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}

// falseSchema returns a schema that validates nothing (marshals to JSON
// false).
func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
