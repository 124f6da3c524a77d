package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed recipe.schema.yaml
var recipeSchemaYAML []byte

// Validator handles JSON schema validation of recipe documents.
type Validator struct {
	recipeSchema *jsonschema.Schema
}

// NewValidator compiles the embedded recipe schema.
func NewValidator() (*Validator, error) {
	schema, err := compileSchema(recipeSchemaYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to compile recipe schema: %w", err)
	}
	return &Validator{recipeSchema: schema}, nil
}

// ValidateRecipe validates a decoded recipe document against the schema.
// The document must use JSON value types; see ToJSONValue.
func (v *Validator) ValidateRecipe(doc interface{}) error {
	if v.recipeSchema == nil {
		return fmt.Errorf("recipe schema not loaded")
	}
	return v.recipeSchema.Validate(doc)
}

// ToJSONValue round-trips a YAML-decoded value through encoding/json so the
// schema compiler sees the value types it expects.
func ToJSONValue(doc interface{}) (interface{}, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return out, nil
}

// compileSchema compiles a schema definition (YAML or JSON).
func compileSchema(data []byte) (*jsonschema.Schema, error) {
	var schemaData interface{}
	if err := yaml.Unmarshal(data, &schemaData); err != nil {
		return nil, fmt.Errorf("failed to parse schema definition: %w", err)
	}

	jsonData, err := json.Marshal(schemaData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	schema, err := jsonschema.CompileString("recipe.schema.json", string(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return schema, nil
}
