package loader

import (
	"fmt"
	"os"

	"github.com/cookrun/cookrun/internal/model"
	"github.com/cookrun/cookrun/internal/normalize"
	"github.com/cookrun/cookrun/internal/schema"
	"gopkg.in/yaml.v3"
)

// LoadRecipe loads and parses a recipe YAML file. The document is validated
// against the recipe schema before decoding; structural invariants (unique
// ids, known argument types) are checked after normalization. Every failure
// here surfaces before any execution begins.
func LoadRecipe(path string) (*model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	recipe, err := ParseRecipe(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe %s: %w", path, err)
	}

	return recipe, nil
}

// ParseRecipe parses a recipe from YAML bytes.
func ParseRecipe(data []byte) (*model.Recipe, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse recipe YAML: %w", err)
	}

	jsonDoc, err := schema.ToJSONValue(doc)
	if err != nil {
		return nil, err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateRecipe(jsonDoc); err != nil {
		return nil, fmt.Errorf("recipe failed schema validation: %w", err)
	}

	var recipe model.Recipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}

	if err := normalize.NormalizeRecipe(&recipe); err != nil {
		return nil, err
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	return &recipe, nil
}
