package normalize

import (
	"fmt"
	"strings"

	"github.com/cookrun/cookrun/internal/model"
	"github.com/google/uuid"
)

// NormalizeRecipe transforms a freshly decoded recipe into canonical form:
// blank step ids are assigned fresh UUIDs, argument types default to string,
// and nil collections are initialized.
func NormalizeRecipe(recipe *model.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("recipe cannot be nil")
	}

	if recipe.Tags == nil {
		recipe.Tags = []string{}
	}
	if recipe.Shells == nil {
		recipe.Shells = []string{}
	}

	for i := range recipe.Arguments {
		arg := &recipe.Arguments[i]
		if arg.ArgType == "" {
			arg.ArgType = model.ArgTypeString
		}
	}

	for i := range recipe.Steps {
		step := &recipe.Steps[i]
		if strings.TrimSpace(step.ID) == "" {
			step.ID = uuid.NewString()
		}
		if step.Name == "" {
			step.Name = step.ID
		}
		if step.Args == nil {
			step.Args = []string{}
		}
		if step.Environment == nil {
			step.Environment = map[string]string{}
		}
	}

	return nil
}
