package executor

import (
	"fmt"

	"github.com/cookrun/cookrun/internal/args"
	"github.com/cookrun/cookrun/internal/model"
	"github.com/cookrun/cookrun/internal/template"
)

// RenderedStep is a step with its args, environment, and condition expanded
// against the bound arguments. Rendering happens once per run attempt,
// before any subprocess invocation.
type RenderedStep struct {
	ID          string
	Name        string
	Command     string
	Args        []string
	Environment map[string]string
	Condition   string
}

// RenderStep expands a step's templated fields. Failures here are
// configuration errors, distinct from execution failures.
func RenderStep(step model.Step, bound args.Bound) (*RenderedStep, error) {
	rendered := &RenderedStep{
		ID:          step.ID,
		Name:        step.Name,
		Command:     step.Command,
		Args:        make([]string, 0, len(step.Args)),
		Environment: make(map[string]string, len(step.Environment)),
	}

	for _, arg := range step.Args {
		out, err := template.Render(arg, bound)
		if err != nil {
			return nil, fmt.Errorf("step %s: failed to render arg %q: %w", step.ID, arg, err)
		}
		rendered.Args = append(rendered.Args, out)
	}

	for key, value := range step.Environment {
		out, err := template.Render(value, bound)
		if err != nil {
			return nil, fmt.Errorf("step %s: failed to render environment %s: %w", step.ID, key, err)
		}
		rendered.Environment[key] = out
	}

	if step.Condition != "" {
		out, err := template.Render(step.Condition, bound)
		if err != nil {
			return nil, fmt.Errorf("step %s: failed to render condition: %w", step.ID, err)
		}
		rendered.Condition = out
	}

	return rendered, nil
}

// RenderedRecipe is the fully expanded view of a recipe for one set of bound
// arguments: the top-level command plus every step.
type RenderedRecipe struct {
	Command string
	Steps   []RenderedStep
}

// RenderRecipe expands the recipe's top-level command and all steps without
// executing anything.
func RenderRecipe(recipe *model.Recipe, bound args.Bound) (*RenderedRecipe, error) {
	out := &RenderedRecipe{Steps: make([]RenderedStep, 0, len(recipe.Steps))}

	if recipe.Command != "" {
		command, err := template.Render(recipe.Command, bound)
		if err != nil {
			return nil, fmt.Errorf("failed to render top-level command: %w", err)
		}
		out.Command = command
	}

	for _, step := range recipe.Steps {
		rendered, err := RenderStep(step, bound)
		if err != nil {
			return nil, err
		}
		out.Steps = append(out.Steps, *rendered)
	}

	return out, nil
}
