package main

import (
	"fmt"

	"github.com/cookrun/cookrun/internal/args"
	"github.com/cookrun/cookrun/internal/executor"
	"github.com/cookrun/cookrun/internal/model"
	"github.com/spf13/cobra"
)

var renderArgPairs []string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a recipe without executing it",
	Long:  "Bind arguments and print the rendered top-level command and per-step args, environment, and condition.",
	RunE: func(cmd *cobra.Command, cmdArgs []string) error {
		recipe, bound, err := loadAndBind(renderArgPairs)
		if err != nil {
			return err
		}
		return printRenderedRecipe(recipe, bound)
	},
}

func registerRenderCommand(root *cobra.Command) {
	root.AddCommand(renderCmd)

	renderCmd.Flags().StringArrayVarP(&renderArgPairs, "arg", "a", nil, "Argument value as name=value (repeatable)")
}

func printRenderedRecipe(recipe *model.Recipe, bound args.Bound) error {
	rendered, err := executor.RenderRecipe(recipe, bound)
	if err != nil {
		return err
	}

	if rendered.Command != "" {
		if len(rendered.Steps) > 0 {
			fmt.Println("Top-level command (advisory, steps take precedence):")
		} else {
			fmt.Println("Top-level command:")
		}
		fmt.Printf("  %s\n", rendered.Command)
	}

	for i, step := range rendered.Steps {
		fmt.Printf("\nStep %d: %s (%s)\n", i+1, step.Name, step.ID)
		fmt.Printf("  command: %s\n", step.Command)
		for _, arg := range step.Args {
			fmt.Printf("  arg:     %s\n", arg)
		}
		for key, value := range step.Environment {
			fmt.Printf("  env:     %s=%s\n", key, value)
		}
		if step.Condition != "" {
			fmt.Printf("  when:    %s\n", step.Condition)
		}
	}

	return nil
}
