package main

import (
	"fmt"
	"strings"

	"github.com/cookrun/cookrun/internal/loader"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show recipe metadata, argument schema, and steps",
	RunE: func(cmd *cobra.Command, cmdArgs []string) error {
		return describeRecipe()
	},
}

func registerDescribeCommand(root *cobra.Command) {
	root.AddCommand(describeCmd)
}

func describeRecipe() error {
	recipe, err := loader.LoadRecipe(recipeFile)
	if err != nil {
		return err
	}

	fmt.Printf("[Recipe] %s\n", recipe.Name)
	fmt.Printf("  ID:          %s\n", recipe.ID)
	if recipe.Description != "" {
		fmt.Printf("  Description: %s\n", recipe.Description)
	}
	if recipe.Author != "" {
		fmt.Printf("  Author:      %s\n", recipe.Author)
	}
	if len(recipe.Tags) > 0 {
		fmt.Printf("  Tags:        %s\n", strings.Join(recipe.Tags, ", "))
	}
	if len(recipe.Shells) > 0 {
		fmt.Printf("  Shells:      %s\n", strings.Join(recipe.Shells, ", "))
	}

	if len(recipe.Arguments) > 0 {
		fmt.Printf("\n  Arguments (%d):\n", len(recipe.Arguments))
		for _, arg := range recipe.Arguments {
			line := fmt.Sprintf("    %s (%s)", arg.Name, arg.ArgType)
			if arg.Required {
				line += " required"
			} else if arg.DefaultValue != "" {
				line += fmt.Sprintf(" default=%q", arg.DefaultValue)
			}
			fmt.Println(line)
			if arg.Description != "" {
				fmt.Printf("      %s\n", arg.Description)
			}
			if len(arg.Options) > 0 {
				fmt.Printf("      options: %s\n", strings.Join(arg.Options, ", "))
			}
		}
	}

	if len(recipe.Steps) > 0 {
		fmt.Printf("\n  Steps (%d):\n", len(recipe.Steps))
		for i, step := range recipe.Steps {
			fmt.Printf("    %d. %s (%s)\n", i+1, step.Name, step.ID)
			fmt.Printf("       command: %s %s\n", step.Command, strings.Join(step.Args, " "))
			if step.Timeout > 0 {
				fmt.Printf("       timeout: %ds\n", step.Timeout)
			}
			if step.RetryCount > 0 {
				fmt.Printf("       retries: %d\n", step.RetryCount)
			}
			if step.Condition != "" {
				fmt.Printf("       when:    %s\n", step.Condition)
			}
		}
	} else if recipe.Command != "" {
		fmt.Printf("\n  Command template:\n    %s\n", strings.ReplaceAll(recipe.Command, "\n", "\n    "))
	}

	return nil
}
