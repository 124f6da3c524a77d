package main

import (
	"fmt"
	"strings"

	"github.com/cookrun/cookrun/internal/args"
	"github.com/cookrun/cookrun/internal/loader"
	"github.com/cookrun/cookrun/internal/model"
	"github.com/spf13/cobra"
)

var recipeFile string

var rootCmd = &cobra.Command{
	Use:   "cookrun",
	Short: "Recipe execution engine",
	Long:  "cookrun renders templated recipes against typed arguments and executes their steps with timeout, retry, and conditional-skip semantics",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&recipeFile, "file", "f", "recipe.yaml", "Recipe file path")

	registerRunCommand(rootCmd)
	registerValidateCommand(rootCmd)
	registerRenderCommand(rootCmd)
	registerDescribeCommand(rootCmd)
}

// loadAndBind loads the recipe file and binds --arg pairs to its schema.
func loadAndBind(argPairs []string) (*model.Recipe, args.Bound, error) {
	recipe, err := loader.LoadRecipe(recipeFile)
	if err != nil {
		return nil, nil, err
	}

	supplied, err := parseArgPairs(argPairs)
	if err != nil {
		return nil, nil, err
	}

	bound, err := args.Bind(recipe.Arguments, supplied)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to bind arguments: %w", err)
	}

	return recipe, bound, nil
}

func parseArgPairs(pairs []string) (map[string]string, error) {
	supplied := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --arg %q, expected name=value", pair)
		}
		supplied[name] = value
	}
	return supplied, nil
}
