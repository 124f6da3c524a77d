package main

import (
	"fmt"

	"github.com/cookrun/cookrun/internal/loader"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a recipe file",
	RunE: func(cmd *cobra.Command, cmdArgs []string) error {
		fmt.Println("□ Validating recipe...")
		recipe, err := loader.LoadRecipe(recipeFile)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Recipe %s is valid (%d arguments, %d steps)\n",
			recipe.ID, len(recipe.Arguments), len(recipe.Steps))
		return nil
	},
}

func registerValidateCommand(root *cobra.Command) {
	root.AddCommand(validateCmd)
}
