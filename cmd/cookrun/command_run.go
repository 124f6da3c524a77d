package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cookrun/cookrun/internal/executor"
	"github.com/cookrun/cookrun/internal/render"
	"github.com/cookrun/cookrun/internal/runner"
	"github.com/spf13/cobra"
)

var (
	runArgPairs   []string
	runExecute    bool
	runWorkDir    string
	runReportFile string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a recipe",
	Long:  "Bind arguments, render the recipe, and execute its steps in order. Default is dry-run; pass --execute to spawn processes.",
	RunE: func(cmd *cobra.Command, cmdArgs []string) error {
		return runRecipe()
	},
}

func registerRunCommand(root *cobra.Command) {
	root.AddCommand(runCmd)

	runCmd.Flags().StringArrayVarP(&runArgPairs, "arg", "a", nil, "Argument value as name=value (repeatable)")
	runCmd.Flags().BoolVarP(&runExecute, "execute", "x", false, "Actually execute commands (default is dry-run)")
	runCmd.Flags().StringVar(&runWorkDir, "workdir", ".", "Working directory for spawned processes")
	runCmd.Flags().StringVarP(&runReportFile, "output", "o", "", "Write the run report to this file (json or yaml)")
}

func runRecipe() error {
	recipe, bound, err := loadAndBind(runArgPairs)
	if err != nil {
		return err
	}

	if !runExecute {
		fmt.Println("□ Dry-run mode enabled. Use --execute to run commands.")
		return printRenderedRecipe(recipe, bound)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("□ Running recipe %s...\n", recipe.ID)
	exec := executor.New(runner.New(runWorkDir))
	report, err := exec.Execute(ctx, recipe, bound)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(render.NewReportViewer(report).View())

	if runReportFile != "" {
		if err := render.NewRenderer().WriteReport(report, runReportFile); err != nil {
			return err
		}
		fmt.Printf("✓ Report saved to: %s\n", runReportFile)
	}

	if !report.Succeeded {
		return fmt.Errorf("recipe run failed at step %s", report.FailedStep)
	}
	return nil
}
