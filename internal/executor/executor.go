// Package executor orchestrates recipe runs: steps execute strictly in
// declared order, each bounded by its own timeout and retry budget, with
// fail-stop on the first step that does not succeed.
package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cookrun/cookrun/internal/args"
	"github.com/cookrun/cookrun/internal/model"
	"github.com/cookrun/cookrun/internal/template"
	"github.com/google/uuid"
)

// CancelledReason marks steps skipped because the caller aborted the run.
const CancelledReason = "run cancelled"

// Executor runs recipes through a ProcessRunner. It holds no mutable state
// between runs; independent runs may proceed concurrently.
type Executor struct {
	runner ProcessRunner
}

// New creates an executor backed by the given process runner.
func New(runner ProcessRunner) *Executor {
	return &Executor{runner: runner}
}

// Execute runs the recipe against the bound arguments and returns the run
// report. A non-nil error is returned only for configuration defects caught
// before any process is spawned; execution failures are recorded in the
// report. Cancelling ctx aborts the in-flight step and marks the remainder
// of the run as skipped.
func (e *Executor) Execute(ctx context.Context, recipe *model.Recipe, bound args.Bound) (*model.RunReport, error) {
	if recipe == nil {
		return nil, fmt.Errorf("recipe cannot be nil")
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	report := &model.RunReport{
		RunID:      uuid.NewString(),
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
		StartedAt:  time.Now(),
		Succeeded:  true,
	}

	if len(recipe.Steps) == 0 {
		e.runTopLevelCommand(ctx, recipe, bound, report)
	} else {
		e.runSteps(ctx, recipe, bound, report)
	}

	report.FinishedAt = time.Now()
	return report, nil
}

// runSteps walks the declared step order. Once a step fails or the run is
// cancelled, every remaining step is reported as skipped.
func (e *Executor) runSteps(ctx context.Context, recipe *model.Recipe, bound args.Bound, report *model.RunReport) {
	failedStep := ""
	cancelled := false

	for _, step := range recipe.Steps {
		result := model.StepResult{StepID: step.ID, Name: step.Name}

		switch {
		case cancelled:
			result.Status = model.StatusSkipped
			result.SkipReason = CancelledReason

		case failedStep != "":
			result.Status = model.StatusSkipped
			result.SkipReason = fmt.Sprintf("upstream step %s failed", failedStep)

		default:
			rendered, err := RenderStep(step, bound)
			if err != nil {
				result.Status = model.StatusFailed
				result.Error = err.Error()
				failedStep = step.ID
				break
			}

			if !conditionHolds(rendered.Condition, step.Condition) {
				result.Status = model.StatusSkipped
				result.SkipReason = fmt.Sprintf("condition %q evaluated to false", step.Condition)
				break
			}

			inv := Invocation{
				Command: rendered.Command,
				Args:    rendered.Args,
				Env:     rendered.Environment,
				Timeout: time.Duration(step.Timeout) * time.Second,
			}
			cancelled = e.attempt(ctx, inv, step.RetryCount+1, &result)
			if result.Status != model.StatusSucceeded {
				failedStep = step.ID
			}
		}

		report.Steps = append(report.Steps, result)
	}

	if failedStep != "" {
		report.Succeeded = false
		report.FailedStep = failedStep
	}
}

// runTopLevelCommand executes the rendered top-level command through the
// shell as a single attempt with no timeout and no condition.
func (e *Executor) runTopLevelCommand(ctx context.Context, recipe *model.Recipe, bound args.Bound, report *model.RunReport) {
	result := model.StepResult{StepID: model.TopLevelStepID, Name: "top-level command"}

	command, err := template.Render(recipe.Command, bound)
	if err != nil {
		result.Status = model.StatusFailed
		result.Error = fmt.Sprintf("failed to render top-level command: %v", err)
	} else {
		inv := Invocation{Command: "sh", Args: []string{"-c", command}}
		e.attempt(ctx, inv, 1, &result)
	}

	report.Steps = append(report.Steps, result)
	if result.Status != model.StatusSucceeded {
		report.Succeeded = false
		report.FailedStep = result.StepID
	}
}

// attempt drives the retry loop for one step. The result carries the status
// and observations of the last attempt made, plus the total attempt count.
// It reports whether the run was cancelled mid-step.
func (e *Executor) attempt(ctx context.Context, inv Invocation, budget int, result *model.StepResult) bool {
	for i := 1; i <= budget; i++ {
		result.Attempts = i

		out, err := e.runner.Run(ctx, inv)
		result.ExitCode = out.ExitCode
		result.Stdout = string(out.Stdout)
		result.Stderr = string(out.Stderr)
		result.Elapsed = out.Elapsed

		if ctx.Err() != nil {
			result.Status = model.StatusFailed
			result.Error = CancelledReason
			return true
		}

		switch {
		case err != nil:
			result.Status = model.StatusFailed
			result.Error = err.Error()
		case out.TimedOut:
			result.Status = model.StatusTimedOut
			result.Error = fmt.Sprintf("attempt exceeded %s timeout", inv.Timeout)
		case out.ExitCode != 0:
			result.Status = model.StatusFailed
			result.Error = fmt.Sprintf("exited with code %d", out.ExitCode)
		default:
			result.Status = model.StatusSucceeded
			result.Error = ""
			return false
		}
	}
	return false
}

// conditionHolds evaluates a rendered condition: the trimmed text is truthy
// unless it is empty or case-insensitively "false" or "0". An unrendered
// (empty) condition always holds.
func conditionHolds(rendered, source string) bool {
	if source == "" {
		return true
	}
	trimmed := strings.TrimSpace(rendered)
	if trimmed == "" {
		return false
	}
	switch strings.ToLower(trimmed) {
	case "false", "0":
		return false
	}
	return true
}
