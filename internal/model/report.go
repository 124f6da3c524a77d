package model

import "time"

// StepStatus is the terminal state of one step in a run.
type StepStatus string

const (
	StatusSucceeded StepStatus = "succeeded"
	StatusFailed    StepStatus = "failed"
	StatusTimedOut  StepStatus = "timed_out"
	StatusSkipped   StepStatus = "skipped"
)

// TopLevelStepID is the step id used in reports when a recipe has no steps
// and the rendered top-level command is the executable unit.
const TopLevelStepID = "command"

// StepResult records the outcome of one step. Skipped steps carry a reason;
// executed steps carry attempt count, exit code, captured output, and timing.
type StepResult struct {
	StepID     string        `yaml:"step_id" json:"step_id"`
	Name       string        `yaml:"name" json:"name"`
	Status     StepStatus    `yaml:"status" json:"status"`
	Attempts   int           `yaml:"attempts" json:"attempts"`
	ExitCode   int           `yaml:"exit_code" json:"exit_code"`
	Stdout     string        `yaml:"stdout,omitempty" json:"stdout,omitempty"`
	Stderr     string        `yaml:"stderr,omitempty" json:"stderr,omitempty"`
	Elapsed    time.Duration `yaml:"elapsed" json:"elapsed"`
	SkipReason string        `yaml:"skip_reason,omitempty" json:"skip_reason,omitempty"`
	Error      string        `yaml:"error,omitempty" json:"error,omitempty"`
}

// RunReport is the structured outcome of one recipe run. Steps appear in the
// recipe's declared order, one entry per step, including skipped steps.
type RunReport struct {
	RunID      string       `yaml:"run_id" json:"run_id"`
	RecipeID   string       `yaml:"recipe_id" json:"recipe_id"`
	RecipeName string       `yaml:"recipe_name" json:"recipe_name"`
	StartedAt  time.Time    `yaml:"started_at" json:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at" json:"finished_at"`
	Succeeded  bool         `yaml:"succeeded" json:"succeeded"`
	FailedStep string       `yaml:"failed_step,omitempty" json:"failed_step,omitempty"`
	Steps      []StepResult `yaml:"steps" json:"steps"`
}
