package render

import (
	"fmt"
	"strings"

	"github.com/cookrun/cookrun/internal/model"
)

// ReportViewer provides a human-readable view of a run report.
type ReportViewer struct {
	report *model.RunReport
}

// NewReportViewer creates a new report viewer.
func NewReportViewer(report *model.RunReport) *ReportViewer {
	return &ReportViewer{report: report}
}

// View returns the step-by-step summary of the run.
func (rv *ReportViewer) View() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Recipe: %s (%s)\n", rv.report.RecipeName, rv.report.RecipeID)
	fmt.Fprintf(&sb, "Run:    %s\n", rv.report.RunID)
	fmt.Fprintf(&sb, "Took:   %s\n\n", rv.report.FinishedAt.Sub(rv.report.StartedAt).Round(0))

	for _, step := range rv.report.Steps {
		fmt.Fprintf(&sb, "%s %s (%s)\n", statusMarker(step.Status), step.Name, step.StepID)

		switch step.Status {
		case model.StatusSkipped:
			fmt.Fprintf(&sb, "    skipped: %s\n", step.SkipReason)
		case model.StatusSucceeded:
			fmt.Fprintf(&sb, "    %d attempt(s), %s\n", step.Attempts, step.Elapsed.Round(0))
		default:
			fmt.Fprintf(&sb, "    %s after %d attempt(s): %s\n", step.Status, step.Attempts, step.Error)
			if trimmed := strings.TrimSpace(step.Stderr); trimmed != "" {
				fmt.Fprintf(&sb, "    stderr: %s\n", trimmed)
			}
		}
	}

	sb.WriteString("\n")
	if rv.report.Succeeded {
		sb.WriteString("✓ Run succeeded\n")
	} else {
		fmt.Fprintf(&sb, "✗ Run failed at step %s\n", rv.report.FailedStep)
	}

	return sb.String()
}

func statusMarker(status model.StepStatus) string {
	switch status {
	case model.StatusSucceeded:
		return "✓"
	case model.StatusSkipped:
		return "-"
	default:
		return "✗"
	}
}
