// Package runner implements the process-runner boundary on top of os/exec.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/cookrun/cookrun/internal/executor"
)

// killGrace bounds how long a process gets between the context-triggered
// kill and a forced wait teardown.
const killGrace = 5 * time.Second

// ExecRunner spawns commands as OS processes. Each invocation runs in its
// own process group so a timed-out attempt takes its children down with it.
type ExecRunner struct {
	WorkDir string
}

// New creates a runner that spawns processes in workDir.
func New(workDir string) *ExecRunner {
	return &ExecRunner{WorkDir: workDir}
}

// Run spawns the invocation and observes its completion. The attempt is
// bounded by inv.Timeout when set; on expiry the whole process group is
// killed and the outcome reports TimedOut. A non-nil error means the process
// could not be started at all.
func (r *ExecRunner) Run(ctx context.Context, inv executor.Invocation) (executor.Outcome, error) {
	runCtx := ctx
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, inv.Command, inv.Args...)
	cmd.Dir = r.WorkDir
	cmd.Env = overlayEnviron(inv.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = killGrace

	start := time.Now()
	err := cmd.Run()

	out := executor.Outcome{
		Stdout:  stdout.Bytes(),
		Stderr:  stderr.Bytes(),
		Elapsed: time.Since(start),
	}

	// Distinguish the attempt deadline from caller cancellation: only the
	// former counts as a timeout.
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		out.TimedOut = true
		out.ExitCode = -1
		return out, nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, fmt.Errorf("failed to run %s: %w", inv.Command, err)
	}

	return out, nil
}

// overlayEnviron layers the invocation environment over the inherited one.
func overlayEnviron(env map[string]string) []string {
	if len(env) == 0 {
		return os.Environ()
	}
	merged := os.Environ()
	for key, value := range env {
		merged = append(merged, key+"="+value)
	}
	return merged
}
