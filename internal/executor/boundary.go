package executor

import (
	"context"
	"time"
)

// Invocation is one request to the process runner: a fixed executable, its
// rendered argument list, an environment overlay on top of the inherited
// process environment, and an attempt deadline (zero means unbounded).
type Invocation struct {
	Command string
	Args    []string
	Env     map[string]string
	Timeout time.Duration
}

// Outcome is what the process runner observed for one attempt.
type Outcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Elapsed  time.Duration
	TimedOut bool
}

// ProcessRunner spawns commands and observes their completion. The engine
// depends on this capability but does not implement shell semantics itself.
// A returned error means the process could not be run at all; completed
// processes report through Outcome, including non-zero exits and timeouts.
type ProcessRunner interface {
	Run(ctx context.Context, inv Invocation) (Outcome, error)
}
