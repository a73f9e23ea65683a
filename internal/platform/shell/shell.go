// Package shell executes provisioning commands through the system shell.
//
// Commands are opaque to the orchestration core: only the exit status is
// inspected, never the output. Invocations block with no timeout beyond
// context cancellation.
package shell

import (
	"context"
	"os"
	"os/exec"
)

// Runner executes shell command lines.
type Runner interface {
	// Run executes the command line in dir (empty means the caller's
	// current directory) and returns the execution error, if any. A
	// non-zero exit status surfaces as an *exec.ExitError.
	Run(ctx context.Context, dir, command string) error

	// Output executes the command line and returns its stdout.
	Output(ctx context.Context, command string) (string, error)
}

// ExecRunner runs commands via `sh -c`, streaming output to the process
// stdout/stderr so the operator sees external-command progress directly.
type ExecRunner struct {
	// Env entries are appended to the inherited environment.
	Env []string
}

// New returns a Runner backed by os/exec.
func New() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd.Run()
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	out, err := cmd.Output()
	return string(out), err
}
