// Package provision drives the ordered host/container provisioning command
// pipeline and its cleanup counterpart.
package provision

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robomesh/roboprov/internal/platform/shell"
)

// Stage is one named step of the pipeline: an ordered list of opaque
// command strings plus their execution context.
type Stage struct {
	// Name identifies the stage in logs and errors.
	Name string

	// Dir is the working directory commands run in. Empty means the
	// caller's current directory.
	Dir string

	// Commands run strictly in order. A non-zero exit halts the stage
	// and the whole pipeline.
	Commands []string

	// Atomic joins all commands with "; " into a single invocation that
	// succeeds or fails as one unit.
	Atomic bool

	// Wrap, when set, turns the joined command line of an Atomic stage
	// into the actual invocation (typically a chroot into the container
	// filesystem). Ignored for non-atomic stages.
	Wrap func(joined string) string
}

// Run executes the stages strictly in declared order, aborting on the first
// failure. Stages are never retried and completed stages are never rolled
// back; re-running after a failure is the operator's call.
func Run(ctx context.Context, sh shell.Runner, obs Observer, stages []Stage) error {
	start := time.Now()
	obs.Printf("starting provisioning with %d stages...", len(stages))

	for i, stage := range stages {
		stageStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", stage.Name, i+1, len(stages))

		obs.Printf("[%s] starting", name)

		if err := runStage(ctx, sh, stage); err != nil {
			obs.Printf("[%s] failed: %v", name, err)
			return err
		}

		obs.Printf("[%s] completed in %v", name, time.Since(stageStart).Round(time.Millisecond))
	}

	obs.Printf("provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

func runStage(ctx context.Context, sh shell.Runner, stage Stage) error {
	if stage.Atomic {
		command := strings.Join(stage.Commands, "; ")
		if stage.Wrap != nil {
			command = stage.Wrap(command)
		}
		if err := sh.Run(ctx, stage.Dir, command); err != nil {
			return &ExternalCommandError{Stage: stage.Name, Command: command, Err: err}
		}
		return nil
	}

	for _, command := range stage.Commands {
		if err := sh.Run(ctx, stage.Dir, command); err != nil {
			return &ExternalCommandError{Stage: stage.Name, Command: command, Err: err}
		}
	}
	return nil
}
