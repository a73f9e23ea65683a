package provision

import "fmt"

// ExternalCommandError reports a provisioning command that exited non-zero.
// It is always fatal: the pipeline halts immediately, with no retry and no
// rollback of already-completed stages.
type ExternalCommandError struct {
	Stage   string
	Command string
	Err     error
}

func (e *ExternalCommandError) Error() string {
	return fmt.Sprintf("stage %q: command %q failed: %v", e.Stage, e.Command, e.Err)
}

func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}
