// Package handlers implements the execution logic behind the CLI commands.
package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/robomesh/roboprov/internal/config"
	"github.com/robomesh/roboprov/internal/cred"
	"github.com/robomesh/roboprov/internal/platform/shell"
	"github.com/robomesh/roboprov/internal/provision"
	"github.com/robomesh/roboprov/internal/release"
	"github.com/robomesh/roboprov/internal/ui"
)

// Factory function variables shared across handlers - can be replaced in
// tests.
var (
	// newRunner creates the shell executor.
	newRunner = func() shell.Runner { return shell.New() }

	// newObserver creates the pipeline observer.
	newObserver = provision.NewConsoleObserver

	// loadRecord loads the persisted configuration record.
	loadRecord = config.LoadFile

	// openStore opens the file-backed credential store.
	openStore = func(path string) (cred.Store, error) { return cred.OpenFile(path) }

	// detectHost detects the host OS release.
	detectHost = release.DetectHost

	// binDir resolves the directory of the running binary. Container
	// build scripts resolve their helpers against it.
	binDir = func() (string, error) {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("failed to locate the roboprov binary: %w", err)
		}
		return filepath.Dir(exe), nil
	}

	// isTTY reports whether stdin is attached to a terminal.
	isTTY = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// configPathOrDefault applies the default record location.
func configPathOrDefault(path string) string {
	if path == "" {
		return config.DefaultPath
	}
	return path
}

// loadRecordOrRemediate loads the record and, when it is absent or
// malformed, tells the operator how to fix it before failing.
func loadRecordOrRemediate(path string) (*config.Record, error) {
	rec, err := loadRecord(path)
	if err != nil {
		ui.Errorf("No valid configuration at %s.", path)
		ui.Noticef("Run 'roboprov config' (or 'roboprov all') first.")
		return nil, err
	}
	return rec, nil
}
