// Package wizard interactively collects the answers needed to build a
// provisioning configuration record.
package wizard

import (
	"context"
	"fmt"

	"github.com/robomesh/roboprov/internal/config"
	"github.com/robomesh/roboprov/internal/release"
)

// Result holds all the answers from the interactive wizard.
//
// Middleware is the *requested* middleware release; the release resolver may
// still override it with the container OS's preferred default.
type Result struct {
	// Releases
	ContainerOS string
	Middleware  string

	// Deployment
	Platform      string
	DeveloperMode bool

	// Network interfaces
	ExternalInterface  string
	InternalInterface  string
	ContainerInterface string

	// Filesystem locations
	RootFS        string
	ConfDir       string
	DataDir       string
	PasswordStore string
}

// Defaults seeds the wizard's pre-selected answers.
type Defaults struct {
	// Platform is the auto-detected deployment platform tag.
	Platform config.Platform
}

// Run walks the operator through all configuration questions.
// The context is used for cancellation support (Ctrl+C).
func Run(ctx context.Context, defaults Defaults) (*Result, error) {
	result := &Result{
		Platform:           string(defaults.Platform),
		ExternalInterface:  defaultExternalInterface,
		InternalInterface:  defaultInternalInterface,
		ContainerInterface: defaultContainerInterface,
		RootFS:             defaultRootFS,
		ConfDir:            defaultConfDir,
		DataDir:            defaultDataDir,
		PasswordStore:      defaultPasswordStore,
	}
	if result.Platform == "" {
		result.Platform = string(config.PlatformOther)
	}

	if err := runReleaseGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("releases: %w", err)
	}
	if err := runDeploymentGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("deployment: %w", err)
	}
	if err := runNetworkGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	if err := runFilesystemGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("filesystem: %w", err)
	}

	return result, nil
}

// Record materializes the answers plus the resolved release pair into an
// immutable configuration record.
func (r *Result) Record(pair release.Pair) *config.Record {
	return &config.Record{
		DeveloperMode:       r.DeveloperMode,
		PasswordStore:       r.PasswordStore,
		ContainerOS:         pair.ContainerOS,
		ContainerMiddleware: pair.ContainerMiddleware,
		HostMiddleware:      pair.HostMiddleware,
		Platform:            config.Platform(r.Platform),
		ExternalInterface:   r.ExternalInterface,
		InternalInterface:   r.InternalInterface,
		ContainerInterface:  r.ContainerInterface,
		RootFS:              r.RootFS,
		ConfDir:             r.ConfDir,
		DataDir:             r.DataDir,
	}
}
