package handlers

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/robomesh/roboprov/internal/provision"
)

// runClean is a factory var for tests.
var runClean = provision.Clean

// Clean reverses container creation and removes the persisted configuration
// and password store. A missing configuration is not an error: the operator
// picks a cached container filesystem to tear down, or nothing at all.
func Clean(ctx context.Context, configPath string) error {
	dir, err := binDir()
	if err != nil {
		return err
	}

	opts := provision.CleanOptions{
		ConfigPath:  configPathOrDefault(configPath),
		BinDir:      dir,
		SelectCache: selectCachePrompt(ctx),
	}
	return runClean(ctx, newRunner(), newObserver(), opts)
}

// selectCachePrompt returns the operator prompt for the cleanup fallback.
// Without a terminal the selection is skipped: cleanup stays best effort.
func selectCachePrompt(ctx context.Context) func([]string) (string, error) {
	return func(candidates []string) (string, error) {
		if !isTTY() {
			return "", nil
		}

		opts := []huh.Option[string]{huh.NewOption("none (skip)", "")}
		for _, c := range candidates {
			opts = append(opts, huh.NewOption(c, c))
		}

		var choice string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Cached Container Filesystems").
					Description("No configuration was found. Pick a cached release to tear down.").
					Options(opts...).
					Value(&choice),
			),
		).RunWithContext(ctx)
		return choice, err
	}
}
