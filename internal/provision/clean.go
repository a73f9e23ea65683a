package provision

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/robomesh/roboprov/internal/config"
	"github.com/robomesh/roboprov/internal/platform/shell"
)

// DefaultCacheDir is where container build caches live, one directory per
// base OS release.
const DefaultCacheDir = "/var/cache/lxc"

// CleanOptions configures a cleanup run.
type CleanOptions struct {
	// ConfigPath is the persisted configuration record to clean up after.
	ConfigPath string

	// CacheDir holds the per-release container build caches. Empty means
	// DefaultCacheDir.
	CacheDir string

	// BinDir is the directory of the roboprov binary (container script
	// location).
	BinDir string

	// SelectCache lets the operator pick which cached release to tear
	// down when no configuration records it. Returning an empty string
	// skips the teardown. Required only when the fallback can trigger.
	SelectCache func(candidates []string) (string, error)
}

// Clean reverses container creation and removes persisted provisioning
// state. It is tolerant of partial or missing state: a missing configuration
// falls back to the operator choosing a cached container filesystem (or
// nothing), and a failing password-store removal is logged, not fatal.
func Clean(ctx context.Context, sh shell.Runner, obs Observer, opts CleanOptions) error {
	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = DefaultCacheDir
	}

	baseOS := ""
	passwordStore := ""

	rec, err := config.LoadFile(opts.ConfigPath)
	switch {
	case err == nil:
		baseOS = rec.ContainerOS
		passwordStore = rec.PasswordStore
	case errors.Is(err, config.ErrNoValidConfiguration):
		obs.Printf("no valid configuration at %s, checking cached container filesystems", opts.ConfigPath)
		baseOS, err = selectCachedRelease(cacheDir, opts.SelectCache)
		if err != nil {
			return err
		}
	default:
		return err
	}

	if baseOS != "" {
		stage := ContainerTeardownStage(baseOS, opts.BinDir)
		if err := Run(ctx, sh, obs, []Stage{stage}); err != nil {
			return err
		}
	} else {
		obs.Printf("no container filesystem to clean up")
	}

	if err := os.Remove(opts.ConfigPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove configuration: %w", err)
	}

	if passwordStore != "" {
		// Best effort: a missing or stubborn password store must not
		// fail the cleanup.
		if err := os.Remove(passwordStore); err != nil && !os.IsNotExist(err) {
			obs.Printf("could not remove password store %s: %v", passwordStore, err)
		}
	}

	return nil
}

// selectCachedRelease lists the cache directory and asks the operator which
// release's cache to tear down. An empty listing or a missing cache
// directory means there is nothing to do.
func selectCachedRelease(cacheDir string, selectCache func([]string) (string, error)) (string, error) {
	entries, err := os.ReadDir(cacheDir)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to list cache directory %s: %w", cacheDir, err)
	}

	var candidates []string
	for _, e := range entries {
		if e.IsDir() {
			candidates = append(candidates, e.Name())
		}
	}
	if len(candidates) == 0 {
		return "", nil
	}
	sort.Strings(candidates)

	if selectCache == nil {
		return "", nil
	}
	return selectCache(candidates)
}
