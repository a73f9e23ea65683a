package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the on-disk location of the configuration record.
const DefaultPath = "/etc/roboprov/config.yaml"

// LoadFile reads and validates the configuration record from a YAML file.
// Any failure (missing file, unparseable YAML, failed validation) wraps
// ErrNoValidConfiguration so callers can branch on it uniformly.
func LoadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoValidConfiguration, err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoValidConfiguration, err)
	}

	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoValidConfiguration, err)
	}

	return &rec, nil
}

// WriteFile serializes the record to the given path, creating parent
// directories as needed. The write goes through a temp file and rename so
// a crash never leaves a half-written configuration behind.
func WriteFile(rec *Record, path string) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("refusing to write invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
