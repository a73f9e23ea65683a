// Package config defines the persisted provisioning configuration record
// and its YAML serialization.
//
// A Record is an immutable snapshot of one provisioning run's decisions.
// It is created once (normally by the interactive wizard plus the release
// resolver), persisted, and never mutated; a new run produces a new record.
package config

import (
	"fmt"

	"github.com/robomesh/roboprov/internal/release"
)

// Platform tags the deployment environment the host runs on.
type Platform string

// Supported deployment platforms.
const (
	PlatformAWS       Platform = "aws"
	PlatformRackspace Platform = "rackspace"
	PlatformOther     Platform = "other"
)

// Platforms lists the valid platform tags.
var Platforms = []Platform{PlatformAWS, PlatformRackspace, PlatformOther}

// Record is the persisted configuration of a provisioning run.
type Record struct {
	DeveloperMode bool   `yaml:"developer_mode"`
	PasswordStore string `yaml:"password_store"`

	// Resolved release pair.
	ContainerOS         string `yaml:"container_os"`
	ContainerMiddleware string `yaml:"container_middleware"`
	HostMiddleware      string `yaml:"host_middleware"`

	Platform Platform `yaml:"platform"`

	// Network interfaces used by the container bridge setup.
	ExternalInterface  string `yaml:"external_interface"`
	InternalInterface  string `yaml:"internal_interface"`
	ContainerInterface string `yaml:"container_interface"`

	// Filesystem locations.
	RootFS  string `yaml:"rootfs"`
	ConfDir string `yaml:"conf_dir"`
	DataDir string `yaml:"data_dir"`
}

// Validate checks the record for internal consistency.
func (r *Record) Validate() error {
	if r.ContainerOS == "" || r.ContainerMiddleware == "" || r.HostMiddleware == "" {
		return fmt.Errorf("release pair is incomplete")
	}
	compat, err := release.Compatible(r.ContainerOS)
	if err != nil {
		return err
	}
	if !containsString(compat, r.ContainerMiddleware) {
		return fmt.Errorf("middleware release %q is not compatible with OS release %q",
			r.ContainerMiddleware, r.ContainerOS)
	}
	switch r.Platform {
	case PlatformAWS, PlatformRackspace, PlatformOther:
	default:
		return fmt.Errorf("unknown platform %q", r.Platform)
	}
	if r.PasswordStore == "" {
		return fmt.Errorf("password_store is required")
	}
	if r.RootFS == "" || r.ConfDir == "" || r.DataDir == "" {
		return fmt.Errorf("rootfs, conf_dir and data_dir are required")
	}
	if r.ExternalInterface == "" || r.InternalInterface == "" || r.ContainerInterface == "" {
		return fmt.Errorf("all three network interfaces are required")
	}
	return nil
}

func containsString(list []string, v string) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
