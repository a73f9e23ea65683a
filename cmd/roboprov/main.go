// Package main is the entry point for the roboprov CLI.
//
// roboprov prepares a host machine to run robot-cloud workload containers:
// it resolves a compatible host/container release pair, collects and
// persists the provisioning configuration, bootstraps the credential store
// with the required system accounts, and drives the ordered host/container
// provisioning pipeline.
//
// Commands: all, config, cred, container, clean.
//
// For detailed usage information, run:
//
//	roboprov --help
package main

import (
	"fmt"
	"os"

	"github.com/robomesh/roboprov/cmd/roboprov/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
