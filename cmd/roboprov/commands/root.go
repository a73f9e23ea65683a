// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the roboprov CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roboprov",
		Short: "Provision a robot-cloud container host",
	}

	// Provisioning modes
	cmd.AddCommand(All())
	cmd.AddCommand(Config())
	cmd.AddCommand(Cred())
	cmd.AddCommand(Container())
	cmd.AddCommand(Clean())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
