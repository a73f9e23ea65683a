package commands

import (
	"github.com/spf13/cobra"

	"github.com/robomesh/roboprov/cmd/roboprov/handlers"
)

// Clean returns the command that removes provisioned state.
//
// Unlike cred and container, clean tolerates a missing or malformed
// configuration: the operator is offered the cached container filesystems
// to tear down instead.
func Clean() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the workload container and persisted provisioning state",
		Long: `Remove the workload container and persisted provisioning state.

This reverses container creation for the configured base OS release, then
deletes the configuration record and the password store. Without a valid
configuration you are asked which cached container filesystem, if any, to
tear down.

Example:
  roboprov clean`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Clean(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the configuration record")

	return cmd
}
