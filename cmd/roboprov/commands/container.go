package commands

import (
	"github.com/spf13/cobra"

	"github.com/robomesh/roboprov/cmd/roboprov/handlers"
)

// Container returns the command running the provisioning pipeline.
//
// Requires a valid configuration record; run 'roboprov config' first.
func Container() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "container",
		Short: "Provision the host and build the workload container",
		Long: `Run the host/container provisioning pipeline.

The pipeline executes in strict order and halts on the first failure:
  1. Host packages: prerequisites, middleware archive and key, host
     middleware packages, container networking service
  2. Container creation: external container build script
  3. Container provisioning: one atomic privileged invocation inside the
     container filesystem (locales, service accounts, packages, framework
     install, profile setup, root lockdown)

Completed stages are not rolled back on failure; re-run after fixing the
reported command.

Requires a valid configuration record (see 'roboprov config').

Example:
  roboprov container`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Container(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the configuration record")

	return cmd
}
