package commands

import (
	"github.com/spf13/cobra"

	"github.com/robomesh/roboprov/cmd/roboprov/handlers"
)

// All returns the command that runs the full provisioning sequence.
//
// Optional flags:
//
//	--config, -c: Path to the configuration record (default /etc/roboprov/config.yaml)
func All() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Configure, bootstrap credentials, and provision in one run",
		Long: `Run the complete provisioning sequence.

This command walks through all provisioning steps in order:
  1. Interactive configuration (same as 'roboprov config')
  2. Credential bootstrap (same as 'roboprov cred')
  3. Host and container provisioning (same as 'roboprov container')

Example:
  roboprov all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.All(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the configuration record")

	return cmd
}
