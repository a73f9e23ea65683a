package commands

import (
	"github.com/spf13/cobra"

	"github.com/robomesh/roboprov/cmd/roboprov/handlers"
)

// Config returns the command for interactively creating the configuration
// record.
//
// The wizard asks for the container OS and middleware releases, the
// deployment platform, developer mode, network interfaces, and filesystem
// locations, resolves the effective release pair against the running host,
// and persists the result.
func Config() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Interactively create the provisioning configuration",
		Long: `Interactively create the provisioning configuration record.

The wizard asks about:

  - Container OS release and middleware release
  - Deployment platform (aws, rackspace, other)
  - Developer mode (fixed default passwords; never for production)
  - Network interfaces (external, internal, container bridge)
  - Filesystem locations (root filesystem, config dir, data dir,
    password store)

An unsupported middleware choice is overridden with the preferred release
for the chosen OS; the override is shown, not treated as an error.

Example:
  roboprov config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Config(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the configuration record")

	return cmd
}
