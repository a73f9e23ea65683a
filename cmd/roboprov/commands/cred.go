package commands

import (
	"github.com/spf13/cobra"

	"github.com/robomesh/roboprov/cmd/roboprov/handlers"
)

// Cred returns the command bootstrapping the credential store.
//
// Requires a valid configuration record; run 'roboprov config' first.
func Cred() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "cred",
		Short: "Bootstrap the credential store with the required accounts",
		Long: `Bootstrap the credential store with the required system accounts.

The bootstrap is idempotent: accounts that already exist are left alone,
missing ones are created. In developer mode the fixed default passwords are
used; otherwise passwords are generated and kept in the password store.
The admin account always ends up elevated and in the owner group.

Requires a valid configuration record (see 'roboprov config').

Example:
  roboprov cred`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Cred(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the configuration record")

	return cmd
}
