package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/robomesh/roboprov/internal/cred"
)

// Cred bootstraps the credential store with the required system accounts.
// Requires a valid configuration record.
func Cred(_ context.Context, configPath string) error {
	rec, err := loadRecordOrRemediate(configPathOrDefault(configPath))
	if err != nil {
		return err
	}

	store, err := openStore(rec.PasswordStore)
	if err != nil {
		return fmt.Errorf("failed to open password store: %w", err)
	}

	bootstrapper := cred.NewBootstrapper(store, os.Stdout)
	if err := bootstrapper.Bootstrap(rec.DeveloperMode); err != nil {
		return fmt.Errorf("credential bootstrap failed: %w", err)
	}

	log.Printf("credential store ready at %s", rec.PasswordStore)
	return nil
}
