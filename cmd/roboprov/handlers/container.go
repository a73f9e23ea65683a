package handlers

import (
	"context"
	"fmt"

	"github.com/robomesh/roboprov/internal/provision"
)

// Container runs the host/container provisioning pipeline.
// Requires a valid configuration record.
func Container(ctx context.Context, configPath string) error {
	rec, err := loadRecordOrRemediate(configPathOrDefault(configPath))
	if err != nil {
		return err
	}

	sh := newRunner()

	// Stage 1 is parameterized by the live host release, not the record;
	// the record only pins the resolved middleware releases.
	hostOS, err := detectHost(ctx, sh)
	if err != nil {
		return err
	}

	dir, err := binDir()
	if err != nil {
		return err
	}

	stages := []provision.Stage{
		provision.HostPackageStage(hostOS, rec),
		provision.ContainerCreateStage(rec, dir),
		provision.ContainerProvisionStage(rec),
	}

	if err := provision.Run(ctx, sh, newObserver(), stages); err != nil {
		return fmt.Errorf("provisioning failed: %w", err)
	}
	return nil
}
