package handlers

import (
	"context"
	"fmt"

	"github.com/robomesh/roboprov/internal/config"
	"github.com/robomesh/roboprov/internal/config/wizard"
	"github.com/robomesh/roboprov/internal/platform/cloud"
	"github.com/robomesh/roboprov/internal/release"
	"github.com/robomesh/roboprov/internal/ui"
)

// Factory function variables for config - can be replaced in tests.
var (
	// detectPlatform probes for the deployment platform.
	detectPlatform = cloud.DetectPlatform

	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// resolvePair resolves the effective release pair.
	resolvePair = release.Resolve

	// writeRecord persists the configuration record.
	writeRecord = config.WriteFile
)

// Config collects the provisioning configuration interactively, resolves the
// effective release pair against the running host, and persists the record.
func Config(ctx context.Context, configPath string) error {
	configPath = configPathOrDefault(configPath)

	if !isTTY() {
		return fmt.Errorf("interactive configuration requires a terminal")
	}

	ui.Title("roboprov - robot-cloud container host provisioning")
	fmt.Println()

	result, err := runWizard(ctx, wizard.Defaults{Platform: detectPlatform(ctx)})
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	sh := newRunner()
	pair, err := resolvePair(result.ContainerOS, result.Middleware, func() (string, error) {
		return detectHost(ctx, sh)
	})
	if err != nil {
		return err
	}
	if pair.Overridden {
		ui.Noticef("Middleware release %q is not supported on %q; using %q instead.",
			pair.Requested, pair.ContainerOS, pair.ContainerMiddleware)
	}

	rec := result.Record(pair)
	if err := writeRecord(rec, configPath); err != nil {
		return err
	}

	printConfigSummary(configPath, rec, pair.HostOS)
	return nil
}

// printConfigSummary prints the persisted decisions and the next steps.
func printConfigSummary(path string, rec *config.Record, hostOS string) {
	fmt.Println()
	ui.Successf("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", path)
	fmt.Println()
	fmt.Println("Provisioning Summary")
	fmt.Println("--------------------")
	fmt.Printf("  Host OS:              %s\n", hostOS)
	fmt.Printf("  Host middleware:      %s\n", rec.HostMiddleware)
	fmt.Printf("  Container OS:         %s\n", rec.ContainerOS)
	fmt.Printf("  Container middleware: %s\n", rec.ContainerMiddleware)
	fmt.Printf("  Platform:             %s\n", rec.Platform)
	fmt.Printf("  Developer mode:       %v\n", rec.DeveloperMode)
	fmt.Println()
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Bootstrap the credential store:")
	fmt.Println("     roboprov cred")
	fmt.Println()
	fmt.Println("  2. Provision the host and container:")
	fmt.Println("     roboprov container")
	fmt.Println()
}
