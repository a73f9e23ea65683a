package wizard

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
)

// runReleaseGroup prompts for the container OS release and the desired
// middleware release.
func runReleaseGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Container OS Release").
				Description("Base OS release of the workload container").
				Options(ReleaseOptions()...).
				Value(&result.ContainerOS),
		).Title("Releases"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	// Middleware choices depend on the chosen OS release, so this is a
	// second form rather than a second field of the first.
	opts := MiddlewareOptions(result.ContainerOS)
	if len(opts) > 0 {
		result.Middleware = opts[0].Value // preferred default
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Middleware Release").
				Description("Middleware release to install inside the container").
				Options(opts...).
				Value(&result.Middleware),
		).Title("Releases"),
	).RunWithContext(ctx)
}

// runDeploymentGroup prompts for the deployment platform and developer mode.
func runDeploymentGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Deployment Platform").
				Description("Where this host runs").
				Options(PlatformOptions()...).
				Value(&result.Platform),
			huh.NewConfirm().
				Title("Developer Mode").
				Description("Uses fixed default passwords. Never use in production.").
				Value(&result.DeveloperMode),
		).Title("Deployment"),
	).RunWithContext(ctx)
}

// runNetworkGroup prompts for the three network interface names.
func runNetworkGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("External Interface").
				Description("Interface facing the outside network").
				Value(&result.ExternalInterface).
				Validate(validateInterface),
			huh.NewInput().
				Title("Internal Interface").
				Description("Interface used for host-to-host traffic").
				Value(&result.InternalInterface).
				Validate(validateInterface),
			huh.NewInput().
				Title("Container Interface").
				Description("Bridge interface the containers attach to").
				Value(&result.ContainerInterface).
				Validate(validateInterface),
		).Title("Network"),
	).RunWithContext(ctx)
}

// runFilesystemGroup prompts for filesystem locations.
func runFilesystemGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Container Root Filesystem").
				Value(&result.RootFS).
				Validate(validateAbsolutePath),
			huh.NewInput().
				Title("Instance Config Directory").
				Value(&result.ConfDir).
				Validate(validateAbsolutePath),
			huh.NewInput().
				Title("Instance Data Directory").
				Value(&result.DataDir).
				Validate(validateAbsolutePath),
			huh.NewInput().
				Title("Password Store").
				Description("File the credential store persists accounts to").
				Value(&result.PasswordStore).
				Validate(validateAbsolutePath),
		).Title("Filesystem"),
	).RunWithContext(ctx)
}

func validateInterface(s string) error {
	if strings.TrimSpace(s) == "" {
		return errInterfaceRequired
	}
	return nil
}

func validateAbsolutePath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errPathRequired
	}
	if !filepath.IsAbs(s) {
		return errPathNotAbsolute
	}
	return nil
}
