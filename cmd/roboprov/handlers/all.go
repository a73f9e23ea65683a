package handlers

import "context"

// All runs the complete provisioning sequence: interactive configuration,
// credential bootstrap, then the provisioning pipeline. Each step leaves
// durable state behind, so a failed run can be resumed with the individual
// commands.
func All(ctx context.Context, configPath string) error {
	if err := Config(ctx, configPath); err != nil {
		return err
	}
	if err := Cred(ctx, configPath); err != nil {
		return err
	}
	return Container(ctx, configPath)
}
