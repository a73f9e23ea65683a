// Package cloud detects, best effort, which deployment platform the host
// runs on. Detection only seeds the wizard's platform default; the operator
// always has the final say.
package cloud

import (
	"context"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"

	"github.com/robomesh/roboprov/internal/config"
)

const probeTimeout = 2 * time.Second

// dmiVendorPath exposes the machine vendor on Linux; Rackspace instances
// report themselves there.
const dmiVendorPath = "/sys/class/dmi/id/sys_vendor"

// DetectPlatform probes the environment for a recognizable deployment
// platform. Errors are deliberately swallowed: an undetectable platform is
// simply "other".
func DetectPlatform(ctx context.Context) config.Platform {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if onEC2(ctx) {
		return config.PlatformAWS
	}
	if vendor, err := os.ReadFile(dmiVendorPath); err == nil {
		if strings.Contains(strings.ToLower(string(vendor)), "rackspace") {
			return config.PlatformRackspace
		}
	}
	return config.PlatformOther
}

// onEC2 reports whether the EC2 instance metadata service answers.
func onEC2(ctx context.Context) bool {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return false
	}
	client := imds.NewFromConfig(cfg)
	_, err = client.GetInstanceIdentityDocument(ctx, &imds.GetInstanceIdentityDocumentInput{})
	return err == nil
}
