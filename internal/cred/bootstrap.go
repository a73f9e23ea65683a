package cred

import (
	"fmt"
	"io"
	"os"
)

// Well-known account and group names.
const (
	AccountAdmin      = "admin"
	AccountAdminInfra = "adminInfra"
	AccountTest       = "testUser"

	GroupOwner = "owner"
)

// requiredOrder fixes the creation order so re-runs and logs are stable.
var requiredOrder = []string{AccountAdmin, AccountAdminInfra, AccountTest}

// defaultPasswords maps each required account to its developer-mode default.
// These are intentionally insecure; developer mode trades credential
// security for convenience and must never be used in production.
var defaultPasswords = map[string]string{
	AccountAdmin:      "admin",
	AccountAdminInfra: "admin",
	AccountTest:       "testUser",
}

// RequiredAccounts returns the account name to default password set a
// bootstrap run must guarantee. Developer mode extends the base set with
// the test account.
func RequiredAccounts(developerMode bool) map[string]string {
	req := map[string]string{
		AccountAdmin:      defaultPasswords[AccountAdmin],
		AccountAdminInfra: defaultPasswords[AccountAdminInfra],
	}
	if developerMode {
		req[AccountTest] = defaultPasswords[AccountTest]
	}
	return req
}

// Bootstrapper guarantees the required accounts exist in a credential store.
type Bootstrapper struct {
	store Store
	out   io.Writer
}

// NewBootstrapper returns a Bootstrapper writing operator notices to out
// (os.Stdout when nil).
func NewBootstrapper(store Store, out io.Writer) *Bootstrapper {
	if out == nil {
		out = os.Stdout
	}
	return &Bootstrapper{store: store, out: out}
}

// Bootstrap ensures every required account exists and that admin holds its
// administrative invariants. It is idempotent: re-running after a partial or
// full prior run neither errors nor duplicates accounts nor resets passwords
// that were already provisioned.
func (b *Bootstrapper) Bootstrap(developerMode bool) error {
	required := RequiredAccounts(developerMode)

	notified := false
	for _, name := range requiredOrder {
		password, ok := required[name]
		if !ok {
			continue
		}

		// Any lookup failure, the well-defined miss included, means the
		// account has to be created. A flaky store check must not block
		// provisioning; a genuine duplicate surfaces on Add.
		if _, err := b.store.Get(name); err == nil {
			continue
		}

		if !developerMode {
			if !notified {
				fmt.Fprintln(b.out, "Passwords for new accounts are generated and kept in the password store.")
				notified = true
			}
			generated, err := b.store.GeneratePassword(name)
			if err != nil {
				return fmt.Errorf("generate password for account %q: %w", name, err)
			}
			password = generated
		}

		if err := b.store.Add(name, password, false); err != nil {
			return fmt.Errorf("create account %q: %w", name, err)
		}
	}

	// Always re-asserted, whether or not admin pre-existed.
	if err := b.store.SetMode(AccountAdmin, ModeElevated); err != nil {
		return fmt.Errorf("elevate account %q: %w", AccountAdmin, err)
	}
	if err := b.store.AddToGroup(AccountAdmin, GroupOwner); err != nil {
		return fmt.Errorf("add account %q to group %q: %w", AccountAdmin, GroupOwner, err)
	}
	return nil
}
