// Package cred bootstraps the system accounts required by the cloud engine
// and provides the credential-store capability they live in.
package cred

import "errors"

// Mode is an account's privilege mode.
type Mode int

// Privilege modes.
const (
	ModeStandard Mode = iota
	ModeElevated
)

// ErrAccountNotFound is the well-defined "account absent" signal from a
// store lookup. The bootstrapper treats it, like any other lookup failure,
// as "must create".
var ErrAccountNotFound = errors.New("account not found")

// Account is a credential-store entry. Password material never leaves the
// store; only metadata is exposed.
type Account struct {
	Name        string
	Mode        Mode
	Groups      []string
	Provisional bool
}

// Store is the credential-store capability the bootstrapper operates on.
// Implementations provide their own internal consistency; the orchestration
// core never calls a store concurrently.
type Store interface {
	// Get returns the named account or ErrAccountNotFound.
	Get(name string) (Account, error)

	// Add creates a new account with the given password. Adding an
	// existing account is an error.
	Add(name, password string, provisional bool) error

	// SetMode sets the account's privilege mode. Idempotent.
	SetMode(name string, mode Mode) error

	// AddToGroup adds the account to a group. Idempotent.
	AddToGroup(name, group string) error

	// GeneratePassword returns a freshly generated password for the
	// named account.
	GeneratePassword(name string) (string, error)
}
