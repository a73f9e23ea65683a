package cred

import "fmt"

// MemStore is an in-memory Store used by tests and dry runs. Passwords are
// kept in the clear; never use it for real provisioning.
type MemStore struct {
	Accounts  map[string]*MemAccount
	Generated []string // account names GeneratePassword was called for

	// Fault injection hooks. When set, the corresponding call fails.
	GetErr      error
	AddErr      error
	GenerateErr error
}

// MemAccount is the in-memory account representation.
type MemAccount struct {
	Account
	Password string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Accounts: make(map[string]*MemAccount)}
}

// Get implements Store.
func (s *MemStore) Get(name string) (Account, error) {
	if s.GetErr != nil {
		return Account{}, s.GetErr
	}
	acct, ok := s.Accounts[name]
	if !ok {
		return Account{}, fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	return acct.Account, nil
}

// Add implements Store.
func (s *MemStore) Add(name, password string, provisional bool) error {
	if s.AddErr != nil {
		return s.AddErr
	}
	if _, ok := s.Accounts[name]; ok {
		return fmt.Errorf("account %q already exists", name)
	}
	s.Accounts[name] = &MemAccount{
		Account:  Account{Name: name, Provisional: provisional},
		Password: password,
	}
	return nil
}

// SetMode implements Store.
func (s *MemStore) SetMode(name string, mode Mode) error {
	acct, ok := s.Accounts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	acct.Mode = mode
	return nil
}

// AddToGroup implements Store.
func (s *MemStore) AddToGroup(name, group string) error {
	acct, ok := s.Accounts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	for _, g := range acct.Groups {
		if g == group {
			return nil
		}
	}
	acct.Groups = append(acct.Groups, group)
	return nil
}

// GeneratePassword implements Store.
func (s *MemStore) GeneratePassword(name string) (string, error) {
	if s.GenerateErr != nil {
		return "", s.GenerateErr
	}
	s.Generated = append(s.Generated, name)
	return "generated-" + name, nil
}
