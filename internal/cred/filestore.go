package cred

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/crypto/scrypt"
	"gopkg.in/yaml.v3"
)

// scrypt parameters for password hashing.
const (
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 16
)

const passwordLen = 24

// passwordCharset deliberately omits characters that are annoying to type
// or quote in a shell.
const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// storedAccount is the on-disk form of an account. Passwords are stored
// only as scrypt hashes.
type storedAccount struct {
	Name        string   `yaml:"name"`
	Salt        string   `yaml:"salt"`
	Hash        string   `yaml:"hash"`
	Mode        Mode     `yaml:"mode"`
	Groups      []string `yaml:"groups,omitempty"`
	Provisional bool     `yaml:"provisional,omitempty"`
}

// FileStore is a YAML-file-backed credential store. Every mutation is
// persisted immediately through a temp-file rename.
type FileStore struct {
	path     string
	accounts map[string]*storedAccount
}

// OpenFile opens the credential store at path, creating an empty store if
// the file does not exist yet.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, accounts: make(map[string]*storedAccount)}

	data, err := os.ReadFile(path) // #nosec G304
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read password store: %w", err)
	}

	var list []*storedAccount
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse password store: %w", err)
	}
	for _, acct := range list {
		s.accounts[acct.Name] = acct
	}
	return s, nil
}

// Get implements Store.
func (s *FileStore) Get(name string) (Account, error) {
	acct, ok := s.accounts[name]
	if !ok {
		return Account{}, fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	return Account{
		Name:        acct.Name,
		Mode:        acct.Mode,
		Groups:      append([]string(nil), acct.Groups...),
		Provisional: acct.Provisional,
	}, nil
}

// Add implements Store.
func (s *FileStore) Add(name, password string, provisional bool) error {
	if _, ok := s.accounts[name]; ok {
		return fmt.Errorf("account %q already exists", name)
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.accounts[name] = &storedAccount{
		Name:        name,
		Salt:        hex.EncodeToString(salt),
		Hash:        hex.EncodeToString(hash),
		Provisional: provisional,
	}
	return s.save()
}

// SetMode implements Store.
func (s *FileStore) SetMode(name string, mode Mode) error {
	acct, ok := s.accounts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	acct.Mode = mode
	return s.save()
}

// AddToGroup implements Store.
func (s *FileStore) AddToGroup(name, group string) error {
	acct, ok := s.accounts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	for _, g := range acct.Groups {
		if g == group {
			return nil
		}
	}
	acct.Groups = append(acct.Groups, group)
	return s.save()
}

// GeneratePassword implements Store.
func (s *FileStore) GeneratePassword(string) (string, error) {
	buf := make([]byte, passwordLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	for i, b := range buf {
		buf[i] = passwordCharset[int(b)%len(passwordCharset)]
	}
	return string(buf), nil
}

// Verify reports whether the password matches the stored hash for name.
func (s *FileStore) Verify(name, password string) (bool, error) {
	acct, ok := s.accounts[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	salt, err := hex.DecodeString(acct.Salt)
	if err != nil {
		return false, fmt.Errorf("corrupt salt for account %q: %w", name, err)
	}
	want, err := hex.DecodeString(acct.Hash)
	if err != nil {
		return false, fmt.Errorf("corrupt hash for account %q: %w", name, err)
	}
	got, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func (s *FileStore) save() error {
	list := make([]*storedAccount, 0, len(s.accounts))
	for _, acct := range s.accounts {
		list = append(list, acct)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	data, err := yaml.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal password store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create password store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".creds-*")
	if err != nil {
		return fmt.Errorf("failed to write password store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write password store: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write password store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write password store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write password store: %w", err)
	}
	return nil
}
