// Package credstore persists mobile service credentials on local disk: the
// logged-in user and the per-install identifier the transport sends with
// every request.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/brettsam/azure-mobile-services/mobileservice"
)

// ErrNoSavedUser indicates the store holds no user (first run, or cleared).
var ErrNoSavedUser = errors.New("no saved user")

const (
	userFile    = "user.json"
	installFile = "installation-id"
)

// savedUser is the on-disk shape of the persisted session.
type savedUser struct {
	UserID              string `json:"user_id"`
	AuthenticationToken string `json:"authentication_token,omitempty"`
}

// FileStore keeps credentials as files under a single directory, created on
// first write with owner-only permissions. It satisfies auth.Store.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. An empty dir selects the
// default per-user config directory ($XDG_CONFIG_HOME or ~/.config, under
// azure-mobile-services).
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = defaultDir()
	}
	return &FileStore{dir: dir}
}

func defaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "azure-mobile-services")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "azure-mobile-services")
}

// Save writes the user to disk, replacing any previously saved one.
func (s *FileStore) Save(u *mobileservice.User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	b, err := json.MarshalIndent(savedUser{
		UserID:              u.UserID(),
		AuthenticationToken: u.AuthenticationToken(),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, userFile), b, 0o600)
}

// Load reads the saved user, or ErrNoSavedUser when none exists.
func (s *FileStore) Load() (*mobileservice.User, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSavedUser
		}
		return nil, err
	}
	var su savedUser
	if err := json.Unmarshal(b, &su); err != nil {
		return nil, fmt.Errorf("decode saved user: %w", err)
	}
	u := mobileservice.NewUser(su.UserID)
	u.SetAuthenticationToken(su.AuthenticationToken)
	return u, nil
}

// Clear removes the saved user. Clearing an empty store is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(filepath.Join(s.dir, userFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// InstallationID returns the stable per-install identifier, generating and
// persisting a fresh one on first use. It survives logins and logouts.
func (s *FileStore) InstallationID() (string, error) {
	path := filepath.Join(s.dir, installFile)
	if b, err := os.ReadFile(path); err == nil && len(strings.TrimSpace(string(b))) > 0 {
		return strings.TrimSpace(string(b)), nil
	}

	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return "", fmt.Errorf("create store dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(id.String()+"\n"), 0o600); err != nil {
		return "", err
	}
	return id.String(), nil
}
