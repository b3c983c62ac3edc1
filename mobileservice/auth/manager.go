package auth

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/brettsam/azure-mobile-services/mobileservice"
)

// Store persists the logged-in user between process runs.
type Store interface {
	// Save replaces the persisted user.
	Save(u *mobileservice.User) error
	// Load returns the persisted user, or an error when none is saved.
	Load() (*mobileservice.User, error)
	// Clear removes any persisted user. Clearing an empty store is not an error.
	Clear() error
}

// Manager owns the current session user. It is safe for concurrent use; the
// users it hands out are clones, so callers never share mutable state with
// the manager or with each other. Token values are never logged.
type Manager struct {
	mu      sync.Mutex
	current *mobileservice.User

	store  Store // nil disables persistence
	logger *zap.Logger
}

// NewManager constructs a Manager. Both arguments are optional: a nil store
// disables persistence, a nil logger disables logging.
func NewManager(store Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, logger: logger}
}

// Login adopts the user identified by a service-issued token as the current
// user, persists it when a store is configured, and returns a copy.
func (m *Manager) Login(token string) (*mobileservice.User, error) {
	u, err := UserFromToken(token)
	if err != nil {
		return nil, err
	}
	if err := m.adopt(u); err != nil {
		return nil, err
	}
	m.logger.Info("user logged in", zap.String("userID", u.UserID()))
	return u.Clone(), nil
}

// SetCurrentUser adopts an externally constructed user, e.g. from a login
// flow that reports the user id out of band. A nil user logs out.
func (m *Manager) SetCurrentUser(u *mobileservice.User) error {
	if u == nil {
		return m.Logout()
	}
	if err := m.adopt(u.Clone()); err != nil {
		return err
	}
	m.logger.Info("current user set", zap.String("userID", u.UserID()))
	return nil
}

// adopt stores u and makes it current. u must not be aliased by the caller
// afterward.
func (m *Manager) adopt(u *mobileservice.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.store != nil {
		if err := m.store.Save(u); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
	}
	m.current = u
	return nil
}

// CurrentUser returns a clone of the current user, or ErrNotLoggedIn.
func (m *Manager) CurrentUser() (*mobileservice.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, ErrNotLoggedIn
	}
	return m.current.Clone(), nil
}

// Restore loads the persisted user from the store and makes it current.
func (m *Manager) Restore() (*mobileservice.User, error) {
	if m.store == nil {
		return nil, ErrNoStore
	}
	u, err := m.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	m.mu.Lock()
	m.current = u
	m.mu.Unlock()

	m.logger.Info("session restored", zap.String("userID", u.UserID()))
	return u.Clone(), nil
}

// Logout drops the current user and clears the store. Logging out while not
// logged in is not an error.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.store != nil {
		if err := m.store.Clear(); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
	}
	if m.current != nil {
		m.logger.Info("user logged out", zap.String("userID", m.current.UserID()))
	}
	m.current = nil
	return nil
}
