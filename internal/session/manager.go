// Package session owns the persisted user identity. It replaces the
// original ambient global with an explicit object: read once at startup,
// written on login/signup, cleared on logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Agnik7/SuurAI/internal/core/domain"
)

// userKey is the fixed key the identity blob is persisted under.
const userKey = "suurai_user"

// ErrNoSession indicates no user is logged in.
var ErrNoSession = errors.New("session: not logged in")

// Store persists opaque blobs under fixed keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Manager holds the current identity and keeps the store in sync with it.
type Manager struct {
	mu      sync.Mutex
	store   Store
	current *domain.User
}

// NewManager constructs a Manager over the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Init restores a persisted identity, if any. Called once at startup; a
// corrupt blob is discarded rather than failing startup.
func (m *Manager) Init(ctx context.Context) error {
	blob, found, err := m.store.Get(ctx, userKey)
	if err != nil {
		return fmt.Errorf("session: restore failed: %w", err)
	}
	if !found {
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(blob, &user); err != nil {
		_ = m.store.Delete(ctx, userKey)
		return nil
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()
	return nil
}

// Login establishes a mock identity for the given email. There is no real
// credential check; the password is accepted as-is.
func (m *Manager) Login(ctx context.Context, email string) (domain.User, error) {
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	return m.establish(ctx, name, email)
}

// Signup establishes a mock identity with an explicit display name.
func (m *Manager) Signup(ctx context.Context, name string, email string) (domain.User, error) {
	return m.establish(ctx, name, email)
}

func (m *Manager) establish(ctx context.Context, name string, email string) (domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return domain.User{}, errors.New("session: email is required")
	}

	user := domain.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}

	blob, err := json.Marshal(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("session: encode identity: %w", err)
	}
	if err := m.store.Put(ctx, userKey, blob); err != nil {
		return domain.User{}, fmt.Errorf("session: persist identity: %w", err)
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()
	return user, nil
}

// Logout clears the identity in memory and in the store.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("session: clear identity: %w", err)
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return nil
}

// Current returns the logged-in user, or ErrNoSession.
func (m *Manager) Current() (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return domain.User{}, ErrNoSession
	}
	return *m.current, nil
}
