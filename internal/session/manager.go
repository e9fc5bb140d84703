package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager owns the session lifecycle: Init at startup, Login after a successful
// authentication, Logout on user request or when the backend answers 401.
type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

func (m *Manager) Store() Store {
	return m.store
}

// Init reports whether a usable session survived from a previous run. A stored JWT
// that has already expired is cleared.
func (m *Manager) Init(ctx context.Context) (bool, error) {
	token, err := m.store.Token(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}

	if token == "" {
		return false, nil
	}

	if m.expired(token) {
		slog.Info("Stored session token has expired, clearing it")

		if err := m.store.Clear(ctx); err != nil {
			return false, fmt.Errorf("failed to clear expired session: %w", err)
		}

		return false, nil
	}

	return true, nil
}

func (m *Manager) Authenticated(ctx context.Context) (bool, error) {
	token, err := m.store.Token(ctx)
	if err != nil {
		return false, err
	}

	return token != "" && !m.expired(token), nil
}

func (m *Manager) Login(ctx context.Context, token, userName string) error {
	return m.store.Save(ctx, token, userName)
}

func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Clear(ctx)
}

func (m *Manager) UserName(ctx context.Context) (string, error) {
	return m.store.UserName(ctx)
}

// ExpiresAt returns the exp claim when token is a JWT. The signature is not checked:
// only the backend can do that, this is just to avoid sending a token that is known
// to be dead.
func ExpiresAt(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

func (m *Manager) expired(token string) bool {
	exp, ok := ExpiresAt(token)

	return ok && !exp.After(m.now())
}
