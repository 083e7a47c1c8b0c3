package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

// DefaultSessionTTL matches the lifetime of backend issued tokens.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionManager owns the session lifecycle: created at login, destroyed at logout,
// gone once the backend token or the session TTL expires.
type SessionManager struct {
	store SessionStore
	jwt   *JWTService
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionManager creates a session manager. A non-positive ttl uses DefaultSessionTTL.
func NewSessionManager(store SessionStore, jwtService *JWTService, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{store: store, jwt: jwtService, ttl: ttl, now: time.Now}
}

// Create starts a session for a freshly issued backend token and returns it together
// with the signed cookie value.
func (m *SessionManager) Create(ctx context.Context, role model.Role, token, identifier string) (*model.Session, string, error) {
	if token == "" {
		return nil, "", apperrors.ErrSessionExpired
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	if exp, ok := BackendTokenExpiry(token); ok && exp.After(now) && exp.Before(expiresAt) {
		expiresAt = exp
	}

	session := &model.Session{
		ID:         uuid.New().String(),
		Token:      token,
		Role:       role,
		Identifier: identifier,
		CreatedAt:  now,
		ExpiresAt:  expiresAt,
	}
	if err := m.store.Save(ctx, session, expiresAt.Sub(now)); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}

	cookie, err := m.jwt.Sign(session.ID, role.String(), expiresAt)
	if err != nil {
		_ = m.store.Delete(ctx, session.ID)
		return nil, "", fmt.Errorf("sign session: %w", err)
	}
	return session, cookie, nil
}

// Load returns the live session with the given id, or ErrSessionExpired.
func (m *SessionManager) Load(ctx context.Context, id string) (*model.Session, error) {
	session, err := m.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, err
	}
	if !session.Valid(m.now()) {
		_ = m.store.Delete(ctx, id)
		return nil, apperrors.ErrSessionExpired
	}
	return session, nil
}

// Destroy invalidates a session.
func (m *SessionManager) Destroy(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}
