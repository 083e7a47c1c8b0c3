package service

import (
	"context"

	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

// SessionManager is the part of the session lifecycle the services drive.
type SessionManager interface {
	Create(ctx context.Context, role model.Role, token, identifier string) (*model.Session, string, error)
	Destroy(ctx context.Context, id string) error
}

// tokenOf returns the backend token of sess. Privileged calls go through it so none is
// issued without a token.
func tokenOf(sess *model.Session) (string, error) {
	if sess == nil || sess.Token == "" {
		return "", apperrors.ErrSessionExpired
	}
	return sess.Token, nil
}
