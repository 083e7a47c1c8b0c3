package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"clinicportal/internal/apiclient"
	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

const loginUnavailableMessage = "Unable to log in. Please try again later."

// LoginMethod describes how one role logs in.
type LoginMethod struct {
	Name           string
	Label          string
	Path           string
	UsernameField  string
	UsernameLabel  string
	Role           model.Role
	MissingMessage string
	FailureMessage string
	// BackendMessage prefers the backend's own rejection text when it sends one.
	BackendMessage bool
	payload        func(identifier, password string) any
}

type usernameCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type emailCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func byUsername(identifier, password string) any {
	return usernameCredentials{Username: identifier, Password: password}
}

func byEmail(identifier, password string) any {
	return emailCredentials{Email: identifier, Password: password}
}

// LoginMethods lists the supported logins in display order.
var LoginMethods = []LoginMethod{
	{
		Name:           "admin",
		Label:          "Admin",
		Path:           "/admin/login",
		UsernameField:  "username",
		UsernameLabel:  "Username",
		Role:           model.RoleAdmin,
		MissingMessage: "Please enter username and password.",
		FailureMessage: "Invalid admin credentials.",
		payload:        byUsername,
	},
	{
		Name:           "doctor",
		Label:          "Doctor",
		Path:           "/doctor/login",
		UsernameField:  "email",
		UsernameLabel:  "Email",
		Role:           model.RoleDoctor,
		MissingMessage: "Please enter email and password.",
		FailureMessage: "Invalid doctor credentials.",
		payload:        byEmail,
	},
	{
		Name:           "patient",
		Label:          "Patient",
		Path:           "/patient/login",
		UsernameField:  "email",
		UsernameLabel:  "Email",
		Role:           model.RoleLoggedPatient,
		MissingMessage: "Please enter email and password.",
		FailureMessage: "Invalid patient credentials.",
		BackendMessage: true,
		payload:        byEmail,
	},
}

// LoginMethodFor looks up a login by its name.
func LoginMethodFor(name string) (LoginMethod, bool) {
	for _, m := range LoginMethods {
		if m.Name == name {
			return m, true
		}
	}
	return LoginMethod{}, false
}

// Credentials is what a login form submits.
type Credentials struct {
	Identifier string
	Password   string
}

// LoginResult is a started session and its signed cookie value.
type LoginResult struct {
	Session *model.Session
	Cookie  string
}

// LoginService handles authentication against the clinic backend.
type LoginService interface {
	Login(ctx context.Context, method string, creds Credentials) (*LoginResult, error)
	Adopt(ctx context.Context, role model.Role, token string) (*LoginResult, error)
	Logout(ctx context.Context, sess *model.Session) error
}

type loginService struct {
	backend  apiclient.Backend
	sessions SessionManager
	audit    AuditService
}

// NewLoginService creates a new login service.
func NewLoginService(backend apiclient.Backend, sessions SessionManager, audit AuditService) LoginService {
	return &loginService{backend: backend, sessions: sessions, audit: audit}
}

// Login checks the form, asks the backend for a token and starts a session. Empty
// fields are rejected without contacting the backend.
func (s *loginService) Login(ctx context.Context, method string, creds Credentials) (*LoginResult, error) {
	m, ok := LoginMethodFor(method)
	if !ok {
		return nil, fmt.Errorf("login %q: %w", method, apperrors.ErrNotFound)
	}

	identifier := strings.TrimSpace(creds.Identifier)
	if identifier == "" || creds.Password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrMissingCredentials, m.MissingMessage)
	}

	token, err := s.backend.Login(ctx, m.Path, m.payload(identifier, creds.Password))
	if err != nil {
		err = s.loginError(m, err)
		s.audit.Record(ctx, nil, model.AuditLogin, m.Name+":"+identifier, err)
		return nil, err
	}

	sess, cookie, err := s.sessions.Create(ctx, m.Role, token, identifier)
	if err != nil {
		return nil, fmt.Errorf("login %s: %w", m.Name, err)
	}
	s.audit.Record(ctx, sess, model.AuditLogin, m.Name+":"+identifier, nil)
	return &LoginResult{Session: sess, Cookie: cookie}, nil
}

func (s *loginService) loginError(m LoginMethod, err error) error {
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) {
		msg := m.FailureMessage
		if m.BackendMessage && statusErr.Message != "" {
			msg = statusErr.Message
		}
		return apperrors.WithMessage(apperrors.ErrInvalidCredentials, msg)
	}
	log.Printf("login %s: %v", m.Name, err)
	if errors.Is(err, apperrors.ErrBackendUnavailable) {
		return apperrors.WithMessage(err, loginUnavailableMessage)
	}
	return apperrors.WithMessage(fmt.Errorf("login %s: %w: %v", m.Name, apperrors.ErrBackendUnavailable, err), loginUnavailableMessage)
}

// Adopt starts a session for a token obtained elsewhere, such as a dashboard link that
// carries the token in its path.
func (s *loginService) Adopt(ctx context.Context, role model.Role, token string) (*LoginResult, error) {
	sess, cookie, err := s.sessions.Create(ctx, role, token, "")
	if err != nil {
		return nil, fmt.Errorf("adopt %s token: %w", role, err)
	}
	s.audit.Record(ctx, sess, model.AuditLogin, role.String()+":token", nil)
	return &LoginResult{Session: sess, Cookie: cookie}, nil
}

// Logout ends sess. A nil session is a no-op.
func (s *loginService) Logout(ctx context.Context, sess *model.Session) error {
	if sess == nil {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sess.ID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.audit.Record(ctx, sess, model.AuditLogout, sess.Identifier, nil)
	return nil
}
