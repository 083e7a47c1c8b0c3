package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinicportal/internal/apiclient"
	"clinicportal/internal/auth"
	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

func TestLoginMethods(t *testing.T) {
	tests := []struct {
		method  string
		path    string
		role    model.Role
		failure string
	}{
		{"admin", "/admin/login", model.RoleAdmin, "Invalid admin credentials."},
		{"doctor", "/doctor/login", model.RoleDoctor, "Invalid doctor credentials."},
		{"patient", "/patient/login", model.RoleLoggedPatient, "Invalid patient credentials."},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			m, ok := LoginMethodFor(tt.method)
			require.True(t, ok)
			assert.Equal(t, tt.path, m.Path)
			assert.Equal(t, tt.role, m.Role)
			assert.Equal(t, tt.failure, m.FailureMessage)
		})
	}

	_, ok := LoginMethodFor("nurse")
	assert.False(t, ok)
}

func TestLoginService_Login(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		creds         Credentials
		setupMock     func(*MockBackend, *MockSessionManager)
		expectedError error
		expectedMsg   string
	}{
		{
			name:   "admin success",
			method: "admin",
			creds:  Credentials{Identifier: " root ", Password: "pw"},
			setupMock: func(b *MockBackend, s *MockSessionManager) {
				b.On("Login", mock.Anything, "/admin/login", usernameCredentials{Username: "root", Password: "pw"}).Return("tok-a", nil)
				s.On("Create", mock.Anything, model.RoleAdmin, "tok-a", "root").
					Return(&model.Session{ID: "s1", Token: "tok-a", Role: model.RoleAdmin}, "cookie", nil)
			},
		},
		{
			name:   "doctor success",
			method: "doctor",
			creds:  Credentials{Identifier: "doc@clinic.test", Password: "pw"},
			setupMock: func(b *MockBackend, s *MockSessionManager) {
				b.On("Login", mock.Anything, "/doctor/login", emailCredentials{Email: "doc@clinic.test", Password: "pw"}).Return("tok-d", nil)
				s.On("Create", mock.Anything, model.RoleDoctor, "tok-d", "doc@clinic.test").
					Return(&model.Session{ID: "s2", Token: "tok-d", Role: model.RoleDoctor}, "cookie", nil)
			},
		},
		{
			name:   "patient stored as logged patient",
			method: "patient",
			creds:  Credentials{Identifier: "pat@clinic.test", Password: "pw"},
			setupMock: func(b *MockBackend, s *MockSessionManager) {
				b.On("Login", mock.Anything, "/patient/login", emailCredentials{Email: "pat@clinic.test", Password: "pw"}).Return("tok-p", nil)
				s.On("Create", mock.Anything, model.RoleLoggedPatient, "tok-p", "pat@clinic.test").
					Return(&model.Session{ID: "s3", Token: "tok-p", Role: model.RoleLoggedPatient}, "cookie", nil)
			},
		},
		{
			name:          "empty password makes no request",
			method:        "admin",
			creds:         Credentials{Identifier: "root"},
			setupMock:     func(*MockBackend, *MockSessionManager) {},
			expectedError: apperrors.ErrMissingCredentials,
			expectedMsg:   "Please enter username and password.",
		},
		{
			name:          "blank identifier makes no request",
			method:        "doctor",
			creds:         Credentials{Identifier: "   ", Password: "pw"},
			setupMock:     func(*MockBackend, *MockSessionManager) {},
			expectedError: apperrors.ErrMissingCredentials,
			expectedMsg:   "Please enter email and password.",
		},
		{
			name:   "admin rejected",
			method: "admin",
			creds:  Credentials{Identifier: "root", Password: "bad"},
			setupMock: func(b *MockBackend, s *MockSessionManager) {
				b.On("Login", mock.Anything, "/admin/login", mock.Anything).Return("", &apiclient.StatusError{StatusCode: 401, Message: "nope"})
			},
			expectedError: apperrors.ErrInvalidCredentials,
			expectedMsg:   "Invalid admin credentials.",
		},
		{
			name:   "patient rejection keeps backend message",
			method: "patient",
			creds:  Credentials{Identifier: "pat@clinic.test", Password: "bad"},
			setupMock: func(b *MockBackend, s *MockSessionManager) {
				b.On("Login", mock.Anything, "/patient/login", mock.Anything).Return("", &apiclient.StatusError{StatusCode: 401, Message: "Wrong password"})
			},
			expectedError: apperrors.ErrInvalidCredentials,
			expectedMsg:   "Wrong password",
		},
		{
			name:   "patient rejection without message",
			method: "patient",
			creds:  Credentials{Identifier: "pat@clinic.test", Password: "bad"},
			setupMock: func(b *MockBackend, s *MockSessionManager) {
				b.On("Login", mock.Anything, "/patient/login", mock.Anything).Return("", &apiclient.StatusError{StatusCode: 401})
			},
			expectedError: apperrors.ErrInvalidCredentials,
			expectedMsg:   "Invalid patient credentials.",
		},
		{
			name:   "backend down",
			method: "doctor",
			creds:  Credentials{Identifier: "doc@clinic.test", Password: "pw"},
			setupMock: func(b *MockBackend, s *MockSessionManager) {
				b.On("Login", mock.Anything, "/doctor/login", mock.Anything).
					Return("", fmt.Errorf("login: %w: connection refused", apperrors.ErrBackendUnavailable))
			},
			expectedError: apperrors.ErrBackendUnavailable,
			expectedMsg:   "Unable to log in. Please try again later.",
		},
		{
			name:          "unknown method",
			method:        "nurse",
			creds:         Credentials{Identifier: "x", Password: "y"},
			setupMock:     func(*MockBackend, *MockSessionManager) {},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockBackend)
			sessions := new(MockSessionManager)
			tt.setupMock(backend, sessions)

			service := NewLoginService(backend, sessions, noAudit())
			result, err := service.Login(context.Background(), tt.method, tt.creds)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				if tt.expectedMsg != "" {
					assert.Equal(t, tt.expectedMsg, apperrors.UserMessage(err))
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "cookie", result.Cookie)
				assert.NotEmpty(t, result.Session.Token)
			}

			backend.AssertExpectations(t)
			sessions.AssertExpectations(t)
			if errors.Is(tt.expectedError, apperrors.ErrMissingCredentials) {
				backend.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestLoginService_AdminLoginStoresTokenAndRole(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("Login", mock.Anything, "/admin/login", mock.Anything).Return("admin-token", nil)

	manager := auth.NewSessionManager(auth.NewMemorySessionStore(), auth.NewJWTService("secret"), time.Hour)
	service := NewLoginService(backend, manager, noAudit())

	result, err := service.Login(ctx, "admin", Credentials{Identifier: "root", Password: "pw"})
	require.NoError(t, err)

	loaded, err := manager.Load(ctx, result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin-token", loaded.Token)
	assert.Equal(t, model.RoleAdmin, loaded.Role)

	require.NoError(t, service.Logout(ctx, loaded))
	_, err = manager.Load(ctx, result.Session.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestLoginService_Adopt(t *testing.T) {
	ctx := context.Background()
	manager := auth.NewSessionManager(auth.NewMemorySessionStore(), auth.NewJWTService("secret"), time.Hour)
	service := NewLoginService(new(MockBackend), manager, noAudit())

	result, err := service.Adopt(ctx, model.RoleDoctor, "doctor-token")
	require.NoError(t, err)
	assert.Equal(t, model.RoleDoctor, result.Session.Role)
	assert.NotEmpty(t, result.Cookie)

	_, err = service.Adopt(ctx, model.RoleDoctor, "")
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestLoginService_LogoutWithoutSession(t *testing.T) {
	sessions := new(MockSessionManager)
	service := NewLoginService(new(MockBackend), sessions, noAudit())

	assert.NoError(t, service.Logout(context.Background(), nil))
	sessions.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
}

func TestLoginService_AuditsAttempts(t *testing.T) {
	repo := new(MockAuditRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == model.AuditLogin && !e.Success && e.Subject == "admin:root"
	})).Return(nil).Once()

	backend := new(MockBackend)
	backend.On("Login", mock.Anything, "/admin/login", mock.Anything).Return("", &apiclient.StatusError{StatusCode: 401})

	service := NewLoginService(backend, new(MockSessionManager), NewAuditService(repo))
	_, err := service.Login(context.Background(), "admin", Credentials{Identifier: "root", Password: "bad"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	repo.AssertExpectations(t)
}
