package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"clinicportal/internal/auth"
	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
)

const (
	// SessionCookie holds the signed pointer to the server side session.
	SessionCookie = "session"
	// JWTContextKey is where the JWT middleware leaves the parsed session cookie.
	JWTContextKey = "user"

	sessionKey = "portal.session"

	// MsgLoginRequired is shown to visitors turned away from a page that needs a login.
	MsgLoginRequired = "Please log in to continue."
)

// SessionLoader resolves a session id to a live session.
type SessionLoader interface {
	Load(ctx context.Context, id string) (*model.Session, error)
}

// CurrentSession returns the session of the request, or nil for a visitor.
func CurrentSession(c echo.Context) *model.Session {
	sess, _ := c.Get(sessionKey).(*model.Session)
	return sess
}

// LoadSession puts the session named by a valid session cookie into the context.
// Unknown or expired sessions clear the cookie and continue as a visitor.
func LoadSession(loader SessionLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(JWTContextKey).(*jwt.Token)
			if !ok || !token.Valid {
				return next(c)
			}
			claims, ok := token.Claims.(*auth.SessionClaims)
			if !ok {
				return next(c)
			}

			sess, err := loader.Load(c.Request().Context(), claims.SessionID)
			switch {
			case err == nil && sess.Role.String() == claims.Role:
				c.Set(sessionKey, sess)
			case err == nil, errors.Is(err, apperrors.ErrSessionExpired):
				clearSessionCookie(c)
			default:
				log.Printf("session: load %s: %v", claims.SessionID, err)
			}
			return next(c)
		}
	}
}

// RequireRole lets only sessions of the given roles through. Visitors, including those
// whose session has expired, are sent to the landing page with loginMessage; other roles
// go to their own dashboard.
func RequireRole(loginMessage string, roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil {
				return fail(c, apperrors.WithMessage(apperrors.ErrSessionExpired, loginMessage), "/")
			}
			if !slices.Contains(roles, sess.Role) {
				return fail(c, apperrors.ErrForbidden, DashboardPath(sess.Role))
			}
			return next(c)
		}
	}
}

// RequireRoleAPI is RequireRole for JSON routes: it answers 401 or 403 instead of
// redirecting.
func RequireRoleAPI(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil {
				return jsonError(apperrors.ErrSessionExpired)
			}
			if !slices.Contains(roles, sess.Role) {
				return jsonError(apperrors.ErrForbidden)
			}
			return next(c)
		}
	}
}

// DashboardPath is where a role lands after logging in.
func DashboardPath(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "/admin"
	case model.RoleDoctor:
		return "/doctor"
	case model.RoleLoggedPatient, model.RolePatient:
		return "/patient"
	}
	return "/"
}

func setSessionCookie(c echo.Context, value string, expires time.Time, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
