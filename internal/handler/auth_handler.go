package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
	"clinicportal/internal/render"
	"clinicportal/internal/service"
)

// AuthHandler handles the landing page, login and logout.
type AuthHandler struct {
	login         service.LoginService
	secureCookies bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(login service.LoginService, secureCookies bool) *AuthHandler {
	return &AuthHandler{login: login, secureCookies: secureCookies}
}

// Index renders the role selection with one login form per role.
func (h *AuthHandler) Index(c echo.Context) error {
	forms := make([]render.LoginForm, 0, len(service.LoginMethods))
	for _, m := range service.LoginMethods {
		forms = append(forms, render.LoginForm{
			Role:          m.Name,
			Label:         m.Label,
			UsernameField: m.UsernameField,
			UsernameLabel: m.UsernameLabel,
			PasswordField: "password",
		})
	}
	return c.Render(http.StatusOK, "index", render.IndexPage{
		Layout: layout(c, "Welcome"),
		Logins: forms,
	})
}

// Login authenticates one role and sends it to its dashboard.
func (h *AuthHandler) Login(c echo.Context) error {
	method, ok := service.LoginMethodFor(c.Param("role"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown login")
	}

	ctx := c.Request().Context()
	result, err := h.login.Login(ctx, method.Name, service.Credentials{
		Identifier: c.FormValue(method.UsernameField),
		Password:   c.FormValue("password"),
	})
	if err != nil {
		SetFlash(c, model.FlashError, apperrors.UserMessage(err))
		return redirect(c, "/")
	}

	// A new login replaces whatever session the browser had.
	if prev := CurrentSession(c); prev != nil {
		if err := h.login.Logout(ctx, prev); err != nil {
			log.Printf("login: replacing session: %v", err)
		}
	}
	h.start(c, result)
	return redirect(c, DashboardPath(result.Session.Role))
}

// Logout ends the session. The cookie is dropped even when the stored session could
// not be removed.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.login.Logout(c.Request().Context(), CurrentSession(c)); err != nil {
		log.Printf("logout: %v", err)
	}
	clearSessionCookie(c)
	SetFlash(c, model.FlashInfo, "You have been logged out.")
	return redirect(c, "/")
}

// AdminDashboardToken accepts the older dashboard link that carries the admin token
// in its path, turns it into a session and continues to the admin dashboard.
func (h *AuthHandler) AdminDashboardToken(c echo.Context) error {
	return h.adopt(c, model.RoleAdmin)
}

// DoctorDashboardToken is AdminDashboardToken for doctors.
func (h *AuthHandler) DoctorDashboardToken(c echo.Context) error {
	return h.adopt(c, model.RoleDoctor)
}

func (h *AuthHandler) adopt(c echo.Context, role model.Role) error {
	result, err := h.login.Adopt(c.Request().Context(), role, c.Param("token"))
	if err != nil {
		return fail(c, err, "/")
	}
	h.start(c, result)
	return redirect(c, DashboardPath(role))
}

func (h *AuthHandler) start(c echo.Context, result *service.LoginResult) {
	setSessionCookie(c, result.Cookie, result.Session.ExpiresAt, h.secureCookies)
}
