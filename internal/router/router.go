package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"clinicportal/internal/auth"
	"clinicportal/internal/config"
	"clinicportal/internal/handler"
	appmw "clinicportal/internal/middleware"
	"clinicportal/internal/model"
	"clinicportal/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	sessions handler.SessionLoader,
	limiter *appmw.RateLimiter,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	apiHandler *handler.APIHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// The session cookie is optional everywhere; visitors continue without one.
	e.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    jwtService.SigningKey(),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		TokenLookup:   "cookie:" + handler.SessionCookie,
		ContextKey:    handler.JWTContextKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(auth.SessionClaims)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(echo.Context, error) error {
			return nil
		},
		Skipper: skipStatic,
	}))
	e.Use(handler.LoadSession(sessions))

	api := e.Group("/api")
	api.GET("/doctors", apiHandler.ListDoctors)
	api.GET("/doctors/filter", apiHandler.FilterDoctors)
	api.GET("/appointments", apiHandler.Appointments, handler.RequireRoleAPI(model.RoleDoctor))
	api.GET("/audit", apiHandler.AuditLog, handler.RequireRoleAPI(model.RoleAdmin))

	// HTML pages post forms; every unsafe method needs the CSRF token.
	pages := e.Group("", middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SessionCookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
	}))

	loginLimit := appmw.RateLimit(limiter)
	pages.GET("/", authHandler.Index)
	pages.POST("/login/:role", authHandler.Login, loginLimit)
	pages.POST("/logout", authHandler.Logout)
	pages.GET("/adminDashboard/:token", authHandler.AdminDashboardToken, loginLimit)
	pages.GET("/doctorDashboard/:token", authHandler.DoctorDashboardToken, loginLimit)

	pages.GET("/signup", patientHandler.SignupForm)
	pages.POST("/signup", patientHandler.Signup, loginLimit)

	admin := pages.Group("/admin", handler.RequireRole(service.MsgAdminSessionExpired, model.RoleAdmin))
	admin.GET("", adminHandler.Dashboard)
	admin.GET("/doctors", adminHandler.Cards)
	admin.POST("/doctors", adminHandler.AddDoctor)
	admin.POST("/doctors/:id/delete", adminHandler.DeleteDoctor)

	doctor := pages.Group("/doctor", handler.RequireRole(handler.MsgLoginRequired, model.RoleDoctor))
	doctor.GET("", doctorHandler.Dashboard)
	doctor.GET("/appointments", doctorHandler.Rows)

	pages.GET("/patient", patientHandler.Dashboard)
	pages.GET("/patient/doctors", patientHandler.Cards)
	booking := pages.Group("/patient", handler.RequireRole(service.MsgLoginToBook, model.RoleLoggedPatient))
	booking.GET("/book/:doctorId", patientHandler.BookingForm)
	booking.POST("/book/:doctorId", patientHandler.Book)
	booking.GET("/appointments", patientHandler.Appointments)
}

func skipStatic(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/healthz" || strings.HasPrefix(p, "/swagger/")
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
