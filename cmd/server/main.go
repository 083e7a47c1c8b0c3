package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"clinicportal/docs"

	"github.com/labstack/echo/v4"

	"clinicportal/internal/apiclient"
	"clinicportal/internal/auth"
	"clinicportal/internal/cache"
	"clinicportal/internal/config"
	"clinicportal/internal/db"
	"clinicportal/internal/handler"
	appmw "clinicportal/internal/middleware"
	"clinicportal/internal/render"
	"clinicportal/internal/repository"
	"clinicportal/internal/router"
	"clinicportal/internal/service"
)

// @title Clinic Portal API
// @version 1.0
// @description JSON endpoints of the clinic portal. Session routes use the portal's session cookie.
// @host localhost:8081
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sessions live in Redis when configured, otherwise in process memory
	var store auth.SessionStore
	if cfg.RedisAddr != "" {
		cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer cacheClient.Close()
		if err := cacheClient.Ping(ctx); err != nil {
			log.Printf("redis ping: %v", err)
		}
		store = auth.NewRedisSessionStore(cacheClient)
	} else {
		log.Println("REDIS_ADDR not set, keeping sessions in memory")
		store = auth.NewMemorySessionStore()
	}

	jwtService := auth.NewJWTService(cfg.SessionSecret)
	sessions := auth.NewSessionManager(store, jwtService, cfg.SessionTTL)

	// The audit log is optional
	var auditRepo repository.AuditRepository
	if cfg.MySQLDSN != "" {
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		auditRepo = repository.NewAuditRepository(gormDB)
	} else {
		log.Println("MYSQL_DSN not set, audit log disabled")
	}

	backend := apiclient.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout})

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	loginService := service.NewLoginService(backend, sessions, auditService)
	doctorService := service.NewDoctorService(backend, auditService)
	appointmentService := service.NewAppointmentService(backend, nil)
	patientService := service.NewPatientService(backend, doctorService, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(loginService, cfg.SessionCookieSecure)
	adminHandler := handler.NewAdminHandler(doctorService)
	doctorHandler := handler.NewDoctorHandler(appointmentService)
	patientHandler := handler.NewPatientHandler(doctorService, patientService)
	apiHandler := handler.NewAPIHandler(doctorService, appointmentService, auditService)

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	limiter := appmw.NewRateLimiter(ctx, cfg.LoginRatePerSec, cfg.LoginBurst)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		sessions,
		limiter,
		authHandler,
		adminHandler,
		doctorHandler,
		patientHandler,
		apiHandler,
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	log.Printf("Portal available at %s, swagger at %s/swagger/index.html", cfg.PublicURL, strings.TrimSuffix(cfg.PublicURL, "/"))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
