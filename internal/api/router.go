package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Hezi12/hotel-management-system-sub001/internal/api/handler"
	"github.com/Hezi12/hotel-management-system-sub001/internal/api/middleware"
	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
	"github.com/Hezi12/hotel-management-system-sub001/internal/core/service"
	mongodb "github.com/Hezi12/hotel-management-system-sub001/internal/infrastructure/db/mongo"
)

// Deps carries everything the router needs beyond the database handle.
type Deps struct {
	JWTSecret     string
	AdminDefaults service.BootstrapDefaults
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	accountStore := service.NewAccountService(accountRepo)
	authService := service.NewAuthService(accountStore, deps.JWTSecret, 24*time.Hour)
	provisioner := service.NewProvisionService(accountStore, deps.AdminDefaults)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(provisioner)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me,
		authMiddleware,
		middleware.RequireRole(domain.RoleAdmin, domain.RoleReception, domain.RoleEmployee))

	// --- Admin bootstrap (unauthenticated: it must work before any account exists) ---
	e.POST("/api/admin/provision", adminHandler.Provision)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
