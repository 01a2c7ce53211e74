// Package api assembles the local development backend: an Echo server
// implementing the slice of the RepoMarket REST contract the client consumes.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repomarket/repomarket/internal/api/handler"
	"github.com/repomarket/repomarket/internal/api/middleware"
	"github.com/repomarket/repomarket/internal/core/domain"
	"github.com/repomarket/repomarket/internal/core/ports"
)

// Deps carries the router's collaborators. Mongo and Redis are optional;
// when nil the readiness probe simply has nothing to check.
type Deps struct {
	AuthService ports.AuthService
	JWTSecret   string
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("repomarket"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.AuthService)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Public auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Authenticated routes ---
	authed := e.Group("/api", authMiddleware)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/current-user", authHandler.CurrentUser)
	authed.PUT("/users/me", userHandler.UpdateProfile)

	admin := authed.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", userHandler.ListUsers)
	admin.PATCH("/users/:id/status", userHandler.UpdateUserStatus)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
