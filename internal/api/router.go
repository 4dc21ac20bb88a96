package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/one-health/user-service/internal/api/handler"
	"github.com/one-health/user-service/internal/api/middleware"
	"github.com/one-health/user-service/internal/core/domain"
	"github.com/one-health/user-service/internal/core/service"
	mongodb "github.com/one-health/user-service/internal/infrastructure/db/mongo"
	redisdb "github.com/one-health/user-service/internal/infrastructure/db/redis"
	"github.com/one-health/user-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("onehealth"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	caseRepo := mongodb.NewCaseRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	authService := service.NewAuthService(userRepo, roleRepo, sessions, cfg.JWTSecret, 24*time.Hour, log)
	userService := service.NewUserService(userRepo, roleRepo, cfg.OpenRegistration, log)
	caseService := service.NewCaseService(caseRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	caseHandler := handler.NewCaseHandler(caseService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin)

	// --- Public user routes ---
	e.GET("/users/hello", userHandler.Hello)
	e.POST("/users/user-login", authHandler.Login)
	e.POST("/users/user-logout", authHandler.Logout)
	e.POST("/users/create-user", userHandler.Create)
	e.POST("/users/open", userHandler.CreateOpen)

	// --- Authenticated user routes ---
	e.GET("/users", userHandler.List, auth, adminOnly)
	e.GET("/users/me", userHandler.Me, auth)
	e.PUT("/users/me", userHandler.UpdateMe, auth)
	e.PUT("/users/update-user", userHandler.Update, auth)
	e.GET("/users/items/", caseHandler.ListItems, auth)
	e.GET("/users/:user_id", userHandler.GetByID, auth)

	// --- Case routes ---
	e.POST("/cases", caseHandler.Create, auth)
	e.GET("/cases/:case_id", caseHandler.Get, auth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
