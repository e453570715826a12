package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/roosly/site-api/docs"
	"github.com/roosly/site-api/internal/api/handler"
	"github.com/roosly/site-api/internal/api/middleware"
	"github.com/roosly/site-api/internal/core/domain"
	"github.com/roosly/site-api/internal/core/service"
	mongodb "github.com/roosly/site-api/internal/infrastructure/db/mongo"
	redisdb "github.com/roosly/site-api/internal/infrastructure/db/redis"
	"github.com/roosly/site-api/internal/pkg/config"
	"github.com/roosly/site-api/pkg/password"
	"github.com/roosly/site-api/pkg/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("roosly"))

	// --- Dependencies ---
	issuer := session.NewIssuer(cfg.SessionSecret, cfg.SessionTTL)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, password.NewHasher(), issuer, log)
	authHandler := handler.NewAuthHandler(authService, issuer.TTL())

	customerRepo := mongodb.NewCustomerRepository(db)
	listCache := redisdb.NewListCache(rdb, log)
	customerService := service.NewCustomerService(customerRepo, listCache, log)
	customerHandler := handler.NewCustomerHandler(customerService)

	pages := handler.NewPageHandler(cfg.GAMeasurementID)

	// --- Pages ---
	// PageGate applies the navigation decision table: protected prefixes
	// require an admin session, and an authenticated admin hitting /login
	// is sent to the dashboard.
	gate := middleware.PageGate(issuer)
	e.GET("/", pages.Home)
	e.GET("/login", pages.Login, gate)
	e.GET("/dashboard", pages.Dashboard, gate)
	e.GET("/customers", pages.Customers, gate)

	// --- Auth API ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)

	// --- Customer CRUD API ---
	// The API group re-checks the session on every request; it never trusts
	// that the page-level redirect was honored.
	customers := e.Group("/api/customers", middleware.Auth(issuer), middleware.RBAC(domain.RoleAdmin))
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.PUT("", customerHandler.Update)
	customers.DELETE("", customerHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
