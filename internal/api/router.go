package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/matalogics/inventory-api/internal/api/handler"
	"github.com/matalogics/inventory-api/internal/api/middleware"
	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

// Services bundles the use-case implementations the router wires to routes.
type Services struct {
	Auth       ports.AuthService
	Users      ports.UserService
	Assets     ports.AssetService
	Categories ports.CategoryService
	Locations  ports.LocationService
	Reports    ports.ReportService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Every resource route sits behind the Auth middleware; mutating groups add
// a Require guard for their action. Services re-check permissions
// themselves, so the route guard is a first gate, not the only one.
func NewRouter(services Services, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	authMW := middleware.Auth(services.Auth)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(services.Auth)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMW)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- Users (Admin only) ---
	userHandler := handler.NewUserHandler(services.Users)
	users := e.Group("/users", authMW, middleware.Require(domain.ActionManageUsers))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.PATCH("/:id/role", userHandler.ChangeRole)
	users.PATCH("/:id/status", userHandler.ToggleStatus)

	// --- Assets ---
	assetHandler := handler.NewAssetHandler(services.Assets)
	assets := e.Group("/assets", authMW)
	assets.GET("", assetHandler.List, middleware.Require(domain.ActionRead))
	assets.GET("/:id", assetHandler.Get, middleware.Require(domain.ActionRead))
	assets.POST("", assetHandler.Create, middleware.Require(domain.ActionCreate))
	// No route guard on update: field-level authorization happens in the
	// service, which accepts both full editors and status/location editors.
	assets.PUT("/:id", assetHandler.Update)
	assets.DELETE("/:id", assetHandler.Delete, middleware.Require(domain.ActionDelete))

	// --- Categories (Admin-only mutations) ---
	categoryHandler := handler.NewCategoryHandler(services.Categories)
	categories := e.Group("/categories", authMW)
	categories.GET("", categoryHandler.List, middleware.Require(domain.ActionRead))
	categories.POST("", categoryHandler.Create, middleware.Require(domain.ActionManageCategories))
	categories.PUT("/:id", categoryHandler.Update, middleware.Require(domain.ActionManageCategories))
	categories.DELETE("/:id", categoryHandler.Delete, middleware.Require(domain.ActionManageCategories))

	// --- Locations (Admin+Manager mutations, Admin delete) ---
	locationHandler := handler.NewLocationHandler(services.Locations)
	locations := e.Group("/locations", authMW)
	locations.GET("", locationHandler.List, middleware.Require(domain.ActionRead))
	locations.POST("", locationHandler.Create, middleware.Require(domain.ActionUpdateLocation))
	locations.PUT("/:id", locationHandler.Update, middleware.Require(domain.ActionUpdateLocation))
	locations.DELETE("/:id", locationHandler.Delete, middleware.Require(domain.ActionDelete))

	// --- Reports ---
	reportHandler := handler.NewReportHandler(services.Reports)
	reports := e.Group("/reports", authMW, middleware.Require(domain.ActionViewReports))
	reports.GET("/summary", reportHandler.Summary)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
