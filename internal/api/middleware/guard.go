package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matalogics/inventory-api/internal/api/metrics"
	"github.com/matalogics/inventory-api/internal/auth"
	"github.com/matalogics/inventory-api/internal/core/domain"
)

// Require enforces the permission table for a route group. Services gate
// themselves too; this middleware rejects obviously unauthorized requests
// before they bind payloads, and is where route-level denials are counted.
func Require(action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := Identity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if err := auth.RequireAction(identity, action); err != nil {
				metrics.AuthzDeniedTotal.WithLabelValues(string(action), string(identity.Role)).Inc()
				return err
			}
			return next(c)
		}
	}
}
