package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matalogics/inventory-api/internal/api/middleware"
	"github.com/matalogics/inventory-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: presence proves the middleware ran
// for this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.Identity(c)
	if !ok || identity.IsZero() {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
