package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

// IdentityKey is the echo context key under which Auth stores the resolved
// caller identity.
const IdentityKey = "identity"

// Auth validates the bearer credential and injects the live identity into
// the request context. Role and status reflect the user record at request
// time, not the token payload.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := authService.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// Identity extracts the identity stored by Auth. The zero identity and
// false mean the middleware did not run for this route.
func Identity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(IdentityKey).(domain.Identity)
	return identity, ok
}
