package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

func guardContext(t *testing.T, identity *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(IdentityKey, *identity)
	}
	return c, rec
}

func TestRequire_PermittedRolePasses(t *testing.T) {
	identity := domain.Identity{ID: "u1", Role: domain.RoleManager, Status: domain.StatusActive}
	c, rec := guardContext(t, &identity)

	called := false
	handler := Require(domain.ActionUpdateStatus)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequire_DeniedRoleForbidden(t *testing.T) {
	identity := domain.Identity{ID: "u3", Role: domain.RoleViewer, Status: domain.StatusActive}
	c, _ := guardContext(t, &identity)

	handler := Require(domain.ActionCreate)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequire_NoIdentityUnauthorized(t *testing.T) {
	c, _ := guardContext(t, nil)

	handler := Require(domain.ActionRead)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
