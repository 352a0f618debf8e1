package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pasteshare/paste-api/internal/core/domain"
)

func contextWithUser(u *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if u != nil {
		c.Set(UserKey, u)
	}
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	c, rec := contextWithUser(&domain.User{ID: "u1", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_AnyOf(t *testing.T) {
	c, _ := contextWithUser(&domain.User{ID: "u1", Role: domain.RoleUser})

	if err := RequireRole(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error { return nil })(c); err != nil {
		t.Fatalf("expected USER to pass, got %v", err)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	tests := map[string]*domain.User{
		"user":            {ID: "u1", Role: domain.RoleUser},
		"unknown role":    {ID: "u2", Role: "GUEST"},
		"unauthenticated": nil,
	}
	for name, u := range tests {
		t.Run(name, func(t *testing.T) {
			c, _ := contextWithUser(u)
			handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			err := handler(c)
			if !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusForbidden || he.Message != "You're not an admin" {
				t.Fatalf("unexpected rejection: %v", err)
			}
		})
	}
}
