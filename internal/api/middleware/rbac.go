package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pasteshare/paste-api/internal/api/metrics"
	"github.com/pasteshare/paste-api/internal/core/domain"
)

// RequireRole lets the request through only when the user resolved by Auth
// holds one of roles. It must be mounted after Auth. The only gated role is
// ADMIN, so the 403 message names it.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if !domain.HasRole(user, roles...) {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "You're not an admin").
					SetInternal(fmt.Errorf("requires role %v: %w", roles, domain.ErrForbidden))
			}
			return next(c)
		}
	}
}
