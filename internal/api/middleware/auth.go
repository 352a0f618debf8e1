package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pasteshare/paste-api/internal/api/metrics"
	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	ClaimsKey = "auth.claims"
	UserKey   = "auth.user"
)

// Authenticator resolves a raw bearer token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*ports.Claims, *domain.User, error)
}

// Auth requires an "Authorization: Bearer <token>" header, verifies the token
// and resolves its user against the store. The claims and the user are put on
// the context for the handler.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrMissingAuthHeader
			}

			claims, user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			c.Set(ClaimsKey, claims)
			c.Set(UserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Auth, or nil on unauthenticated routes.
func CurrentUser(c echo.Context) *domain.User {
	u, _ := c.Get(UserKey).(*domain.User)
	return u
}

// CurrentClaims returns the verified token claims, or nil.
func CurrentClaims(c echo.Context) *ports.Claims {
	cl, _ := c.Get(ClaimsKey).(*ports.Claims)
	return cl
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, domain.ErrStaleIdentity):
		return "stale_identity"
	default:
		return "store_error"
	}
}
