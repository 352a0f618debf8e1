package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/pasteshare/paste-api/internal/api/middleware"
	"github.com/pasteshare/paste-api/internal/core/domain"
)

// ctxCaller returns the user resolved by the Auth middleware. A missing user
// means the route was mounted without Auth.
func ctxCaller(c echo.Context) (*domain.User, error) {
	u := middleware.CurrentUser(c)
	if u == nil {
		return nil, fmt.Errorf("%s %s: %w", c.Request().Method, c.Path(), domain.ErrMissingAuthHeader)
	}
	return u, nil
}

// bindAndValidate decodes a JSON or urlencoded body into req and validates it.
// Both failures surface as ErrInvalidForm.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidForm, err)
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidForm, err)
	}
	return nil
}
