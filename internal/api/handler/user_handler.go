package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pasteshare/paste-api/internal/api/metrics"
	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile handles GET /user/:username. The owner and admins get the full
// record; anyone else gets only the username.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  profileResponse
// @Failure      400       {object}  statusResponse
// @Failure      401       {object}  statusResponse
// @Failure      500       {object}  statusResponse
// @Router       /user/{username} [get]
func (h *UserHandler) Profile(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Profile(c.Request().Context(), caller, c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid username").SetInternal(err)
		}
		return err
	}

	var body any = toUserResponse(profile.User)
	if profile.Redacted {
		body = redactedUserResponse{Username: profile.User.Username}
	}
	return c.JSON(http.StatusOK, profileResponse{StatusText: "success", User: body})
}

// List handles GET /users (admin only).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  statusResponse
// @Failure      403  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{StatusText: "success", Users: toUserResponses(users)})
}

// Delete handles DELETE /user/:username. Users may delete themselves; admins
// may delete anyone. The user's pastes are deleted too.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  userEnvelope
// @Failure      401       {object}  statusResponse
// @Failure      403       {object}  statusResponse
// @Failure      404       {object}  statusResponse
// @Failure      500       {object}  statusResponse
// @Router       /user/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	user, err := h.service.Delete(c.Request().Context(), caller, c.Param("username"))
	if err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, userEnvelope{
		StatusText: fmt.Sprintf("%s was deleted.", user.Username),
		User:       toUserResponse(user),
	})
}
