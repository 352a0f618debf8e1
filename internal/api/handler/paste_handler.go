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

const (
	// HeaderIdempotencyKey lets a client retry POST /paste without creating duplicates.
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotentReplayed is set to "true" on a replayed creation.
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

// PasteHandler handles HTTP requests for paste operations.
type PasteHandler struct {
	service ports.PasteService
}

func NewPasteHandler(service ports.PasteService) *PasteHandler {
	return &PasteHandler{service: service}
}

// Get handles GET /paste/:id. Access level is not checked.
//
// @Summary      Get a paste by id
// @Tags         pastes
// @Produce      json
// @Param        id   path      string  true  "Paste id"
// @Success      201  {object}  pasteEnvelope
// @Failure      404  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /paste/{id} [get]
func (h *PasteHandler) Get(c echo.Context) error {
	id := c.Param("id")

	paste, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return pasteError(id, err)
	}

	return c.JSON(http.StatusCreated, pasteEnvelope{StatusText: "success", Paste: toPasteResponse(paste)})
}

// Delete handles DELETE /paste/:id.
//
// @Summary      Delete a paste
// @Tags         pastes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Paste id"
// @Success      200  {object}  pasteEnvelope
// @Failure      401  {object}  statusResponse
// @Failure      403  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /paste/{id} [delete]
func (h *PasteHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	paste, err := h.service.Delete(c.Request().Context(), caller, id)
	if err != nil {
		return pasteError(id, err)
	}

	metrics.PastesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, pasteEnvelope{
		StatusText: fmt.Sprintf("%s was deleted.", paste.ID),
		Paste:      toPasteResponse(paste),
	})
}

// Create handles POST /paste.
//
// @Summary      Create a paste
// @Tags         pastes
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Client retry key"
// @Param        body             body      createPasteRequest  true   "Paste"
// @Success      201              {object}  pasteEnvelope
// @Failure      400              {object}  statusResponse
// @Failure      401              {object}  statusResponse
// @Failure      500              {object}  statusResponse
// @Router       /paste [post]
func (h *PasteHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createPasteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.service.Create(c.Request().Context(), caller, ports.CreatePasteInput{
		Content:        req.Content,
		Access:         domain.Access(req.Access),
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return err
	}

	if res.AlreadyExisted {
		metrics.PasteReplaysTotal.Inc()
		c.Response().Header().Set(HeaderIdempotentReplayed, "true")
	} else {
		metrics.PastesCreatedTotal.WithLabelValues(string(res.Paste.Access)).Inc()
	}
	return c.JSON(http.StatusCreated, pasteEnvelope{Paste: toPasteResponse(res.Paste)})
}

// List handles GET /pastes. Users see PUBLIC pastes; admins see all.
//
// @Summary      List pastes visible to the caller
// @Tags         pastes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pasteListResponse
// @Failure      401  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /pastes [get]
func (h *PasteHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	pastes, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pasteListResponse{StatusText: "success", Pastes: toPasteResponses(pastes)})
}

func pasteError(id string, err error) error {
	switch {
	case errors.Is(err, domain.ErrPasteNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "No paste by that ID "+id).SetInternal(err)
	case errors.Is(err, domain.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Not yo paste.").SetInternal(err)
	}
	return err
}
