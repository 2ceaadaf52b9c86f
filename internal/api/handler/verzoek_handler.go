package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// VerzoekHandler handles HTTP requests for verzoeken.
type VerzoekHandler struct {
	service ports.VerzoekService
	urls    resourceurl.Builder
}

func NewVerzoekHandler(service ports.VerzoekService, urls resourceurl.Builder) *VerzoekHandler {
	return &VerzoekHandler{service: service, urls: urls}
}

// List handles GET /api/v1/verzoeken.
//
// @Summary      List verzoeken
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   verzoekResponse
// @Router       /api/v1/verzoeken [get]
func (h *VerzoekHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(items, h.response))
}

// Create handles POST /api/v1/verzoeken.
//
// @Summary      Create a verzoek
// @Description  An empty identificatie is generated as VERZOEK-<year>-<sequence>.
// @Tags         verzoeken
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      verzoekRequest  true  "Verzoek"
// @Success      201   {object}  verzoekResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/verzoeken [post]
func (h *VerzoekHandler) Create(c echo.Context) error {
	var req verzoekRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	v, err := h.service.Create(c.Request().Context(), toVerzoekInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.response(v))
}

// Get handles GET /api/v1/verzoeken/:uuid.
//
// @Summary      Get a verzoek
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "Verzoek UUID"
// @Success      200   {object}  verzoekResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/verzoeken/{uuid} [get]
func (h *VerzoekHandler) Get(c echo.Context) error {
	v, err := h.service.Get(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.response(v))
}

// Update handles PUT and PATCH /api/v1/verzoeken/:uuid.
//
// @Summary      Update a verzoek
// @Tags         verzoeken
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string          true  "Verzoek UUID"
// @Param        body  body      verzoekRequest  true  "Verzoek"
// @Success      200   {object}  verzoekResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/verzoeken/{uuid} [put]
// @Router       /api/v1/verzoeken/{uuid} [patch]
func (h *VerzoekHandler) Update(c echo.Context) error {
	var req verzoekRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	v, err := h.service.Update(c.Request().Context(), c.Param("uuid"), toVerzoekInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.response(v))
}

// Delete handles DELETE /api/v1/verzoeken/:uuid.
//
// @Summary      Delete a verzoek and its links
// @Tags         verzoeken
// @Security     BearerAuth
// @Param        uuid  path  string  true  "Verzoek UUID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/verzoeken/{uuid} [delete]
func (h *VerzoekHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *VerzoekHandler) response(v *domain.Verzoek) verzoekResponse {
	return toVerzoekResponse(h.urls, v)
}
