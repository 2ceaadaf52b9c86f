package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// KlantHandler handles HTTP requests for klanten.
type KlantHandler struct {
	service ports.KlantService
	urls    resourceurl.Builder
}

func NewKlantHandler(service ports.KlantService, urls resourceurl.Builder) *KlantHandler {
	return &KlantHandler{service: service, urls: urls}
}

// List handles GET /api/v1/klanten.
//
// @Summary      List klanten
// @Tags         klanten
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   klantResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/klanten [get]
func (h *KlantHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(items, h.response))
}

// Create handles POST /api/v1/klanten.
//
// @Summary      Create a klant
// @Description  Stores the klant and, when subjectType and subjectIdentificatie are given, its subject with verblijfsadres and subVerblijfBuitenland.
// @Tags         klanten
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      klantRequest  true  "Klant"
// @Success      201   {object}  klantResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/klanten [post]
func (h *KlantHandler) Create(c echo.Context) error {
	var req klantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	detail, err := h.service.Create(c.Request().Context(), toKlantInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.response(detail))
}

// Get handles GET /api/v1/klanten/:uuid.
//
// @Summary      Get a klant
// @Tags         klanten
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "Klant UUID"
// @Success      200   {object}  klantResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/klanten/{uuid} [get]
func (h *KlantHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.response(detail))
}

// Update handles PUT and PATCH /api/v1/klanten/:uuid.
//
// @Summary      Update a klant
// @Description  PATCH only changes the given fields. A stored subjectType cannot be changed.
// @Tags         klanten
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string        true  "Klant UUID"
// @Param        body  body      klantRequest  true  "Klant"
// @Success      200   {object}  klantResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/klanten/{uuid} [put]
// @Router       /api/v1/klanten/{uuid} [patch]
func (h *KlantHandler) Update(c echo.Context) error {
	var req klantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	detail, err := h.service.Update(c.Request().Context(), c.Param("uuid"), toKlantInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.response(detail))
}

// Delete handles DELETE /api/v1/klanten/:uuid.
//
// @Summary      Delete a klant and its subject
// @Tags         klanten
// @Security     BearerAuth
// @Param        uuid  path  string  true  "Klant UUID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/klanten/{uuid} [delete]
func (h *KlantHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *KlantHandler) response(d *ports.KlantDetail) klantResponse {
	return toKlantResponse(h.urls, d)
}
