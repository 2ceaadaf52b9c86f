package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// ContactMomentHandler handles HTTP requests for contactmomenten.
type ContactMomentHandler struct {
	service ports.ContactMomentService
	urls    resourceurl.Builder
}

func NewContactMomentHandler(service ports.ContactMomentService, urls resourceurl.Builder) *ContactMomentHandler {
	return &ContactMomentHandler{service: service, urls: urls}
}

// List handles GET /api/v1/contactmomenten.
//
// @Summary      List contactmomenten
// @Tags         contactmomenten
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   contactMomentResponse
// @Router       /api/v1/contactmomenten [get]
func (h *ContactMomentHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(items, h.response))
}

// Create handles POST /api/v1/contactmomenten. When zaak is set the
// zaakcontactmoment is created in the zaken API as well.
//
// @Summary      Create a contactmoment
// @Tags         contactmomenten
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactMomentRequest  true  "ContactMoment"
// @Success      201   {object}  contactMomentResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/contactmomenten [post]
func (h *ContactMomentHandler) Create(c echo.Context) error {
	var req contactMomentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cm, err := h.service.Create(c.Request().Context(), toContactMomentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.response(cm))
}

// Get handles GET /api/v1/contactmomenten/:uuid.
//
// @Summary      Get a contactmoment
// @Tags         contactmomenten
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "ContactMoment UUID"
// @Success      200   {object}  contactMomentResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/contactmomenten/{uuid} [get]
func (h *ContactMomentHandler) Get(c echo.Context) error {
	cm, err := h.service.Get(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.response(cm))
}

// Update handles PUT and PATCH /api/v1/contactmomenten/:uuid.
//
// @Summary      Update a contactmoment
// @Tags         contactmomenten
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string                true  "ContactMoment UUID"
// @Param        body  body      contactMomentRequest  true  "ContactMoment"
// @Success      200   {object}  contactMomentResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/contactmomenten/{uuid} [put]
// @Router       /api/v1/contactmomenten/{uuid} [patch]
func (h *ContactMomentHandler) Update(c echo.Context) error {
	var req contactMomentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cm, err := h.service.Update(c.Request().Context(), c.Param("uuid"), toContactMomentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.response(cm))
}

// Delete handles DELETE /api/v1/contactmomenten/:uuid.
//
// @Summary      Delete a contactmoment
// @Tags         contactmomenten
// @Security     BearerAuth
// @Param        uuid  path  string  true  "ContactMoment UUID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/contactmomenten/{uuid} [delete]
func (h *ContactMomentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ContactMomentHandler) response(cm *domain.ContactMoment) contactMomentResponse {
	return toContactMomentResponse(h.urls, cm)
}
