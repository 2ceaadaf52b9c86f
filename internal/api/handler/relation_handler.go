package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// ObjectRelationHandler serves objectcontactmomenten and objectverzoeken.
// Both are checked against the remote API on create and delete.
type ObjectRelationHandler struct {
	service ports.ObjectRelationService
	urls    resourceurl.Builder
}

func NewObjectRelationHandler(service ports.ObjectRelationService, urls resourceurl.Builder) *ObjectRelationHandler {
	return &ObjectRelationHandler{service: service, urls: urls}
}

// ListObjectContactMomenten handles GET /api/v1/objectcontactmomenten.
//
// @Summary      List objectcontactmomenten
// @Tags         contactmomenten
// @Produce      json
// @Security     BearerAuth
// @Param        object         query     string  false  "Object URL"
// @Param        contactmoment  query     string  false  "ContactMoment URL"
// @Success      200            {array}   objectContactMomentResponse
// @Failure      400            {object}  map[string]any
// @Router       /api/v1/objectcontactmomenten [get]
func (h *ObjectRelationHandler) ListObjectContactMomenten(c echo.Context) error {
	q, err := queryFilter(c, "object", "contactmoment")
	if err != nil {
		return err
	}
	items, err := h.service.ListObjectContactMomenten(c.Request().Context(),
		ports.ObjectContactMomentFilter{Object: q["object"], ContactMoment: q["contactmoment"]})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(items, func(r *domain.ObjectContactMoment) objectContactMomentResponse {
		return toObjectContactMomentResponse(h.urls, r)
	}))
}

// CreateObjectContactMoment handles POST /api/v1/objectcontactmomenten.
//
// @Summary      Create an objectcontactmoment
// @Description  The zaken API must already hold the matching zaakcontactmoment.
// @Tags         contactmomenten
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      objectContactMomentRequest  true  "ObjectContactMoment"
// @Success      201   {object}  objectContactMomentResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/objectcontactmomenten [post]
func (h *ObjectRelationHandler) CreateObjectContactMoment(c echo.Context) error {
	var req objectContactMomentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.service.CreateObjectContactMoment(c.Request().Context(), ports.ObjectRelationInput{
		Parent:     req.ContactMoment,
		Object:     req.Object,
		ObjectType: req.ObjectType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toObjectContactMomentResponse(h.urls, r))
}

// GetObjectContactMoment handles GET /api/v1/objectcontactmomenten/:uuid.
//
// @Summary      Get an objectcontactmoment
// @Tags         contactmomenten
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "ObjectContactMoment UUID"
// @Success      200   {object}  objectContactMomentResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/objectcontactmomenten/{uuid} [get]
func (h *ObjectRelationHandler) GetObjectContactMoment(c echo.Context) error {
	r, err := h.service.GetObjectContactMoment(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toObjectContactMomentResponse(h.urls, r))
}

// DeleteObjectContactMoment handles DELETE /api/v1/objectcontactmomenten/:uuid.
//
// @Summary      Delete an objectcontactmoment
// @Description  Refused while the zaken API still holds the zaakcontactmoment.
// @Tags         contactmomenten
// @Security     BearerAuth
// @Param        uuid  path  string  true  "ObjectContactMoment UUID"
// @Success      204
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/objectcontactmomenten/{uuid} [delete]
func (h *ObjectRelationHandler) DeleteObjectContactMoment(c echo.Context) error {
	if err := h.service.DeleteObjectContactMoment(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListObjectVerzoeken handles GET /api/v1/objectverzoeken.
//
// @Summary      List objectverzoeken
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Param        object   query     string  false  "Object URL"
// @Param        verzoek  query     string  false  "Verzoek URL"
// @Success      200      {array}   objectVerzoekResponse
// @Failure      400      {object}  map[string]any
// @Router       /api/v1/objectverzoeken [get]
func (h *ObjectRelationHandler) ListObjectVerzoeken(c echo.Context) error {
	q, err := queryFilter(c, "object", "verzoek")
	if err != nil {
		return err
	}
	items, err := h.service.ListObjectVerzoeken(c.Request().Context(),
		ports.ObjectVerzoekFilter{Object: q["object"], Verzoek: q["verzoek"]})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(items, func(r *domain.ObjectVerzoek) objectVerzoekResponse {
		return toObjectVerzoekResponse(h.urls, r)
	}))
}

// CreateObjectVerzoek handles POST /api/v1/objectverzoeken.
//
// @Summary      Create an objectverzoek
// @Tags         verzoeken
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      objectVerzoekRequest  true  "ObjectVerzoek"
// @Success      201   {object}  objectVerzoekResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/objectverzoeken [post]
func (h *ObjectRelationHandler) CreateObjectVerzoek(c echo.Context) error {
	var req objectVerzoekRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.service.CreateObjectVerzoek(c.Request().Context(), ports.ObjectRelationInput{
		Parent:     req.Verzoek,
		Object:     req.Object,
		ObjectType: req.ObjectType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toObjectVerzoekResponse(h.urls, r))
}

// GetObjectVerzoek handles GET /api/v1/objectverzoeken/:uuid.
//
// @Summary      Get an objectverzoek
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "ObjectVerzoek UUID"
// @Success      200   {object}  objectVerzoekResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/objectverzoeken/{uuid} [get]
func (h *ObjectRelationHandler) GetObjectVerzoek(c echo.Context) error {
	r, err := h.service.GetObjectVerzoek(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toObjectVerzoekResponse(h.urls, r))
}

// DeleteObjectVerzoek handles DELETE /api/v1/objectverzoeken/:uuid.
//
// @Summary      Delete an objectverzoek
// @Tags         verzoeken
// @Security     BearerAuth
// @Param        uuid  path  string  true  "ObjectVerzoek UUID"
// @Success      204
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/objectverzoeken/{uuid} [delete]
func (h *ObjectRelationHandler) DeleteObjectVerzoek(c echo.Context) error {
	if err := h.service.DeleteObjectVerzoek(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
