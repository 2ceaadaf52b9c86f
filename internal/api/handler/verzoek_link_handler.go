package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// VerzoekLinkHandler serves the verzoekinformatieobjecten, verzoekproducten
// and verzoekcontactmomenten collections.
type VerzoekLinkHandler struct {
	informatieObjecten ports.VerzoekInformatieObjectService
	links              ports.VerzoekLinkService
	urls               resourceurl.Builder
}

func NewVerzoekLinkHandler(informatieObjecten ports.VerzoekInformatieObjectService, links ports.VerzoekLinkService, urls resourceurl.Builder) *VerzoekLinkHandler {
	return &VerzoekLinkHandler{informatieObjecten: informatieObjecten, links: links, urls: urls}
}

// --- verzoekinformatieobjecten ---

// ListInformatieObjecten handles GET /api/v1/verzoekinformatieobjecten.
//
// @Summary      List verzoekinformatieobjecten
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Param        verzoek           query     string  false  "Verzoek URL"
// @Param        informatieobject  query     string  false  "Informatieobject URL"
// @Success      200               {array}   verzoekInformatieObjectResponse
// @Failure      400               {object}  map[string]any
// @Router       /api/v1/verzoekinformatieobjecten [get]
func (h *VerzoekLinkHandler) ListInformatieObjecten(c echo.Context) error {
	q, err := queryFilter(c, "verzoek", "informatieobject")
	if err != nil {
		return err
	}
	items, err := h.informatieObjecten.List(c.Request().Context(),
		ports.VerzoekInformatieObjectFilter{Verzoek: q["verzoek"], Informatieobject: q["informatieobject"]})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(items, func(r *domain.VerzoekInformatieObject) verzoekInformatieObjectResponse {
		return toVerzoekInformatieObjectResponse(h.urls, r)
	}))
}

// CreateInformatieObject handles POST /api/v1/verzoekinformatieobjecten.
//
// @Summary      Link an informatieobject to a verzoek
// @Description  The objectinformatieobject is created in the documenten API as well.
// @Tags         verzoeken
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      verzoekInformatieObjectRequest  true  "VerzoekInformatieObject"
// @Success      201   {object}  verzoekInformatieObjectResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/verzoekinformatieobjecten [post]
func (h *VerzoekLinkHandler) CreateInformatieObject(c echo.Context) error {
	var req verzoekInformatieObjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.informatieObjecten.Create(c.Request().Context(), ports.VerzoekInformatieObjectInput{
		Verzoek:          req.Verzoek,
		Informatieobject: req.Informatieobject,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toVerzoekInformatieObjectResponse(h.urls, r))
}

// GetInformatieObject handles GET /api/v1/verzoekinformatieobjecten/:uuid.
//
// @Summary      Get a verzoekinformatieobject
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "VerzoekInformatieObject UUID"
// @Success      200   {object}  verzoekInformatieObjectResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/verzoekinformatieobjecten/{uuid} [get]
func (h *VerzoekLinkHandler) GetInformatieObject(c echo.Context) error {
	r, err := h.informatieObjecten.Get(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVerzoekInformatieObjectResponse(h.urls, r))
}

// DeleteInformatieObject handles DELETE /api/v1/verzoekinformatieobjecten/:uuid.
//
// @Summary      Delete a verzoekinformatieobject
// @Tags         verzoeken
// @Security     BearerAuth
// @Param        uuid  path  string  true  "VerzoekInformatieObject UUID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/verzoekinformatieobjecten/{uuid} [delete]
func (h *VerzoekLinkHandler) DeleteInformatieObject(c echo.Context) error {
	if err := h.informatieObjecten.Delete(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- verzoekproducten ---

// ListProducten handles GET /api/v1/verzoekproducten.
//
// @Summary      List verzoekproducten
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Param        verzoek  query     string  false  "Verzoek URL"
// @Param        product  query     string  false  "Product URL"
// @Success      200      {array}   verzoekProductResponse
// @Failure      400      {object}  map[string]any
// @Router       /api/v1/verzoekproducten [get]
func (h *VerzoekLinkHandler) ListProducten(c echo.Context) error {
	q, err := queryFilter(c, "verzoek", "product")
	if err != nil {
		return err
	}
	items, err := h.links.ListVerzoekProducten(c.Request().Context(),
		ports.VerzoekProductFilter{Verzoek: q["verzoek"], Product: q["product"]})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(items, func(r *domain.VerzoekProduct) verzoekProductResponse {
		return toVerzoekProductResponse(h.urls, r)
	}))
}

// CreateProduct handles POST /api/v1/verzoekproducten.
//
// @Summary      Link a product to a verzoek
// @Description  Either product or productIdentificatie.code is required.
// @Tags         verzoeken
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      verzoekProductRequest  true  "VerzoekProduct"
// @Success      201   {object}  verzoekProductResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/verzoekproducten [post]
func (h *VerzoekLinkHandler) CreateProduct(c echo.Context) error {
	var req verzoekProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in := ports.VerzoekProductInput{Verzoek: req.Verzoek, Product: req.Product}
	if req.ProductIdentificatie != nil {
		in.ProductIdentificatieCode = req.ProductIdentificatie.Code
	}
	r, err := h.links.CreateVerzoekProduct(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toVerzoekProductResponse(h.urls, r))
}

// GetProduct handles GET /api/v1/verzoekproducten/:uuid.
//
// @Summary      Get a verzoekproduct
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "VerzoekProduct UUID"
// @Success      200   {object}  verzoekProductResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/verzoekproducten/{uuid} [get]
func (h *VerzoekLinkHandler) GetProduct(c echo.Context) error {
	r, err := h.links.GetVerzoekProduct(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVerzoekProductResponse(h.urls, r))
}

// DeleteProduct handles DELETE /api/v1/verzoekproducten/:uuid.
//
// @Summary      Delete a verzoekproduct
// @Tags         verzoeken
// @Security     BearerAuth
// @Param        uuid  path  string  true  "VerzoekProduct UUID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/verzoekproducten/{uuid} [delete]
func (h *VerzoekLinkHandler) DeleteProduct(c echo.Context) error {
	if err := h.links.DeleteVerzoekProduct(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- verzoekcontactmomenten ---

// ListContactMomenten handles GET /api/v1/verzoekcontactmomenten.
//
// @Summary      List verzoekcontactmomenten
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Param        verzoek        query     string  false  "Verzoek URL"
// @Param        contactmoment  query     string  false  "ContactMoment URL"
// @Success      200            {array}   verzoekContactMomentResponse
// @Failure      400            {object}  map[string]any
// @Router       /api/v1/verzoekcontactmomenten [get]
func (h *VerzoekLinkHandler) ListContactMomenten(c echo.Context) error {
	q, err := queryFilter(c, "verzoek", "contactmoment")
	if err != nil {
		return err
	}
	items, err := h.links.ListVerzoekContactMomenten(c.Request().Context(),
		ports.VerzoekContactMomentFilter{Verzoek: q["verzoek"], ContactMoment: q["contactmoment"]})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(items, func(r *domain.VerzoekContactMoment) verzoekContactMomentResponse {
		return toVerzoekContactMomentResponse(h.urls, r)
	}))
}

// CreateContactMoment handles POST /api/v1/verzoekcontactmomenten.
//
// @Summary      Link a contactmoment to a verzoek
// @Tags         verzoeken
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      verzoekContactMomentRequest  true  "VerzoekContactMoment"
// @Success      201   {object}  verzoekContactMomentResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/verzoekcontactmomenten [post]
func (h *VerzoekLinkHandler) CreateContactMoment(c echo.Context) error {
	var req verzoekContactMomentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.links.CreateVerzoekContactMoment(c.Request().Context(), ports.VerzoekContactMomentInput{
		Verzoek:       req.Verzoek,
		ContactMoment: req.ContactMoment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toVerzoekContactMomentResponse(h.urls, r))
}

// GetContactMoment handles GET /api/v1/verzoekcontactmomenten/:uuid.
//
// @Summary      Get a verzoekcontactmoment
// @Tags         verzoeken
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "VerzoekContactMoment UUID"
// @Success      200   {object}  verzoekContactMomentResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/verzoekcontactmomenten/{uuid} [get]
func (h *VerzoekLinkHandler) GetContactMoment(c echo.Context) error {
	r, err := h.links.GetVerzoekContactMoment(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVerzoekContactMomentResponse(h.urls, r))
}

// DeleteContactMoment handles DELETE /api/v1/verzoekcontactmomenten/:uuid.
//
// @Summary      Delete a verzoekcontactmoment
// @Tags         verzoeken
// @Security     BearerAuth
// @Param        uuid  path  string  true  "VerzoekContactMoment UUID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/verzoekcontactmomenten/{uuid} [delete]
func (h *VerzoekLinkHandler) DeleteContactMoment(c echo.Context) error {
	if err := h.links.DeleteVerzoekContactMoment(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
