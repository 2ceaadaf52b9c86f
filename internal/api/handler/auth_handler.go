package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	ClientID string   `json:"clientId" validate:"required,max=255"`
	Secret   string   `json:"secret"   validate:"required"`
	Label    string   `json:"label"    validate:"max=100"`
	Scopes   []string `json:"scopes"   validate:"required,min=1"`
}

type tokenRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	Secret   string `json:"secret"   validate:"required"`
}

type tokenResponse struct {
	Token      string             `json:"token"`
	Applicatie *domain.Applicatie `json:"applicatie"`
}

// Register creates a consumer applicatie with the given scopes.
//
// @Summary      Register an applicatie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "Applicatie"
// @Success      201   {object}  domain.Applicatie
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/applicaties [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.authService.Register(c.Request().Context(), req.ClientID, req.Secret, req.Label, req.Scopes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// Token exchanges client credentials for a bearer token.
//
// @Summary      Issue a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Client credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, app, err := h.authService.Token(c.Request().Context(), req.ClientID, req.Secret)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token, Applicatie: app})
}
