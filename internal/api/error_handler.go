package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// fieldError is one entry of a 400 body.
type fieldError struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - renders validation errors as {"<field>": [{"code", "reason"}]}
//   - maps domain sentinels to their status code as {"code", "reason"}
//   - logs unexpected errors without leaking details to the client
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, validationBody(ve)
	}

	// Echo's own errors (router 404/405, auth middleware 401).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fieldError{Code: codeFor(he.Code), Reason: fmt.Sprint(he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, fieldError{Code: "not_found", Reason: "Niet gevonden."}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, fieldError{Code: "permission_denied", Reason: "U heeft geen toestemming om deze actie uit te voeren."}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, fieldError{Code: "not_authenticated", Reason: "Ongeldige client credentials."}
	case errors.Is(err, domain.ErrApplicatieExists):
		return http.StatusConflict, fieldError{Code: domain.CodeUnique, Reason: "Applicatie met deze clientId bestaat al."}
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusBadRequest, validationBody(domain.NonFieldError(domain.CodeUnique, "De combinatie van velden moet uniek zijn."))
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, fieldError{Code: "error", Reason: "Er is een interne fout opgetreden."}
}

// validationBody groups field errors by field, keeping their order.
func validationBody(ve *domain.ValidationError) map[string][]fieldError {
	body := make(map[string][]fieldError, len(ve.Errors))
	for _, fe := range ve.Errors {
		body[fe.Field] = append(body[fe.Field], fieldError{Code: fe.Code, Reason: fe.Reason})
	}
	return body
}

func codeFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusUnauthorized:
		return "not_authenticated"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusUnsupportedMediaType:
		return "unsupported_media_type"
	default:
		return "error"
	}
}
