package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// bindBody decodes the JSON body into req. Decode failures become a 400
// parse error instead of echo's plain text message.
func bindBody(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			msg = fmt.Sprint(he.Message)
		}
		return domain.NonFieldError("parse_error", msg)
	}
	return nil
}

// bindAndValidate binds the body and validates it in full, or partially for PATCH.
func bindAndValidate(c echo.Context, req any) error {
	if err := bindBody(c, req); err != nil {
		return err
	}
	if c.Request().Method == http.MethodPatch {
		return validatePartial(req)
	}
	return c.Validate(req)
}

// queryFilter returns the allowed query parameters of a list request and
// rejects any other parameter.
func queryFilter(c echo.Context, allowed ...string) (map[string]string, error) {
	known := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		known[a] = true
	}

	values := c.QueryParams()
	var unknown []string
	out := make(map[string]string, len(allowed))
	for name := range values {
		if !known[name] {
			unknown = append(unknown, name)
			continue
		}
		out[name] = values.Get(name)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, domain.NonFieldError(domain.CodeUnknownParameters,
			"Onbekende query parameters: "+strings.Join(unknown, ", "))
	}
	return out, nil
}

// listOf maps every item of in with fn; the result is never nil so empty
// lists render as [].
func listOf[T any, R any](in []*T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item))
	}
	return out
}
