package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// RequireScope lets the request through only when the token grants scope.
// It must run after Auth.
func RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, _ := c.Get(ScopesKey).([]string)
			if !domain.HasScope(granted, scope) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
