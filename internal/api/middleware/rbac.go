package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin lets the request through only for an authenticated admin
// identity. Anonymous callers and non-admin users both land on LoginPath.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !CurrentIdentity(c).IsAdmin() {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}
