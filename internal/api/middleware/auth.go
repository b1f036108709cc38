package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LoginPath is where guards send callers they turn away.
const LoginPath = "/login"

// RequireAuth lets the request through when the session carries a user id and
// redirects to LoginPath otherwise.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !CurrentIdentity(c).Authenticated() {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}
