package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/blog-system/internal/api/middleware"
	"github.com/99minutos/blog-system/internal/api/view"
)

// newPage starts a view payload carrying the request's identity.
func newPage(c echo.Context, title string) view.Page {
	return view.Page{
		Title: title,
		User:  middleware.CurrentIdentity(c),
	}
}
