// Package echomw adapts the schemald request collection to echo.
package echomw

import (
	"html/template"

	"github.com/labstack/echo/v4"

	"github.com/reoring/schemald"
	"github.com/reoring/schemald/middleware"
)

// Collect attaches a fresh Collection to every request.
func Collect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(middleware.WithCollection(c.Request()))
			return next(c)
		}
	}
}

// Add appends doc to the request's Collection. It reports false when Collect
// did not run for this request.
func Add(c echo.Context, doc schemald.Schema) bool {
	return middleware.Add(c.Request(), doc)
}

// Render renders the request's documents as trusted HTML.
func Render(c echo.Context) (template.HTML, error) {
	return middleware.Render(c.Request())
}
