// Package ginmw adapts the schemald request collection to gin.
package ginmw

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/reoring/schemald"
	"github.com/reoring/schemald/middleware"
)

// Collect attaches a fresh Collection to every request.
func Collect() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = middleware.WithCollection(c.Request)
		c.Next()
	}
}

// Add appends doc to the request's Collection. It reports false when Collect
// did not run for this request.
func Add(c *gin.Context, doc schemald.Schema) bool {
	return middleware.Add(c.Request, doc)
}

// Render renders the request's documents as trusted HTML.
func Render(c *gin.Context) (template.HTML, error) {
	return middleware.Render(c.Request)
}

// FuncMap registers "jsonld" for gin's HTML renderer; pass it to
// Engine.SetFuncMap and call {{ jsonld .ctx }} with the request context.
func FuncMap() template.FuncMap {
	return middleware.FuncMap()
}
