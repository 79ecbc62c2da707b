// Package middleware wires a per-request schemald.Collection into net/http.
// Handlers add documents while they run; templates render them once, usually
// in <head>.
//
//	mux.Handle("/", middleware.Collect(handler))
//	middleware.Add(r, &schemaorg.Recipe{Name: "Pancakes"})
//	{{ jsonld .Ctx }} // with Funcs(middleware.FuncMap())
package middleware

import (
	"context"
	"html/template"
	"net/http"

	"github.com/reoring/schemald"
)

// Collect attaches a fresh Collection to every request passing through next.
func Collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, WithCollection(r))
	})
}

// WithCollection returns r with an empty Collection attached, or r itself when
// one is already present.
func WithCollection(r *http.Request) *http.Request {
	if _, ok := schemald.FromContext(r.Context()); ok {
		return r
	}
	return r.WithContext(schemald.NewContext(r.Context(), schemald.NewCollection()))
}

// Add appends doc to the request's Collection. It reports false when the request
// did not pass through Collect.
func Add(r *http.Request, doc schemald.Schema) bool {
	return schemald.AddTo(r.Context(), doc)
}

// Collection returns the request's Collection.
func Collection(r *http.Request) (*schemald.Collection, bool) {
	return schemald.FromContext(r.Context())
}

// Render renders the request's documents. A request without a Collection, or
// with an empty one, renders nothing.
func Render(r *http.Request) (template.HTML, error) {
	return RenderContext(r.Context())
}

// RenderContext is Render for code that only holds the request context.
func RenderContext(ctx context.Context) (template.HTML, error) {
	c, ok := schemald.FromContext(ctx)
	if !ok {
		return "", nil
	}
	return schemald.RenderHTML(c)
}

// FuncMap exposes RenderContext to html/template as "jsonld".
func FuncMap() template.FuncMap {
	return template.FuncMap{"jsonld": RenderContext}
}
