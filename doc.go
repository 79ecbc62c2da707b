// Package schemald provides:
//
// - A streaming JSON Writer and the Schema contract implemented by generated serializers
// - Code generation (cmd/schemald) that turns //schemald:type structs into allocation-light writers
// - An interpreted fallback (Reflect) following the same tag grammar and emission rules
// - A per-request Collection and a Renderer that wraps each document in a JSON-LD script element
//
// Design policy:
// - Keep only run-time APIs in the root package; analysis and code generation live under internal/.
// - Generated code imports only this package and never uses reflection.
// - Nil arguments are caller bugs and fail immediately with an error or a panic.
//
// Typical usage:
//
//	//schemald:type Recipe
//	type Recipe struct {
//		Name     string        `jsonld:",required"`
//		CookTime time.Duration `jsonld:"cookTime"`
//	}
//
//	//go:generate schemald generate .
//
//	c := schemald.NewCollection()
//	c.Add(&Recipe{Name: "Pancakes", CookTime: 20 * time.Minute})
//	html, err := schemald.RenderHTML(c)
package schemald
