// Package schemaorg ships ready-made schema.org declarations with generated
// writers. Values are plain structs: zero-valued optional properties are
// omitted, required ones are always written.
//
//	c := schemald.NewCollection()
//	c.Add(&schemaorg.Recipe{Name: "Pancakes", CookTime: 20 * time.Minute})
package schemaorg

//go:generate go run github.com/reoring/schemald/cmd/schemald generate .
