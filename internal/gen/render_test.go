package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/schemald/internal/ir"
)

func str(name, key string) ir.Property {
	return ir.Property{GoName: name, Key: key, Type: ir.Type{Kind: ir.KindString, Repr: ir.ReprString}}
}

func render(t *testing.T, decls ...ir.Declaration) string {
	t.Helper()
	out, err := RenderFile(File{Package: "app", Decls: decls})
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "zz.go", out, parser.AllErrors)
	require.NoError(t, err, string(out))
	return string(out)
}

func TestRenderFile_Empty(t *testing.T) {
	out := render(t)
	assert.True(t, strings.HasPrefix(out, Header+"\n"))
	assert.Contains(t, out, "package app")
	assert.NotContains(t, out, "import")
}

func TestRenderFile_RequiresPackage(t *testing.T) {
	_, err := RenderFile(File{})
	assert.Error(t, err)
}

func TestRenderFile_SortedAndDeterministic(t *testing.T) {
	b := ir.Declaration{GoName: "Beta", Vocabulary: "Thing"}
	a := ir.Declaration{GoName: "Alpha", Vocabulary: "Thing"}
	first := render(t, b, a)
	second := render(t, a, b)
	assert.Equal(t, first, second)
	assert.Less(t, strings.Index(first, "*Alpha)"), strings.Index(first, "*Beta)"))
	assert.Contains(t, first, `import "github.com/reoring/schemald"`)
	assert.Contains(t, first, "var _ schemald.Schema = (*Alpha)(nil)")
}

func TestRenderFile_ObjectSkeleton(t *testing.T) {
	out := render(t, ir.Declaration{
		GoName:     "Recipe",
		Vocabulary: "Recipe",
		Properties: []ir.Property{
			func() ir.Property { p := str("Name", "name"); p.Required = true; return p }(),
			str("Description", "description"),
		},
	})
	assert.Contains(t, out, "func (x *Recipe) WriteDocument(w *schemald.Writer) error { return x.writeJSONLD(w, true) }")
	assert.Contains(t, out, "func (x *Recipe) WriteNested(w *schemald.Writer) error { return x.writeJSONLD(w, false) }")
	body := out[strings.Index(out, "func (x *Recipe) writeJSONLD"):]
	wantOrder := []string{
		"if x == nil {",
		"return schemald.ErrNilDocument",
		"w.BeginObject()",
		"if root {",
		"w.Context()",
		`w.Type("Recipe")`,
		`w.Key("name")`,
		"w.String(x.Name)",
		`if x.Description != "" {`,
		`w.Key("description")`,
		"w.String(x.Description)",
		"w.EndObject()",
		"return w.Err()",
	}
	pos := 0
	for _, s := range wantOrder {
		i := strings.Index(body[pos:], s)
		require.GreaterOrEqual(t, i, 0, "missing or out of order: %s", s)
		pos += i + len(s)
	}
	// required values are written unconditionally
	assert.NotContains(t, out, `if x.Name != ""`)
}

func TestRenderFile_ScalarConversionsAndFormats(t *testing.T) {
	out := render(t, ir.Declaration{
		GoName:     "Doc",
		Vocabulary: "Thing",
		Properties: []ir.Property{
			{GoName: "Cur", Key: "cur", Type: ir.Type{Kind: ir.KindString, Repr: ir.ReprString, Named: true}},
			{GoName: "Ok", Key: "ok", Type: ir.Type{Kind: ir.KindBoolean, Repr: ir.ReprBool}},
			{GoName: "N", Key: "n", Type: ir.Type{Kind: ir.KindInteger, Repr: ir.ReprInt}},
			{GoName: "U", Key: "u", Type: ir.Type{Kind: ir.KindInteger, Repr: ir.ReprUint}},
			{GoName: "F", Key: "f", Type: ir.Type{Kind: ir.KindNumber, Repr: ir.ReprFloat32}},
			{GoName: "Num", Key: "num", Type: ir.Type{Kind: ir.KindNumber, Repr: ir.ReprJSONNumber}},
			{GoName: "Prep", Key: "prep", Type: ir.Type{Kind: ir.KindDuration}, Duration: ir.DurationMinutes},
			{GoName: "At", Key: "at", Type: ir.Type{Kind: ir.KindDateTime}, Date: ir.DateOnly},
			{GoName: "Day", Key: "day", Type: ir.Type{Kind: ir.KindDateOnly}},
			{GoName: "Link", Key: "link", Type: ir.Type{Kind: ir.KindURI}},
			{GoName: "Rating", Key: "rating", Type: ir.Type{Kind: ir.KindNumber, Repr: ir.ReprFloat64, Pointers: 2, Nullable: true}},
		},
	})
	for _, s := range []string{
		`if x.Cur != "" {`, "w.String(string(x.Cur))",
		"if x.Ok {", "w.Bool(x.Ok)",
		"if x.N != 0 {", "w.Int(int64(x.N))",
		"w.Uint(uint64(x.U))",
		"w.Float32(float32(x.F))",
		`if x.Num != "" {`, "w.Number(string(x.Num))",
		"w.Duration(x.Prep, schemald.DurationMinutes)",
		"if !x.At.IsZero() {", "w.Time(x.At, schemald.DateOnly)",
		"if !x.Day.IsZero() {", "w.Date(x.Day)",
		`if x.Link.String() != "" {`, "w.String(x.Link.String())",
		"if x.Rating != nil && *x.Rating != nil {", "w.Float64(float64(**x.Rating))",
	} {
		assert.Contains(t, out, s)
	}
}

func TestRenderFile_NestedAndArrays(t *testing.T) {
	person := ir.Type{Kind: ir.KindNested, PtrMethods: true}
	ptrPerson := person
	ptrPerson.Pointers, ptrPerson.Nullable = 1, true
	out := render(t, ir.Declaration{
		GoName:     "Doc",
		Vocabulary: "Thing",
		Properties: []ir.Property{
			{GoName: "Author", Key: "author", Type: person},
			{GoName: "Editor", Key: "editor", Type: ptrPerson},
			{GoName: "Any", Key: "any", Type: ir.Type{Kind: ir.KindNested, Nullable: true}},
			{GoName: "Editors", Key: "editors", Type: ir.Type{Kind: ir.KindArray, Container: ir.ContainerSlice, Nullable: true, Elem: &ptrPerson}},
			{GoName: "People", Key: "people", Type: ir.Type{Kind: ir.KindArray, Container: ir.ContainerArray, Elem: &person}},
			{GoName: "Steps", Key: "steps", Type: ir.Type{Kind: ir.KindArray, Container: ir.ContainerSeq, Nullable: true,
				Elem: &ir.Type{Kind: ir.KindString, Repr: ir.ReprString}}},
			{GoName: "Cook", Key: "cook", Type: ir.Type{Kind: ir.KindArray, Container: ir.ContainerSlice, Nullable: true,
				Elem: &ir.Type{Kind: ir.KindDuration}}},
		},
	})
	for _, s := range []string{
		"w.Nested(&x.Author)",
		"if x.Editor != nil {", "w.Nested(x.Editor)",
		"if x.Any != nil {", "w.Nested(x.Any)",
		"for _, v0 := range x.Editors {", "if v0 == nil {", "w.Null()", "w.Nested(v0)",
		"for _, v0 := range x.People {", "w.Nested(&v0)",
		"for v0 := range x.Steps {", "w.String(v0)",
		"w.Duration(v0, schemald.DurationISO8601)",
	} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "if x.Author")
}

func TestRenderFile_FallbackAndPromotedFields(t *testing.T) {
	out := render(t, ir.Declaration{
		GoName:     "Doc",
		Vocabulary: "Thing",
		Properties: []ir.Property{
			{GoName: "Color", Key: "color", Type: ir.Type{Kind: ir.KindString, Fallback: true, Stringer: true, PtrMethods: true}},
			{GoName: "Blob", Key: "blob", Type: ir.Type{Kind: ir.KindString, Fallback: true}},
			{GoName: "ID", Path: []string{"base", "ID"}, Key: "iD", Type: ir.Type{Kind: ir.KindString, Repr: ir.ReprString}},
		},
	})
	for _, s := range []string{
		`w.Key("color")`, "w.String(x.Color.String())",
		"w.Text(x.Blob)",
		`if x.base.ID != "" {`, "w.String(x.base.ID)",
	} {
		assert.Contains(t, out, s)
	}
}
