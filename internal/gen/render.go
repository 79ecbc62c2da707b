// Package gen renders the Go source of schema writers from extracted
// declarations. Output is deterministic: declarations are sorted by Go type
// name, properties keep declaration order, and the file is gofmt'd.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strconv"
	"strings"

	"github.com/reoring/schemald/internal/ir"
)

// Header is the first line of every generated file.
const Header = "// Code generated by schemald. DO NOT EDIT."

const (
	runtimePath = "github.com/reoring/schemald"
	runtimeName = "schemald"
	recv        = "x"
)

// File is one generated output file.
type File struct {
	Package string
	Decls   []ir.Declaration
}

// RenderFile returns the formatted source for f. A File without declarations
// still renders a valid (empty) file.
func RenderFile(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("gen: empty package name")
	}
	decls := slices.Clone(f.Decls)
	slices.SortFunc(decls, func(a, b ir.Declaration) int { return strings.Compare(a.GoName, b.GoName) })

	g := &generator{}
	g.p(Header)
	g.p("")
	g.p("package %s", f.Package)
	if len(decls) > 0 {
		g.p("")
		g.p("import %q", runtimePath)
	}
	for i := range decls {
		g.decl(&decls[i])
	}
	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format %s: %w", f.Package, err)
	}
	return src, nil
}

type generator struct {
	buf    bytes.Buffer
	indent int
}

func (g *generator) p(format string, args ...any) {
	g.buf.WriteString(strings.Repeat("\t", g.indent))
	fmt.Fprintf(&g.buf, format, args...)
	g.buf.WriteByte('\n')
}

func (g *generator) open(format string, args ...any) {
	g.p(format+" {", args...)
	g.indent++
}

func (g *generator) close() {
	g.indent--
	g.p("}")
}

func (g *generator) decl(d *ir.Declaration) {
	t := d.GoName
	g.p("")
	g.p("var _ %s.Schema = (*%s)(nil)", runtimeName, t)
	g.p("")
	g.p("// WriteDocument writes x as a root JSON-LD document.")
	g.p("func (%s *%s) WriteDocument(w *%s.Writer) error { return %s.writeJSONLD(w, true) }", recv, t, runtimeName, recv)
	g.p("")
	g.p("// WriteNested writes x as an embedded JSON-LD object.")
	g.p("func (%s *%s) WriteNested(w *%s.Writer) error { return %s.writeJSONLD(w, false) }", recv, t, runtimeName, recv)
	g.p("")
	g.open("func (%s *%s) writeJSONLD(w *%s.Writer, root bool) error", recv, t, runtimeName)
	g.open("if %s == nil", recv)
	g.p("return %s.ErrNilDocument", runtimeName)
	g.close()
	g.p("w.BeginObject()")
	g.open("if root")
	g.p("w.Context()")
	g.close()
	g.p("w.Type(%s)", strconv.Quote(d.Vocabulary))
	for i := range d.Properties {
		g.property(&d.Properties[i])
	}
	g.p("w.EndObject()")
	g.p("return w.Err()")
	g.close()
}

func (g *generator) property(p *ir.Property) {
	expr := recv + "." + strings.Join(fieldPath(p), ".")
	cond := presence(p, expr)
	if cond != "" {
		g.open("if %s", cond)
	}
	g.p("w.Key(%s)", strconv.Quote(p.Key))
	g.value(expr, &p.Type, p, 0)
	if cond != "" {
		g.close()
	}
}

func fieldPath(p *ir.Property) []string {
	if len(p.Path) > 0 {
		return p.Path
	}
	return []string{p.GoName}
}

// presence returns the condition guarding a property, or "" when it is always
// written.
func presence(p *ir.Property, expr string) string {
	switch p.Presence() {
	case ir.PresenceNonNil:
		return nonNil(expr, &p.Type)
	case ir.PresenceNonZero:
		switch p.Type.Repr {
		case ir.ReprString, ir.ReprJSONNumber:
			return expr + ` != ""`
		case ir.ReprBool:
			return expr
		default:
			return expr + " != 0"
		}
	case ir.PresenceIsZero:
		return "!" + expr + ".IsZero()"
	case ir.PresenceNonEmptyURL:
		return expr + `.String() != ""`
	}
	return ""
}

// nonNil checks every pointer level of a nullable value.
func nonNil(expr string, t *ir.Type) string {
	if t.Pointers == 0 {
		return expr + " != nil"
	}
	parts := make([]string, t.Pointers)
	for i := range t.Pointers {
		parts[i] = strings.Repeat("*", i) + expr + " != nil"
	}
	return strings.Join(parts, " && ")
}

// deref returns expr with n pointer levels removed.
func deref(expr string, n int) string {
	return strings.Repeat("*", n) + expr
}

// receiver returns an expression suitable for a method call on the value behind
// expr. Values are addressable (fields of the pointer receiver, range
// variables), so pointer-receiver methods resolve without taking the address.
func receiver(expr string, t *ir.Type) string {
	if t.Pointers <= 1 {
		return expr
	}
	return "(" + deref(expr, t.Pointers-1) + ")"
}

// pointer returns an expression of pointer type addressing the value behind expr.
func pointer(expr string, t *ir.Type) string {
	if t.Pointers == 0 {
		return "&" + expr
	}
	return deref(expr, t.Pointers-1)
}

var durationConst = map[ir.DurationFormat]string{
	ir.DurationISO8601: "DurationISO8601",
	ir.DurationMinutes: "DurationMinutes",
	ir.DurationSeconds: "DurationSeconds",
}

var dateConst = map[ir.DateFormat]string{
	ir.DateISO8601: "DateISO8601",
	ir.DateOnly:    "DateOnly",
}

// value writes the statements emitting expr, a value of type t.
func (g *generator) value(expr string, t *ir.Type, p *ir.Property, depth int) {
	v := deref(expr, t.Pointers)
	switch t.Kind {
	case ir.KindString:
		switch {
		case t.Fallback && t.Stringer:
			g.p("w.String(%s.String())", receiver(expr, t))
		case t.Fallback:
			g.p("w.Text(%s)", v)
		case t.Named:
			g.p("w.String(string(%s))", v)
		default:
			g.p("w.String(%s)", v)
		}
	case ir.KindBoolean:
		if t.Named {
			g.p("w.Bool(bool(%s))", v)
			return
		}
		g.p("w.Bool(%s)", v)
	case ir.KindInteger:
		if t.Repr == ir.ReprUint {
			g.p("w.Uint(uint64(%s))", v)
			return
		}
		g.p("w.Int(int64(%s))", v)
	case ir.KindNumber:
		switch t.Repr {
		case ir.ReprJSONNumber:
			g.p("w.Number(string(%s))", v)
		case ir.ReprFloat32:
			g.p("w.Float32(float32(%s))", v)
		default:
			g.p("w.Float64(float64(%s))", v)
		}
	case ir.KindDuration:
		g.p("w.Duration(%s, %s.%s)", v, runtimeName, durationConst[p.Duration])
	case ir.KindDateTime:
		g.p("w.Time(%s, %s.%s)", v, runtimeName, dateConst[p.Date])
	case ir.KindDateOnly:
		g.p("w.Date(%s)", v)
	case ir.KindURI:
		g.p("w.String(%s.String())", receiver(expr, t))
	case ir.KindNested:
		if t.Pointers == 0 && t.Nullable {
			g.p("w.Nested(%s)", expr) // interface value
			return
		}
		g.p("w.Nested(%s)", pointer(expr, t))
	case ir.KindArray:
		elem := "v" + strconv.Itoa(depth)
		g.p("w.BeginArray()")
		if t.Container == ir.ContainerSeq {
			g.open("for %s := range %s", elem, v)
		} else {
			g.open("for _, %s := range %s", elem, v)
		}
		if t.Elem.Nullable {
			g.open("if %s", negate(nonNil(elem, t.Elem)))
			g.p("w.Null()")
			g.p("continue")
			g.close()
		}
		g.value(elem, t.Elem, p, depth+1)
		g.close()
		g.p("w.EndArray()")
	}
}

// negate turns a conjunction of "!= nil" checks into its negation.
func negate(cond string) string {
	return strings.ReplaceAll(strings.ReplaceAll(cond, " != nil", " == nil"), " && ", " || ")
}
