// Package analysis discovers //schemald:type declarations in type-checked Go
// packages and turns them into ir.Declaration values for the code generator.
// It reports problems as Diagnostics instead of failing on the first one.
package analysis

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/reoring/schemald/internal/ir"
	"github.com/reoring/schemald/internal/tag"
)

// Input is one type-checked package.
type Input struct {
	Fset  *token.FileSet
	Files []*ast.File
	Pkg   *types.Package
	Info  *types.Info
}

// Options narrows an analysis run.
type Options struct {
	// Types restricts the returned declarations to these Go type names. Every
	// annotated type still counts as nested for classification.
	Types []string
	// Annotated holds marked types of other packages in the same run. Their
	// writers may not exist yet, so they classify as nested by marker alone.
	Annotated map[*types.TypeName]bool
}

// marked is an annotated type found in pass one.
type marked struct {
	obj    *types.TypeName
	spec   *ast.TypeSpec
	marker tag.Marker
}

// Analyze extracts all annotated declarations of in, sorted by Go type name.
// Declarations with error diagnostics are omitted from the result.
func Analyze(in Input, opts Options) ([]ir.Declaration, Diagnostics) {
	a := &analyzer{in: in}
	found := a.discover()

	annotated := make(map[*types.TypeName]bool, len(found)+len(opts.Annotated))
	maps.Copy(annotated, opts.Annotated)
	final := make(map[*types.TypeName]bool, len(found))
	for _, m := range found {
		annotated[m.obj] = true
		final[m.obj] = m.marker.Final
	}
	a.cls = newClassifier(in.Pkg, annotated)
	a.final = final

	var decls []ir.Declaration
	for _, m := range found {
		if len(opts.Types) > 0 && !slices.Contains(opts.Types, m.obj.Name()) {
			continue
		}
		if d, ok := a.extract(m); ok {
			decls = append(decls, d)
		}
	}
	slices.SortFunc(decls, func(x, y ir.Declaration) int { return strings.Compare(x.GoName, y.GoName) })
	return decls, a.diags
}

// Marked returns the annotated types of in, in source order, without
// diagnostics.
func Marked(in Input) []*types.TypeName {
	found := (&analyzer{in: in}).discover()
	out := make([]*types.TypeName, len(found))
	for i, m := range found {
		out[i] = m.obj
	}
	return out
}

type analyzer struct {
	in    Input
	cls   *classifier
	final map[*types.TypeName]bool
	diags Diagnostics
}

func (a *analyzer) report(pos token.Pos, sev Severity, code, hint, format string, args ...any) {
	a.diags = append(a.diags, Diagnostic{
		Pos:      a.in.Fset.Position(pos),
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Hint:     hint,
		Severity: sev,
	})
}

// discover walks type declarations and returns those carrying the marker.
func (a *analyzer) discover() []marked {
	var out []marked
	for _, f := range a.in.Files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				if doc == nil {
					continue
				}
				lines := make([]string, 0, len(doc.List))
				for _, c := range doc.List {
					lines = append(lines, c.Text)
				}
				m, ok := tag.ParseMarker(lines)
				if !ok {
					continue
				}
				for _, arg := range m.Invalid {
					a.report(ts.Pos(), SeverityWarning, CodeInvalidMarker, "use //schemald:type [Name] [final=true|false]",
						"unrecognized marker argument %q on %s", arg, ts.Name.Name)
				}
				obj, ok := a.in.Info.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}
				out = append(out, marked{obj: obj, spec: ts, marker: m})
			}
		}
	}
	return out
}

// extract builds the Declaration of one annotated type.
func (a *analyzer) extract(m marked) (ir.Declaration, bool) {
	name := m.obj.Name()
	if m.spec.TypeParams != nil && m.spec.TypeParams.NumFields() > 0 {
		a.report(m.spec.Pos(), SeverityError, CodeNotStruct, "declare a concrete type",
			"%s is generic; only concrete struct types can be serialized", name)
		return ir.Declaration{}, false
	}
	if m.obj.IsAlias() {
		a.report(m.spec.Pos(), SeverityError, CodeNotStruct, "annotate the aliased type instead",
			"%s is an alias", name)
		return ir.Declaration{}, false
	}
	st, ok := m.obj.Type().Underlying().(*types.Struct)
	if !ok {
		a.report(m.spec.Pos(), SeverityError, CodeNotStruct, "",
			"%s is %s, not a struct", name, m.obj.Type().Underlying())
		return ir.Declaration{}, false
	}
	d := ir.Declaration{
		GoName:     name,
		PkgPath:    a.in.Pkg.Path(),
		PkgName:    a.in.Pkg.Name(),
		Vocabulary: m.marker.Vocabulary,
		Final:      m.marker.Final,
	}
	if d.Vocabulary == "" {
		d.Vocabulary = name
	}
	before := len(a.diags.Errors())
	a.fields(st, nil, &d.Properties)

	seen := make(map[string]ir.Property, len(d.Properties))
	for _, p := range d.Properties {
		if p.Key == ir.ContextKey || p.Key == ir.TypeKey {
			a.report(m.spec.Pos(), SeverityError, CodeDuplicateKey, "choose another key",
				"%s.%s uses reserved key %q", name, p.GoName, p.Key)
			continue
		}
		if prev, dup := seen[p.Key]; dup {
			a.report(m.spec.Pos(), SeverityError, CodeDuplicateKey, `rename one field or set jsonld:"key"`,
				"%s: fields %s and %s both map to key %q", name, prev.GoName, p.GoName, p.Key)
			continue
		}
		seen[p.Key] = p
	}
	if len(a.diags.Errors()) > before {
		return ir.Declaration{}, false
	}
	return d, true
}

// fields appends the properties of st. Embedded non-pointer structs without an
// explicit key are flattened; their fields are reached through path.
func (a *analyzer) fields(st *types.Struct, path []string, out *[]ir.Property) {
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		f := tag.Parse(reflect.StructTag(st.Tag(i)))
		if f.Skip {
			continue
		}
		fieldPath := append(slices.Clip(path), v.Name())
		if v.Embedded() && f.Key == "" {
			if inner, ok := types.Unalias(v.Type()).Underlying().(*types.Struct); ok {
				if _, isPtr := types.Unalias(v.Type()).(*types.Pointer); !isPtr {
					a.checkEmbedded(v)
					a.fields(inner, fieldPath, out)
					continue
				}
			}
		}
		if !v.Exported() {
			continue
		}
		for _, opt := range f.Invalid {
			a.report(v.Pos(), SeverityWarning, CodeInvalidFormat, "duration=iso8601|minutes|seconds, date=iso8601|date",
				"field %s: unknown tag option %q, default format used", v.Name(), opt)
		}
		key := f.Key
		if key == "" {
			key = tag.DefaultKey(v.Name())
		}
		typ := a.cls.classify(v.Type())
		if hasFallback(&typ) {
			a.report(v.Pos(), SeverityWarning, CodeUnmappedType, "implement fmt.Stringer or schemald.Schema, or skip it with jsonld:\"-\"",
				"field %s: type %s has no JSON-LD mapping and is written as text", v.Name(), typ.Expr)
		}
		*out = append(*out, ir.Property{
			GoName:   v.Name(),
			Path:     fieldPath,
			Key:      key,
			Type:     typ,
			Required: f.Required,
			Duration: f.Duration,
			Date:     f.Date,
		})
	}
}

func (a *analyzer) checkEmbedded(v *types.Var) {
	named, ok := types.Unalias(v.Type()).(*types.Named)
	if !ok {
		return
	}
	if a.final[named.Obj()] {
		a.report(v.Pos(), SeverityWarning, CodeEmbeddedFinal, "mark the embedded type final=false",
			"%s is declared final but is embedded", named.Obj().Name())
	}
}
