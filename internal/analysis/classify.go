package analysis

import (
	"go/types"

	"github.com/reoring/schemald/internal/ir"
)

// RuntimePath is the import path of the run-time package generated code targets.
const RuntimePath = "github.com/reoring/schemald"

// classifier maps field types to serialization kinds. Rules apply in order:
// pointer unwrapping, well-known named types, basic underlying types, sequences,
// nested documents, and finally the text fallback.
type classifier struct {
	pkg       *types.Package
	schema    *types.Interface // nil when the runtime package is not reachable
	annotated map[*types.TypeName]bool
}

func newClassifier(pkg *types.Package, annotated map[*types.TypeName]bool) *classifier {
	return &classifier{pkg: pkg, schema: findSchema(pkg), annotated: annotated}
}

// findSchema resolves the runtime Schema interface through pkg's imports.
func findSchema(pkg *types.Package) *types.Interface {
	seen := map[*types.Package]bool{}
	var walk func(p *types.Package) *types.Interface
	walk = func(p *types.Package) *types.Interface {
		if p == nil || seen[p] {
			return nil
		}
		seen[p] = true
		if p.Path() == RuntimePath {
			if obj, ok := p.Scope().Lookup("Schema").(*types.TypeName); ok {
				if it, ok := obj.Type().Underlying().(*types.Interface); ok {
					return it
				}
			}
			return nil
		}
		for _, imp := range p.Imports() {
			if it := walk(imp); it != nil {
				return it
			}
		}
		return nil
	}
	return walk(pkg)
}

func (c *classifier) qualifier(p *types.Package) string {
	if p == c.pkg {
		return ""
	}
	return p.Name()
}

func (c *classifier) classify(t types.Type) ir.Type {
	out := ir.Type{Expr: types.TypeString(t, c.qualifier)}
	t = types.Unalias(t)
	for {
		p, ok := t.(*types.Pointer)
		if !ok {
			break
		}
		out.Pointers++
		out.Nullable = true
		t = types.Unalias(p.Elem())
	}

	if named, ok := t.(*types.Named); ok {
		if obj := named.Obj(); obj.Pkg() != nil {
			switch obj.Pkg().Path() + "." + obj.Name() {
			case "time.Duration":
				out.Kind = ir.KindDuration
				return out
			case "time.Time":
				out.Kind = ir.KindDateTime
				return out
			case RuntimePath + ".Date":
				out.Kind = ir.KindDateOnly
				return out
			case "net/url.URL":
				out.Kind = ir.KindURI
				return out
			case "encoding/json.Number":
				out.Kind, out.Repr = ir.KindNumber, ir.ReprJSONNumber
				return out
			}
		}
	}

	_, isNamed := t.(*types.Named)
	switch u := t.Underlying().(type) {
	case *types.Basic:
		if c.basic(&out, u) {
			out.Named = isNamed
			return out
		}
	case *types.Slice:
		elem := c.classify(u.Elem())
		out.Kind, out.Container, out.Elem, out.Nullable = ir.KindArray, ir.ContainerSlice, &elem, true
		return out
	case *types.Array:
		elem := c.classify(u.Elem())
		out.Kind, out.Container, out.Elem = ir.KindArray, ir.ContainerArray, &elem
		return out
	case *types.Signature:
		out.Nullable = true
		if et, ok := seqElem(u); ok {
			elem := c.classify(et)
			out.Kind, out.Container, out.Elem = ir.KindArray, ir.ContainerSeq, &elem
			return out
		}
	case *types.Map, *types.Chan, *types.Interface:
		out.Nullable = true
	}

	_, isIface := t.Underlying().(*types.Interface)
	switch {
	case c.schema != nil && types.Implements(t, c.schema):
		out.Kind = ir.KindNested
	case c.schema != nil && !isIface && types.Implements(types.NewPointer(t), c.schema):
		out.Kind, out.PtrMethods = ir.KindNested, true
	case isNamed && c.annotated[t.(*types.Named).Obj()]:
		// generated in this run; methods land on the pointer receiver
		out.Kind, out.PtrMethods = ir.KindNested, true
	default:
		out.Kind, out.Fallback = ir.KindString, true
		switch {
		case hasMethod(t, "String", types.Typ[types.String]):
			out.Stringer = true
		case !isIface && hasMethod(types.NewPointer(t), "String", types.Typ[types.String]):
			out.Stringer, out.PtrMethods = true, true
		}
		return out
	}
	if !out.Nullable && hasMethod(t, "IsZero", types.Typ[types.Bool]) {
		out.HasIsZero = true
	}
	return out
}

func (c *classifier) basic(out *ir.Type, b *types.Basic) bool {
	info := b.Info()
	switch {
	case info&types.IsString != 0:
		out.Kind, out.Repr = ir.KindString, ir.ReprString
	case info&types.IsBoolean != 0:
		out.Kind, out.Repr = ir.KindBoolean, ir.ReprBool
	case info&types.IsInteger != 0 && info&types.IsUnsigned != 0:
		out.Kind, out.Repr = ir.KindInteger, ir.ReprUint
	case info&types.IsInteger != 0:
		out.Kind, out.Repr = ir.KindInteger, ir.ReprInt
	case b.Kind() == types.Float32:
		out.Kind, out.Repr = ir.KindNumber, ir.ReprFloat32
	case info&types.IsFloat != 0:
		out.Kind, out.Repr = ir.KindNumber, ir.ReprFloat64
	default:
		return false
	}
	return true
}

// seqElem reports the element type of an iter.Seq-shaped signature:
// func(yield func(V) bool).
func seqElem(sig *types.Signature) (types.Type, bool) {
	if sig.Params().Len() != 1 || sig.Results().Len() != 0 || sig.Variadic() {
		return nil, false
	}
	yield, ok := sig.Params().At(0).Type().Underlying().(*types.Signature)
	if !ok || yield.Params().Len() != 1 || yield.Results().Len() != 1 || yield.Variadic() {
		return nil, false
	}
	if b, ok := yield.Results().At(0).Type().Underlying().(*types.Basic); !ok || b.Kind() != types.Bool {
		return nil, false
	}
	return yield.Params().At(0).Type(), true
}

// hasMethod reports whether t's method set has a niladic method name returning
// exactly one value of type res.
func hasMethod(t types.Type, name string, res types.Type) bool {
	sel := types.NewMethodSet(t).Lookup(nil, name) // exported names need no package
	if sel == nil {
		return false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}
	return types.Identical(sig.Results().At(0).Type(), res)
}

// hasFallback reports whether t or any element type degraded to text.
func hasFallback(t *ir.Type) bool {
	for ; t != nil; t = t.Elem {
		if t.Fallback {
			return true
		}
	}
	return false
}
