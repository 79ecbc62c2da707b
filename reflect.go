package schemald

import (
	"encoding/json"
	"fmt"
	"iter"
	"net/url"
	"reflect"
	"sync"
	"time"

	"github.com/reoring/schemald/internal/ir"
	"github.com/reoring/schemald/internal/tag"
)

// VocabularyTyper may be implemented by structs passed to Reflect to name their
// schema.org type. Without it the Go type name is used.
type VocabularyTyper interface {
	VocabularyType() string
}

// Reflect returns a Schema that serializes v, a non-nil pointer to a struct,
// with the same tag grammar, classification and emission rules as generated
// writers. It is the interpreted counterpart of `schemald generate`; generated
// code avoids the per-call reflection and is the preferred path.
func Reflect(v any) (Schema, error) {
	if v == nil {
		return nil, ErrNilDocument
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("%w: got %T", ErrNilDocument, v)
	}
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrNotStruct, v)
	}
	p, err := planFor(rv.Elem().Type())
	if err != nil {
		return nil, err
	}
	return &reflectSchema{v: rv.Elem(), plan: p}, nil
}

// MustReflect is like Reflect but panics on error.
func MustReflect(v any) Schema {
	s, err := Reflect(v)
	if err != nil {
		panic("schemald.MustReflect: " + err.Error())
	}
	return s
}

type reflectSchema struct {
	v    reflect.Value // addressable struct
	plan *plan
}

func (s *reflectSchema) WriteDocument(w *Writer) error { return s.write(w, true) }
func (s *reflectSchema) WriteNested(w *Writer) error   { return s.write(w, false) }

func (s *reflectSchema) write(w *Writer, root bool) error {
	if s == nil {
		return ErrNilDocument
	}
	w.BeginObject()
	if root {
		w.Context()
	}
	w.Type(s.plan.vocabulary)
	for i := range s.plan.props {
		p := &s.plan.props[i]
		fv := s.v.FieldByIndex(p.Index)
		if !reflectPresent(p, fv) {
			continue
		}
		w.Key(p.Key)
		writeReflect(w, &p.Type, fv, p)
	}
	w.EndObject()
	return w.Err()
}

// ---- plans ----

type plan struct {
	vocabulary string
	props      []ir.Property
}

var plans sync.Map // reflect.Type -> *plan

func planFor(t reflect.Type) (*plan, error) {
	if p, ok := plans.Load(t); ok {
		return p.(*plan), nil
	}
	p := &plan{vocabulary: t.Name()}
	if vt, ok := reflect.New(t).Interface().(VocabularyTyper); ok {
		p.vocabulary = vt.VocabularyType()
	}
	collectFields(t, nil, &p.props)
	seen := make(map[string]string, len(p.props))
	for _, prop := range p.props {
		if prop.Key == ContextKey || prop.Key == TypeKey {
			return nil, fmt.Errorf("%w: %s uses reserved key %q in %s", ErrDuplicateKey, prop.GoName, prop.Key, t)
		}
		if prev, dup := seen[prop.Key]; dup {
			return nil, fmt.Errorf("%w: %q used by %s and %s in %s", ErrDuplicateKey, prop.Key, prev, prop.GoName, t)
		}
		seen[prop.Key] = prop.GoName
	}
	actual, _ := plans.LoadOrStore(t, p)
	return actual.(*plan), nil
}

func collectFields(t reflect.Type, index []int, out *[]ir.Property) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		f := tag.Parse(sf.Tag)
		if f.Skip {
			continue
		}
		idx := append(append([]int(nil), index...), i)
		if sf.Anonymous && f.Key == "" && sf.Type.Kind() == reflect.Struct {
			collectFields(sf.Type, idx, out)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		key := f.Key
		if key == "" {
			key = tag.DefaultKey(sf.Name)
		}
		*out = append(*out, ir.Property{
			GoName:   sf.Name,
			Index:    idx,
			Key:      key,
			Type:     classifyReflect(sf.Type),
			Required: f.Required,
			Duration: f.Duration,
			Date:     f.Date,
		})
	}
}

var (
	durationType   = reflect.TypeFor[time.Duration]()
	timeType       = reflect.TypeFor[time.Time]()
	dateType       = reflect.TypeFor[Date]()
	urlType        = reflect.TypeFor[url.URL]()
	numberType     = reflect.TypeFor[json.Number]()
	schemaType     = reflect.TypeFor[Schema]()
	stringerType   = reflect.TypeFor[fmt.Stringer]()
	vocabTyperType = reflect.TypeFor[VocabularyTyper]()
	isZeroerType   = reflect.TypeFor[interface{ IsZero() bool }]()
)

// classifyReflect mirrors the static classifier for reflect.Type.
func classifyReflect(t reflect.Type) ir.Type {
	out := ir.Type{Expr: t.String()}
	for t.Kind() == reflect.Pointer {
		out.Pointers++
		out.Nullable = true
		t = t.Elem()
	}
	switch t {
	case durationType:
		out.Kind = ir.KindDuration
		return out
	case timeType:
		out.Kind = ir.KindDateTime
		return out
	case dateType:
		out.Kind = ir.KindDateOnly
		return out
	case urlType:
		out.Kind = ir.KindURI
		return out
	case numberType:
		out.Kind, out.Repr = ir.KindNumber, ir.ReprJSONNumber
		return out
	}
	switch t.Kind() {
	case reflect.String:
		out.Kind, out.Repr = ir.KindString, ir.ReprString
		return out
	case reflect.Bool:
		out.Kind, out.Repr = ir.KindBoolean, ir.ReprBool
		return out
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.Kind, out.Repr = ir.KindInteger, ir.ReprInt
		return out
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		out.Kind, out.Repr = ir.KindInteger, ir.ReprUint
		return out
	case reflect.Float32:
		out.Kind, out.Repr = ir.KindNumber, ir.ReprFloat32
		return out
	case reflect.Float64:
		out.Kind, out.Repr = ir.KindNumber, ir.ReprFloat64
		return out
	case reflect.Slice:
		elem := classifyReflect(t.Elem())
		out.Kind, out.Container, out.Elem, out.Nullable = ir.KindArray, ir.ContainerSlice, &elem, true
		return out
	case reflect.Array:
		elem := classifyReflect(t.Elem())
		out.Kind, out.Container, out.Elem = ir.KindArray, ir.ContainerArray, &elem
		return out
	case reflect.Func:
		if et, ok := seqElem(t); ok {
			elem := classifyReflect(et)
			out.Kind, out.Container, out.Elem, out.Nullable = ir.KindArray, ir.ContainerSeq, &elem, true
			return out
		}
	}
	switch t.Kind() {
	case reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		out.Nullable = true
	}
	switch {
	case t.Implements(schemaType):
		out.Kind = ir.KindNested
	case t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(schemaType):
		out.Kind, out.PtrMethods = ir.KindNested, true
	case t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(vocabTyperType):
		out.Kind, out.PtrMethods = ir.KindNested, true
	default:
		out.Kind, out.Fallback = ir.KindString, true
		switch {
		case t.Implements(stringerType):
			out.Stringer = true
		case t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(stringerType):
			out.Stringer, out.PtrMethods = true, true
		}
		return out
	}
	if !out.Nullable && t.Implements(isZeroerType) {
		out.HasIsZero = true
	}
	return out
}

// seqElem reports the element type of an iter.Seq-shaped func type.
func seqElem(t reflect.Type) (reflect.Type, bool) {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.NumIn() != 1 || y.NumOut() != 1 || y.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	return y.In(0), true
}

// ---- emission ----

func reflectPresent(p *ir.Property, v reflect.Value) bool {
	switch p.Presence() {
	case ir.PresenceNonNil:
		return nonNil(&p.Type, v)
	case ir.PresenceNonZero:
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
			return v.Float() != 0
		default:
			return !v.IsZero()
		}
	case ir.PresenceIsZero:
		if z, ok := v.Interface().(interface{ IsZero() bool }); ok {
			return !z.IsZero()
		}
		return !v.IsZero()
	case ir.PresenceNonEmptyURL:
		u := v.Interface().(url.URL)
		return u.String() != ""
	}
	return true
}

func nonNil(t *ir.Type, v reflect.Value) bool {
	if t.Pointers == 0 {
		return !v.IsNil()
	}
	for range t.Pointers {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return true
}

func writeReflect(w *Writer, t *ir.Type, v reflect.Value, p *ir.Property) {
	if t.Kind == ir.KindNested || t.Kind == ir.KindURI || t.Stringer {
		// keep one pointer level so pointer-receiver methods stay reachable
		for range max(t.Pointers-1, 0) {
			v = v.Elem()
		}
	} else {
		for range t.Pointers {
			v = v.Elem()
		}
	}
	switch t.Kind {
	case ir.KindString:
		if t.Fallback {
			w.Text(methodValue(t, v))
			return
		}
		w.String(v.String())
	case ir.KindBoolean:
		w.Bool(v.Bool())
	case ir.KindInteger:
		if t.Repr == ir.ReprUint {
			w.Uint(v.Uint())
			return
		}
		w.Int(v.Int())
	case ir.KindNumber:
		switch t.Repr {
		case ir.ReprJSONNumber:
			w.Number(v.String())
		case ir.ReprFloat32:
			w.Float32(float32(v.Float()))
		default:
			w.Float64(v.Float())
		}
	case ir.KindDuration:
		w.Duration(time.Duration(v.Int()), p.Duration)
	case ir.KindDateTime:
		w.Time(v.Interface().(time.Time), p.Date)
	case ir.KindDateOnly:
		w.Date(v.Interface().(Date))
	case ir.KindURI:
		if v.Kind() == reflect.Pointer {
			w.String(v.Interface().(*url.URL).String())
			return
		}
		u := v.Interface().(url.URL)
		w.String(u.String())
	case ir.KindArray:
		w.BeginArray()
		for e := range elements(t, v) {
			if t.Elem.Nullable && !nonNil(t.Elem, e) {
				w.Null()
				continue
			}
			writeReflect(w, t.Elem, e, p)
		}
		w.EndArray()
	case ir.KindNested:
		iv := methodValue(t, v)
		if s, ok := iv.(Schema); ok {
			w.Nested(s)
			return
		}
		if v.Kind() == reflect.Pointer {
			v = v.Elem()
		}
		pl, err := planFor(v.Type())
		if err != nil {
			w.fail(err)
			return
		}
		w.Nested(&reflectSchema{v: addressable(v), plan: pl})
	}
}

// methodValue returns v as an interface value whose method set includes
// pointer-receiver methods when the type declares them.
func methodValue(t *ir.Type, v reflect.Value) any {
	if t.PtrMethods && v.Kind() != reflect.Pointer {
		return addressable(v).Addr().Interface()
	}
	if v.Kind() == reflect.Interface {
		return v.Elem().Interface()
	}
	return v.Interface()
}

func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

func elements(t *ir.Type, v reflect.Value) iter.Seq[reflect.Value] {
	if t.Container == ir.ContainerSeq {
		return v.Seq()
	}
	return func(yield func(reflect.Value) bool) {
		for i := range v.Len() {
			if !yield(v.Index(i)) {
				return
			}
		}
	}
}
