// Package ir defines the metadata model produced by analysis and consumed by the
// code generator and the interpreted writer. It has no run-time existence in
// generated code. This package is internal and not part of the public API.
package ir

// Reserved member names written by every document.
const (
	ContextKey = "@context"
	TypeKey    = "@type"
)

// Kind is the serialization kind a field type is classified into.
type Kind int

const (
	KindString Kind = iota
	KindBoolean
	KindInteger
	KindNumber
	KindDuration
	KindDateTime
	KindDateOnly
	KindURI
	KindArray
	KindNested
)

var kindNames = [...]string{
	KindString:   "string",
	KindBoolean:  "boolean",
	KindInteger:  "integer",
	KindNumber:   "number",
	KindDuration: "duration",
	KindDateTime: "datetime",
	KindDateOnly: "dateonly",
	KindURI:      "uri",
	KindArray:    "array",
	KindNested:   "nested",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText renders the kind by name in inspect output.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// DurationFormat selects how Duration values are written.
type DurationFormat int

const (
	DurationISO8601 DurationFormat = iota // PT1H30M
	DurationMinutes                       // plain integer count of minutes
	DurationSeconds                       // plain integer count of seconds
)

func (f DurationFormat) String() string {
	switch f {
	case DurationMinutes:
		return "minutes"
	case DurationSeconds:
		return "seconds"
	default:
		return "iso8601"
	}
}

func (f DurationFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// DateFormat selects how DateTime values are written.
type DateFormat int

const (
	DateISO8601 DateFormat = iota // full RFC 3339 timestamp with offset
	DateOnly                      // calendar date, no time component
)

func (f DateFormat) String() string {
	if f == DateOnly {
		return "date"
	}
	return "iso8601"
}

func (f DateFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// Repr is the underlying Go representation of scalar kinds.
type Repr int

const (
	ReprNone Repr = iota
	ReprString
	ReprBool
	ReprInt
	ReprUint
	ReprFloat32
	ReprFloat64
	ReprJSONNumber
)

// Container identifies the Go shape of an Array.
type Container int

const (
	ContainerNone  Container = iota
	ContainerSlice           // []T
	ContainerArray           // [N]T
	ContainerSeq             // iter.Seq[T]
)

// Type describes one classified Go type. Array types carry their element in Elem,
// and the element is classified independently.
type Type struct {
	Kind      Kind      `json:"kind" yaml:"kind"`
	Expr      string    `json:"type" yaml:"type"`
	Repr      Repr      `json:"-" yaml:"-"`
	Named     bool      `json:"-" yaml:"-"` // scalar needs a conversion to its basic type
	Pointers  int       `json:"-" yaml:"-"` // pointer indirections unwrapped during classification
	Nullable  bool      `json:"nullable" yaml:"nullable"`
	Container Container `json:"-" yaml:"-"`
	Elem      *Type     `json:"elem,omitempty" yaml:"elem,omitempty"`
	// PtrMethods is set when the methods used for Nested (WriteNested) or for a
	// fallback String() are declared on the pointer receiver.
	PtrMethods bool `json:"-" yaml:"-"`
	// Stringer marks fallback values implementing fmt.Stringer.
	Stringer bool `json:"-" yaml:"-"`
	// HasIsZero marks non-nullable values with an IsZero() bool method.
	HasIsZero bool `json:"-" yaml:"-"`
	Fallback  bool `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// Property is one serialized field of a Declaration.
type Property struct {
	GoName   string         `json:"field" yaml:"field"`
	Path     []string       `json:"-" yaml:"-"` // selector path from the receiver; promoted fields have more than one element
	Index    []int          `json:"-" yaml:"-"` // reflect field index, interpreted path only
	Key      string         `json:"key" yaml:"key"`
	Type     Type           `json:"type" yaml:"type"`
	Required bool           `json:"required" yaml:"required"`
	Duration DurationFormat `json:"duration" yaml:"duration"`
	Date     DateFormat     `json:"date" yaml:"date"`
}

// Presence says how a writer decides whether a property is emitted.
type Presence int

const (
	PresenceAlways      Presence = iota
	PresenceNonNil               // nullable: every pointer level is non-nil
	PresenceNonZero              // scalar compared with its zero value
	PresenceIsZero               // !v.IsZero()
	PresenceNonEmptyURL          // v.String() != ""
)

// Presence returns the emission condition for p. Required non-nullable values are
// always written; everything else is written only when present.
func (p Property) Presence() Presence {
	t := p.Type
	if t.Nullable {
		return PresenceNonNil
	}
	if p.Required {
		return PresenceAlways
	}
	switch t.Kind {
	case KindString, KindBoolean, KindInteger, KindNumber, KindDuration:
		if t.Fallback {
			return PresenceAlways
		}
		return PresenceNonZero
	case KindDateTime, KindDateOnly:
		return PresenceIsZero
	case KindURI:
		return PresenceNonEmptyURL
	case KindNested:
		if t.HasIsZero {
			return PresenceIsZero
		}
	}
	return PresenceAlways
}

// Declaration is the extracted model of one annotated struct type.
type Declaration struct {
	GoName     string     `json:"goType" yaml:"goType"`
	PkgPath    string     `json:"package" yaml:"package"`
	PkgName    string     `json:"-" yaml:"-"`
	Vocabulary string     `json:"vocabularyType" yaml:"vocabularyType"`
	Final      bool       `json:"final" yaml:"final"`
	Properties []Property `json:"properties" yaml:"properties"`
}
