// Package tag parses the declarative surface shared by static analysis and the
// interpreted writer: the jsonld struct tag, the requiredness markers and the
// //schemald:type doc-comment directive.
package tag

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reoring/schemald/internal/ir"
)

// Name is the struct tag key read for field overrides.
const Name = "jsonld"

// Directive is the doc-comment prefix that marks a struct as a schema declaration.
const Directive = "//schemald:type"

// Field is the parsed form of one struct field's tags.
type Field struct {
	Skip     bool
	Key      string // explicit output key; empty means "use the default transform"
	Required bool
	Duration ir.DurationFormat
	Date     ir.DateFormat
	// Invalid lists option values that were not recognized and fell back to defaults.
	Invalid []string
}

// Parse reads the jsonld, validate and binding tags of a struct field.
// Format: jsonld:"key,required,duration=minutes,date=date"; jsonld:"-" skips the field.
func Parse(st reflect.StructTag) Field {
	var f Field
	raw, ok := st.Lookup(Name)
	if ok {
		if raw == "-" {
			return Field{Skip: true}
		}
		parts := strings.Split(raw, ",")
		f.Key = strings.TrimSpace(parts[0])
		for _, p := range parts[1:] {
			p = strings.TrimSpace(p)
			switch {
			case p == "":
			case p == "required":
				f.Required = true
			case strings.HasPrefix(p, "duration="):
				v := strings.TrimPrefix(p, "duration=")
				df, ok := ParseDurationFormat(v)
				if !ok {
					f.Invalid = append(f.Invalid, p)
				}
				f.Duration = df
			case strings.HasPrefix(p, "date="):
				v := strings.TrimPrefix(p, "date=")
				df, ok := ParseDateFormat(v)
				if !ok {
					f.Invalid = append(f.Invalid, p)
				}
				f.Date = df
			default:
				f.Invalid = append(f.Invalid, p)
			}
		}
	}
	if !f.Required {
		f.Required = hasRequired(st.Get("validate")) || hasRequired(st.Get("binding"))
	}
	return f
}

// hasRequired reports whether a validator-style tag lists the bare "required" rule.
func hasRequired(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range strings.Split(v, ",") {
		if strings.TrimSpace(r) == "required" {
			return true
		}
	}
	return false
}

// ParseDurationFormat maps an override value to a DurationFormat. Unknown values
// return the ISO-8601 default and false.
func ParseDurationFormat(s string) (ir.DurationFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iso8601", "iso":
		return ir.DurationISO8601, true
	case "minutes", "totalminutes":
		return ir.DurationMinutes, true
	case "seconds", "totalseconds":
		return ir.DurationSeconds, true
	}
	return ir.DurationISO8601, false
}

// ParseDateFormat maps an override value to a DateFormat. Unknown values return
// the full ISO-8601 default and false.
func ParseDateFormat(s string) (ir.DateFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iso8601", "iso":
		return ir.DateISO8601, true
	case "date", "dateonly":
		return ir.DateOnly, true
	}
	return ir.DateISO8601, false
}

// DefaultKey lower-cases only the first rune of a field name. Names that already
// start lower-case pass through unchanged. It is deliberately not a general
// camelCase transform: "URL" becomes "uRL".
func DefaultKey(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// Marker is a parsed //schemald:type directive.
type Marker struct {
	Vocabulary string // empty means "use the Go type name"
	Final      bool
	// Invalid lists arguments that could not be understood.
	Invalid []string
}

// ParseMarker looks for the directive among comment lines (with their "//"
// prefix). It returns false when no directive is present.
//
//	//schemald:type Recipe
//	//schemald:type Article final=false
func ParseMarker(lines []string) (Marker, bool) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, Directive) {
			continue
		}
		rest := strings.TrimPrefix(line, Directive)
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue // e.g. //schemald:typeX
		}
		m := Marker{Final: true}
		for _, arg := range strings.Fields(rest) {
			k, v, hasEq := strings.Cut(arg, "=")
			switch {
			case !hasEq && m.Vocabulary == "":
				m.Vocabulary = arg
			case hasEq && k == "final":
				b, err := strconv.ParseBool(v)
				if err != nil {
					m.Invalid = append(m.Invalid, arg)
					continue
				}
				m.Final = b
			default:
				m.Invalid = append(m.Invalid, arg)
			}
		}
		return m, true
	}
	return Marker{}, false
}
