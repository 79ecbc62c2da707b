package schemald

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	gojson "github.com/goccy/go-json"
)

// Writer streams JSON tokens to a caller-owned io.Writer. It adds no buffering of
// its own: every token is handed to the underlying writer as soon as it is
// complete, so callers that want fewer syscalls wrap the sink themselves.
//
// The first error (from the sink or from structural misuse) is sticky: later
// calls become no-ops and Err reports it. A Writer accepts exactly one top-level
// value. It is not safe for concurrent use.
type Writer struct {
	out      io.Writer
	err      error
	stack    []scope
	afterKey bool
	done     bool // a complete top-level value has been written
	scratch  [64]byte
}

type scope struct {
	array bool
	n     int // completed members/elements
}

// NewWriter returns a Writer that writes to out.
func NewWriter(out io.Writer) *Writer {
	w := &Writer{}
	w.Reset(out)
	return w
}

// Reset discards all state and makes w write to out.
func (w *Writer) Reset(out io.Writer) {
	w.out = out
	w.err = nil
	w.stack = w.stack[:0]
	w.afterKey = false
	w.done = false
	if out == nil {
		w.err = ErrNilWriter
	}
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error { return w.err }

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	if _, err := w.out.Write(p); err != nil {
		w.err = err
	}
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = err
	}
}

// beginValue validates that a value may start here and writes the element
// separator when needed.
func (w *Writer) beginValue() bool {
	if w.err != nil {
		return false
	}
	if len(w.stack) == 0 {
		if w.done {
			w.fail(ErrMultipleValues)
			return false
		}
		return true
	}
	top := &w.stack[len(w.stack)-1]
	if top.array {
		if top.n > 0 {
			w.writeString(",")
		}
		return w.err == nil
	}
	if !w.afterKey {
		w.fail(fmt.Errorf("%w: value without key", ErrUnbalanced))
		return false
	}
	return true
}

func (w *Writer) endValue() {
	if len(w.stack) == 0 {
		w.done = true
		return
	}
	w.stack[len(w.stack)-1].n++
	w.afterKey = false
}

// BeginObject writes '{'.
func (w *Writer) BeginObject() {
	if !w.beginValue() {
		return
	}
	w.writeString("{")
	w.stack = append(w.stack, scope{})
	w.afterKey = false
}

// EndObject writes '}'.
func (w *Writer) EndObject() { w.end(false, "}") }

// BeginArray writes '['.
func (w *Writer) BeginArray() {
	if !w.beginValue() {
		return
	}
	w.writeString("[")
	w.stack = append(w.stack, scope{array: true})
	w.afterKey = false
}

// EndArray writes ']'.
func (w *Writer) EndArray() { w.end(true, "]") }

func (w *Writer) end(array bool, tok string) {
	if w.err != nil {
		return
	}
	if len(w.stack) == 0 || w.stack[len(w.stack)-1].array != array || w.afterKey {
		w.fail(fmt.Errorf("%w: unexpected %s", ErrUnbalanced, tok))
		return
	}
	w.writeString(tok)
	w.stack = w.stack[:len(w.stack)-1]
	w.endValue()
}

// Key writes an object member name. The next call must write its value.
func (w *Writer) Key(k string) {
	if w.err != nil {
		return
	}
	if len(w.stack) == 0 || w.stack[len(w.stack)-1].array || w.afterKey {
		w.fail(fmt.Errorf("%w: key %q outside object", ErrUnbalanced, k))
		return
	}
	if w.stack[len(w.stack)-1].n > 0 {
		w.writeString(",")
	}
	w.quote(k)
	w.writeString(":")
	w.afterKey = true
}

// quote writes s as a JSON string with HTML-safe escaping, so the output can be
// embedded in a <script> element verbatim.
func (w *Writer) quote(s string) {
	if w.err != nil {
		return
	}
	b, err := gojson.Marshal(s)
	if err != nil {
		w.fail(err)
		return
	}
	w.write(b)
}

// String writes a JSON string.
func (w *Writer) String(s string) {
	if !w.beginValue() {
		return
	}
	w.quote(s)
	w.endValue()
}

// Bool writes true or false.
func (w *Writer) Bool(b bool) {
	if !w.beginValue() {
		return
	}
	if b {
		w.writeString("true")
	} else {
		w.writeString("false")
	}
	w.endValue()
}

// Null writes null. Generated writers only use it for nil array elements.
func (w *Writer) Null() {
	if !w.beginValue() {
		return
	}
	w.writeString("null")
	w.endValue()
}

// Int writes a signed integer.
func (w *Writer) Int(v int64) {
	if !w.beginValue() {
		return
	}
	w.write(strconv.AppendInt(w.scratch[:0], v, 10))
	w.endValue()
}

// Uint writes an unsigned integer.
func (w *Writer) Uint(v uint64) {
	if !w.beginValue() {
		return
	}
	w.write(strconv.AppendUint(w.scratch[:0], v, 10))
	w.endValue()
}

// Float64 writes v with the shortest representation that round-trips, using the
// same notation rules as encoding/json. Non-finite values cannot be expressed in
// JSON and are written as the strings "NaN", "+Inf" and "-Inf".
func (w *Writer) Float64(v float64) { w.float(v, 64) }

// Float32 writes v with 32-bit precision.
func (w *Writer) Float32(v float32) { w.float(float64(v), 32) }

func (w *Writer) float(v float64, bits int) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		w.String(strconv.FormatFloat(v, 'g', -1, bits))
		return
	}
	if !w.beginValue() {
		return
	}
	var (
		b   []byte
		err error
	)
	if bits == 32 {
		b, err = gojson.Marshal(float32(v))
	} else {
		b, err = gojson.Marshal(v)
	}
	if err != nil {
		w.fail(err)
		return
	}
	w.write(b)
	w.endValue()
}

// Number writes a decimal literal given as text (for example a json.Number)
// verbatim. Text that is not a valid JSON number degrades to a JSON string.
func (w *Writer) Number(s string) {
	if !isJSONNumber(s) {
		w.String(s)
		return
	}
	if !w.beginValue() {
		return
	}
	w.writeString(s)
	w.endValue()
}

// Duration writes d per f: a quoted ISO-8601 duration or a plain integer count.
func (w *Writer) Duration(d time.Duration, f DurationFormat) {
	switch f {
	case DurationMinutes:
		w.Int(int64(d / time.Minute))
	case DurationSeconds:
		w.Int(int64(d / time.Second))
	default:
		if !w.beginValue() {
			return
		}
		b := append(w.scratch[:0], '"')
		b = appendDuration(b, d)
		w.write(append(b, '"'))
		w.endValue()
	}
}

// Time writes t per f as a quoted string.
func (w *Writer) Time(t time.Time, f DateFormat) {
	if !w.beginValue() {
		return
	}
	b := append(w.scratch[:0], '"')
	b = appendDateTime(b, t, f)
	w.write(append(b, '"'))
	w.endValue()
}

// Date writes d as a quoted "2006-01-02" string.
func (w *Writer) Date(d Date) {
	if !w.beginValue() {
		return
	}
	b := append(w.scratch[:0], '"')
	b = d.appendFormat(b)
	w.write(append(b, '"'))
	w.endValue()
}

// Text writes the string form of an arbitrary value: String() for fmt.Stringer,
// fmt.Sprint otherwise. Generated writers use it for types that have no richer
// classification.
func (w *Writer) Text(v any) {
	if s, ok := v.(fmt.Stringer); ok {
		w.String(s.String())
		return
	}
	w.String(fmt.Sprint(v))
}

// Context writes the "@context" member naming the schema.org vocabulary.
func (w *Writer) Context() {
	w.Key(ContextKey)
	w.String(VocabularyContext)
}

// Type writes the "@type" member.
func (w *Writer) Type(name string) {
	w.Key(TypeKey)
	w.String(name)
}

// Nested writes s in nested mode (without "@context") as the current value.
func (w *Writer) Nested(s Schema) {
	if w.err != nil {
		return
	}
	if isNil(s) {
		w.fail(ErrNilDocument)
		return
	}
	if err := s.WriteNested(w); err != nil {
		w.fail(err)
	}
}

// isJSONNumber reports whether s matches the JSON number grammar.
func isJSONNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
		if s == "" {
			return false
		}
	}
	switch {
	case s[0] == '0':
		s = s[1:]
	case '1' <= s[0] && s[0] <= '9':
		s = s[1:]
		for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			s = s[1:]
		}
	default:
		return false
	}
	if len(s) >= 2 && s[0] == '.' && '0' <= s[1] && s[1] <= '9' {
		s = s[2:]
		for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			s = s[1:]
		}
	}
	if len(s) >= 2 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		if s[0] == '+' || s[0] == '-' {
			s = s[1:]
			if s == "" {
				return false
			}
		}
		for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
			s = s[1:]
		}
	}
	return s == ""
}
