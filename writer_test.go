package schemald_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/reoring/schemald"
)

func TestWriter_ObjectAndArray(t *testing.T) {
	var buf bytes.Buffer
	w := schemald.NewWriter(&buf)
	w.BeginObject()
	w.Key("a")
	w.Int(-3)
	w.Key("b")
	w.BeginArray()
	w.Bool(true)
	w.Null()
	w.Uint(7)
	w.EndArray()
	w.Key("c")
	w.Float64(1.5)
	w.EndObject()
	if err := w.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"a":-3,"b":[true,null,7],"c":1.5}`
	if got := buf.String(); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestWriter_StringEscapesHTML(t *testing.T) {
	var buf bytes.Buffer
	w := schemald.NewWriter(&buf)
	w.String(`</script><b>&"x"`)
	got := buf.String()
	if strings.Contains(got, "<") || strings.Contains(got, ">") || strings.Contains(got, "&") {
		t.Fatalf("markup characters not escaped: %s", got)
	}
	if !strings.Contains(got, `\"x\"`) {
		t.Fatalf("quotes not escaped: %s", got)
	}
}

func TestWriter_NonFiniteFloatsAsStrings(t *testing.T) {
	cases := map[string]float64{
		`"NaN"`:  math.NaN(),
		`"+Inf"`: math.Inf(1),
		`"-Inf"`: math.Inf(-1),
	}
	for want, v := range cases {
		var buf bytes.Buffer
		w := schemald.NewWriter(&buf)
		w.Float64(v)
		if buf.String() != want {
			t.Fatalf("Float64(%v) = %s, want %s", v, buf.String(), want)
		}
	}
}

func TestWriter_Number(t *testing.T) {
	var buf bytes.Buffer
	w := schemald.NewWriter(&buf)
	w.BeginArray()
	w.Number("12.50")
	w.Number("-0.5e+3")
	w.Number("abc")
	w.Number("01")
	w.EndArray()
	want := `[12.50,-0.5e+3,"abc","01"]`
	if buf.String() != want {
		t.Fatalf("got %s, want %s", buf.String(), want)
	}
}

func TestWriter_DurationFormats(t *testing.T) {
	var buf bytes.Buffer
	w := schemald.NewWriter(&buf)
	w.BeginArray()
	w.Duration(90*time.Minute, schemald.DurationISO8601)
	w.Duration(90*time.Minute, schemald.DurationMinutes)
	w.Duration(90*time.Minute, schemald.DurationSeconds)
	w.EndArray()
	want := `["PT1H30M",90,5400]`
	if buf.String() != want {
		t.Fatalf("got %s, want %s", buf.String(), want)
	}
}

func TestWriter_SingleTopLevelValue(t *testing.T) {
	var buf bytes.Buffer
	w := schemald.NewWriter(&buf)
	w.String("a")
	w.String("b")
	if !errors.Is(w.Err(), schemald.ErrMultipleValues) {
		t.Fatalf("expected ErrMultipleValues, got %v", w.Err())
	}
	if buf.String() != `"a"` {
		t.Fatalf("second value leaked: %s", buf.String())
	}
}

func TestWriter_Unbalanced(t *testing.T) {
	cases := map[string]func(w *schemald.Writer){
		"value without key": func(w *schemald.Writer) { w.BeginObject(); w.Int(1) },
		"key in array":      func(w *schemald.Writer) { w.BeginArray(); w.Key("k") },
		"mismatched end":    func(w *schemald.Writer) { w.BeginArray(); w.EndObject() },
		"dangling key":      func(w *schemald.Writer) { w.BeginObject(); w.Key("k"); w.EndObject() },
		"end at top level":  func(w *schemald.Writer) { w.EndArray() },
	}
	for name, fn := range cases {
		w := schemald.NewWriter(&bytes.Buffer{})
		fn(w)
		if !errors.Is(w.Err(), schemald.ErrUnbalanced) {
			t.Fatalf("%s: expected ErrUnbalanced, got %v", name, w.Err())
		}
	}
}

type failingSink struct{ err error }

func (f failingSink) Write([]byte) (int, error) { return 0, f.err }

func TestWriter_SinkErrorIsSticky(t *testing.T) {
	boom := errors.New("boom")
	w := schemald.NewWriter(failingSink{err: boom})
	w.BeginObject()
	w.Key("a")
	w.String("x")
	w.EndObject()
	if !errors.Is(w.Err(), boom) {
		t.Fatalf("expected sink error, got %v", w.Err())
	}
}

func TestWriter_NilSink(t *testing.T) {
	w := schemald.NewWriter(nil)
	w.BeginObject()
	if !errors.Is(w.Err(), schemald.ErrNilWriter) {
		t.Fatalf("expected ErrNilWriter, got %v", w.Err())
	}
}

func TestWriter_ResetAllowsReuse(t *testing.T) {
	var a, b bytes.Buffer
	w := schemald.NewWriter(&a)
	w.String("x")
	w.String("y") // fails
	w.Reset(&b)
	w.Bool(false)
	if w.Err() != nil {
		t.Fatalf("unexpected error after Reset: %v", w.Err())
	}
	if b.String() != "false" {
		t.Fatalf("got %s", b.String())
	}
}

func TestWriter_NestedNil(t *testing.T) {
	w := schemald.NewWriter(&bytes.Buffer{})
	w.Nested(nil)
	if !errors.Is(w.Err(), schemald.ErrNilDocument) {
		t.Fatalf("expected ErrNilDocument, got %v", w.Err())
	}

	var buf bytes.Buffer
	w = schemald.NewWriter(&buf)
	w.BeginObject()
	w.Key("child")
	w.Nested((*thing)(nil))
	if !errors.Is(w.Err(), schemald.ErrNilDocument) {
		t.Fatalf("expected ErrNilDocument for a nil pointer, got %v", w.Err())
	}
}

type label struct{ s string }

func (l label) String() string { return "label:" + l.s }

func TestWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	w := schemald.NewWriter(&buf)
	w.BeginArray()
	w.Text(label{s: "a"})
	w.Text(42)
	w.EndArray()
	if want := `["label:a","42"]`; buf.String() != want {
		t.Fatalf("got %s, want %s", buf.String(), want)
	}
}
