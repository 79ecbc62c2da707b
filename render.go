package schemald

import (
	"bytes"
	"html/template"
	"io"
)

// Embedding markers wrapped around every rendered document.
const (
	ScriptOpen  = `<script type="application/ld+json">`
	ScriptClose = `</script>`
)

// RenderDocument writes doc as one root document wrapped in script markers. No
// whitespace is inserted. Output is not buffered: when doc fails partway, the
// opening marker and a partial object have already reached w. Render into a
// bytes.Buffer (or use RenderDocumentString) for all-or-nothing output.
func RenderDocument(w io.Writer, doc Schema) error {
	if w == nil {
		return ErrNilWriter
	}
	if isNil(doc) {
		return ErrNilDocument
	}
	return renderDocument(w, NewWriter(w), doc)
}

func renderDocument(out io.Writer, jw *Writer, doc Schema) error {
	if _, err := io.WriteString(out, ScriptOpen); err != nil {
		return err
	}
	jw.Reset(out)
	if err := doc.WriteDocument(jw); err != nil {
		return err
	}
	if err := jw.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(out, ScriptClose)
	return err
}

// Render writes every document of c in insertion order, each wrapped in its own
// script markers, back to back with no separator. An empty collection writes
// nothing. Like RenderDocument it streams into w, so a failing document leaves
// the documents before it and its own partial output behind; RenderString
// discards them.
func Render(w io.Writer, c *Collection) error {
	if w == nil {
		return ErrNilWriter
	}
	if c == nil {
		return ErrNilCollection
	}
	if c.IsEmpty() {
		return nil
	}
	jw := &Writer{}
	for _, doc := range c.docs {
		if err := renderDocument(w, jw, doc); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders c into a string.
func RenderString(c *Collection) (string, error) {
	if c == nil {
		return "", ErrNilCollection
	}
	var buf bytes.Buffer
	if err := Render(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderDocumentString renders one document into a string.
func RenderDocumentString(doc Schema) (string, error) {
	var buf bytes.Buffer
	if err := RenderDocument(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderHTML renders c for html/template. The output is trusted markup: string
// values are escaped by Writer so they cannot close the script element.
func RenderHTML(c *Collection) (template.HTML, error) {
	s, err := RenderString(c)
	if err != nil {
		return "", err
	}
	return template.HTML(s), nil //nolint:gosec // JSON strings are HTML-escaped by Writer
}
