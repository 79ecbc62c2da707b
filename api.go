package schemald

import "github.com/reoring/schemald/internal/ir"

// Wire constants of the JSON-LD documents produced by this package.
const (
	// ContextKey names the vocabulary-context member, written at document root only.
	ContextKey = ir.ContextKey
	// TypeKey names the vocabulary-type member, always written first after @context.
	TypeKey = ir.TypeKey
	// VocabularyContext is the schema.org base IRI written as the @context value.
	VocabularyContext = "https://schema.org"
)

// Schema is implemented by every serializable document type, generated or
// hand-written.
//
// Each method writes exactly one complete JSON object to w and nothing else. The
// sink stays owned by the caller: implementations never close, flush or reset it.
// Implementations report errors through w (see Writer.Err) and return w.Err().
type Schema interface {
	// WriteDocument writes the value as a root document, starting with
	// "@context" followed by "@type".
	WriteDocument(w *Writer) error
	// WriteNested writes the value as an embedded object: "@type" first, no
	// "@context".
	WriteNested(w *Writer) error
}
