package schemald

import (
	"context"
	"reflect"
)

// Collection is the ordered, append-only list of documents gathered while one
// unit of work (typically one HTTP request) runs. All documents are added before
// the collection is rendered; it is not safe for concurrent mutation.
type Collection struct {
	docs []Schema
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection { return &Collection{} }

// Add appends doc. It panics when doc is nil or a nil pointer, since a nil
// document is always a caller bug.
func (c *Collection) Add(doc Schema) {
	if isNil(doc) {
		panic("schemald.Collection.Add: document must not be nil")
	}
	c.docs = append(c.docs, doc)
}

// All returns the documents in insertion order. The returned slice is a copy.
func (c *Collection) All() []Schema {
	return append([]Schema(nil), c.docs...)
}

// Len returns the number of documents.
func (c *Collection) Len() int { return len(c.docs) }

// IsEmpty reports whether no document has been added.
func (c *Collection) IsEmpty() bool { return len(c.docs) == 0 }

// isNil reports whether doc is nil or a nil pointer behind a non-nil interface.
func isNil(doc Schema) bool {
	if doc == nil {
		return true
	}
	v := reflect.ValueOf(doc)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

type contextKey int

const _ctxKeyCollection contextKey = iota

// NewContext returns a child context carrying c.
func NewContext(ctx context.Context, c *Collection) context.Context {
	return context.WithValue(ctx, _ctxKeyCollection, c)
}

// FromContext returns the Collection attached to ctx, if any.
func FromContext(ctx context.Context) (*Collection, bool) {
	c, ok := ctx.Value(_ctxKeyCollection).(*Collection)
	return c, ok && c != nil
}

// AddTo appends doc to the Collection carried by ctx. It reports false when ctx
// carries no Collection.
func AddTo(ctx context.Context, doc Schema) bool {
	c, ok := FromContext(ctx)
	if !ok {
		return false
	}
	c.Add(doc)
	return true
}
