package kv3

import (
	"iter"

	"github.com/KimNorgaard/go-kv3/internal/ordered"
)

// Document binds one or more root nodes to keys under a single header.
// Roots are written in the order their keys were first added.
type Document struct {
	header *Header
	roots  ordered.Map[string, *Node]
}

// NewDocument returns an empty document. A nil header means DefaultHeader.
func NewDocument(h *Header) *Document {
	if h == nil {
		h = DefaultHeader()
	}
	return &Document{header: h}
}

// Header returns the document header.
func (d *Document) Header() *Header {
	if d.header == nil {
		return DefaultHeader()
	}
	return d.header
}

// SetHeader replaces the header. A nil header means DefaultHeader.
func (d *Document) SetHeader(h *Header) {
	if h == nil {
		h = DefaultHeader()
	}
	d.header = h
}

// AddRoot binds n to key. Rebinding an existing key replaces the node in
// place; the key keeps its original position.
func (d *Document) AddRoot(key string, n *Node) {
	d.roots.Set(key, n)
}

// RemoveRoot removes the binding for key and reports whether it existed.
func (d *Document) RemoveRoot(key string) bool {
	return d.roots.Delete(key)
}

// Root returns the node bound to key.
func (d *Document) Root(key string) (*Node, bool) { return d.roots.Get(key) }

// Keys returns the root keys in order.
func (d *Document) Keys() []string { return d.roots.Keys() }

// Len returns the number of roots.
func (d *Document) Len() int { return d.roots.Len() }

// Roots iterates over the roots in order.
func (d *Document) Roots() iter.Seq2[string, *Node] { return d.roots.All() }

// Text returns the complete document: the header line, then the body,
// ending with a newline.
func (d *Document) Text() string {
	f := newFormatter(defaultOptions())
	f.writeDocument(d.header, d.roots.All())
	return f.String()
}

func (d *Document) String() string { return d.Text() }
