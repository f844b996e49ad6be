package kv3

import (
	"iter"
	"slices"

	"github.com/KimNorgaard/go-kv3/internal/ordered"
)

// Property is one key/value pair supplied to NewNode or Node.Update.
type Property struct {
	Key   string
	Value any
}

// Prop returns a Property.
func Prop(key string, value any) Property { return Property{Key: key, Value: value} }

// Node is one record of the tree: a class, an optional name, ordered
// properties and ordered children. A Node owns its children; adding the
// same child to two parents, or a node to itself, produces undefined output.
//
// A Node is not safe for concurrent use. Callers must not mutate a tree
// while it is being serialized.
type Node struct {
	// Class is written as the _class field.
	Class string
	// Name is written as the name field unless empty.
	Name string

	props    ordered.Map[string, any]
	children []*Node
}

// NewNode returns a node of the given class. An empty name leaves the node
// unnamed. Properties are kept in the order given.
func NewNode(class, name string, props ...Property) *Node {
	n := &Node{Class: class, Name: name}
	n.Update(props...)
	return n
}

// Set stores a property. Setting an existing key replaces its value and
// keeps its position. The value may be any Value, a *Node (written inline),
// a string, a bool, any numeric type, a slice or array of such values, or
// any other value, which is written with fmt.Sprint.
func (n *Node) Set(key string, value any) *Node {
	n.props.Set(key, value)
	return n
}

// Update sets each property in order.
func (n *Node) Update(props ...Property) *Node {
	for _, p := range props {
		n.props.Set(p.Key, p.Value)
	}
	return n
}

// Get returns the value of a property.
func (n *Node) Get(key string) (any, bool) { return n.props.Get(key) }

// Delete removes a property and reports whether it was present.
func (n *Node) Delete(key string) bool { return n.props.Delete(key) }

// Len returns the number of properties.
func (n *Node) Len() int { return n.props.Len() }

// Keys returns the property keys in insertion order.
func (n *Node) Keys() []string { return n.props.Keys() }

// Properties iterates over the properties in insertion order.
func (n *Node) Properties() iter.Seq2[string, any] { return n.props.All() }

// AddChild appends child. A nil child is ignored.
func (n *Node) AddChild(child *Node) *Node {
	if child != nil {
		n.children = append(n.children, child)
	}
	return n
}

// RemoveChild removes the first occurrence of child and reports whether
// it was found.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	return true
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Format returns the serialization of n at the given depth. With wrapRoot
// set, the _class and name fields are left out.
func (n *Node) Format(depth int, wrapRoot bool) string {
	f := newFormatter(defaultOptions())
	f.writeNode(n, max(depth, 0), wrapRoot)
	return f.String()
}

// String returns the serialization of n at depth zero.
func (n *Node) String() string { return n.Format(0, false) }

// ToKV returns a complete document with n bound to key. A nil header means
// DefaultHeader and an empty key means DefaultRootKey.
func (n *Node) ToKV(h *Header, key string) string {
	d := NewDocument(h)
	if key == "" {
		key = DefaultRootKey
	}
	d.AddRoot(key, n)
	return d.Text()
}
