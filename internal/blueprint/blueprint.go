// Package blueprint builds kv3 documents from YAML descriptions.
//
// A blueprint has an optional header section and a mapping of root keys to
// nodes:
//
//	header:
//	  family: kv3
//	  format: modeldoc28
//	roots:
//	  rootNode:
//	    _class: RootNode
//	    model_archetype: ""
//	    children:
//	      - _class: ScratchArea
//
// In a node mapping, _class, name and children are reserved; every other
// key becomes a property in the order written. Scalars keep their YAML
// type, sequences become arrays and mappings that declare _class become
// inline nodes.
package blueprint

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"

	"github.com/KimNorgaard/go-kv3"
)

const (
	classKey    = "_class"
	nameKey     = "name"
	childrenKey = "children"
)

// Blueprint is a parsed description of one document.
type Blueprint struct {
	Header HeaderSpec    `yaml:"header"`
	Roots  yaml.MapSlice `yaml:"roots"`
}

// Load reads a blueprint from r.
func Load(r io.Reader) (*Blueprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read blueprint")
	}
	return Parse(data)
}

// Parse decodes a blueprint. Unknown top-level sections are rejected.
func Parse(data []byte) (*Blueprint, error) {
	var b Blueprint
	if err := yaml.UnmarshalWithOptions(data, &b, yaml.UseOrderedMap(), yaml.Strict()); err != nil {
		return nil, errors.Wrap(err, "decode blueprint")
	}
	return &b, nil
}

// Document builds the described document. Header fields set in the
// blueprint take precedence over base.
func (b *Blueprint) Document(base HeaderSpec) (*kv3.Document, error) {
	h, err := base.Merge(b.Header).Build()
	if err != nil {
		return nil, err
	}

	doc := kv3.NewDocument(h)
	for _, item := range b.Roots {
		key, ok := item.Key.(string)
		if !ok {
			return nil, errors.Newf("roots: key %v must be a string", item.Key)
		}
		m, ok := item.Value.(yaml.MapSlice)
		if !ok {
			return nil, errors.Newf("roots.%s: expected a node mapping, got %T", key, item.Value)
		}
		n, err := node("roots."+key, m)
		if err != nil {
			return nil, err
		}
		doc.AddRoot(key, n)
	}
	return doc, nil
}

func node(path string, m yaml.MapSlice) (*kv3.Node, error) {
	var (
		class, name string
		hasClass    bool
		props       []kv3.Property
		children    []*kv3.Node
	)

	for _, item := range m {
		key, ok := item.Key.(string)
		if !ok {
			return nil, errors.Newf("%s: key %v must be a string", path, item.Key)
		}
		at := path + "." + key

		switch key {
		case classKey:
			if class, ok = item.Value.(string); !ok {
				return nil, errors.Newf("%s: expected a string, got %T", at, item.Value)
			}
			hasClass = true
		case nameKey:
			if name, ok = item.Value.(string); !ok {
				return nil, errors.Newf("%s: expected a string, got %T", at, item.Value)
			}
		case childrenKey:
			list, ok := item.Value.([]any)
			if !ok {
				return nil, errors.Newf("%s: expected a sequence of nodes, got %T", at, item.Value)
			}
			for i, c := range list {
				cm, ok := c.(yaml.MapSlice)
				if !ok {
					return nil, errors.Newf("%s[%d]: expected a node mapping, got %T", at, i, c)
				}
				child, err := node(fmt.Sprintf("%s[%d]", at, i), cm)
				if err != nil {
					return nil, err
				}
				children = append(children, child)
			}
		default:
			v, err := value(at, item.Value)
			if err != nil {
				return nil, err
			}
			props = append(props, kv3.Prop(key, v))
		}
	}

	if !hasClass {
		return nil, errors.Newf("%s: missing %s", path, classKey)
	}

	n := kv3.NewNode(class, name, props...)
	for _, c := range children {
		n.AddChild(c)
	}
	return n, nil
}

func value(path string, v any) (any, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		return node(path, x)
	case []any:
		arr := make(kv3.Array, len(x))
		for i, e := range x {
			ev, err := value(fmt.Sprintf("%s[%d]", path, i), e)
			if err != nil {
				return nil, err
			}
			arr[i] = ev
		}
		return arr, nil
	default:
		return v, nil
	}
}
