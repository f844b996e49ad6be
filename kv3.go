package kv3

import "bytes"

// Marshal returns the text of v.
//
// A *Document is written in full. A bare *Node is written as a single-root
// document, using the header and root key set by WithHeader and RootKey.
// Any other value is written as a property literal.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
