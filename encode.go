package kv3

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Encoder writes documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the text of v to the stream. See Marshal for how v is
// interpreted. Nothing is written if an option is invalid.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	f := newFormatter(o)
	switch x := v.(type) {
	case *Document:
		if x == nil {
			return errors.New("kv3: cannot encode a nil document")
		}
		f.writeDocument(x.header, x.roots.All())
	case *Node:
		h := o.header
		if h == nil {
			h = DefaultHeader()
		}
		key := o.rootKey
		if key == "" {
			key = DefaultRootKey
		}
		f.writeDocument(h, func(yield func(string, *Node) bool) { yield(key, x) })
	default:
		f.writeValue(v)
	}

	if _, err := e.w.Write(f.Bytes()); err != nil {
		return errors.Wrap(err, "kv3: write")
	}
	return nil
}
