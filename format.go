package kv3

import (
	"bytes"
	"fmt"
	"iter"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// formatter renders nodes and values into a buffer. Indentation is a
// function of the depth passed down the recursion; the formatter itself
// keeps no position state.
type formatter struct {
	buf    bytes.Buffer
	indent string
	opts   *options
}

func defaultOptions() *options { return &options{} }

// newFormatter returns a formatter configured by opts.
func newFormatter(opts *options) *formatter {
	spaces := defaultIndent
	if opts.indent != nil {
		spaces = *opts.indent
	}
	return &formatter{indent: strings.Repeat(" ", spaces), opts: opts}
}

func (f *formatter) String() string { return f.buf.String() }

func (f *formatter) Bytes() []byte { return f.buf.Bytes() }

func (f *formatter) write(s string) { f.buf.WriteString(s) }

func (f *formatter) tab(depth int) string { return strings.Repeat(f.indent, depth) }

// writeValue writes the literal form of v. Typed values are checked first,
// then nodes, strings, numbers and sequences, in that order; anything else
// goes through fmt.
func (f *formatter) writeValue(v any) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		f.write("null")
		return
	}

	switch x := v.(type) {
	case nil:
		f.write("null")
		return
	case Value:
		x.writeKV(f)
		return
	case *Node:
		// Nodes used as values are written inline at depth zero.
		f.writeBraces(x, 0, false)
		return
	case string:
		f.writeString(x)
		return
	case bool:
		f.writeBool(x)
		return
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		f.writeString(rv.String())
	case rv.CanInt():
		Int(rv.Int()).writeKV(f)
	case rv.CanUint():
		Uint(rv.Uint()).writeKV(f)
	case rv.Kind() == reflect.Float32:
		Float(float32To64(rv.Float())).writeKV(f)
	case rv.Kind() == reflect.Float64:
		Float(rv.Float()).writeKV(f)
	case rv.Kind() == reflect.Bool:
		f.writeBool(rv.Bool())
	case rv.Kind() == reflect.Slice, rv.Kind() == reflect.Array:
		f.writeList(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case rv.Kind() == reflect.Pointer:
		if rv.IsNil() {
			f.write("null")
			return
		}
		f.writeValue(rv.Elem().Interface())
	default:
		f.write(fmt.Sprint(v))
	}
}

func (f *formatter) writeList(n int, at func(i int) any) {
	f.write("[ ")
	for i := 0; i < n; i++ {
		if i > 0 {
			f.write(", ")
		}
		f.writeValue(at(i))
	}
	f.write(" ]")
}

func (f *formatter) writeString(s string) {
	if f.opts.escaping == EscapeNewlines {
		s = strings.ReplaceAll(s, "\n", `\n`)
	}
	f.write(`"` + s + `"`)
}

func (f *formatter) writeBool(b bool) {
	if b {
		f.write("true")
	} else {
		f.write("false")
	}
}

// writeNode writes n starting on a fresh line at the given depth.
func (f *formatter) writeNode(n *Node, depth int, wrapRoot bool) {
	f.write(f.tab(depth))
	f.writeBraces(n, depth, wrapRoot)
}

// writeBraces writes n from its opening brace, which is assumed to already
// sit at the right column. The closing brace is not followed by a newline.
func (f *formatter) writeBraces(n *Node, depth int, wrapRoot bool) {
	if n == nil {
		f.write("null")
		return
	}
	tab := f.tab(depth)
	inner := tab + f.indent

	f.write("{\n")
	if !wrapRoot {
		f.write(inner + `_class = "` + n.Class + "\"\n")
		if n.Name != "" {
			f.write(inner + `name = "` + n.Name + "\"\n")
		}
	}

	for key, value := range n.props.All() {
		f.write(inner + key + " = ")
		f.writeValue(value)
		f.write("\n")
	}

	if len(n.children) > 0 {
		f.write(inner + "children = [\n")
		for _, c := range n.children {
			f.writeNode(c, depth+2, false)
			f.write(",\n")
		}
		f.write(inner + "]\n")
	}

	f.write(tab + "}")
}

// writeDocument writes the header line followed by one brace block binding
// every root key to its node.
func (f *formatter) writeDocument(h *Header, roots iter.Seq2[string, *Node]) {
	if h == nil {
		h = DefaultHeader()
	}
	f.write(h.String() + "\n{\n")
	for key, n := range roots {
		f.write(f.indent + key + " = ")
		f.writeBraces(n, 1, false)
		f.write("\n")
	}
	f.write("}\n")
}

// formatFloat mirrors the shortest round-trip representation used by the
// tools that consume this format: integral values keep ".0" and very large
// or very small magnitudes switch to exponent form.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && v != 0 && (exp < -4 || exp >= 16) {
		return e
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
