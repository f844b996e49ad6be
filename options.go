package kv3

// Escaping selects how string literals are written.
type Escaping int

const (
	// EscapeNewlines writes embedded newlines as the two characters \n.
	EscapeNewlines Escaping = iota
	// EscapeNone writes string contents verbatim between the quotes.
	EscapeNone
)

func (e Escaping) String() string {
	switch e {
	case EscapeNewlines:
		return "newlines"
	case EscapeNone:
		return "none"
	}
	return "unknown"
}

const defaultIndent = 4

type options struct {
	indent   *int
	escaping Escaping
	header   *Header
	rootKey  string
}

// Option configures an Encoder or a call to Marshal.
type Option func(*options) error

// Indent returns an Option that sets the number of spaces written per
// nesting level. The default is 4.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return &ConfigError{Setting: "indent", Value: spaces, Reason: "indent spaces cannot be negative"}
		}
		o.indent = &spaces
		return nil
	}
}

// StringEscaping returns an Option that selects the escaping policy for
// string literals. The default is EscapeNewlines.
func StringEscaping(e Escaping) Option {
	return func(o *options) error {
		if e != EscapeNewlines && e != EscapeNone {
			return &ConfigError{Setting: "string escaping", Value: int(e)}
		}
		o.escaping = e
		return nil
	}
}

// WithHeader returns an Option that sets the header written in front of a
// bare Node. Documents carry their own header and ignore it.
func WithHeader(h *Header) Option {
	return func(o *options) error {
		if h == nil {
			return &ConfigError{Setting: "header", Value: "<nil>"}
		}
		o.header = h
		return nil
	}
}

// RootKey returns an Option that sets the key a bare Node is bound to.
// The default is DefaultRootKey.
func RootKey(key string) Option {
	return func(o *options) error {
		if key == "" {
			return &ConfigError{Setting: "root key", Value: key, Reason: "root key cannot be empty"}
		}
		o.rootKey = key
		return nil
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
