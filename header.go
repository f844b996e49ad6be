package kv3

import "fmt"

// Family identifies the header template.
type Family string

const (
	// FamilyKV3 is the current header family.
	FamilyKV3 Family = "kv3"
	// FamilyKV2 is the legacy header family. It only carries the format name.
	FamilyKV2 Family = "kv2"
)

// Header defaults. The GUIDs are part of the format contract and are
// written byte for byte.
const (
	DefaultEncoding        = "text"
	DefaultEncodingVersion = "{e21c7f3c-8a33-41c5-9977-a76d3a32aa0d}"
	DefaultFormat          = "modeldoc28"
	DefaultFormatVersion   = "{fb63b6ca-f435-4aa0-a2c7-c66ddc651dca}"
	DefaultRootKey         = "rootNode"
)

// ParseFamily returns the Family for a header tag.
func ParseFamily(tag string) (Family, error) {
	switch f := Family(tag); f {
	case FamilyKV3, FamilyKV2:
		return f, nil
	}
	return "", &ConfigError{Setting: "format family", Value: tag, Reason: "must be kv2 or kv3"}
}

// Header is the comment line that opens every document. Build one with
// NewHeader or DefaultHeader; the zero value renders as DefaultHeader.
type Header struct {
	family          Family
	encoding        string
	encodingVersion string
	format          string
	formatVersion   string
}

// HeaderOption overrides a Header field.
type HeaderOption func(*Header)

// WithEncoding sets the encoding name.
func WithEncoding(name string) HeaderOption {
	return func(h *Header) { h.encoding = name }
}

// WithEncodingVersion sets the encoding version GUID. An empty id keeps
// DefaultEncodingVersion.
func WithEncodingVersion(id string) HeaderOption {
	return func(h *Header) {
		if id != "" {
			h.encodingVersion = id
		}
	}
}

// WithFormat sets the format name.
func WithFormat(name string) HeaderOption {
	return func(h *Header) { h.format = name }
}

// WithFormatVersion sets the format version GUID. An empty id keeps
// DefaultFormatVersion.
func WithFormatVersion(id string) HeaderOption {
	return func(h *Header) {
		if id != "" {
			h.formatVersion = id
		}
	}
}

// NewHeader returns a header of the given family. It fails with an error
// matching ErrInvalidConfiguration when family is not FamilyKV3 or FamilyKV2.
func NewHeader(family Family, opts ...HeaderOption) (*Header, error) {
	if _, err := ParseFamily(string(family)); err != nil {
		return nil, err
	}
	h := &Header{
		family:          family,
		encoding:        DefaultEncoding,
		encodingVersion: DefaultEncodingVersion,
		format:          DefaultFormat,
		formatVersion:   DefaultFormatVersion,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// DefaultHeader returns the kv3 header for modeldoc28 documents.
func DefaultHeader() *Header {
	h, _ := NewHeader(FamilyKV3)
	return h
}

// Family returns the format family.
func (h *Header) Family() Family { return h.family }

// Encoding returns the encoding name.
func (h *Header) Encoding() string { return h.encoding }

// EncodingVersion returns the encoding version GUID.
func (h *Header) EncodingVersion() string { return h.encodingVersion }

// Format returns the format name.
func (h *Header) Format() string { return h.format }

// FormatVersion returns the format version GUID.
func (h *Header) FormatVersion() string { return h.formatVersion }

// String renders the header comment without a trailing newline. A nil or
// zero Header renders as DefaultHeader.
func (h *Header) String() string {
	if h == nil || *h == (Header{}) {
		h = DefaultHeader()
	}
	if h.family == FamilyKV2 {
		return fmt.Sprintf("<!-- kv2 %s -->", h.format)
	}
	return fmt.Sprintf("<!-- kv3 encoding:%s:version%s format:%s:version%s -->",
		h.encoding, h.encodingVersion, h.format, h.formatVersion)
}
