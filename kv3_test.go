package kv3_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kv3"
)

func noteNode() *kv3.Node {
	return kv3.NewNode("DefineBone", "", kv3.Prop("note", "line one\nline two"))
}

func TestMarshal_Document(t *testing.T) {
	doc := kv3.NewDocument(nil)
	doc.AddRoot("rootNode", kv3.NewNode("RootNode", ""))

	b, err := kv3.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, doc.Text(), string(b))
}

func TestMarshal_BareNode(t *testing.T) {
	t.Run("Defaults match ToKV", func(t *testing.T) {
		n := newBone()
		b, err := kv3.Marshal(n)
		require.NoError(t, err)
		require.Equal(t, n.ToKV(nil, ""), string(b))
	})

	t.Run("Header and root key options", func(t *testing.T) {
		h, err := kv3.NewHeader(kv3.FamilyKV2, kv3.WithFormat("vmdl"))
		require.NoError(t, err)

		b, err := kv3.Marshal(kv3.NewNode("RootNode", ""), kv3.WithHeader(h), kv3.RootKey("model"))
		require.NoError(t, err)
		require.Equal(t, "<!-- kv2 vmdl -->\n{\n    model = {\n        _class = \"RootNode\"\n    }\n}\n", string(b))
	})

	t.Run("Header option is ignored for documents", func(t *testing.T) {
		h, err := kv3.NewHeader(kv3.FamilyKV2)
		require.NoError(t, err)
		doc := kv3.NewDocument(nil)

		b, err := kv3.Marshal(doc, kv3.WithHeader(h))
		require.NoError(t, err)
		require.Equal(t, doc.Text(), string(b))
	})
}

func TestMarshal_StringEscaping(t *testing.T) {
	t.Run("Newlines are escaped by default", func(t *testing.T) {
		b, err := kv3.Marshal(noteNode())
		require.NoError(t, err)
		require.Contains(t, string(b), `note = "line one\nline two"`)
	})

	t.Run("EscapeNone writes newlines verbatim", func(t *testing.T) {
		b, err := kv3.Marshal(noteNode(), kv3.StringEscaping(kv3.EscapeNone))
		require.NoError(t, err)
		require.Contains(t, string(b), "note = \"line one\nline two\"")
	})

	t.Run("Policy applies inside arrays", func(t *testing.T) {
		b, err := kv3.Marshal(kv3.Arr("a\nb", kv3.String("c\nd")), kv3.StringEscaping(kv3.EscapeNone))
		require.NoError(t, err)
		require.Equal(t, "[ \"a\nb\", \"c\nd\" ]", string(b))
	})

	t.Run("Invalid policy", func(t *testing.T) {
		_, err := kv3.Marshal(noteNode(), kv3.StringEscaping(kv3.Escaping(7)))
		require.ErrorIs(t, err, kv3.ErrInvalidConfiguration)
	})
}

func TestMarshal_IndentOption(t *testing.T) {
	n := kv3.NewNode("RootNode", "")
	n.AddChild(kv3.NewNode("ScratchArea", ""))

	t.Run("Default indentation (4 spaces)", func(t *testing.T) {
		b, err := kv3.Marshal(n)
		require.NoError(t, err)
		require.Contains(t, string(b), "\n            {\n                _class = \"ScratchArea\"\n")
	})

	t.Run("Custom indentation with Indent(2)", func(t *testing.T) {
		b, err := kv3.Marshal(n, kv3.Indent(2))
		require.NoError(t, err)
		expected := defaultHeaderLine + "\n{\n" +
			"  rootNode = {\n" +
			"    _class = \"RootNode\"\n" +
			"    children = [\n" +
			"      {\n" +
			"        _class = \"ScratchArea\"\n" +
			"      },\n" +
			"    ]\n" +
			"  }\n" +
			"}\n"
		require.Equal(t, expected, string(b))
	})

	t.Run("Indent(0) keeps line structure", func(t *testing.T) {
		b, err := kv3.Marshal(n, kv3.Indent(0))
		require.NoError(t, err)
		require.Contains(t, string(b), "\nrootNode = {\n_class = \"RootNode\"\n")
	})

	t.Run("Invalid Indent option", func(t *testing.T) {
		_, err := kv3.Marshal(n, kv3.Indent(-1))
		require.Error(t, err)
		require.Contains(t, err.Error(), "indent spaces cannot be negative")
		require.ErrorIs(t, err, kv3.ErrInvalidConfiguration)
	})
}

func TestMarshal_InvalidOptions(t *testing.T) {
	t.Run("Nil header", func(t *testing.T) {
		_, err := kv3.Marshal(kv3.NewNode("RootNode", ""), kv3.WithHeader(nil))
		require.ErrorIs(t, err, kv3.ErrInvalidConfiguration)
	})

	t.Run("Empty root key", func(t *testing.T) {
		_, err := kv3.Marshal(kv3.NewNode("RootNode", ""), kv3.RootKey(""))
		require.ErrorIs(t, err, kv3.ErrInvalidConfiguration)
	})

	t.Run("Nil document", func(t *testing.T) {
		var doc *kv3.Document
		_, err := kv3.Marshal(doc)
		require.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncoder(t *testing.T) {
	t.Run("Writes to the stream", func(t *testing.T) {
		var buf bytes.Buffer
		enc := kv3.NewEncoder(&buf, kv3.Indent(4))
		require.NoError(t, enc.Encode(kv3.Vec3(1.5, 0.0, 0.0)))
		require.Equal(t, "[ 1.5, 0.0, 0.0 ]", buf.String())
	})

	t.Run("Nothing is written on invalid options", func(t *testing.T) {
		var buf bytes.Buffer
		enc := kv3.NewEncoder(&buf, kv3.Indent(-2))
		require.Error(t, enc.Encode(kv3.NewNode("RootNode", "")))
		require.Zero(t, buf.Len())
	})

	t.Run("Write errors are returned", func(t *testing.T) {
		enc := kv3.NewEncoder(failingWriter{})
		err := enc.Encode(kv3.NewDocument(nil))
		require.Error(t, err)
		require.Contains(t, err.Error(), "disk full")
	})
}
