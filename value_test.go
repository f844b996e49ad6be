package kv3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kv3"
)

type kind string

type point struct{ X, Y int }

func TestValue_Literals(t *testing.T) {
	testCases := []struct {
		name     string
		value    kv3.Value
		expected string
	}{
		{"Vector2", kv3.Vec2(1, 2), "[ 1, 2 ]"},
		{"Vector3 of ints", kv3.Vec3(15, 0, 0), "[ 15, 0, 0 ]"},
		{"Vector3 of floats", kv3.Vec3(15.0, 0.0, 0.0), "[ 15.0, 0.0, 0.0 ]"},
		{"Vector4", kv3.Vec4(0.0, 0.5, 1.0, -0.25), "[ 0.0, 0.5, 1.0, -0.25 ]"},
		{"Vector3 of float32", kv3.Vec3[float32](0.1, 0.2, 1), "[ 0.1, 0.2, 1.0 ]"},
		{"Vector2 of uint8", kv3.Vec2[uint8](255, 0), "[ 255, 0 ]"},
		{"Vector with nil component", kv3.Vector2{X: kv3.Int(1)}, "[ 1, null ]"},
		{"Bool false", kv3.Bool(false), "false"},
		{"Bool true", kv3.Bool(true), "true"},
		{"Int", kv3.Int(-42), "-42"},
		{"Uint", kv3.Uint(math.MaxUint64), "18446744073709551615"},
		{"Float integral", kv3.Float(1100), "1100.0"},
		{"Float fraction", kv3.Float(0.301973), "0.301973"},
		{"Float small", kv3.Float(0.0001), "0.0001"},
		{"Float tiny", kv3.Float(0.00001), "1e-05"},
		{"Float large", kv3.Float(1e15), "1000000000000000.0"},
		{"Float huge", kv3.Float(1e16), "1e+16"},
		{"Float shortest digits", kv3.Float(1.0 / 3), "0.3333333333333333"},
		{"Float negative zero", kv3.Float(math.Copysign(0, -1)), "-0.0"},
		{"Float inf", kv3.Float(math.Inf(1)), "inf"},
		{"Float nan", kv3.Float(math.NaN()), "nan"},
		{"String", kv3.String("head_0"), `"head_0"`},
		{"String with newline", kv3.String("a\nb"), `"a\nb"`},
		{"String with quote is not escaped", kv3.String(`say "hi"`), `"say "hi""`},
		{"String with tab is not escaped", kv3.String("a\tb"), "\"a\tb\""},
		{"Empty array", kv3.Arr(), "[  ]"},
		{"Mixed array", kv3.Arr(1, 2.5, "x", true, nil), `[ 1, 2.5, "x", true, null ]`},
		{"Nested arrays", kv3.Arr(kv3.Arr(50.28, 1.0, 0), kv3.Arr(kv3.Vec2(1, 2))), "[ [ 50.28, 1.0, 0 ], [ [ 1, 2 ] ] ]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.value.String())
		})
	}
}

func TestValue_PlainGoValues(t *testing.T) {
	f := 3.5
	var nilPtr *float64
	var nilVec *kv3.Vector3
	var nilStr *kv3.String

	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "null"},
		{"string", "text", `"text"`},
		{"string with newline", "a\nb", `"a\nb"`},
		{"named string", kind("bone"), `"bone"`},
		{"bool", false, "false"},
		{"int", 7, "7"},
		{"int8", int8(-8), "-8"},
		{"uint32", uint32(9), "9"},
		{"float64 integral", 2.0, "2.0"},
		{"float32", float32(0.1), "0.1"},
		{"slice", []int{1, 2, 3}, "[ 1, 2, 3 ]"},
		{"byte slice", []byte{1, 2}, "[ 1, 2 ]"},
		{"array", [2]string{"a", "b"}, `[ "a", "b" ]`},
		{"nested any slice", []any{[]any{1, "x"}, kv3.Bool(true)}, `[ [ 1, "x" ], true ]`},
		{"pointer", &f, "3.5"},
		{"nil pointer", nilPtr, "null"},
		{"nil vector pointer", nilVec, "null"},
		{"nil string pointer", nilStr, "null"},
		{"vector pointer", &kv3.Vector3{X: kv3.Int(1), Y: kv3.Int(2), Z: kv3.Int(3)}, "[ 1, 2, 3 ]"},
		{"struct falls back to fmt", point{X: 1, Y: 2}, "{1 2}"},
		{"map falls back to fmt", map[string]int{"a": 1}, "map[a:1]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := kv3.Marshal(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.expected, string(b))
		})
	}
}

func TestValue_NodeReference(t *testing.T) {
	inline := kv3.NewNode("C_OP_Decay", "", kv3.Prop("m_flRate", 1))

	t.Run("Node as value is written at depth zero", func(t *testing.T) {
		b, err := kv3.Marshal(kv3.Arr(inline))
		require.NoError(t, err)
		require.Equal(t, "[ {\n    _class = \"C_OP_Decay\"\n    m_flRate = 1\n} ]", string(b))
	})

	t.Run("Node property", func(t *testing.T) {
		n := kv3.NewNode("Parent", "", kv3.Prop("op", inline))
		expected := "{\n" +
			"    _class = \"Parent\"\n" +
			"    op = {\n" +
			"    _class = \"C_OP_Decay\"\n" +
			"    m_flRate = 1\n" +
			"}\n" +
			"}"
		require.Equal(t, expected, n.String())
	})

	t.Run("Nil node", func(t *testing.T) {
		var n *kv3.Node
		b, err := kv3.Marshal(kv3.Arr(n))
		require.NoError(t, err)
		require.Equal(t, "[ null ]", string(b))
	})
}
