package kv3

import (
	"reflect"
	"strconv"
)

// Value is implemented by the typed literals of the format. The set of
// implementations is closed; other Go values are still accepted as
// property values and are rendered by kind (see Node.Set).
type Value interface {
	// String returns the literal using the default options.
	String() string
	writeKV(f *formatter)
}

// Scalar is a numeric Value usable as a vector component.
type Scalar interface {
	Value
	scalar()
}

// Number is the set of Go numeric types accepted by Num and the vector
// constructors.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Int is a signed integer literal.
type Int int64

// Uint is an unsigned integer literal.
type Uint uint64

// Float is a floating point literal. Integral values keep a trailing ".0".
type Float float64

// Bool is a boolean literal, written as true or false.
type Bool bool

// String is a quoted string literal.
type String string

// Array is a bracketed, comma separated list. Elements may be any value
// accepted as a property value, including nested arrays and nodes.
type Array []any

// Vector2 is a two component vector.
type Vector2 struct{ X, Y Scalar }

// Vector3 is a three component vector.
type Vector3 struct{ X, Y, Z Scalar }

// Vector4 is a four component vector, e.g. an RGBA color or a quaternion.
type Vector4 struct{ X, Y, Z, W Scalar }

// Num returns the Scalar variant matching the kind of n.
func Num[T Number](n T) Scalar {
	rv := reflect.ValueOf(n)
	switch {
	case rv.CanInt():
		return Int(rv.Int())
	case rv.CanUint():
		return Uint(rv.Uint())
	case rv.Kind() == reflect.Float32:
		return Float(float32To64(rv.Float()))
	default:
		return Float(rv.Float())
	}
}

// Vec2 returns a Vector2 with components of any numeric type.
func Vec2[T Number](x, y T) Vector2 { return Vector2{Num(x), Num(y)} }

// Vec3 returns a Vector3 with components of any numeric type.
func Vec3[T Number](x, y, z T) Vector3 { return Vector3{Num(x), Num(y), Num(z)} }

// Vec4 returns a Vector4 with components of any numeric type.
func Vec4[T Number](x, y, z, w T) Vector4 { return Vector4{Num(x), Num(y), Num(z), Num(w)} }

// Arr returns an Array holding values in order.
func Arr(values ...any) Array { return Array(values) }

func (Int) scalar()   {}
func (Uint) scalar()  {}
func (Float) scalar() {}

func (v Int) writeKV(f *formatter)     { f.write(strconv.FormatInt(int64(v), 10)) }
func (v Uint) writeKV(f *formatter)    { f.write(strconv.FormatUint(uint64(v), 10)) }
func (v Float) writeKV(f *formatter)   { f.write(formatFloat(float64(v))) }
func (v Bool) writeKV(f *formatter)    { f.writeBool(bool(v)) }
func (v String) writeKV(f *formatter)  { f.writeString(string(v)) }
func (v Array) writeKV(f *formatter)   { f.writeList(len(v), func(i int) any { return v[i] }) }
func (v Vector2) writeKV(f *formatter) { f.writeList(2, v.component) }
func (v Vector3) writeKV(f *formatter) { f.writeList(3, v.component) }
func (v Vector4) writeKV(f *formatter) { f.writeList(4, v.component) }

func (v Vector2) component(i int) any { return [...]Scalar{v.X, v.Y}[i] }
func (v Vector3) component(i int) any { return [...]Scalar{v.X, v.Y, v.Z}[i] }
func (v Vector4) component(i int) any { return [...]Scalar{v.X, v.Y, v.Z, v.W}[i] }

func (v Int) String() string     { return literal(v) }
func (v Uint) String() string    { return literal(v) }
func (v Float) String() string   { return literal(v) }
func (v Bool) String() string    { return literal(v) }
func (v String) String() string  { return literal(v) }
func (v Array) String() string   { return literal(v) }
func (v Vector2) String() string { return literal(v) }
func (v Vector3) String() string { return literal(v) }
func (v Vector4) String() string { return literal(v) }

func literal(v Value) string {
	f := newFormatter(defaultOptions())
	v.writeKV(f)
	return f.String()
}

// float32To64 widens a float32 without exposing binary noise, so that
// float32(0.1) becomes 0.1 rather than 0.10000000149011612.
func float32To64(f float64) float64 {
	s := strconv.FormatFloat(f, 'g', -1, 32)
	wide, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return f
	}
	return wide
}
