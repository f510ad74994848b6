// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"math"
	"reflect"
	"testing"

	"cogentcore.org/rtti/enums"
	"github.com/stretchr/testify/assert"
)

func roundTrip[T any](t *testing.T, values ...T) {
	t.Helper()
	c := For[T]()
	for _, v := range values {
		s := c.ToString(v)
		assert.True(t, c.Equal(v, c.FromString(s)), "%s: %v -> %q", c.TypeName(), v, s)
	}
}

func TestRoundTrip(t *testing.T) {
	roundTrip(t, true, false)
	roundTrip(t, "", "hello world", `a "quoted" | value`)
	roundTrip(t, 0, 1, -1, math.MaxInt, math.MinInt)
	roundTrip[int8](t, 0, 127, -128)
	roundTrip[int16](t, 0, 32767, -32768)
	roundTrip[int32](t, 0, math.MaxInt32, math.MinInt32)
	roundTrip[int64](t, 0, math.MaxInt64, math.MinInt64)
	roundTrip[uint](t, 0, math.MaxUint)
	roundTrip[uint8](t, 0, 255)
	roundTrip[uint16](t, 0, 65535)
	roundTrip[uint32](t, 0, math.MaxUint32)
	roundTrip[uint64](t, 0, math.MaxUint64)
	roundTrip[uintptr](t, 0, 0xdeadbeef)
	roundTrip[float32](t, 0, 0.1, -3.4028235e38, math.SmallestNonzeroFloat32, float32(math.Inf(1)), float32(math.NaN()))
	roundTrip[float64](t, 0, 0.1, math.Pi, math.MaxFloat64, -math.SmallestNonzeroFloat64, math.Inf(-1), math.NaN())
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "int32", For[int32]().TypeName())
	assert.Equal(t, TypeInt32, For[int32]().TypeID())
	assert.Equal(t, "float64", NameOf(reflect.TypeFor[float64]()))
	assert.Equal(t, "string", NameOf(reflect.TypeFor[string]()))
	assert.Equal(t, "void", NameOf(reflect.TypeFor[Void]()))
	assert.Equal(t, TypeVoid, For[Void]().TypeID())
}

func TestTruncation(t *testing.T) {
	i64 := For[int64]()
	assert.Equal(t, int8(0x34), ToInt8(i64, 0x1234))
	assert.Equal(t, int8(-1), ToInt8(i64, 255))
	assert.Equal(t, uint8(255), ToUint8(i64, -1))
	assert.Equal(t, uint16(0xffff), ToUint16(i64, -1))
	assert.Equal(t, int32(-2147483648), ToInt32(i64, 2147483648))

	i8 := For[int8]()
	assert.Equal(t, int8(44), FromInt32(i8, 300))
	assert.Equal(t, int8(-1), FromUint8(i8, 255))
	assert.Equal(t, int8(0), i8.FromString("256"))
	assert.Equal(t, int8(-128), i8.FromString("128"))

	u8 := For[uint8]()
	assert.Equal(t, uint8(255), u8.FromString("-1"))
	assert.Equal(t, uint8(255), u8.FromInt64(-1))
}

func TestFloatToInt(t *testing.T) {
	i32 := For[int32]()
	assert.Equal(t, int32(0), i32.FromFloat64(math.NaN()))
	assert.Equal(t, int32(3), i32.FromFloat64(3.9))
	assert.Equal(t, int32(-3), i32.FromFloat64(-3.9))
	assert.Equal(t, int32(-1), i32.FromFloat64(1e30))

	i64 := For[int64]()
	assert.Equal(t, int64(math.MaxInt64), i64.FromFloat64(1e30))
	assert.Equal(t, int64(math.MinInt64), i64.FromFloat64(-1e30))
	assert.Equal(t, int64(math.MaxInt64), i64.FromFloat32(float32(math.Inf(1))))

	u64 := For[uint64]()
	assert.Equal(t, uint64(math.MaxUint64), u64.FromFloat64(1e30))
	assert.Equal(t, uint64(0), u64.FromFloat64(math.NaN()))

	f := For[float64]()
	assert.Equal(t, int64(0), f.ToInt64(math.NaN()))
	assert.Equal(t, int64(2), f.ToInt64(2.5))
}

func TestBool(t *testing.T) {
	b := For[bool]()
	assert.Equal(t, "true", b.ToString(true))
	assert.Equal(t, "false", b.ToString(false))
	assert.True(t, b.FromString("true"))
	assert.True(t, b.FromString("1"))
	assert.True(t, b.FromString("T"))
	assert.True(t, b.FromString("42"))
	assert.True(t, b.FromString("0x10"))
	assert.False(t, b.FromString("0"))
	assert.False(t, b.FromString("no"))
	assert.False(t, b.FromString(""))
	assert.True(t, b.FromFloat64(0.5))
	assert.False(t, b.FromFloat64(0))

	f := For[float32]()
	assert.True(t, f.ToBool(0.001))
	assert.False(t, f.ToBool(0))
}

func TestParse(t *testing.T) {
	i := For[int]()
	assert.Equal(t, 16, i.FromString("0x10"))
	assert.Equal(t, 5, i.FromString("0b101"))
	assert.Equal(t, 1000, i.FromString("1e3"))
	assert.Equal(t, 42, i.FromString(" 42 "))
	assert.Equal(t, 0, i.FromString("forty-two"))

	s := For[string]()
	assert.Equal(t, int64(-7), s.ToInt64("-7"))
	assert.Equal(t, "0.1", s.FromFloat32(0.1))
	assert.Equal(t, float32(0.1), s.ToFloat32("0.1"))
	assert.Equal(t, "true", s.FromBool(true))

	f32 := For[float32]()
	assert.Equal(t, "0.1", f32.ToString(0.1))
	assert.Equal(t, float32(0), f32.FromString("abc"))
}

type lightKind uint8

type fogMode int16

type meters float32

func lightKinds() *enums.Table[lightKind] {
	return enums.NewTable[lightKind]().
		Add("Point", 0, "").
		Add("Spot", 1, "").
		Add("Cone", 1, "alias").
		Add("Directional", 2, "")
}

func TestEnum(t *testing.T) {
	c := Enum("LightKind", lightKinds())
	assert.Equal(t, TypeEnum, c.TypeID())
	assert.Equal(t, "LightKind", c.TypeName())
	assert.Equal(t, "Spot", c.ToString(1))
	assert.Equal(t, "9", c.ToString(9))
	assert.Equal(t, lightKind(1), c.FromString("Cone"))
	assert.Equal(t, lightKind(2), c.FromString("Directional"))
	assert.Equal(t, lightKind(7), c.FromString("7"))
	assert.Equal(t, lightKind(0), c.FromString("Area"))

	neg := Enum("FogMode", enums.NewTable[fogMode]().Add("Off", 0, ""))
	assert.Equal(t, "-2", neg.ToString(-2))
	assert.Equal(t, fogMode(-2), neg.FromString("-2"))
}

type lightFlags uint32

func TestFlag(t *testing.T) {
	tb := enums.NewTable[lightFlags]().
		Add("None", 0, "").
		Add("Shadows", 1, "").
		Add("Volumetric", 2, "").
		Add("Fog", 2, "alias").
		Add("Flicker", 4, "")
	c := Flag("LightFlags", tb)
	assert.Equal(t, TypeFlag, c.TypeID())
	assert.Equal(t, "None", c.ToString(0))
	assert.Equal(t, "Shadows|Volumetric", c.ToString(3))
	assert.Equal(t, "Volumetric|Flicker|8", c.ToString(14))
	assert.Equal(t, lightFlags(7), c.FromString("Shadows | Fog|Flicker"))
	assert.Equal(t, lightFlags(9), c.FromString("Shadows|8"))
	assert.Equal(t, lightFlags(0), c.FromString(""))

	noZero := Flag("Bits", enums.NewTable[lightFlags]().Add("A", 1, ""))
	assert.Equal(t, "0", noZero.ToString(0))
	for _, v := range []lightFlags{0, 1, 2, 3, 6, 15} {
		assert.Equal(t, v, c.FromString(c.ToString(v)))
	}
}

func TestDerived(t *testing.T) {
	m := For[meters]()
	assert.Equal(t, TypeFloat32, m.TypeID())
	assert.Equal(t, "conv.meters", m.TypeName())
	assert.Equal(t, "1.5", m.ToString(1.5))
	assert.Equal(t, meters(2.25), m.FromString("2.25"))
	assert.Equal(t, int64(2), m.ToInt64(2.9))
	assert.Equal(t, meters(3), m.FromInt64(3))
	assert.Equal(t, int8(2), ToInt8(m, 2.9))

	id := For[TypeID]()
	assert.Equal(t, TypeEnum, id.TypeID())
	assert.Equal(t, "conv.TypeID", id.TypeName())
	assert.Equal(t, "Int32", id.ToString(TypeInt32))
	assert.Equal(t, TypeFloat64, id.FromString("Float64"))
	assert.Equal(t, TypeString, id.FromString("16"))
	assert.Equal(t, int64(TypeObject), id.ToInt64(TypeObject))
}

func TestInvalid(t *testing.T) {
	c := For[chan int]()
	assert.Equal(t, TypeInvalid, c.TypeID())
	assert.Equal(t, "", c.ToString(make(chan int)))
	assert.Nil(t, c.FromString("x"))
	assert.Equal(t, int64(0), c.ToInt64(nil))
}

type named interface {
	Name() string
}

type namedThing struct{ name string }

func (n *namedThing) Name() string { return n.name }

type namedType struct {
	Type[named]
}

var things = map[string]*namedThing{"lamp": {name: "lamp"}}

func (namedType) TypeID() TypeID   { return TypeObject }
func (namedType) TypeName() string { return "Named" }
func (namedType) ToString(v named) string {
	if v == nil {
		return ""
	}
	return v.Name()
}
func (namedType) FromString(s string) named {
	if th, ok := things[s]; ok {
		return th
	}
	return nil
}
func (namedType) Equal(a, b named) bool { return a == b }

func TestInterface(t *testing.T) {
	RegisterInterface[named](namedType{})
	c := For[*namedThing]()
	assert.Equal(t, TypeObject, c.TypeID())
	assert.Equal(t, "Named", c.TypeName())
	assert.Equal(t, "Named", NameOf(reflect.TypeFor[named]()))
	assert.Equal(t, "lamp", c.ToString(things["lamp"]))
	assert.Same(t, things["lamp"], c.FromString("lamp"))
	assert.Nil(t, c.FromString("desk"))
}

func TestTypeIDEnum(t *testing.T) {
	var id TypeID
	assert.NoError(t, id.SetString("Flag"))
	assert.Equal(t, TypeFlag, id)
	assert.Error(t, id.SetString("flag"))
	assert.Equal(t, "Object", TypeObject.String())
	assert.Len(t, TypeIDValues(), int(TypeIDN))
	assert.True(t, TypeUint8.IsNumeric())
	assert.False(t, TypeString.IsNumeric())
}
