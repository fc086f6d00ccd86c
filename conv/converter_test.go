package conv

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/viant/strparse"
	"math"
	"reflect"
	"strings"
	"testing"
)

type Port uint16

type Flag bool

func TestConverter_Convert(t *testing.T) {
	converter := NewConverter()

	var testCases = []struct {
		description string
		text        *string
		dest        func() interface{}
		expect      interface{}
	}{
		{description: "bool", text: strparse.Text("TRUE"), dest: func() interface{} { return new(bool) }, expect: true},
		{description: "named bool", text: strparse.Text("false"), dest: func() interface{} { return new(Flag) }, expect: Flag(false)},
		{description: "int8", text: strparse.Text("-8"), dest: func() interface{} { return new(int8) }, expect: int8(-8)},
		{description: "int16", text: strparse.Text("300"), dest: func() interface{} { return new(int16) }, expect: int16(300)},
		{description: "int32 sentinel", text: strparse.Text("abc"), dest: func() interface{} { return new(int32) }, expect: int32(-1)},
		{description: "int", text: strparse.Text("123456789012"), dest: func() interface{} { return new(int) }, expect: 123456789012},
		{description: "int64 sentinel", text: strparse.Text(""), dest: func() interface{} { return new(int64) }, expect: int64(math.MinInt64)},
		{description: "byte sentinel", text: strparse.Text("300"), dest: func() interface{} { return new(uint8) }, expect: uint8(0)},
		{description: "named uint16", text: strparse.Text("8080"), dest: func() interface{} { return new(Port) }, expect: Port(8080)},
		{description: "uint32 clamp", text: strparse.Text("-5"), dest: func() interface{} { return new(uint32) }, expect: uint32(math.MaxUint32)},
		{description: "uint", text: strparse.Text("42"), dest: func() interface{} { return new(uint) }, expect: uint(42)},
		{description: "float32", text: strparse.Text("0.5"), dest: func() interface{} { return new(float32) }, expect: float32(0.5)},
		{description: "float64 sentinel", text: strparse.Text("x"), dest: func() interface{} { return new(float64) }, expect: math.SmallestNonzeroFloat64},
		{description: "decimal", text: strparse.Text("3.14"), dest: func() interface{} { return new(decimal.Decimal) }, expect: decimal.RequireFromString("3.14")},
		{description: "pointer", text: strparse.Text("7"), dest: func() interface{} { return new(*int32) }, expect: func() *int32 { v := int32(7); return &v }()},
		{description: "absent pointer", text: nil, dest: func() interface{} { return new(*int32) }, expect: (*int32)(nil)},
	}
	for _, testCase := range testCases {
		dest := testCase.dest()
		err := converter.Convert(testCase.text, dest)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual := reflect.ValueOf(dest).Elem().Interface()
		if expect, ok := testCase.expect.(decimal.Decimal); ok {
			assert.True(t, expect.Equal(actual.(decimal.Decimal)), testCase.description)
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestConverter_ConvertErrors(t *testing.T) {
	converter := NewConverter()
	var i16 int16
	err := converter.Convert(strparse.Text("40000"), &i16)
	assert.True(t, errors.Is(err, strparse.ErrInvalidFormat))

	var u64 uint64
	err = converter.Convert(strparse.Text("-1"), &u64)
	assert.True(t, errors.Is(err, strparse.ErrOverflow))

	var i32 int32
	err = converter.Convert(nil, &i32)
	assert.True(t, errors.Is(err, strparse.ErrInvalidArgument))

	assert.NotNil(t, converter.Convert(strparse.Text("1"), nil))
	assert.NotNil(t, converter.Convert(strparse.Text("1"), i32))
	assert.NotNil(t, converter.Convert(strparse.Text("1"), (*int32)(nil)))

	var s []int
	assert.NotNil(t, converter.Convert(strparse.Text("1"), &s))
	var text string
	assert.NotNil(t, converter.Convert(strparse.Text("1"), &text))
}

func TestConverter_TryMode(t *testing.T) {
	converter := NewConverter(WithMode(ModeTry))
	assert.Equal(t, ModeTry, converter.Options().Mode)

	var i32 int32
	err := converter.Convert(strparse.Text("abc"), &i32)
	assert.True(t, errors.Is(err, strparse.ErrInvalidFormat))
	assert.EqualValues(t, 0, i32)

	err = converter.Convert(nil, &i32)
	assert.True(t, errors.Is(err, strparse.ErrInvalidFormat))

	err = converter.Convert(strparse.Text(" 12 "), &i32)
	assert.Nil(t, err)
	assert.EqualValues(t, 12, i32)
}

func TestConverter_ConvertKind(t *testing.T) {
	converter := NewConverter()

	var r rune
	assert.Nil(t, converter.ConvertKind(strparse.Text("Z"), strparse.KindChar, &r))
	assert.Equal(t, 'Z', r)

	var s string
	assert.Nil(t, converter.ConvertKind(strparse.Text("ab"), strparse.KindChar, &s))
	assert.Equal(t, " ", s)

	var i int64
	assert.Nil(t, converter.ConvertKind(strparse.Text("300"), strparse.KindByte, &i))
	assert.EqualValues(t, 0, i)

	var f float64
	assert.NotNil(t, converter.ConvertKind(strparse.Text("1"), strparse.KindDecimal, &f))
}

func TestConverter_RegisterConversion(t *testing.T) {
	converter := NewConverter()
	type Level string
	converter.RegisterConversion(reflect.TypeOf(Level("")), func(text *string, dest interface{}, opts Options) error {
		if text == nil {
			return strparse.ErrInvalidArgument
		}
		*dest.(*Level) = Level(strings.ToUpper(*text))
		return nil
	})
	assert.True(t, converter.Supports(reflect.TypeOf(Level(""))))
	assert.True(t, converter.Supports(reflect.TypeOf(new(int))))
	assert.False(t, converter.Supports(reflect.TypeOf([]int{})))

	var level Level
	assert.Nil(t, converter.Convert(strparse.Text("debug"), &level))
	assert.Equal(t, Level("DEBUG"), level)
	assert.NotNil(t, converter.Convert(nil, &level))
}

func TestKindOf(t *testing.T) {
	kind, err := KindOf(reflect.TypeOf(decimal.Zero))
	assert.Nil(t, err)
	assert.Equal(t, strparse.KindDecimal, kind)

	kind, err = KindOf(reflect.TypeOf(Port(0)))
	assert.Nil(t, err)
	assert.Equal(t, strparse.KindUShort, kind)

	_, err = KindOf(reflect.TypeOf(""))
	assert.NotNil(t, err)
}
