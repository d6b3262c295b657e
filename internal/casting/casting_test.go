package casting

import (
	"math"
	"strings"
	"testing"
	"time"

	. "github.com/chetna1726/attribute-type-casting/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLookupBuiltins(t *testing.T) {
	typ, err := Lookup("integer")
	assert.NoError(t, err)
	assert.Equal(t, Integer{}, typ)

	typ, err = Lookup("big_integer")
	assert.NoError(t, err)
	assert.Equal(t, Integer{}, typ)

	_, err = Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownType)
}

type upcase struct{}

func (upcase) Cast(raw any) (value any, err error) {
	s, err := String{}.Cast(raw)
	if err != nil || s == nil {
		return
	}
	value = strings.ToUpper(s.(string))
	return
}

func TestRegisterReplaces(t *testing.T) {
	err := Register("loud_string", upcase{})
	assert.NoError(t, err)
	typ, err := Lookup("loud_string")
	assert.NoError(t, err)
	assert.Equal(t, upcase{}, typ)

	// a later registration wins, built-in names included
	err = Register("string", upcase{})
	assert.NoError(t, err)
	typ, err = Lookup("string")
	assert.NoError(t, err)
	assert.Equal(t, upcase{}, typ)

	err = Register("string", String{})
	assert.NoError(t, err)
	typ, err = Lookup("string")
	assert.NoError(t, err)
	assert.Equal(t, String{}, typ)

	err = Register("", String{})
	assert.Error(t, err)
	err = Register("nil_type", nil)
	assert.Error(t, err)
}

func TestIntegerCasts(t *testing.T) {
	typ := Integer{}

	value, err := typ.Cast("27.43")
	assert.NoError(t, err)
	assert.Equal(t, int64(27), value)

	value, err = typ.Cast("-27.99")
	assert.NoError(t, err)
	assert.Equal(t, int64(-27), value)

	value, err = typ.Cast("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), value)

	value, err = typ.Cast(7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), value)

	value, err = typ.Cast(27.43)
	assert.NoError(t, err)
	assert.Equal(t, int64(27), value)

	value, err = typ.Cast(true)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), value)

	value, err = typ.Cast(decimal.RequireFromString("99.9"))
	assert.NoError(t, err)
	assert.Equal(t, int64(99), value)

	value, err = typ.Cast(nil)
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = typ.Cast(" ")
	assert.NoError(t, err)
	assert.Nil(t, value)

	// casting is idempotent on canonical values
	value, err = typ.Cast(int64(27))
	assert.NoError(t, err)
	assert.Equal(t, int64(27), value)

	_, err = typ.Cast("soup")
	assert.ErrorIs(t, err, ErrCannotCoerce)

	_, err = typ.Cast(uint64(math.MaxUint64))
	assert.ErrorIs(t, err, ErrCannotCoerce)

	_, err = typ.Cast(math.NaN())
	assert.ErrorIs(t, err, ErrCannotCoerce)

	_, err = typ.Cast([]int{1})
	assert.ErrorIs(t, err, ErrCannotCoerce)
}

func TestStringCasts(t *testing.T) {
	typ := String{}

	value, err := typ.Cast("soup")
	assert.NoError(t, err)
	assert.Equal(t, "soup", value)

	value, err = typ.Cast(true)
	assert.NoError(t, err)
	assert.Equal(t, "t", value)

	value, err = typ.Cast(false)
	assert.NoError(t, err)
	assert.Equal(t, "f", value)

	value, err = typ.Cast([]byte("raw"))
	assert.NoError(t, err)
	assert.Equal(t, "raw", value)

	value, err = typ.Cast(42)
	assert.NoError(t, err)
	assert.Equal(t, "42", value)

	value, err = typ.Cast(nil)
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestFloatCasts(t *testing.T) {
	typ := Float{}

	value, err := typ.Cast("4.25")
	assert.NoError(t, err)
	assert.Equal(t, 4.25, value)

	value, err = typ.Cast(3)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, value)

	value, err = typ.Cast("Infinity")
	assert.NoError(t, err)
	assert.Equal(t, math.Inf(1), value)

	value, err = typ.Cast("-Infinity")
	assert.NoError(t, err)
	assert.Equal(t, math.Inf(-1), value)

	value, err = typ.Cast("NaN")
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(value.(float64)))

	value, err = typ.Cast("")
	assert.NoError(t, err)
	assert.Nil(t, value)

	_, err = typ.Cast("soup")
	assert.ErrorIs(t, err, ErrCannotCoerce)

	_, err = typ.Cast(true)
	assert.ErrorIs(t, err, ErrCannotCoerce)
}

func TestBooleanCasts(t *testing.T) {
	typ := Boolean{}

	for _, falsy := range []any{false, 0, "0", "f", "F", "false", "FALSE", "off", "OFF", 0.0} {
		value, err := typ.Cast(falsy)
		assert.NoError(t, err)
		assert.Equal(t, false, value, "casting %v", falsy)
	}

	for _, truthy := range []any{true, 1, -1, "1", "t", "T", "true", "TRUE", "on", "anything", 0.5} {
		value, err := typ.Cast(truthy)
		assert.NoError(t, err)
		assert.Equal(t, true, value, "casting %v", truthy)
	}

	value, err := typ.Cast("")
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = typ.Cast(nil)
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestBinaryCasts(t *testing.T) {
	typ := Binary{}

	value, err := typ.Cast("raw")
	assert.NoError(t, err)
	assert.Equal(t, []byte("raw"), value)

	value, err = typ.Cast([]byte{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, value)

	_, err = typ.Cast(42)
	assert.ErrorIs(t, err, ErrCannotCoerce)
}

func TestDecimalRoundTrip(t *testing.T) {
	typ := Decimal{}

	value, err := typ.Cast("27.43")
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("27.43").Equal(value.(decimal.Decimal)))

	stored, err := Serialize(typ, value)
	assert.NoError(t, err)
	assert.Equal(t, "27.43", stored)

	restored, err := Deserialize(typ, stored)
	assert.NoError(t, err)
	assert.Equal(t, value, restored)

	value, err = typ.Cast(5)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(value.(decimal.Decimal)))

	_, err = typ.Cast("soup")
	assert.ErrorIs(t, err, ErrCannotCoerce)
}

func TestDateCasts(t *testing.T) {
	typ := Date{}

	value, err := typ.Cast("2023-11-05")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.November, 5, 0, 0, 0, 0, time.UTC), value)

	value, err = typ.Cast(time.Date(2023, time.November, 5, 13, 14, 15, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.November, 5, 0, 0, 0, 0, time.UTC), value)

	// idempotent on canonical values
	revalue, err := typ.Cast(value)
	assert.NoError(t, err)
	assert.Equal(t, value, revalue)

	_, err = typ.Cast("soup")
	assert.ErrorIs(t, err, ErrCannotCoerce)
}

func TestTimeCasts(t *testing.T) {
	typ := Time{}

	value, err := typ.Cast("13:14:15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2000, time.January, 1, 13, 14, 15, 0, time.UTC), value)

	value, err = typ.Cast(time.Date(2023, time.November, 5, 13, 14, 15, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2000, time.January, 1, 13, 14, 15, 0, time.UTC), value)

	revalue, err := typ.Cast(value)
	assert.NoError(t, err)
	assert.Equal(t, value, revalue)
}

func TestDateTimeCasts(t *testing.T) {
	typ := DateTime{}

	value, err := typ.Cast("2023-11-05T13:14:15Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.November, 5, 13, 14, 15, 0, time.UTC), value)

	value, err = typ.Cast("2023-11-05 13:14:15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.November, 5, 13, 14, 15, 0, time.UTC), value)

	value, err = typ.Cast("")
	assert.NoError(t, err)
	assert.Nil(t, value)

	_, err = typ.Cast(42)
	assert.ErrorIs(t, err, ErrCannotCoerce)
}

func TestJSONRoundTrip(t *testing.T) {
	typ := JSON{}

	value, err := typ.Cast(`{"a": 1, "b": [true, null]}`)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1), "b": []any{true, nil}}, value)

	stored, err := Serialize(typ, value)
	assert.NoError(t, err)
	restored, err := Deserialize(typ, stored)
	assert.NoError(t, err)
	assert.Equal(t, value, restored)

	type point struct {
		X int `json:"x"`
	}
	value, err = typ.Cast(point{X: 1})
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"x": float64(1)}, value)

	_, err = typ.Cast("{nope")
	assert.ErrorIs(t, err, ErrCannotCoerce)
}

func TestUUIDRoundTrip(t *testing.T) {
	typ := UUID{}

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	value, err := typ.Cast("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.NoError(t, err)
	assert.Equal(t, id, value)

	value, err = typ.Cast(id[:])
	assert.NoError(t, err)
	assert.Equal(t, id, value)

	stored, err := Serialize(typ, id)
	assert.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", stored)

	restored, err := Deserialize(typ, stored)
	assert.NoError(t, err)
	assert.Equal(t, id, restored)

	_, err = typ.Cast("soup")
	assert.ErrorIs(t, err, ErrCannotCoerce)
}

func TestDispatchFallbacks(t *testing.T) {
	// Integer declares no storage form, so deserializing coerces with Cast
	// and serializing emits the canonical value unchanged.
	value, err := Deserialize(Integer{}, "5")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), value)

	stored, err := Serialize(Integer{}, int64(5))
	assert.NoError(t, err)
	assert.Equal(t, int64(5), stored)

	stored, err = Serialize(Integer{}, nil)
	assert.NoError(t, err)
	assert.Nil(t, stored)
}
