// Package number provides Number, a single float64 that converts to and from
// every native Go numeric type.
//
// All conversions go through the float64 representation. Integers with a
// magnitude above 2^53 cannot be represented exactly and silently lose
// precision. Conversions to integer types truncate toward zero; converting a
// value that is out of range for the target type yields an
// implementation-specific result and must not be relied upon.
package number

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Real is the set of types a Number can be built from and converted to.
type Real interface {
	constraints.Integer | constraints.Float
}

// Number is a numeric value stored as a float64. The zero value is 0.
type Number float64

// New creates a Number holding the given float64.
func New(value float64) Number {
	return Number(value)
}

// FromInt creates a Number from a signed integer. The result is exact for
// |value| <= 2^53.
func FromInt(value int64) Number {
	return Number(float64(value))
}

// FromUint creates a Number from an unsigned integer. The result is exact for
// value <= 2^53.
func FromUint(value uint64) Number {
	return Number(float64(value))
}

// FromFloat32 creates a Number from a float32. Widening is always exact.
func FromFloat32(value float32) Number {
	return Number(float64(value))
}

// Of creates a Number from any integer or floating point value.
func Of[T Real](value T) Number {
	return Number(float64(value))
}

// To converts n to T with the same semantics as the named conversion
// methods.
func To[T Real](n Number) T {
	return T(float64(n))
}

// Set replaces the stored value.
func (n *Number) Set(value float64) { *n = Number(value) }

// SetInt replaces the stored value with a signed integer.
func (n *Number) SetInt(value int64) { *n = FromInt(value) }

// SetUint replaces the stored value with an unsigned integer.
func (n *Number) SetUint(value uint64) { *n = FromUint(value) }

func (n Number) Float64() float64 { return float64(n) }
func (n Number) Float32() float32 { return float32(n) }

func (n Number) Int() int     { return int(n) }
func (n Number) Int8() int8   { return int8(n) }
func (n Number) Int16() int16 { return int16(n) }
func (n Number) Int32() int32 { return int32(n) }
func (n Number) Int64() int64 { return int64(n) }

func (n Number) Uint() uint     { return uint(n) }
func (n Number) Uint8() uint8   { return uint8(n) }
func (n Number) Uint16() uint16 { return uint16(n) }
func (n Number) Uint32() uint32 { return uint32(n) }
func (n Number) Uint64() uint64 { return uint64(n) }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}
