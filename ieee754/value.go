// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ieee754 decodes bit vectors laid out as IEEE 754 binary floating-point numbers.
// Only the normalized case is recovered by Float64; zeros, subnormals, infinities
// and not-a-numbers are reported by the predicates instead.
package ieee754

import (
	"fmt"
	"math"

	"github.com/avdva/bitnum"
)

const signBit = 0

// Value is a bit vector tagged with a floating-point format.
type Value struct {
	f    Format
	bits bitnum.Bits
}

// New returns a value for given format and bits.
// Returns an error, if the width of b does not match the format.
func New(f Format, b bitnum.Bits) (Value, error) {
	if f.Width() == 1 {
		return Value{}, fmt.Errorf("bad format")
	}
	if b.Len() != f.Width() {
		return Value{}, fmt.Errorf("%s needs %d bits, got %d", f, f.Width(), b.Len())
	}
	return Value{f: f, bits: b}, nil
}

// MustNew returns a value for given format and bits, and panics on error.
func MustNew(f Format, b bitnum.Bits) Value {
	v, err := New(f, b)
	if err != nil {
		panic(err)
	}
	return v
}

// FromFloat32 returns a binary32 value with the bits of f.
func FromFloat32(f float32) Value {
	return Value{f: Binary32, bits: bitnum.FromFloat32(f)}
}

// FromFloat64 returns a binary64 value with the bits of f.
func FromFloat64(f float64) Value {
	return Value{f: Binary64, bits: bitnum.FromFloat64(f)}
}

// FromBinary16 returns a binary16 value for raw half precision bits.
func FromBinary16(raw uint16) Value {
	return Value{f: Binary16, bits: bitnum.FromUint(raw)}
}

// Layout returns v's format.
func (v Value) Layout() Format {
	return v.f
}

// Bits returns v's bits.
func (v Value) Bits() bitnum.Bits {
	return v.bits
}

// Sign returns the sign bit.
func (v Value) Sign() bool {
	return v.bits.Bit(signBit)
}

// ExponentBits returns the exponent field, bits [1, 1+E).
func (v Value) ExponentBits() bitnum.Bits {
	return v.bits.Slice(signBit+1, 1+v.f.expBits)
}

// FractionBits returns the fraction field, bits [1+E, W).
func (v Value) FractionBits() bitnum.Bits {
	return v.bits.Slice(1+v.f.expBits, v.f.Width())
}

// Exponent returns the exponent field as an unsigned number plus the bias.
func (v Value) Exponent() int {
	exp := v.ExponentBits()
	e := v.f.bias
	for i := 0; i < exp.Len(); i++ {
		if exp.Bit(i) {
			e += 1 << uint(exp.Len()-1-i)
		}
	}
	return e
}

// Fraction returns the significand: the implicit 1 plus the sum of 2^-i for every set fraction bit i,
// where the first fraction bit is i = 1.
func (v Value) Fraction() float64 {
	frac := v.FractionBits()
	result := 1.0
	for i := 1; i <= frac.Len(); i++ {
		if frac.Bit(i - 1) {
			result += math.Ldexp(1, -i)
		}
	}
	return result
}

// Float64 returns (-1)^sign * 2^exponent * fraction.
func (v Value) Float64() float64 {
	result := math.Ldexp(v.Fraction(), v.Exponent())
	if v.Sign() {
		return -result
	}
	return result
}

// Float32 returns the same value as Float64 converted to float32.
func (v Value) Float32() float32 {
	return float32(v.Float64())
}

// IsZero returns true, if both exponent and fraction fields are zeros.
func (v Value) IsZero() bool {
	return v.ExponentBits().IsZero() && v.FractionBits().IsZero()
}

// IsNaN returns true, if the exponent field is all ones and the fraction is not zero.
func (v Value) IsNaN() bool {
	return v.ExponentBits().IsOnes() && !v.FractionBits().IsZero()
}

// IsInf returns true, if the exponent field is all ones and the fraction is zero.
func (v Value) IsInf() bool {
	return v.ExponentBits().IsOnes() && v.FractionBits().IsZero()
}

// IsSubnormal returns true, if the exponent field is zero and the fraction is not.
func (v Value) IsSubnormal() bool {
	return v.ExponentBits().IsZero() && !v.FractionBits().IsZero()
}

// IsNormal returns true, if v is none of zero, subnormal, infinity, or NaN.
func (v Value) IsNormal() bool {
	exp := v.ExponentBits()
	return !exp.IsZero() && !exp.IsOnes()
}

// String returns the bits with a space after the sign bit and after the exponent field.
func (v Value) String() string {
	return v.bits.Split(' ', signBit+1, 1+v.f.expBits)
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, %v}", v.f, v.Decimal())
}
