// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package integer interprets fixed-width bit vectors as integers
// under sign-magnitude, ones' complement, and two's complement encodings,
// and implements ripple-carry arithmetic on them.
package integer

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/avdva/bitnum"
	"github.com/avdva/bitnum/internal/mathutil"
)

const groupSize = 8

// Scheme selects how the magnitude of a negative value is recovered from its bits.
type Scheme int

const (
	// SignMagnitude treats the bits after the sign bit as the absolute value.
	SignMagnitude Scheme = iota
	// OnesComplement treats negative values as the bitwise complement of their magnitude.
	OnesComplement
	// TwosComplement treats a negative value v as the pattern of 2^W + v.
	TwosComplement
)

func (s Scheme) String() string {
	switch s {
	case SignMagnitude:
		return "sign-magnitude"
	case OnesComplement:
		return "ones' complement"
	case TwosComplement:
		return "two's complement"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// RangeError is the panic value raised when a decoded number does not fit the requested host type.
// It indicates a programming error: the output type is too narrow for the view.
type RangeError struct {
	Scheme    Scheme
	Magnitude uint64
	Negative  bool
	Type      string
}

func (e *RangeError) Error() string {
	sign := ""
	if e.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s value %s%d overflows %s", e.Scheme, sign, e.Magnitude, e.Type)
}

// Value is a bit vector tagged with an integer encoding.
type Value struct {
	enc  Encoding
	bits bitnum.Bits
}

func fromBits(enc Encoding, b bitnum.Bits) Value {
	return Value{enc: enc, bits: b}
}

// New returns a value for given encoding and bits.
// Returns an error, if the width of b does not match the encoding.
func New(enc Encoding, b bitnum.Bits) (Value, error) {
	if enc.width == 0 {
		return Value{}, fmt.Errorf("bad encoding")
	}
	if b.Len() != enc.width {
		return Value{}, fmt.Errorf("%s needs %d bits, got %d", enc, enc.width, b.Len())
	}
	return fromBits(enc, b), nil
}

// MustNew returns a value for given encoding and bits, and panics on error.
func MustNew(enc Encoding, b bitnum.Bits) Value {
	v, err := New(enc, b)
	if err != nil {
		panic(err)
	}
	return v
}

// From returns a value for a host integer.
// The encoding is chosen by the size and signedness of T, so From(int32(-1)) is an Int32.
func From[T constraints.Integer](v T) Value {
	enc, err := EncodingFor(mathutil.BitSize[T](), mathutil.IsSigned[T]())
	if err != nil {
		panic(err)
	}
	return fromBits(enc, bitnum.FromUint64(uint64(v), enc.width))
}

// FromUint8 returns a UInt8 value.
func FromUint8(v uint8) Value { return fromBits(UInt8, bitnum.FromUint(v)) }

// FromInt8 returns an Int8 value.
func FromInt8(v int8) Value { return fromBits(Int8, bitnum.FromInt(v)) }

// FromUint16 returns a UInt16 value.
func FromUint16(v uint16) Value { return fromBits(UInt16, bitnum.FromUint(v)) }

// FromInt16 returns an Int16 value.
func FromInt16(v int16) Value { return fromBits(Int16, bitnum.FromInt(v)) }

// FromUint32 returns a UInt32 value.
func FromUint32(v uint32) Value { return fromBits(UInt32, bitnum.FromUint(v)) }

// FromInt32 returns an Int32 value.
func FromInt32(v int32) Value { return fromBits(Int32, bitnum.FromInt(v)) }

// FromUint64 returns a UInt64 value.
func FromUint64(v uint64) Value { return fromBits(UInt64, bitnum.FromUint(v)) }

// FromInt64 returns an Int64 value.
func FromInt64(v int64) Value { return fromBits(Int64, bitnum.FromInt(v)) }

// Encoding returns v's encoding.
func (v Value) Encoding() Encoding {
	return v.enc
}

// Bits returns v's bits.
func (v Value) Bits() bitnum.Bits {
	return v.bits
}

// IsNegative returns the sign bit. It is always false for unsigned encodings.
func (v Value) IsNegative() bool {
	return v.enc.signed && v.bits.Bit(signBit)
}

// IsZero returns true, if all the bits are zeros.
func (v Value) IsZero() bool {
	return v.bits.IsZero()
}

// Sign returns -1 if v < 0, 0 if v = 0, 1 if v > 0, using the two's complement rule.
func (v Value) Sign() int {
	if !v.enc.signed {
		if v.IsZero() {
			return 0
		}
		return 1
	}
	return mathutil.Int64Sign(v.TwosComplement())
}

// magnitude sums the place values of the set bits in [start, W).
// The place value of bit i is 2^(W-1-i).
func magnitude(b bitnum.Bits, start int) uint64 {
	w := b.Len()
	var result uint64
	for i := start; i < w; i++ {
		if b.Bit(i) {
			result += 1 << uint(w-1-i)
		}
	}
	return result
}

// decode returns the absolute value of v under s, and whether it is negative.
func (v Value) decode(s Scheme) (mag uint64, neg bool) {
	neg = v.IsNegative()
	start := v.enc.MagnitudeStart()
	switch s {
	case SignMagnitude:
		return magnitude(v.bits, start), neg
	case OnesComplement:
		b := v.bits
		if neg {
			b = b.Not()
		}
		return magnitude(b, start), neg
	case TwosComplement:
		if !neg {
			return magnitude(v.bits, start), false
		}
		// -(m+1), where m is the magnitude of the complemented bits.
		return magnitude(v.bits.Not(), start) + 1, true
	default:
		panic(fmt.Sprintf("unknown scheme %d", int(s)))
	}
}

// Decode interprets v under the scheme s and converts the result to T.
// Panics with a *RangeError, if the result can not be represented by T.
func Decode[T constraints.Integer](v Value, s Scheme) T {
	mag, neg := v.decode(s)
	maxT := mathutil.MaxOf[T]()
	switch {
	case mag == 0:
		return 0
	case neg && mathutil.IsSigned[T]() && mag-1 <= maxT:
		return -T(mag-1) - 1
	case !neg && mag <= maxT:
		return T(mag)
	}
	var zero T
	panic(&RangeError{Scheme: s, Magnitude: mag, Negative: neg, Type: fmt.Sprintf("%T", zero)})
}

// SignMagnitude decodes v as a sign-magnitude number.
// The magnitude is formed by the bits after the sign bit as they are.
func (v Value) SignMagnitude() int64 {
	return Decode[int64](v, SignMagnitude)
}

// OnesComplement decodes v as a ones' complement number.
func (v Value) OnesComplement() int64 {
	return Decode[int64](v, OnesComplement)
}

// TwosComplement decodes v as a two's complement number.
// For unsigned encodings all three schemes yield the same number,
// which may overflow int64 for UInt64 values above math.MaxInt64.
func (v Value) TwosComplement() int64 {
	return Decode[int64](v, TwosComplement)
}

// Int64 is an alias for TwosComplement.
func (v Value) Int64() int64 {
	return v.TwosComplement()
}

// Uint64 returns the value of an unsigned or a non-negative signed view.
// Panics with a *RangeError for negative values.
func (v Value) Uint64() uint64 {
	return Decode[uint64](v, TwosComplement)
}

// String returns the bits, grouped by 8 with commas.
func (v Value) String() string {
	return v.bits.Grouped(groupSize, ',')
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	var n interface{}
	if v.enc.signed {
		n = v.TwosComplement()
	} else {
		n = v.Uint64()
	}
	return v.String() + fmt.Sprintf(" {%v, %v}", v.enc, n)
}
