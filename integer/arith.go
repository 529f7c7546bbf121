// Copyright 2020 Aleksandr Demakin. All rights reserved.

package integer

import (
	"errors"
	"fmt"

	"github.com/avdva/bitnum"
	"github.com/avdva/bitnum/internal/mathutil"
)

// ErrOverflow is returned by arithmetic operations, if the result does not fit the encoding.
var ErrOverflow = errors.New("integer overflow")

// ripple adds a and b with a chain of full adders, starting at the least significant bit.
// It returns the sum, the carry into the most significant bit, and the carry out of it.
func ripple(a, b bitnum.Bits, carry bool) (sum bitnum.Bits, carryIn, carryOut bool) {
	w := a.Len()
	cells := make([]bool, w)
	for i := w - 1; i >= 0; i-- {
		if i == 0 {
			carryIn = carry
		}
		x, y := a.Bit(i), b.Bit(i)
		cells[i] = (x != y) != carry
		carry = x && y || y && carry || x && carry
	}
	return bitnum.FromBools(cells...), carryIn, carry
}

func (v Value) mustMatch(other Value) {
	if v.enc != other.enc {
		panic(fmt.Sprintf("encoding mismatch: %v and %v", v.enc, other.enc))
	}
}

// overflowed applies the overflow rule of v's encoding to the carries of the most significant bit.
func (v Value) overflowed(carryIn, carryOut bool) bool {
	if v.enc.signed {
		return carryIn != carryOut
	}
	return carryOut
}

// Add returns v + other.
// Returns ErrOverflow, if the sum does not fit the encoding:
// for unsigned values it is the carry out of the most significant bit,
// for signed ones the carry into the sign bit differs from the carry out of it.
// Panics, if the encodings differ.
func (v Value) Add(other Value) (Value, error) {
	v.mustMatch(other)
	sum, carryIn, carryOut := ripple(v.bits, other.bits, false)
	if v.overflowed(carryIn, carryOut) {
		return Value{}, ErrOverflow
	}
	return fromBits(v.enc, sum), nil
}

// Neg returns the two's complement negation of v: all bits inverted, plus one.
// The minimum signed value is its own negation, and for unsigned values the result is 2^W - v.
func (v Value) Neg() Value {
	cells := v.bits.Not().Bools()
	carry := true
	for i := len(cells) - 1; i >= 0 && carry; i-- {
		cells[i], carry = !cells[i], cells[i]
	}
	return fromBits(v.enc, bitnum.FromBools(cells...))
}

// Sub returns v - other, computed as v + Neg(other).
// The increment of the negation is fed into the adder as the initial carry,
// so that subtracting the minimum signed value is detected as an overflow.
// For unsigned values an overflow means, that the apparent result exceeds v.
// Panics, if the encodings differ.
func (v Value) Sub(other Value) (Value, error) {
	v.mustMatch(other)
	diff, carryIn, carryOut := ripple(v.bits, other.bits.Not(), true)
	if v.enc.signed {
		if carryIn != carryOut {
			return Value{}, ErrOverflow
		}
	} else if !carryOut { // a borrow was taken, so v < other.
		return Value{}, ErrOverflow
	}
	return fromBits(v.enc, diff), nil
}

// Cmp compares two values by their decoded numbers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
// Panics, if the encodings differ.
func (v Value) Cmp(other Value) int {
	v.mustMatch(other)
	if v.enc.signed {
		return mathutil.Int64Cmp(v.TwosComplement(), other.TwosComplement())
	}
	return mathutil.Uint64Cmp(v.Uint64(), other.Uint64())
}

// Eq returns true, if both values have the same encoding and bits.
func (v Value) Eq(other Value) bool {
	return v.enc == other.enc && v.bits.Equal(other.bits)
}
