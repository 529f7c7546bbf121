// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bitnum implements fixed-width sequences of binary digits,
// which are the substrate for the integer and floating-point views
// in the integer and ieee754 packages.
// Every bit is stored as a separate bool, so that each step of the
// machine arithmetic built on top of it stays observable.
package bitnum

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/avdva/bitnum/internal/mathutil"
	"github.com/avdva/bitnum/internal/strutil"
)

const maxPackedWidth = 64

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Bits is an immutable sequence of binary digits.
// Index 0 is the most significant bit, index Len()-1 is the least significant one.
//
//	0                                                             W-1
//	|______________________________________________________________|
//	msb                                                          lsb
//
// A Bits value can be copied and shared freely, as none of its methods modify it.
type Bits struct {
	cells []bool
}

// New returns a zero vector of the given width.
func New(width int) Bits {
	if width < 0 {
		panic(fmt.Sprintf("negative width %d", width))
	}
	return Bits{cells: make([]bool, width)}
}

// FromUint64 returns a vector with 'width' least significant bits of v.
// Width must be in the [1, 64] range.
func FromUint64(v uint64, width int) Bits {
	if width <= 0 || width > maxPackedWidth {
		panic(fmt.Sprintf("bad width %d", width))
	}
	cells := make([]bool, width)
	// fill from the least significant bit, then reverse.
	for i := 0; i < width; i++ {
		cells[i] = v&1 != 0
		v >>= 1
	}
	for i, j := 0, width-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return Bits{cells: cells}
}

// FromUint returns the bits of an unsigned host integer.
// The width of the result equals the size of T.
func FromUint[T constraints.Unsigned](v T) Bits {
	return FromUint64(uint64(v), mathutil.BitSize[T]())
}

// FromInt returns the two's complement bits of a signed host integer.
// The width of the result equals the size of T.
func FromInt[T constraints.Signed](v T) Bits {
	return FromUint64(uint64(v), mathutil.BitSize[T]())
}

// FromFloat32 returns the raw IEEE 754 binary32 bits of f.
func FromFloat32(f float32) Bits {
	return FromUint(math.Float32bits(f))
}

// FromFloat64 returns the raw IEEE 754 binary64 bits of f.
func FromFloat64(f float64) Bits {
	return FromUint(math.Float64bits(f))
}

// FromBools returns a vector with given cells, the first one being the most significant.
func FromBools(cells ...bool) Bits {
	return Bits{cells: append([]bool(nil), cells...)}
}

// FromString parses a bit pattern like "0000,0101" or "0 10000011 1001".
// Commas, underscores, and whitespace between digits are ignored.
func FromString(s string) (Bits, error) {
	cells := make([]bool, 0, len(s))
	for i, r := range s {
		switch {
		case r == '0' || r == '1':
			cells = append(cells, r == '1')
		case strutil.IsSeparator(r):
		default:
			return Bits{}, fmt.Errorf("parsing failed: %w", newPosError(fmt.Sprintf("unexpected symbol %q", r), i+1))
		}
	}
	if len(cells) == 0 {
		return Bits{}, fmt.Errorf("empty input")
	}
	return Bits{cells: cells}, nil
}

// MustFromString parses a bit pattern and panics on error.
func MustFromString(s string) Bits {
	b, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the width of the vector.
func (b Bits) Len() int {
	return len(b.cells)
}

// Bit returns the bit at index i, where 0 is the most significant position.
func (b Bits) Bit(i int) bool {
	return b.cells[i]
}

// Bools returns a copy of the cells.
func (b Bits) Bools() []bool {
	return append([]bool(nil), b.cells...)
}

// Slice returns the bits in the [from, to) range.
func (b Bits) Slice(from, to int) Bits {
	return FromBools(b.cells[from:to]...)
}

// Not returns the bitwise complement of b.
func (b Bits) Not() Bits {
	cells := make([]bool, len(b.cells))
	for i, bit := range b.cells {
		cells[i] = !bit
	}
	return Bits{cells: cells}
}

// Uint64 packs the vector into a uint64 number.
// Panics, if the vector is wider than 64 bits.
func (b Bits) Uint64() uint64 {
	if len(b.cells) > maxPackedWidth {
		panic(fmt.Sprintf("%d bits do not fit uint64", len(b.cells)))
	}
	var result uint64
	for _, bit := range b.cells {
		result <<= 1
		if bit {
			result |= 1
		}
	}
	return result
}

// IsZero returns true, if all the bits are zeros.
func (b Bits) IsZero() bool {
	for _, bit := range b.cells {
		if bit {
			return false
		}
	}
	return true
}

// IsOnes returns true, if all the bits are ones.
func (b Bits) IsOnes() bool {
	for _, bit := range b.cells {
		if !bit {
			return false
		}
	}
	return true
}

// Equal returns true, if both vectors have the same width and bits.
func (b Bits) Equal(other Bits) bool {
	if len(b.cells) != len(other.cells) {
		return false
	}
	for i, bit := range b.cells {
		if bit != other.cells[i] {
			return false
		}
	}
	return true
}

// String returns the bits as '0' and '1' characters, the most significant bit first.
func (b Bits) String() string {
	var builder strings.Builder
	builder.Grow(len(b.cells))
	for _, bit := range b.cells {
		if bit {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

// Grouped returns the string representation with sep after every 'every' bits.
func (b Bits) Grouped(every int, sep byte) string {
	return strutil.Grouped(b.String(), every, sep)
}

// Split returns the string representation with sep inserted before each of the given indices.
func (b Bits) Split(sep byte, at ...int) string {
	return strutil.Split(b.String(), sep, at...)
}

// MarshalText returns the bits as a string of '0' and '1'.
func (b Bits) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses a bit pattern, see FromString.
func (b *Bits) UnmarshalText(data []byte) error {
	parsed, err := FromString(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
