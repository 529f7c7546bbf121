// Copyright 2020 Aleksandr Demakin. All rights reserved.

package integer

import "fmt"

const signBit = 0

// Encoding describes how the bits of a Value are interpreted.
// Encodings are comparable, and two values may be combined only if their encodings are equal.
type Encoding struct {
	name   string
	width  int
	signed bool
}

var (
	UInt8  = Encoding{"UInt8", 8, false}
	Int8   = Encoding{"Int8", 8, true}
	UInt16 = Encoding{"UInt16", 16, false}
	Int16  = Encoding{"Int16", 16, true}
	UInt32 = Encoding{"UInt32", 32, false}
	Int32  = Encoding{"Int32", 32, true}
	UInt64 = Encoding{"UInt64", 64, false}
	Int64  = Encoding{"Int64", 64, true}

	encodings = []Encoding{UInt8, Int8, UInt16, Int16, UInt32, Int32, UInt64, Int64}
)

// EncodingFor returns the encoding for given width and signedness.
func EncodingFor(width int, signed bool) (Encoding, error) {
	for _, enc := range encodings {
		if enc.width == width && enc.signed == signed {
			return enc, nil
		}
	}
	return Encoding{}, fmt.Errorf("no encoding for %d bits", width)
}

// Width returns the number of bits.
func (e Encoding) Width() int {
	return e.width
}

// Signed returns true, if the bit at index 0 is a sign bit.
func (e Encoding) Signed() bool {
	return e.signed
}

// MagnitudeStart returns the index of the first magnitude bit: 1 for signed encodings, 0 otherwise.
func (e Encoding) MagnitudeStart() int {
	if e.signed {
		return signBit + 1
	}
	return 0
}

func (e Encoding) String() string {
	return e.name
}
