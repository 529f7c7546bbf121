// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

// Format describes the layout of an IEEE 754 binary interchange format:
//
//	0 1          E E+1                 W-1
//	s|eeeeeeeeee|ffffffffffffffffffffff|
//
// The exponent is stored with a bias, the fraction has an implicit leading 1.
type Format struct {
	name     string
	expBits  int
	fracBits int
	bias     int
}

var (
	// Binary16 is the half precision format.
	Binary16 = Format{"binary16", 5, 10, -(1<<(5-1) - 1)}
	// Binary32 is the single precision format, float32.
	Binary32 = Format{"binary32", 8, 23, -(1<<(8-1) - 1)}
	// Binary64 is the double precision format, float64.
	Binary64 = Format{"binary64", 11, 52, -(1<<(11-1) - 1)}
)

// ExpBits returns the width of the exponent field.
func (f Format) ExpBits() int {
	return f.expBits
}

// FracBits returns the width of the fraction field.
func (f Format) FracBits() int {
	return f.fracBits
}

// Bias returns the number added to the exponent field to get the exponent.
// It is negative, for example -127 for binary32.
func (f Format) Bias() int {
	return f.bias
}

// Width returns the total number of bits: 1 + ExpBits + FracBits.
func (f Format) Width() int {
	return 1 + f.expBits + f.fracBits
}

func (f Format) String() string {
	return f.name
}
