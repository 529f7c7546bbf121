// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/avdva/bitnum"
)

func TestFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f                     Format
		exp, frac, bias, bits int
	}{
		{Binary16, 5, 10, -15, 16},
		{Binary32, 8, 23, -127, 32},
		{Binary64, 11, 52, -1023, 64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.exp, test.f.ExpBits())
			a.Equal(test.frac, test.f.FracBits())
			a.Equal(test.bias, test.f.Bias())
			a.Equal(test.bits, test.f.Width())
		})
	}
	a.Equal("binary32", Binary32.String())
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	v, err := New(Binary32, bitnum.MustFromString("0 10000011 10010010000000000000000"))
	if a.NoError(err) {
		a.Equal(float32(25.125), v.Float32())
	}
	_, err = New(Binary32, bitnum.New(16))
	a.EqualError(err, "binary32 needs 32 bits, got 16")
	_, err = New(Format{}, bitnum.New(1))
	a.EqualError(err, "bad format")
	a.Panics(func() { MustNew(Binary64, bitnum.New(32)) })
}

func TestFields(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v        Value
		sign     bool
		exp      string
		frac     string
		exponent int
		fraction float64
		literal  float64
	}{
		{
			FromFloat32(25.125), false,
			"10000011", "10010010000000000000000",
			4, 1.5703125, 25.125,
		},
		{
			FromFloat32(-0.75), true,
			"01111110", "10000000000000000000000",
			-1, 1.5, -0.75,
		},
		{
			FromFloat32(1), false,
			"01111111", "00000000000000000000000",
			0, 1, 1,
		},
		{
			FromFloat64(25.125), false,
			"10000000011", "1001001000000000000000000000000000000000000000000000",
			4, 1.5703125, 25.125,
		},
		{
			FromFloat64(-1024), true,
			"10000001001", "0000000000000000000000000000000000000000000000000000",
			10, 1, -1024,
		},
		{
			FromBinary16(0x3c00), false,
			"01111", "0000000000",
			0, 1, 1,
		},
		{
			FromBinary16(0xc000), true,
			"10000", "0000000000",
			1, 1, -2,
		},
		{
			FromBinary16(0x3555), false,
			"01101", "0101010101",
			-2, 1 + 341.0/1024, 1365.0 / 4096,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.sign, test.v.Sign())
			a.Equal(test.exp, test.v.ExponentBits().String())
			a.Equal(test.frac, test.v.FractionBits().String())
			a.Equal(test.exponent, test.v.Exponent())
			a.Equal(test.fraction, test.v.Fraction())
			a.Equal(test.literal, test.v.Float64())
			a.True(test.v.IsNormal())
		})
	}
}

func TestString(t *testing.T) {
	a := assert.New(t)
	a.Equal("0 10000011 10010010000000000000000", FromFloat32(25.125).String())
	a.Equal("1 01111 0000000000", FromBinary16(0xbc00).String())
	a.Equal("0 10000000011 1001001000000000000000000000000000000000000000000000", FromFloat64(25.125).String())
	a.Equal("0 10000011 10010010000000000000000 {binary32, 25.125}", FromFloat32(25.125).GoString())
}

func TestPredicates(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v                                 Value
		zero, nan, inf, subnormal, normal bool
	}{
		{FromFloat32(0), true, false, false, false, false},
		{FromFloat32(float32(math.Copysign(0, -1))), true, false, false, false, false},
		{FromFloat64(0), true, false, false, false, false},
		{FromFloat32(float32(math.Inf(1))), false, false, true, false, false},
		{FromFloat64(math.Inf(-1)), false, false, true, false, false},
		{FromFloat32(float32(math.NaN())), false, true, false, false, false},
		{FromFloat64(math.NaN()), false, true, false, false, false},
		{FromFloat32(math.Float32frombits(1)), false, false, false, true, false},
		{FromFloat64(math.SmallestNonzeroFloat64), false, false, false, true, false},
		{FromFloat32(1), false, false, false, false, true},
		{FromFloat64(-25.125), false, false, false, false, true},
		{FromBinary16(0x3c00), false, false, false, false, true},
		{FromBinary16(0x7c00), false, false, true, false, false},
		{FromBinary16(0x7e00), false, true, false, false, false},
		{FromBinary16(0x8000), true, false, false, false, false},
		{MustNew(Binary32, bitnum.MustFromString("0 11111111 01111111111111111111111")), false, true, false, false, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.zero, test.v.IsZero(), "zero")
			a.Equal(test.nan, test.v.IsNaN(), "nan")
			a.Equal(test.inf, test.v.IsInf(), "inf")
			a.Equal(test.subnormal, test.v.IsSubnormal(), "subnormal")
			a.Equal(test.normal, test.v.IsNormal(), "normal")
		})
	}
}

func TestPredicatesExclusive(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	count := func(flags ...bool) int {
		var n int
		for _, f := range flags {
			if f {
				n++
			}
		}
		return n
	}
	for i := 0; i < 2000; i++ {
		raw := rnd.Uint32()
		// make special exponents frequent.
		switch i % 4 {
		case 0:
			raw |= 0x7f800000
		case 1:
			raw &^= 0x7f800000
		}
		v := MustNew(Binary32, bitnum.FromUint64(uint64(raw), 32))
		a.LessOrEqual(count(v.IsZero(), v.IsNaN(), v.IsInf()), 1, "%032b", raw)
		a.Equal(1, count(v.IsZero(), v.IsNaN(), v.IsInf(), v.IsSubnormal(), v.IsNormal()), "%032b", raw)

		f := math.Float32frombits(raw)
		a.Equal(math.IsNaN(float64(f)), v.IsNaN())
		a.Equal(math.IsInf(float64(f), 0), v.IsInf())
		a.Equal(f == 0, v.IsZero())
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		f32 := math.Float32frombits(rnd.Uint32())
		if v := FromFloat32(f32); v.IsNormal() {
			a.Equal(f32, v.Float32())
			a.Equal(float64(f32), v.Float64())
		}
		f64 := math.Float64frombits(rnd.Uint64())
		if v := FromFloat64(f64); v.IsNormal() {
			a.Equal(f64, v.Float64())
		}
	}
	for _, f := range []float64{1, -1, 0.1, math.Pi, math.MaxFloat64, -math.SmallestNonzeroFloat64 * (1 << 52)} {
		a.Equal(f, FromFloat64(f).Float64())
	}
	a.Equal(float32(math.MaxFloat32), FromFloat32(math.MaxFloat32).Float32())
}

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v Value
		s string
	}{
		{FromFloat32(25.125), "25.125"},
		{FromFloat32(-0.75), "-0.75"},
		{FromFloat32(1 << 30), "1073741824"},
		{FromFloat32(0.1), "0.100000001490116119384765625"},
		{FromFloat64(0.1), "0.1000000000000000055511151231257827021181583404541015625"},
		{FromFloat64(-1024), "-1024"},
		{FromBinary16(0x3555), "0.333251953125"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.v.Decimal().String())
		})
	}
	for _, f := range []float64{25.125, -0.5, 1024, 3.75, 1e20} {
		a.True(FromFloat64(f).Decimal().Equal(decimal.NewFromFloat(f)), "%v", f)
	}
}
