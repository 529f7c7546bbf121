// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	bigOne  = big.NewInt(1)
	bigFive = big.NewInt(5)
)

// Decimal returns the exact decimal expansion of Float64.
// The significand is an integer m = 2^F + fraction field, so the value is m * 2^(e-F).
// Negative powers of two are expanded as 2^-k = 5^k * 10^-k, which keeps every digit.
func (v Value) Decimal() decimal.Decimal {
	fracBits := v.f.fracBits
	m := new(big.Int).Lsh(bigOne, uint(fracBits))
	m.Or(m, new(big.Int).SetUint64(v.FractionBits().Uint64()))

	var d decimal.Decimal
	if shift := v.Exponent() - fracBits; shift >= 0 {
		d = decimal.NewFromBigInt(m.Lsh(m, uint(shift)), 0)
	} else {
		p := new(big.Int).Exp(bigFive, big.NewInt(int64(-shift)), nil)
		d = decimal.NewFromBigInt(m.Mul(m, p), int32(shift))
	}
	if v.Sign() {
		return d.Neg()
	}
	return d
}
