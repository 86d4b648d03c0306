// Package bignum implements arbitrary precision arithmetic helpers.
package bignum

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// log2Prec is the mantissa precision used to evaluate base-two logarithms.
const log2Prec = 128

// NewInt allocates a new *big.Int initialized with an int64.
func NewInt(v int64) *big.Int {
	return big.NewInt(v)
}

// RandInt samples a random *big.Int uniformly distributed in [0, max), reading
// its entropy from the provided reader.
func RandInt(reader io.Reader, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(reader, max); err != nil {
		// Sanity check, rand.Int only fails on a broken reader or max <= 0.
		panic(err)
	}
	return
}

// Log2 returns log2(x) as a float64, evaluated with arbitrary precision so
// that moduli larger than 2^53 keep an accurate bit-size.
// x must be strictly positive.
func Log2(x *big.Int) float64 {
	if x.Sign() <= 0 {
		panic("cannot Log2: x must be strictly positive")
	}
	xF := new(big.Float).SetPrec(log2Prec).SetInt(x)
	ln2 := bigfloat.Log(new(big.Float).SetPrec(log2Prec).SetInt64(2))
	log2x, _ := new(big.Float).Quo(bigfloat.Log(xF), ln2).Float64()
	return log2x
}
