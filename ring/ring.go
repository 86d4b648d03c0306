// Package ring implements arithmetic over the ring Z_m[X]/(X^N+1), with
// polynomial coefficients carried as arbitrary precision integers, as well as
// polynomial samplers for the uniform, binary and rounded Gaussian
// distributions.
package ring

import (
	"fmt"
	"math/big"

	"github.com/lattiref/bfv/utils"
)

// Ring is a structure that keeps all the variables required to operate on a
// polynomial represented in Z_m[X]/(X^N + 1).
type Ring struct {
	// N is the ring degree, a power of two.
	N int

	// Modulus is the coefficient modulus m.
	Modulus *big.Int

	// polyMod is the cyclotomic polynomial X^N + 1.
	polyMod Poly
}

// NewRing creates a new Ring with degree N and coefficient modulus m. It
// returns an error if N is not a power of two larger than 1 or if m <= 1.
func NewRing(N int, modulus *big.Int) (r *Ring, err error) {

	if N < 2 || !utils.IsPow2(N) {
		return nil, fmt.Errorf("cannot NewRing: invalid ring degree (must be a power of two >= 2, but is %d)", N)
	}

	if modulus == nil || modulus.Cmp(oneInt) <= 0 {
		return nil, fmt.Errorf("cannot NewRing: invalid modulus (must be > 1)")
	}

	polyMod := NewPoly(N + 1)
	polyMod.Coeffs[0].SetInt64(1)
	polyMod.Coeffs[N].SetInt64(1)

	return &Ring{
		N:       N,
		Modulus: new(big.Int).Set(modulus),
		polyMod: polyMod,
	}, nil
}

// NewPoly creates a new polynomial with enough capacity to hold the
// convolution of two ring elements before reduction.
func (r *Ring) NewPoly() Poly {
	return NewPoly(2*r.N + 1)
}

// PolyModulus returns a copy of the cyclotomic polynomial X^N + 1.
func (r *Ring) PolyModulus() Poly {
	return r.polyMod.CopyNew()
}

// Rem reduces p modulo X^N + 1 and returns the remainder, whose degree is
// strictly smaller than N. The reduction is the negacyclic fold X^N -> -1,
// which agrees with the Euclidean remainder of DivMod for any input degree.
func (r *Ring) Rem(p Poly) (rem Poly) {
	rem = NewPoly(r.N)
	for i, c := range p.Coeffs {
		if c.Sign() == 0 {
			continue
		}
		j := i % r.N
		if (i/r.N)&1 == 1 {
			rem.Coeffs[j].Sub(rem.Coeffs[j], c)
		} else {
			rem.Coeffs[j].Add(rem.Coeffs[j], c)
		}
	}
	return
}

// Add returns x + y reduced modulo X^N + 1 and coefficient-wise modulo the
// ring modulus.
func (r *Ring) Add(x, y Poly) Poly {
	return CoeffMod(r.Rem(Add(x, y)), r.Modulus)
}

// Mul returns x * y reduced modulo X^N + 1 and coefficient-wise modulo the
// ring modulus.
func (r *Ring) Mul(x, y Poly) Poly {
	return CoeffMod(r.Rem(Mul(x, y)), r.Modulus)
}

// AddNoMod returns x + y reduced modulo X^N + 1 only. Coefficients keep their
// sign and magnitude, which subsequent scaled rounding steps rely on.
func (r *Ring) AddNoMod(x, y Poly) Poly {
	return r.Rem(Add(x, y))
}

// MulNoMod returns x * y reduced modulo X^N + 1 only. Coefficients keep their
// sign and magnitude, which subsequent scaled rounding steps rely on.
func (r *Ring) MulNoMod(x, y Poly) Poly {
	return r.Rem(Mul(x, y))
}

// Neg returns -x reduced modulo X^N + 1 and coefficient-wise modulo the ring
// modulus.
func (r *Ring) Neg(x Poly) Poly {
	return CoeffMod(r.Rem(MulScalar(x, minusOneInt)), r.Modulus)
}

var minusOneInt = big.NewInt(-1)
