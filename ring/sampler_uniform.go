package ring

import (
	"fmt"
	"math/big"

	"github.com/lattiref/bfv/utils/bignum"
	"github.com/lattiref/bfv/utils/sampling"
)

// UniformSampler keeps the state of a sampler of polynomials with
// coefficients uniformly distributed in [0, modulus).
type UniformSampler struct {
	baseSampler
	modulus *big.Int
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG, a
// ring definition and the target distribution. The distribution modulus
// defaults to the ring modulus when left nil.
func NewUniformSampler(prng sampling.PRNG, baseRing *Ring, X Uniform) (*UniformSampler, error) {
	modulus := X.Modulus
	if modulus == nil {
		modulus = baseRing.Modulus
	}
	if modulus.Sign() <= 0 {
		return nil, fmt.Errorf("cannot NewUniformSampler: modulus must be strictly positive")
	}
	return &UniformSampler{
		baseSampler: baseSampler{prng: prng, baseRing: baseRing},
		modulus:     new(big.Int).Set(modulus),
	}, nil
}

// Read samples a uniform polynomial on pol.
func (u *UniformSampler) Read(pol Poly) {
	for i := 0; i < u.baseRing.N; i++ {
		pol.Coeffs[i].Set(bignum.RandInt(u.prng, u.modulus))
	}
	u.zeroBeyond(pol)
}

// ReadNew samples a new uniform polynomial.
func (u *UniformSampler) ReadNew() (pol Poly) {
	pol = u.baseRing.NewPoly()
	u.Read(pol)
	return
}
