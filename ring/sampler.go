package ring

import (
	"fmt"

	"github.com/lattiref/bfv/utils/sampling"
)

// Sampler is an interface for random polynomial samplers. A sampler fills the
// first N coefficients of a polynomial according to its distribution and sets
// the remaining capacity to zero. All randomness is read from the PRNG the
// sampler was constructed with; there is no hidden entropy source.
type Sampler interface {
	Read(pol Poly)
	ReadNew() (pol Poly)
}

// NewSampler instantiates a new Sampler for the given distribution, reading
// its randomness from prng and producing polynomials of baseRing's degree.
func NewSampler(prng sampling.PRNG, baseRing *Ring, X Distribution) (Sampler, error) {
	switch X := X.(type) {
	case Uniform:
		return NewUniformSampler(prng, baseRing, X)
	case Binary:
		return NewBinarySampler(prng, baseRing), nil
	case DiscreteGaussian:
		return NewGaussianSampler(prng, baseRing, X), nil
	default:
		return nil, fmt.Errorf("cannot NewSampler: invalid distribution: want ring.Uniform, ring.Binary or ring.DiscreteGaussian but have %T", X)
	}
}

type baseSampler struct {
	prng     sampling.PRNG
	baseRing *Ring
}

// zeroBeyond clears the coefficients at indexes >= N, so that a sampled
// polynomial is always a ring element regardless of the capacity of pol.
func (b baseSampler) zeroBeyond(pol Poly) {
	for i := b.baseRing.N; i < len(pol.Coeffs); i++ {
		pol.Coeffs[i].SetInt64(0)
	}
}
