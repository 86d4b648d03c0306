package ring

import (
	"github.com/lattiref/bfv/utils/sampling"
)

// BinarySampler keeps the state of a sampler of polynomials with coefficients
// drawn from a fair Bernoulli over {0, 1}.
type BinarySampler struct {
	baseSampler
}

// NewBinarySampler creates a new instance of BinarySampler from a PRNG and a
// ring definition.
func NewBinarySampler(prng sampling.PRNG, baseRing *Ring) *BinarySampler {
	return &BinarySampler{baseSampler{prng: prng, baseRing: baseRing}}
}

// Read samples a binary polynomial on pol, one PRNG bit per coefficient.
func (b *BinarySampler) Read(pol Poly) {
	N := b.baseRing.N
	buff := make([]byte, (N+7)>>3)
	if _, err := b.prng.Read(buff); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	for i := 0; i < N; i++ {
		pol.Coeffs[i].SetInt64(int64((buff[i>>3] >> (i & 7)) & 1))
	}
	b.zeroBeyond(pol)
}

// ReadNew samples a new binary polynomial.
func (b *BinarySampler) ReadNew() (pol Poly) {
	pol = b.baseRing.NewPoly()
	b.Read(pol)
	return
}
