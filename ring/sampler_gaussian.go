package ring

import (
	"encoding/binary"
	"math"

	"github.com/lattiref/bfv/utils/sampling"
)

// GaussianSampler keeps the state of a sampler of polynomials with
// coefficients drawn from a rounded Gaussian N(mean, sigma).
type GaussianSampler struct {
	baseSampler
	xe   DiscreteGaussian
	buff []byte
	ptr  int
}

// NewGaussianSampler creates a new instance of GaussianSampler from a PRNG, a
// ring definition and the target distribution.
func NewGaussianSampler(prng sampling.PRNG, baseRing *Ring, X DiscreteGaussian) *GaussianSampler {
	return &GaussianSampler{
		baseSampler: baseSampler{prng: prng, baseRing: baseRing},
		xe:          X,
		buff:        make([]byte, 1024),
		ptr:         1024,
	}
}

// Read samples a rounded Gaussian polynomial on pol. Coefficients are signed;
// callers reduce them modulo the ring modulus where needed.
func (g *GaussianSampler) Read(pol Poly) {
	for i := 0; i < g.baseRing.N; i++ {
		v := math.Round(g.normFloat64()*g.xe.Sigma + g.xe.Mean)
		pol.Coeffs[i].SetInt64(int64(v))
	}
	g.zeroBeyond(pol)
}

// ReadNew samples a new rounded Gaussian polynomial.
func (g *GaussianSampler) ReadNew() (pol Poly) {
	pol = g.baseRing.NewPoly()
	g.Read(pol)
	return
}

// normFloat64 returns a normally distributed float64 with standard normal
// distribution (mean = 0, stddev = 1), using the polar Box-Muller transform
// over PRNG-derived uniforms.
func (g *GaussianSampler) normFloat64() float64 {
	for {
		u := 2*g.randFloat64() - 1
		v := 2*g.randFloat64() - 1
		s := u*u + v*v
		if s >= 1 || s == 0 {
			continue
		}
		return u * math.Sqrt(-2*math.Log(s)/s)
	}
}

// randFloat64 returns a uniform float64 in [0, 1] with 53 bits of precision.
func (g *GaussianSampler) randFloat64() float64 {
	if g.ptr == len(g.buff) {
		if _, err := g.prng.Read(g.buff); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		g.ptr = 0
	}
	x := binary.LittleEndian.Uint64(g.buff[g.ptr:g.ptr+8]) & 0x1fffffffffffff
	g.ptr += 8
	return float64(x) / float64(0x1fffffffffffff)
}
