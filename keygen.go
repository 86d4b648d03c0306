package bfv

import (
	"fmt"

	"github.com/lattiref/bfv/ring"
	"github.com/lattiref/bfv/utils/bignum"
	"github.com/lattiref/bfv/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to create new
// keys: the parameters, the caller-provided PRNG and the samplers derived
// from it.
type KeyGenerator struct {
	params Parameters

	xsSampler ring.Sampler // binary secret distribution
	xeSampler ring.Sampler // Gaussian error distribution
	uSampler  ring.Sampler // uniform over [0, Q)

	// uSamplerQP samples uniformly over [0, Q*P); nil without P.
	uSamplerQP ring.Sampler
}

// NewKeyGenerator creates a new KeyGenerator, from which the secret and
// public keys, as well as the relinearization key, can be generated. All
// randomness is read from prng.
func NewKeyGenerator(params Parameters, prng sampling.PRNG) *KeyGenerator {

	kgen := &KeyGenerator{
		params:    params,
		xsSampler: ring.NewBinarySampler(prng, params.RingQ()),
		xeSampler: ring.NewGaussianSampler(prng, params.RingQ(), ring.DiscreteGaussian{Sigma: params.Sigma()}),
	}

	var err error
	if kgen.uSampler, err = ring.NewUniformSampler(prng, params.RingQ(), ring.Uniform{}); err != nil {
		// Sanity check, the parameters carry a validated modulus.
		panic(err)
	}

	if rqp := params.RingQP(); rqp != nil {
		if kgen.uSamplerQP, err = ring.NewUniformSampler(prng, rqp, ring.Uniform{}); err != nil {
			// Sanity check, the parameters carry a validated modulus.
			panic(err)
		}
	}

	return kgen
}

// GenSecretKeyNew generates a new SecretKey with binary coefficients.
func (kgen *KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	sk = NewSecretKey(kgen.params)
	kgen.xsSampler.Read(sk.Value)
	return
}

// GenPublicKeyNew generates a new PublicKey (b, a) from the provided
// SecretKey, with b = -(a*s + e) modulo Q.
func (kgen *KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey) {

	rq := kgen.params.RingQ()

	a := kgen.uSampler.ReadNew()
	e := kgen.xeSampler.ReadNew()

	b := rq.Add(rq.Mul(rq.Neg(a), sk.Value), ring.MulScalar(e, bignum.NewInt(-1)))

	pk = &PublicKey{Value: [2]ring.Poly{b, a}}
	return
}

// GenKeyPairNew generates a new SecretKey and a corresponding PublicKey.
func (kgen *KeyGenerator) GenKeyPairNew() (sk *SecretKey, pk *PublicKey) {
	sk = kgen.GenSecretKeyNew()
	pk = kgen.GenPublicKeyNew(sk)
	return
}

// GenRelinearizationKeyNew generates a new RelinearizationKey (b', a') from
// the provided SecretKey, with b' = -(a'*s + e') + P*s^2 modulo Q*P. The sum
// is carried without coefficient reduction until the single final reduction
// modulo Q*P, so the P*s^2 term keeps its full magnitude.
//
// It returns an error wrapping ErrInvalidParameter if the parameters carry no
// auxiliary modulus P.
func (kgen *KeyGenerator) GenRelinearizationKeyNew(sk *SecretKey) (rlk *RelinearizationKey, err error) {

	rqp := kgen.params.RingQP()
	if rqp == nil {
		return nil, fmt.Errorf("cannot GenRelinearizationKey: %w: parameters carry no auxiliary modulus P", ErrInvalidParameter)
	}

	a := kgen.uSamplerQP.ReadNew()
	e := kgen.xeSampler.ReadNew()

	s2 := rqp.MulNoMod(sk.Value, sk.Value)
	scaled := ring.MulScalar(s2, kgen.params.p)

	minusOne := bignum.NewInt(-1)
	as := rqp.MulNoMod(ring.MulScalar(a, minusOne), sk.Value)
	b := ring.CoeffMod(
		rqp.AddNoMod(rqp.AddNoMod(as, ring.MulScalar(e, minusOne)), scaled),
		rqp.Modulus,
	)

	return &RelinearizationKey{Value: [2]ring.Poly{b, a}}, nil
}
