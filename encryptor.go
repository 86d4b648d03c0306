package bfv

import (
	"github.com/lattiref/bfv/ring"
	"github.com/lattiref/bfv/utils/sampling"
)

// Encryptor is a structure that encrypts plaintexts under a public key.
type Encryptor struct {
	params Parameters
	pk     *PublicKey

	uSampler  ring.Sampler // binary ephemeral secret distribution
	xeSampler ring.Sampler // Gaussian error distribution
}

// NewEncryptor creates a new Encryptor for the given parameters and public
// key. All randomness is read from prng.
func NewEncryptor(params Parameters, pk *PublicKey, prng sampling.PRNG) *Encryptor {
	return &Encryptor{
		params:    params,
		pk:        pk,
		uSampler:  ring.NewBinarySampler(prng, params.RingQ()),
		xeSampler: ring.NewGaussianSampler(prng, params.RingQ(), ring.DiscreteGaussian{Sigma: params.Sigma()}),
	}
}

// Encrypt encrypts pt on ct, which must have degree 1. The ciphertext is
//
//	c0 = b*u + e1 + Delta*m, c1 = a*u + e2 (mod Q, mod X^N+1)
//
// with u a fresh binary polynomial and e1, e2 fresh Gaussian noise.
func (enc *Encryptor) Encrypt(pt *Plaintext, ct *Ciphertext) {

	rq := enc.params.RingQ()

	scaled := ring.MulScalar(pt.Value, enc.params.delta)

	u := enc.uSampler.ReadNew()
	e1 := enc.xeSampler.ReadNew()
	e2 := enc.xeSampler.ReadNew()

	ct.Value[0] = rq.Add(rq.Add(rq.Mul(enc.pk.Value[0], u), e1), scaled)
	ct.Value[1] = rq.Add(rq.Mul(enc.pk.Value[1], u), e2)
}

// EncryptNew encrypts pt on a new degree-1 Ciphertext.
func (enc *Encryptor) EncryptNew(pt *Plaintext) (ct *Ciphertext) {
	ct = NewCiphertext(enc.params, 1)
	enc.Encrypt(pt, ct)
	return
}
