package bfv

import (
	"github.com/lattiref/bfv/ring"
)

// Decryptor is a structure that decrypts ciphertexts with a secret key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor creates a new Decryptor for the given parameters and secret
// key.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{params: params, sk: sk}
}

// Decrypt decrypts ct on pt. The phase c0 + c1*s + c2*s^2 + ... is computed
// modulo Q, then each coefficient is rescaled as round(T*x/Q) mod T.
// Ciphertexts of any degree >= 1 are supported, so un-relinearized products
// decrypt as well.
func (dec *Decryptor) Decrypt(ct *Ciphertext, pt *Plaintext) {

	rq := dec.params.RingQ()

	x := ring.CoeffMod(ct.Value[0], rq.Modulus)
	sPow := dec.sk.Value
	for i := 1; i < len(ct.Value); i++ {
		x = rq.Add(x, rq.Mul(ct.Value[i], sPow))
		if i+1 < len(ct.Value) {
			sPow = rq.Mul(sPow, dec.sk.Value)
		}
	}

	scaled := ring.RoundDivScalar(ring.MulScalar(x, dec.params.t), dec.params.q)
	pt.Value = ring.CoeffMod(scaled, dec.params.t)
}

// DecryptNew decrypts ct on a new Plaintext.
func (dec *Decryptor) DecryptNew(ct *Ciphertext) (pt *Plaintext) {
	pt = NewPlaintext(dec.params)
	dec.Decrypt(ct, pt)
	return
}
