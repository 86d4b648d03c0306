package bfv

import (
	"math/big"
)

// Encoder maps integers of [0, T) to and from constant plaintext
// polynomials.
type Encoder struct {
	params Parameters
}

// NewEncoder creates a new Encoder for the given parameters.
func NewEncoder(params Parameters) *Encoder {
	return &Encoder{params: params}
}

// Encode sets pt to the constant polynomial value mod T. Negative values
// encode to their positive residue, so -1 encodes to T-1.
func (ecd *Encoder) Encode(value int64, pt *Plaintext) {
	m := new(big.Int).Mod(big.NewInt(value), ecd.params.t)
	for i := range pt.Value.Coeffs {
		pt.Value.Coeffs[i].SetInt64(0)
	}
	pt.Value.Coeffs[0].Set(m)
}

// EncodeNew encodes value mod T on a new Plaintext.
func (ecd *Encoder) EncodeNew(value int64) (pt *Plaintext) {
	pt = NewPlaintext(ecd.params)
	ecd.Encode(value, pt)
	return
}

// DecodeUint returns the constant coefficient of a decrypted plaintext, an
// integer in [0, T).
func (ecd *Encoder) DecodeUint(pt *Plaintext) uint64 {
	return pt.Value.Coeff(0).Uint64()
}
