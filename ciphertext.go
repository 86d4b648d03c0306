package bfv

import (
	"github.com/lattiref/bfv/ring"
)

// Ciphertext is a slice of ring elements (c0, c1, ..., cd) modulo Q whose
// inner product with the powers of the secret key recovers the scaled
// plaintext plus noise. Fresh encryptions have degree 1; an un-relinearized
// multiplication yields degree 2.
type Ciphertext struct {
	Value []ring.Poly
}

// NewCiphertext allocates a zeroed Ciphertext of the given degree for the
// given parameters.
func NewCiphertext(params Parameters, degree int) *Ciphertext {
	rq := params.RingQ()
	value := make([]ring.Poly, degree+1)
	for i := range value {
		value[i] = rq.NewPoly()
	}
	return &Ciphertext{Value: value}
}

// Degree returns the degree of the ciphertext, one less than its number of
// ring elements.
func (ct *Ciphertext) Degree() int {
	return len(ct.Value) - 1
}

// CopyNew creates a deep copy of the receiver Ciphertext.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	value := make([]ring.Poly, len(ct.Value))
	for i := range value {
		value[i] = ct.Value[i].CopyNew()
	}
	return &Ciphertext{Value: value}
}

// Equal returns true if the two ciphertexts have the same degree and
// coefficient-identical components.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	if ct.Degree() != other.Degree() {
		return false
	}
	for i := range ct.Value {
		if !ct.Value[i].Equal(other.Value[i]) {
			return false
		}
	}
	return true
}
