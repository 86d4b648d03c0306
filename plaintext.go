package bfv

import (
	"github.com/lattiref/bfv/ring"
)

// Plaintext is a ring element holding the unscaled encoding of an integer
// message. Scaling by Delta is applied by the encryptor and the evaluator
// where the scheme requires it.
type Plaintext struct {
	Value ring.Poly
}

// NewPlaintext allocates a zeroed Plaintext for the given parameters.
func NewPlaintext(params Parameters) *Plaintext {
	return &Plaintext{Value: params.RingQ().NewPoly()}
}

// CopyNew creates a deep copy of the receiver Plaintext.
func (pt *Plaintext) CopyNew() *Plaintext {
	return &Plaintext{Value: pt.Value.CopyNew()}
}
