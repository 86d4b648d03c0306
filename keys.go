package bfv

import (
	"github.com/lattiref/bfv/ring"
)

// SecretKey is a structure that stores the secret key s, a ring element with
// binary coefficients.
type SecretKey struct {
	Value ring.Poly
}

// NewSecretKey allocates a zeroed SecretKey for the given parameters.
func NewSecretKey(params Parameters) *SecretKey {
	return &SecretKey{Value: params.RingQ().NewPoly()}
}

// CopyNew creates a deep copy of the receiver SecretKey.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{Value: sk.Value.CopyNew()}
}

// PublicKey is a structure that stores the public key (b, a), two ring
// elements modulo Q satisfying b = -(a*s + e).
type PublicKey struct {
	Value [2]ring.Poly
}

// NewPublicKey allocates a zeroed PublicKey for the given parameters.
func NewPublicKey(params Parameters) *PublicKey {
	rq := params.RingQ()
	return &PublicKey{Value: [2]ring.Poly{rq.NewPoly(), rq.NewPoly()}}
}

// CopyNew creates a deep copy of the receiver PublicKey.
func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{Value: [2]ring.Poly{pk.Value[0].CopyNew(), pk.Value[1].CopyNew()}}
}

// RelinearizationKey is a structure that stores the evaluation key (b', a'),
// two ring elements modulo Q*P satisfying b' = -(a'*s + e') + P*s^2. It
// enables transforming a degree-2 ciphertext back to degree 1.
type RelinearizationKey struct {
	Value [2]ring.Poly
}

// NewRelinearizationKey allocates a zeroed RelinearizationKey for the given
// parameters.
func NewRelinearizationKey(params Parameters) *RelinearizationKey {
	rqp := params.RingQP()
	return &RelinearizationKey{Value: [2]ring.Poly{rqp.NewPoly(), rqp.NewPoly()}}
}

// CopyNew creates a deep copy of the receiver RelinearizationKey.
func (rlk *RelinearizationKey) CopyNew() *RelinearizationKey {
	return &RelinearizationKey{Value: [2]ring.Poly{rlk.Value[0].CopyNew(), rlk.Value[1].CopyNew()}}
}
