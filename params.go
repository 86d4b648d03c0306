package bfv

import (
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"

	"github.com/lattiref/bfv/ring"
	"github.com/lattiref/bfv/utils/bignum"
)

// DefaultSigma is the standard deviation of the Gaussian noise used for key
// generation and encryption when the literal leaves Sigma unset.
const DefaultSigma = 1.0

// ParametersLiteral is a literal representation of BFV parameters. It has
// public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The NewParametersFromLiteral function resolves
// it into a validated set of Parameters. The fields are JSON-taggable so a
// parameter set can be read from a configuration string (see the -params
// test flag).
type ParametersLiteral struct {
	// LogN is the base-two logarithm of the ring degree N.
	LogN int

	// Q is the ciphertext modulus.
	Q int64

	// T is the plaintext modulus, with 2 <= T < Q.
	T int64

	// P is the auxiliary modulus of the relinearization key, with P >= Q^2.
	// It is carried as a big integer because P exceeds 64 bits as soon as
	// Q does 32. Leaving P nil (or zero) disables relinearization support.
	P *big.Int

	// Sigma is the standard deviation of the encryption noise. Zero selects
	// DefaultSigma.
	Sigma float64
}

// Parameters represents a validated parameter set for the BFV cryptosystem.
type Parameters struct {
	literal ParametersLiteral

	n     int
	q     *big.Int
	t     *big.Int
	p     *big.Int
	qp    *big.Int
	delta *big.Int

	ringQ  *ring.Ring
	ringQP *ring.Ring
}

// NewParametersFromLiteral instantiates a set of Parameters from a
// ParametersLiteral specification, checking that the scheme constraints
// hold. All returned errors wrap ErrInvalidParameter.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {

	if pl.LogN < 1 || pl.LogN > 16 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: LogN must be in [1, 16] but is %d", ErrInvalidParameter, pl.LogN)
	}

	if pl.Q <= 1 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: Q must be > 1 but is %d", ErrInvalidParameter, pl.Q)
	}

	if pl.T < 2 || pl.T >= pl.Q {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: T must satisfy 2 <= T < Q but is %d", ErrInvalidParameter, pl.T)
	}

	if pl.Sigma < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: Sigma must be >= 0 but is %f", ErrInvalidParameter, pl.Sigma)
	}

	if pl.Sigma == 0 {
		pl.Sigma = DefaultSigma
	}

	params := Parameters{
		literal: pl,
		n:       1 << pl.LogN,
		q:       big.NewInt(pl.Q),
		t:       big.NewInt(pl.T),
	}

	params.delta = new(big.Int).Quo(params.q, params.t)

	var err error
	if params.ringQ, err = ring.NewRing(params.n, params.q); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	if pl.P != nil && pl.P.Sign() != 0 {
		params.p = new(big.Int).Set(pl.P)
		if qSquare := new(big.Int).Mul(params.q, params.q); params.p.Cmp(qSquare) < 0 {
			return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: P must be >= Q^2 but is %s", ErrInvalidParameter, pl.P.String())
		}
		params.qp = new(big.Int).Mul(params.q, params.p)
		if params.ringQP, err = ring.NewRing(params.n, params.qp); err != nil {
			return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
		}
	}

	return params, nil
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.n
}

// LogN returns the base-two logarithm of the ring degree.
func (p Parameters) LogN() int {
	return p.literal.LogN
}

// Q returns the ciphertext modulus.
func (p Parameters) Q() int64 {
	return p.literal.Q
}

// T returns the plaintext modulus.
func (p Parameters) T() int64 {
	return p.literal.T
}

// P returns the auxiliary modulus of the relinearization key, or nil if the
// parameters carry none.
func (p Parameters) P() *big.Int {
	if p.p == nil {
		return nil
	}
	return new(big.Int).Set(p.p)
}

// Sigma returns the standard deviation of the encryption noise.
func (p Parameters) Sigma() float64 {
	return p.literal.Sigma
}

// Delta returns the plaintext scaling factor floor(Q/T).
func (p Parameters) Delta() *big.Int {
	return new(big.Int).Set(p.delta)
}

// QBig returns the ciphertext modulus as a *big.Int.
func (p Parameters) QBig() *big.Int {
	return new(big.Int).Set(p.q)
}

// TBig returns the plaintext modulus as a *big.Int.
func (p Parameters) TBig() *big.Int {
	return new(big.Int).Set(p.t)
}

// RingQ returns the ring Z_Q[X]/(X^N+1) of ciphertexts and keys.
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// RingQP returns the extended ring Z_{Q*P}[X]/(X^N+1) of the relinearization
// key, or nil if the parameters carry no P.
func (p Parameters) RingQP() *ring.Ring {
	return p.ringQP
}

// MaxValue returns the largest plaintext integer, T-1.
func (p Parameters) MaxValue() int64 {
	return p.literal.T - 1
}

// LogQ returns the size of the ciphertext modulus in bits.
func (p Parameters) LogQ() float64 {
	return bignum.Log2(p.q)
}

// LogT returns the size of the plaintext modulus in bits.
func (p Parameters) LogT() float64 {
	return bignum.Log2(p.t)
}

// LogP returns the size of the auxiliary modulus in bits, or zero if the
// parameters carry none.
func (p Parameters) LogP() float64 {
	if p.p == nil {
		return 0
	}
	return bignum.Log2(p.p)
}

// LogQP returns the size of the extended modulus Q*P in bits, or LogQ if the
// parameters carry no P.
func (p Parameters) LogQP() float64 {
	if p.qp == nil {
		return p.LogQ()
	}
	return bignum.Log2(p.qp)
}

// Equal returns true if the receiver and the provided Parameters resolve from
// the same literal.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.literal, other.literal, cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}))
}

// GetLiteral returns the ParametersLiteral the receiver was resolved from,
// with defaults applied.
func (p Parameters) GetLiteral() ParametersLiteral {
	return p.literal
}
