/*
Package bfv implements a textbook Brakerski/Fan-Vercauteren (BFV)
somewhat-homomorphic encryption scheme over the ring Z_q[X]/(X^N+1). It
provides exact modular arithmetic over encrypted integers: plaintext and
ciphertext additions, plaintext multiplications, and ciphertext-ciphertext
multiplications with relinearization under an evaluation key.

The implementation favors transparency over speed: polynomial products use
schoolbook convolution with arbitrary precision coefficients, and a single
integer modulus is used throughout (no NTT, no RNS decomposition). It is
intended for small-depth circuits on small rings, and for studying the
numerical behavior of the scheme.

All randomness is drawn from a caller-provided PRNG (see utils/sampling), so
key generation, encryption and evaluation are reproducible given a seed.
*/
package bfv

import (
	"errors"
)

// The error kinds surfaced by the scheme. Returned errors wrap one of these
// and can be matched with errors.Is.
var (
	// ErrInvalidParameter is returned when a parameter set or an operation
	// argument violates the scheme's constraints.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDimensionMismatch is returned when operands of an evaluation have
	// incompatible degrees.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrRelinearizationKeyMissing is returned when a relinearization is
	// requested from an evaluator constructed without an evaluation key.
	ErrRelinearizationKeyMissing = errors.New("relinearization key missing")
)
