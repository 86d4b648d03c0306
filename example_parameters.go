package bfv

import (
	"math/big"
)

// ExampleParameters is a set of small parameter sets for testing and
// exploration. THESE PARAMETERS ARE TOY-SIZED AND OFFER NO CRYPTOGRAPHIC
// SECURITY: the ring degree is far below any secure instantiation.
var ExampleParameters = []ParametersLiteral{
	// One ciphertext-ciphertext multiplication, P = Q^2.
	{LogN: 4, Q: 1 << 28, T: 1 << 8, P: new(big.Int).Lsh(big.NewInt(1), 56)},
	// Additions and plaintext multiplications only.
	{LogN: 4, Q: 1 << 30, T: 769},
}
