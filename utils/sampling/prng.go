// Package sampling implements secure sampling of bytes.
package sampling

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// seedContext is the key-derivation context string for NewSeededPRNG.
const seedContext = "github.com/lattiref/bfv/utils/sampling PRNG seed"

// PRNG is an interface for secure (keyed) deterministic generation of random bytes.
type PRNG interface {
	Read(sum []byte) (n int, err error)
	Reset()
}

// KeyedPRNG is a structure storing the parameters used to securely and deterministically generate shared
// sequences of random bytes among different parties using the hash function blake2b. Backward sequence
// security (given the digest i, compute the digest i-1) is ensured by default, however forward sequence
// security (given the digest i, compute the digest i+1) is only ensured if the KeyedPRNG is keyed.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}
// WARNING: A PRNG INITIALISED WITH key=nil IS INSECURE!
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// NewPRNG creates KeyedPRNG keyed from rand.Read for instances were no key should be provided by the user.
func NewPRNG() (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, 32)
	if _, err = rand.Read(prng.key); err != nil {
		return nil, err
	}
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, prng.key)
	return prng, err
}

// NewSeededPRNG creates a KeyedPRNG keyed with a 32-byte key derived from the
// given seed with blake3. Two PRNGs built from the same seed produce identical
// byte sequences, which makes experiments and tests reproducible.
// WARNING: A SEED IS NOT A SECRET KEY, THIS IS FOR DETERMINISTIC TESTING ONLY!
func NewSeededPRNG(seed uint64) *KeyedPRNG {
	material := make([]byte, 8)
	binary.LittleEndian.PutUint64(material, seed)
	key := make([]byte, 32)
	blake3.DeriveKey(seedContext, material, key)
	prng, err := NewKeyedPRNG(key)
	if err != nil {
		// Sanity check, blake2b only rejects keys larger than 64 bytes.
		panic(err)
	}
	return prng
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used to create a new KeyedPRNG that will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
