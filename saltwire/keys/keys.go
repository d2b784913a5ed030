package keys

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
)

// KeySize is the size of every key handled by this protocol: X25519 scalars
// and points, Ed25519 seeds and public keys, and derived symmetric keys.
const KeySize = 32

var (
	ErrKeySize = errors.New("keys: key must be exactly 32 bytes")
	ErrEntropy = errors.New("keys: entropy source failed")
)

// SecretKey is a 32-byte scalar owned exclusively by its holder.
// It never appears in protocol output.
type SecretKey [KeySize]byte

// PublicKey is a 32-byte curve point, derived from a SecretKey or received
// from a peer. Received keys are not validated beyond length; low-order
// points are rejected by the key exchange, not at construction.
type PublicKey [KeySize]byte

// SymmetricKey is a 32-byte AEAD key produced by the key exchange, or built
// explicitly from raw bytes (test fixtures).
type SymmetricKey [KeySize]byte

// NewSecretKey copies b into a SecretKey, validating only its length.
func NewSecretKey(b []byte) (SecretKey, error) {
	if len(b) != KeySize {
		return SecretKey{}, fmt.Errorf("%w: got %d", ErrKeySize, len(b))
	}
	var sk SecretKey
	copy(sk[:], b)
	return sk, nil
}

// NewPublicKey copies b into a PublicKey, validating only its length.
func NewPublicKey(b []byte) (PublicKey, error) {
	if len(b) != KeySize {
		return PublicKey{}, fmt.Errorf("%w: got %d", ErrKeySize, len(b))
	}
	var pk PublicKey
	copy(pk[:], b)
	return pk, nil
}

// NewSymmetricKey copies b into a SymmetricKey, validating only its length.
func NewSymmetricKey(b []byte) (SymmetricKey, error) {
	if len(b) != KeySize {
		return SymmetricKey{}, fmt.Errorf("%w: got %d", ErrKeySize, len(b))
	}
	var k SymmetricKey
	copy(k[:], b)
	return k, nil
}

// Generate draws a fresh X25519 keypair from crypto/rand.
// An entropy failure is fatal and must not be retried by the caller.
func Generate() (SecretKey, PublicKey, error) {
	var sk SecretKey
	if _, err := io.ReadFull(rand.Reader, sk[:]); err != nil {
		return SecretKey{}, PublicKey{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	// Clamp per RFC 7748
	sk[0] &= 248
	sk[31] &= 127
	sk[31] |= 64
	return sk, sk.PublicKey(), nil
}

// PublicKey derives the matching curve point via scalar multiplication with
// the base point. It is a pure function of the secret: repeated calls yield
// byte-identical results.
func (sk SecretKey) PublicKey() PublicKey {
	scalar := sk
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64
	var pk PublicKey
	curve25519.ScalarBaseMult((*[KeySize]byte)(&pk), (*[KeySize]byte)(&scalar))
	return pk
}

// Bytes returns a copy of the secret scalar.
func (sk SecretKey) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, sk[:])
	return out
}

// Zero wipes the secret material in place. Used for ephemeral keys that must
// not outlive a single operation.
func (sk *SecretKey) Zero() {
	for i := range sk {
		sk[i] = 0
	}
}

// Bytes returns a copy of the encoded point.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, pk[:])
	return out
}

// Equal reports whether two public keys are the same point, in constant time.
func (pk PublicKey) Equal(other PublicKey) bool {
	return subtle.ConstantTimeCompare(pk[:], other[:]) == 1
}

// Fingerprint is a stable identifier for a public key: SHA-256(point).
func (pk PublicKey) Fingerprint() string {
	sum := sha256.Sum256(pk[:])
	return hex.EncodeToString(sum[:])
}

// Bytes returns a copy of the key material.
func (k SymmetricKey) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, k[:])
	return out
}

// Zero wipes the key material in place.
func (k *SymmetricKey) Zero() {
	for i := range k {
		k[i] = 0
	}
}
