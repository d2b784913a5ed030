// Package sign produces and checks detached signatures over protocol
// messages.
//
// Messages are pre-hashed with a fixed domain-separation prefix before
// Ed25519 signing, so a signature produced here can never be reinterpreted as
// covering an unrelated use of the same key.
package sign

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/kerrinm/saltwire/saltwire/keys"
)

// SignatureSize is the fixed size of a detached signature.
const SignatureSize = ed25519.SignatureSize

var ErrSignatureSize = errors.New("sign: signature must be exactly 64 bytes")

// Signature is a detached 64-byte value, independent of message length.
type Signature [SignatureSize]byte

// NewSignature copies b into a Signature. A wrong-length buffer is a
// construction-time error, distinct from a verification mismatch.
func NewSignature(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, fmt.Errorf("%w: got %d", ErrSignatureSize, len(b))
	}
	var sig Signature
	copy(sig[:], b)
	return sig, nil
}

// Bytes returns a copy of the signature.
func (s Signature) Bytes() []byte {
	out := make([]byte, SignatureSize)
	copy(out, s[:])
	return out
}

const domainPrefix = "saltwire/v1/signature\x00"

// digest pre-hashes a message under the protocol's signing domain.
func digest(message []byte) []byte {
	h := sha512.New()
	h.Write([]byte(domainPrefix))
	h.Write(message)
	return h.Sum(nil)
}

// GenerateKeyPair draws a fresh Ed25519 signing keypair. The SecretKey holds
// the 32-byte seed; the PublicKey is the matching Ed25519 point.
func GenerateKeyPair() (keys.SecretKey, keys.PublicKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return keys.SecretKey{}, keys.PublicKey{}, fmt.Errorf("%w: %v", keys.ErrEntropy, err)
	}
	var sk keys.SecretKey
	copy(sk[:], priv.Seed())
	var pk keys.PublicKey
	copy(pk[:], pub)
	return sk, pk, nil
}

// PublicKey derives the signing public key from a seed. Deterministic:
// repeated calls yield byte-identical results.
func PublicKey(signer keys.SecretKey) keys.PublicKey {
	priv := ed25519.NewKeyFromSeed(signer[:])
	var pk keys.PublicKey
	copy(pk[:], priv.Public().(ed25519.PublicKey))
	return pk
}

// Sign produces a deterministic detached signature over message.
func Sign(message []byte, signer keys.SecretKey) Signature {
	priv := ed25519.NewKeyFromSeed(signer[:])
	var sig Signature
	copy(sig[:], ed25519.Sign(priv, digest(message)))
	return sig
}

// Verify reports whether sig is a valid signature by signer over message.
// A mismatched signature is an expected outcome, not an error.
func Verify(message []byte, signer keys.PublicKey, sig Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(signer[:]), digest(message), sig[:])
}
