// Package envelope frames and protects protocol messages.
//
// Two codecs share the wire conventions here: the authenticated channel codec
// (Encrypt/Decrypt) between two known identities, and the anonymous seal
// codec (Seal/Unseal) to a bare recipient public key. Both use
// XChaCha20-Poly1305 under keys produced by the exchange package.
package envelope

import (
	"crypto/cipher"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/kerrinm/saltwire/saltwire/keys"
)

const (
	// Version1 marks a plain payload.
	Version1 = 0x01
	// VersionLZ4 marks a payload that was LZ4-compressed before encryption.
	VersionLZ4 = 0x02

	// NonceSize is the XChaCha20-Poly1305 nonce size (24 bytes).
	NonceSize = chacha20poly1305.NonceSizeX
	// Overhead is the authentication tag size.
	Overhead = chacha20poly1305.Overhead

	headerSize = 1
)

var (
	// ErrUnsupportedVersion is returned before any cryptographic work when a
	// message carries an unrecognized version byte.
	ErrUnsupportedVersion = errors.New("envelope: unsupported message version")

	// ErrAuthentication is the single opaque failure for any message that
	// does not authenticate: tampered header, nonce, ciphertext, or tag, and
	// structurally truncated input. It deliberately carries no detail about
	// which part was bad.
	ErrAuthentication = errors.New("envelope: message authentication failed")

	// ErrDecompress is returned when an authenticated VersionLZ4 payload
	// fails to decompress. Authenticity is already established at that
	// point, so the distinct error is not a decryption oracle.
	ErrDecompress = errors.New("envelope: decompression failed")
)

func newAEAD(key keys.SymmetricKey) (cipher.AEAD, error) {
	return chacha20poly1305.NewX(key[:])
}
