package envelope

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/kerrinm/saltwire/saltwire/exchange"
	"github.com/kerrinm/saltwire/saltwire/keys"
)

const sealNonceLabel = "saltwire/v1/seal-nonce"

// Seal protects message for recipient without identifying the sender.
//
// Each call generates a one-shot ephemeral keypair, derives the symmetric key
// by exchanging the ephemeral secret with the recipient's public key, and
// wipes the ephemeral secret before returning. The nonce is derived from the
// two public keys rather than drawn at random; it is unique because the
// ephemeral key never repeats.
//
// Wire format: [32-byte ephemeral public key][24-byte nonce][ciphertext||tag].
func Seal(message []byte, recipient keys.PublicKey) ([]byte, error) {
	ephSecret, ephPublic, err := keys.Generate()
	if err != nil {
		return nil, err
	}
	defer ephSecret.Zero()

	key, err := exchange.Derive(ephSecret, recipient, exchange.Outbound)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	nonce, err := sealNonce(ephPublic, recipient)
	if err != nil {
		return nil, err
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, keys.KeySize+NonceSize, keys.KeySize+NonceSize+len(message)+Overhead)
	copy(out, ephPublic[:])
	copy(out[keys.KeySize:], nonce)
	return aead.Seal(out, nonce, message, nil), nil
}

// Unseal opens a message produced by Seal, using only the recipient's secret
// key and the ephemeral public key embedded in the message. Failure semantics
// match Decrypt: any inauthentic input yields ErrAuthentication.
func Unseal(message []byte, recipient keys.SecretKey) ([]byte, error) {
	if len(message) < keys.KeySize+NonceSize+Overhead {
		return nil, ErrAuthentication
	}
	ephPublic, err := keys.NewPublicKey(message[:keys.KeySize])
	if err != nil {
		return nil, err
	}

	key, err := exchange.Derive(recipient, ephPublic, exchange.Inbound)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	nonce := message[keys.KeySize : keys.KeySize+NonceSize]
	plaintext, err := aead.Open(nil, nonce, message[keys.KeySize+NonceSize:], nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

// sealNonce derives the deterministic seal nonce from the ephemeral and
// recipient public keys.
func sealNonce(ephemeral, recipient keys.PublicKey) ([]byte, error) {
	ikm := make([]byte, 0, 2*keys.KeySize)
	ikm = append(ikm, ephemeral[:]...)
	ikm = append(ikm, recipient[:]...)

	hk := hkdf.New(sha256.New, ikm, nil, []byte(sealNonceLabel))
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(hk, nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}
