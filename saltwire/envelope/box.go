package envelope

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/kerrinm/saltwire/saltwire/exchange"
	"github.com/kerrinm/saltwire/saltwire/keys"
)

// Option configures Encrypt.
type Option func(*options)

type options struct {
	compress bool
	level    CompressionLevel
}

// WithCompression LZ4-compresses the payload before encryption when doing so
// shrinks it. Messages that do not benefit are emitted as plain Version1.
func WithCompression(level CompressionLevel) Option {
	return func(o *options) {
		o.compress = true
		o.level = level
	}
}

// Encrypt protects message from sender to recipient.
//
// A per-message symmetric key is derived by running the key exchange in the
// Outbound direction, so the output can only be opened by the recipient
// decrypting Inbound from the sender. The 1-byte version header is bound as
// associated data: tampering with it invalidates the tag.
//
// Wire format: [1-byte version][24-byte nonce][ciphertext||16-byte tag].
func Encrypt(message []byte, sender keys.SecretKey, recipient keys.PublicKey, opts ...Option) ([]byte, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	key, err := exchange.Derive(sender, recipient, exchange.Outbound)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	version := byte(Version1)
	payload := message
	if o.compress {
		if c, err := compress(message, o.level); err == nil && len(c) < len(message) {
			version = VersionLZ4
			payload = c
		}
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, headerSize+NonceSize, headerSize+NonceSize+len(payload)+Overhead)
	out[0] = version
	if _, err := io.ReadFull(rand.Reader, out[headerSize:]); err != nil {
		return nil, fmt.Errorf("%w: %v", keys.ErrEntropy, err)
	}
	nonce := out[headerSize : headerSize+NonceSize]
	return aead.Seal(out, nonce, payload, out[:headerSize]), nil
}

// Decrypt opens a message produced by Encrypt with the roles reversed.
//
// The version byte is checked before any cryptographic work. Every other
// failure mode surfaces as ErrAuthentication.
func Decrypt(message []byte, recipient keys.SecretKey, sender keys.PublicKey) ([]byte, error) {
	if len(message) < headerSize {
		return nil, ErrAuthentication
	}
	version := message[0]
	if version != Version1 && version != VersionLZ4 {
		return nil, ErrUnsupportedVersion
	}
	if len(message) < headerSize+NonceSize+Overhead {
		return nil, ErrAuthentication
	}

	key, err := exchange.Derive(recipient, sender, exchange.Inbound)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	nonce := message[headerSize : headerSize+NonceSize]
	payload, err := aead.Open(nil, nonce, message[headerSize+NonceSize:], message[:headerSize])
	if err != nil {
		return nil, ErrAuthentication
	}
	if version == VersionLZ4 {
		return decompress(payload)
	}
	return payload, nil
}
