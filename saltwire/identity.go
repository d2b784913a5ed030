package saltwire

import (
	"github.com/kerrinm/saltwire/saltwire/envelope"
	"github.com/kerrinm/saltwire/saltwire/keys"
	"github.com/kerrinm/saltwire/saltwire/sign"
)

// Identity is a high-level helper holding one party's encryption and signing
// keypairs. It intentionally stays small: every method delegates to the
// corresponding codec package.
type Identity struct {
	ExchangeSecret keys.SecretKey
	ExchangePublic keys.PublicKey
	SigningSecret  keys.SecretKey
	SigningPublic  keys.PublicKey
}

// NewIdentity generates both keypairs for a party.
func NewIdentity() (*Identity, error) {
	xs, xp, err := keys.Generate()
	if err != nil {
		return nil, err
	}
	ss, sp, err := sign.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &Identity{
		ExchangeSecret: xs,
		ExchangePublic: xp,
		SigningSecret:  ss,
		SigningPublic:  sp,
	}, nil
}

// EncryptTo protects message for the holder of recipient's secret key,
// authenticated as coming from this identity.
func (id *Identity) EncryptTo(message []byte, recipient keys.PublicKey, opts ...envelope.Option) ([]byte, error) {
	return envelope.Encrypt(message, id.ExchangeSecret, recipient, opts...)
}

// DecryptFrom opens a message addressed to this identity by sender.
func (id *Identity) DecryptFrom(message []byte, sender keys.PublicKey) ([]byte, error) {
	return envelope.Decrypt(message, id.ExchangeSecret, sender)
}

// Unseal opens an anonymous sealed message addressed to this identity.
func (id *Identity) Unseal(message []byte) ([]byte, error) {
	return envelope.Unseal(message, id.ExchangeSecret)
}

// Sign produces a detached signature by this identity over message.
func (id *Identity) Sign(message []byte) sign.Signature {
	return sign.Sign(message, id.SigningSecret)
}

// Seal protects message for recipient without identifying the sender. It
// needs no identity of its own: the sender is a one-shot ephemeral key.
func Seal(message []byte, recipient keys.PublicKey) ([]byte, error) {
	return envelope.Seal(message, recipient)
}

// Verify reports whether sig is a valid signature by signer over message.
func Verify(message []byte, signer keys.PublicKey, sig sign.Signature) bool {
	return sign.Verify(message, signer, sig)
}
