package saltwire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kerrinm/saltwire/saltwire/envelope"
)

func TestIdentityEncryptDecrypt(t *testing.T) {
	alice, err := NewIdentity()
	require.NoError(t, err)
	bob, err := NewIdentity()
	require.NoError(t, err)

	msg := []byte("full protocol round trip")
	ct, err := alice.EncryptTo(msg, bob.ExchangePublic)
	require.NoError(t, err)

	pt, err := bob.DecryptFrom(ct, alice.ExchangePublic)
	require.NoError(t, err)
	require.Equal(t, msg, pt)

	// Bob replies over the opposite direction.
	reply, err := bob.EncryptTo([]byte("ack"), alice.ExchangePublic)
	require.NoError(t, err)
	pt, err = alice.DecryptFrom(reply, bob.ExchangePublic)
	require.NoError(t, err)
	require.Equal(t, []byte("ack"), pt)
}

func TestIdentitySealUnseal(t *testing.T) {
	bob, err := NewIdentity()
	require.NoError(t, err)

	msg := []byte("from nobody in particular")
	sealed, err := Seal(msg, bob.ExchangePublic)
	require.NoError(t, err)

	pt, err := bob.Unseal(sealed)
	require.NoError(t, err)
	require.Equal(t, msg, pt)
}

func TestIdentitySignVerify(t *testing.T) {
	alice, err := NewIdentity()
	require.NoError(t, err)
	bob, err := NewIdentity()
	require.NoError(t, err)

	msg := []byte("statement of record")
	sig := alice.Sign(msg)
	require.True(t, Verify(msg, alice.SigningPublic, sig))
	require.False(t, Verify(msg, bob.SigningPublic, sig))
}

func TestIdentityCompressedMessages(t *testing.T) {
	alice, err := NewIdentity()
	require.NoError(t, err)
	bob, err := NewIdentity()
	require.NoError(t, err)

	msg := make([]byte, 8192) // zeros compress well
	ct, err := alice.EncryptTo(msg, bob.ExchangePublic, envelope.WithCompression(envelope.CompressionFast))
	require.NoError(t, err)
	require.Less(t, len(ct), len(msg))

	pt, err := bob.DecryptFrom(ct, alice.ExchangePublic)
	require.NoError(t, err)
	require.Equal(t, msg, pt)
}
