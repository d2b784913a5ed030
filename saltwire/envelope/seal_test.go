package envelope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kerrinm/saltwire/saltwire/keys"
)

func TestSealUnsealRoundTrip(t *testing.T) {
	recipientSK, recipientPK := generatePair(t)

	payloads := [][]byte{
		nil,
		[]byte("anonymous hello"),
		make([]byte, 2048),
	}
	for _, msg := range payloads {
		sealed, err := Seal(msg, recipientPK)
		require.NoError(t, err)
		require.Len(t, sealed, keys.KeySize+NonceSize+len(msg)+Overhead)

		pt, err := Unseal(sealed, recipientSK)
		require.NoError(t, err)
		require.Equal(t, msg, pt)
	}
}

func TestSealFreshEphemeralPerCall(t *testing.T) {
	_, recipientPK := generatePair(t)

	msg := []byte("same plaintext")
	s1, err := Seal(msg, recipientPK)
	require.NoError(t, err)
	s2, err := Seal(msg, recipientPK)
	require.NoError(t, err)

	// Distinct ephemeral keys, therefore distinct wire bytes end to end.
	require.NotEqual(t, s1[:keys.KeySize], s2[:keys.KeySize])
	require.NotEqual(t, s1, s2)
}

func TestSealNonceDeterministic(t *testing.T) {
	_, recipientPK := generatePair(t)
	_, ephemeralPK := generatePair(t)

	n1, err := sealNonce(ephemeralPK, recipientPK)
	require.NoError(t, err)
	n2, err := sealNonce(ephemeralPK, recipientPK)
	require.NoError(t, err)
	require.Equal(t, n1, n2)
	require.Len(t, n1, NonceSize)

	// Swapping the roles must change the nonce.
	n3, err := sealNonce(recipientPK, ephemeralPK)
	require.NoError(t, err)
	require.NotEqual(t, n1, n3)
}

func TestSealWireNonceMatchesDerivation(t *testing.T) {
	_, recipientPK := generatePair(t)

	sealed, err := Seal([]byte("check the nonce"), recipientPK)
	require.NoError(t, err)

	ephemeralPK, err := keys.NewPublicKey(sealed[:keys.KeySize])
	require.NoError(t, err)
	want, err := sealNonce(ephemeralPK, recipientPK)
	require.NoError(t, err)
	require.Equal(t, want, sealed[keys.KeySize:keys.KeySize+NonceSize])
}

func TestUnsealWrongRecipient(t *testing.T) {
	_, recipientPK := generatePair(t)
	otherSK, _ := generatePair(t)

	sealed, err := Seal([]byte("not for you"), recipientPK)
	require.NoError(t, err)

	_, err = Unseal(sealed, otherSK)
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestUnsealTamperedBits(t *testing.T) {
	recipientSK, recipientPK := generatePair(t)

	sealed, err := Seal([]byte("tamper me"), recipientPK)
	require.NoError(t, err)

	// Flip one bit in the nonce, ciphertext, and tag regions. Mangling the
	// embedded ephemeral key changes the derived key instead; that is
	// covered separately since it can also surface as a degenerate point.
	for _, i := range []int{keys.KeySize, keys.KeySize + NonceSize, len(sealed) - 1} {
		for bit := 0; bit < 8; bit++ {
			mangled := append([]byte(nil), sealed...)
			mangled[i] ^= 1 << bit

			_, err := Unseal(mangled, recipientSK)
			require.ErrorIs(t, err, ErrAuthentication, "byte %d bit %d", i, bit)
		}
	}
}

func TestUnsealMangledEphemeralKey(t *testing.T) {
	recipientSK, recipientPK := generatePair(t)

	sealed, err := Seal([]byte("tamper me"), recipientPK)
	require.NoError(t, err)
	sealed[3] ^= 0x10

	_, err = Unseal(sealed, recipientSK)
	require.Error(t, err)
}

func TestUnsealTruncated(t *testing.T) {
	recipientSK, recipientPK := generatePair(t)

	sealed, err := Seal([]byte("short"), recipientPK)
	require.NoError(t, err)

	for _, n := range []int{0, keys.KeySize, keys.KeySize + NonceSize, len(sealed) - 1} {
		_, err := Unseal(sealed[:n], recipientSK)
		require.Error(t, err)
	}
}

func BenchmarkSeal(b *testing.B) {
	_, recipientPK, _ := keys.Generate()
	msg := make([]byte, 1024)
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Seal(msg, recipientPK)
	}
}

func BenchmarkUnseal(b *testing.B) {
	recipientSK, recipientPK, _ := keys.Generate()
	msg := make([]byte, 1024)
	sealed, _ := Seal(msg, recipientPK)
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Unseal(sealed, recipientSK)
	}
}
