// Package saltwire composes X25519 key agreement, XChaCha20-Poly1305, and
// Ed25519 into four message-protocol operations: authenticated encryption
// between two identified parties, anonymous sealing to a recipient's public
// key, and detached signing with verification.
//
// The protocol work happens in the subpackages (keys, exchange, envelope,
// sign); this package only bundles them behind an Identity for callers that
// hold both an encryption and a signing keypair.
//
// Design goals:
//   - Directional keys: the key for A->B differs from B->A, so messages
//     cannot be reflected into the opposite direction
//   - Domain separation throughout key derivation and signing
//   - One opaque authentication failure, no decryption oracles
//   - Pure, stateless operations, safe for concurrent use
package saltwire
