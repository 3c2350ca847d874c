// Package verify authenticates signed feed attestations. The algorithm is
// written once against the Crypto capability so that any host able to hash
// with Keccak-256 and recover secp256k1 keys can run it.
package verify

// Crypto is the hashing and key-recovery capability supplied by the host.
type Crypto interface {
	// Keccak256 hashes the concatenation of data with legacy Keccak padding.
	Keccak256(data ...[]byte) [32]byte
	// RecoverPubkey returns the 65-byte uncompressed public key that produced
	// the signature r||s with the given recovery id (0 or 1) over hash.
	RecoverPubkey(hash [32]byte, sig [64]byte, recoveryID byte) ([]byte, error)
}

// Default is the capability used by the keeper unless one is injected.
var Default Crypto = EthCrypto{}
