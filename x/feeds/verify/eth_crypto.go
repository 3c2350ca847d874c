package verify

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// EthCrypto implements Crypto with go-ethereum.
type EthCrypto struct{}

var _ Crypto = EthCrypto{}

func (EthCrypto) Keccak256(data ...[]byte) [32]byte {
	return crypto.Keccak256Hash(data...)
}

func (EthCrypto) RecoverPubkey(hash [32]byte, sig [64]byte, recoveryID byte) ([]byte, error) {
	full := make([]byte, crypto.SignatureLength)
	copy(full, sig[:])
	full[crypto.RecoveryIDOffset] = recoveryID
	return crypto.Ecrecover(hash[:], full)
}
