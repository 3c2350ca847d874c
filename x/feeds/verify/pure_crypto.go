package verify

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// PureCrypto implements Crypto without cgo, using x/crypto for Keccak-256
// and decred's secp256k1 for key recovery.
type PureCrypto struct{}

var _ Crypto = PureCrypto{}

func (PureCrypto) Keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func (PureCrypto) RecoverPubkey(hash [32]byte, sig [64]byte, recoveryID byte) ([]byte, error) {
	if recoveryID > 1 {
		return nil, fmt.Errorf("invalid recovery id %d", recoveryID)
	}
	// compact format: header byte 27+recid, then r, then s
	compact := make([]byte, 65)
	compact[0] = 27 + recoveryID
	copy(compact[1:], sig[:])
	pub, _, err := ecdsa.RecoverCompact(compact, hash[:])
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}
