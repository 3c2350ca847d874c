// Package feedsigner produces signed feed attestations for tests.
package feedsigner

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/paw-chain/feeds/x/feeds/types"
	"github.com/paw-chain/feeds/x/feeds/verify"
)

// Signer signs attestations with a secp256k1 key the way the off-chain
// publisher does.
type Signer struct {
	key     *ecdsa.PrivateKey
	address types.EvmPubkey
}

// New returns a signer with a fresh random key.
func New() (*Signer, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return fromKey(key), nil
}

// FromHex returns a signer for a hex-encoded private key.
func FromHex(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return fromKey(key), nil
}

func fromKey(key *ecdsa.PrivateKey) *Signer {
	var addr types.EvmPubkey
	copy(addr[:], crypto.PubkeyToAddress(key.PublicKey).Bytes())
	return &Signer{key: key, address: addr}
}

// Address is the signer key that verifies this signer's attestations.
func (s *Signer) Address() types.EvmPubkey {
	return s.address
}

// Sign builds an update for id carrying value and signs it.
func (s *Signer) Sign(id types.AssetID, value types.TemporalNumericValue, merkleRoot, algHash types.Bytes32) (types.UpdateData, error) {
	u := types.UpdateData{
		ID:                   id,
		TemporalNumericValue: value,
		PublisherMerkleRoot:  merkleRoot,
		ValueComputeAlgHash:  algHash,
	}

	c := verify.EthCrypto{}
	digest := verify.UpdateMessageHash(c, s.address, u)
	hash := verify.PersonalMessageHash(c, digest)
	sig, err := crypto.Sign(hash[:], s.key)
	if err != nil {
		return types.UpdateData{}, err
	}

	copy(u.R[:], sig[:32])
	copy(u.S[:], sig[32:64])
	u.V = sig[crypto.RecoveryIDOffset] + 27
	return u, nil
}

// MustSign is Sign for fixtures; it panics on failure.
func (s *Signer) MustSign(id types.AssetID, timestampNs uint64, value int64) types.UpdateData {
	u, err := s.Sign(id, types.NewTemporalNumericValue(timestampNs, types.Int128FromInt64(value)), types.Bytes32{}, types.Bytes32{})
	if err != nil {
		panic(err)
	}
	return u
}
