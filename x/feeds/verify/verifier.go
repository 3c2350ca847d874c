package verify

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/paw-chain/feeds/x/feeds/types"
)

const personalMessagePrefix = "\x19Ethereum Signed Message:\n"

// PersonalMessageHash wraps digest in the personal_sign envelope and hashes it.
func PersonalMessageHash(c Crypto, digest [32]byte) [32]byte {
	prefix := personalMessagePrefix + strconv.Itoa(len(digest))
	return c.Keccak256([]byte(prefix), digest[:])
}

// RecoveryID maps an Ethereum v value to a recovery id. Only 27 and 28 are
// accepted.
func RecoveryID(v uint8) (byte, bool) {
	switch v {
	case 27:
		return 0, true
	case 28:
		return 1, true
	default:
		return 0, false
	}
}

// AddressFromPubkey derives the address of a 65-byte uncompressed key: the
// low 20 bytes of the Keccak-256 hash of the key without its format byte.
func AddressFromPubkey(c Crypto, pub []byte) (types.EvmPubkey, error) {
	if len(pub) != 65 || pub[0] != 0x04 {
		return types.EvmPubkey{}, fmt.Errorf("expected 65-byte uncompressed public key, got %d bytes", len(pub))
	}
	h := c.Keccak256(pub[1:])
	var addr types.EvmPubkey
	copy(addr[:], h[12:])
	return addr, nil
}

// VerifySignature reports whether (r, s, v) over the personal_sign envelope
// of digest was produced by signer. Malformed signatures verify as false.
func VerifySignature(c Crypto, signer types.EvmPubkey, digest [32]byte, r, s types.Bytes32, v uint8) bool {
	recID, ok := RecoveryID(v)
	if !ok {
		return false
	}

	var sig [64]byte
	copy(sig[:32], r[:])
	copy(sig[32:], s[:])

	pub, err := c.RecoverPubkey(PersonalMessageHash(c, digest), sig, recID)
	if err != nil {
		return false
	}
	addr, err := AddressFromPubkey(c, pub)
	if err != nil {
		return false
	}
	return bytes.Equal(addr[:], signer[:])
}

// VerifyUpdate checks that u was signed by signer.
func VerifyUpdate(c Crypto, signer types.EvmPubkey, u types.UpdateData) bool {
	digest := UpdateMessageHash(c, signer, u)
	return VerifySignature(c, signer, digest, u.R, u.S, u.V)
}
