package crypto

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// AccountIDSize is the size of an account ID in bytes.
const AccountIDSize = 20

// CalcAccountID returns RIPEMD160(SHA256(publicKey)) of a compressed key,
// the 20 bytes an address encodes.
func CalcAccountID(publicKey []byte) (id [AccountIDSize]byte) {
	inner := sha256.Sum256(publicKey)
	h := ripemd160.New()
	h.Write(inner[:])
	copy(id[:], h.Sum(nil))
	return id
}
