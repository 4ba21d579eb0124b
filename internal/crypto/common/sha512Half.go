package crypto

import (
	"crypto/sha512"
	"encoding/binary"
)

// Returns the first 32 bytes of a sha512 hash of a message
func Sha512Half(msg []byte) [32]byte {
	h := sha512.Sum512(msg)
	var result [32]byte
	copy(result[:], h[:32])
	return result
}

// Sha512HalfPrefixed hashes msg behind a big-endian 32-bit domain prefix,
// the way signing and transaction-id hashes are domain separated.
func Sha512HalfPrefixed(prefix uint32, msg []byte) [32]byte {
	h := sha512.New()
	var p [4]byte
	binary.BigEndian.PutUint32(p[:], prefix)
	h.Write(p[:])
	h.Write(msg)
	var result [32]byte
	copy(result[:], h.Sum(nil)[:32])
	return result
}
