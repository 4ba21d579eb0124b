package protocol

// makeHashPrefix combines three ASCII characters into a 32-bit prefix with the last byte set to zero.
func makeHashPrefix(a, b, c byte) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8
}

// HashPrefix constants for the hash domains a client computes.
// These MUST match the network's protocol values.
var (
	HashPrefixTransactionID = makeHashPrefix('T', 'X', 'N') // Transaction ID
	HashPrefixTxSign        = makeHashPrefix('S', 'T', 'X') // TX for signing, 0x53545800
	HashPrefixTxMultiSign   = makeHashPrefix('S', 'M', 'T') // TX for multi-sign
)
