package crypto

import "github.com/decred/dcrd/dcrec/secp256k1/v4"

// Canonicality classifies a DER-encoded secp256k1 signature.
type Canonicality int

const (
	// CanonicityNone is a malformed signature or one with R or S out of range.
	CanonicityNone Canonicality = iota
	// CanonicityCanonical is well formed, but (R, N-S) verifies too.
	CanonicityCanonical
	// CanonicityFullyCanonical has S <= N/2. Nodes accept only these.
	CanonicityFullyCanonical
)

// ECDSACanonicality reports how canonical sig is. Layout:
// 0x30 <len> 0x02 <rlen> <r> 0x02 <slen> <s>, 8 to 72 bytes.
func ECDSACanonicality(sig []byte) Canonicality {
	if len(sig) < 8 || len(sig) > 72 || sig[0] != 0x30 || int(sig[1]) != len(sig)-2 {
		return CanonicityNone
	}
	r, rest, ok := derInteger(sig[2:])
	if !ok {
		return CanonicityNone
	}
	s, rest, ok := derInteger(rest)
	if !ok || len(rest) != 0 {
		return CanonicityNone
	}

	var rs, ss secp256k1.ModNScalar
	if !inOrder(&rs, r) || !inOrder(&ss, s) {
		return CanonicityNone
	}
	if ss.IsOverHalfOrder() {
		return CanonicityCanonical
	}
	return CanonicityFullyCanonical
}

// inOrder loads b into v and reports whether it lies in [1, N-1].
func inOrder(v *secp256k1.ModNScalar, b []byte) bool {
	if len(b) == 33 {
		b = b[1:]
	}
	overflow := v.SetByteSlice(b)
	return !overflow && !v.IsZero()
}

// derInteger splits a minimally encoded, non-negative DER integer
// (0x02 <len> <bytes>) off data.
func derInteger(data []byte) (value, rest []byte, ok bool) {
	if len(data) < 2 || data[0] != 0x02 {
		return nil, nil, false
	}
	n := int(data[1])
	if n < 1 || n > 33 || len(data) < 2+n {
		return nil, nil, false
	}
	value = data[2 : 2+n]
	if value[0]&0x80 != 0 {
		return nil, nil, false
	}
	// a leading zero is only allowed in front of a high bit
	if value[0] == 0 && (n == 1 || value[1]&0x80 == 0) {
		return nil, nil, false
	}
	return value, data[2+n:], true
}
