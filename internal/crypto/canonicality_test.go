package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestECDSACanonicality(t *testing.T) {
	tests := []struct {
		name     string
		sig      string
		expected Canonicality
	}{
		{
			name:     "fully canonical signature",
			sig:      "304402206878b5690514437a2342405029426cc2b25b4a03fc396fef845d656cf62bad2c022018610a8d37f65ad02af907c8cb8f72becd0de43de7d5f42fefccb6c2a391a67c",
			expected: CanonicityFullyCanonical,
		},
		{
			name:     "minimal one byte integers",
			sig:      "3006020101020101",
			expected: CanonicityFullyCanonical,
		},
		{
			// S = n - 1, above n/2
			name:     "high S value",
			sig:      "302602010102210" + "0fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
			expected: CanonicityCanonical,
		},
		{
			name:     "S equal to the curve order",
			sig:      "302602010102210" + "0fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
			expected: CanonicityNone,
		},
		{
			name:     "invalid sequence tag",
			sig:      "3106020101020101",
			expected: CanonicityNone,
		},
		{
			name:     "wrong total length",
			sig:      "3007020101020101",
			expected: CanonicityNone,
		},
		{
			name:     "trailing bytes",
			sig:      "3007020101020101" + "00",
			expected: CanonicityNone,
		},
		{
			name:     "empty signature",
			sig:      "",
			expected: CanonicityNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := hex.DecodeString(tt.sig)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ECDSACanonicality(sig))
		})
	}
}

func TestECDSACanonicality_EdgeCases(t *testing.T) {
	t.Run("zero R", func(t *testing.T) {
		sig, _ := hex.DecodeString("300602010002010a")
		assert.Equal(t, CanonicityNone, ECDSACanonicality(sig))
	})

	t.Run("negative R", func(t *testing.T) {
		sig, _ := hex.DecodeString("3006020180020101")
		assert.Equal(t, CanonicityNone, ECDSACanonicality(sig))
	})

	t.Run("non minimal R", func(t *testing.T) {
		sig, _ := hex.DecodeString("30070202000102010a")
		assert.Equal(t, CanonicityNone, ECDSACanonicality(sig))
	})
}

func TestDERInteger(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		ok        bool
		expectLen int
	}{
		{"single byte", "020101", true, 1},
		{"multi byte", "02030102ff", true, 3},
		{"leading zero before high bit", "020200ff", true, 2},
		{"wrong tag", "030101", false, 0},
		{"too short", "02", false, 0},
		{"length exceeds data", "020501", false, 0},
		{"lone zero byte", "020100", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _ := hex.DecodeString(tt.data)
			result, _, ok := derInteger(data)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Len(t, result, tt.expectLen)
			}
		})
	}
}
