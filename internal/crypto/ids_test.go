package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcAccountID(t *testing.T) {
	tests := []struct {
		name      string
		publicKey string
		accountID string
	}{
		{
			// genesis account, jHb9CJAWyB4jr91VRWn96DkukG4bwdtyTh
			name:      "genesis public key",
			publicKey: "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
			accountID: "b5f762798a53d543a014caf8b297cff8f2f937e8",
		},
		{
			name:      "secondary public key",
			publicKey: "03AB6E2671A9803A999E8F05188B26783260567ADF05102A582E001B02226D4D0F",
			accountID: "d8d76ccbe5c1121360c3237055f09027e4003f7f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pubKey, err := hex.DecodeString(tt.publicKey)
			require.NoError(t, err)

			accountID := CalcAccountID(pubKey)

			expectedID, err := hex.DecodeString(tt.accountID)
			require.NoError(t, err)
			assert.Equal(t, expectedID, accountID[:])
		})
	}
}

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(16)
	require.NoError(t, err)
	require.Len(t, a, 16)

	b, err := RandomBytes(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	none, err := RandomBytes(0)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSecureErase(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	SecureErase(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	SecureErase(nil)
}
