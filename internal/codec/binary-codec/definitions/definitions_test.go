package definitions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldLookup(t *testing.T) {
	defs := Get()

	tests := []struct {
		name      string
		typeCode  int32
		fieldCode int32
		vl        bool
		signing   bool
	}{
		{"TransactionType", 1, 2, false, true},
		{"Flags", 2, 2, false, true},
		{"Sequence", 2, 4, false, true},
		{"RelationType", 2, 35, false, true},
		{"OfferFeeRateNum", 3, 9, false, true},
		{"Amount", 6, 1, false, true},
		{"Fee", 6, 8, false, true},
		{"SigningPubKey", 7, 3, true, true},
		{"TxnSignature", 7, 4, true, false},
		{"MemoData", 7, 13, true, true},
		{"Account", 8, 1, true, true},
		{"Memo", 14, 10, false, true},
		{"Memos", 15, 9, false, true},
		{"Paths", 18, 1, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fi, err := defs.GetFieldInstanceByFieldName(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.typeCode, fi.FieldHeader.TypeCode)
			assert.Equal(t, tc.fieldCode, fi.FieldHeader.FieldCode)
			assert.Equal(t, tc.vl, fi.IsVLEncoded)
			assert.Equal(t, tc.signing, fi.IsSigningField)

			name, err := defs.GetFieldNameByFieldHeader(*fi.FieldHeader)
			require.NoError(t, err)
			assert.Equal(t, tc.name, name)
		})
	}
}

func TestUnknownField(t *testing.T) {
	_, err := Get().GetFieldInstanceByFieldName("blob")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestTransactionTypes(t *testing.T) {
	defs := Get()
	for name, code := range map[string]int32{
		"Payment":        0,
		"OfferCreate":    7,
		"OfferCancel":    8,
		"TrustSet":       20,
		"RelationSet":    21,
		"RelationDel":    22,
		"ConfigContract": 30,
		"Brokerage":      205,
	} {
		got, err := defs.GetTransactionTypeCodeByTransactionTypeName(name)
		require.NoError(t, err)
		assert.Equal(t, code, got, name)

		back, err := defs.GetTransactionTypeNameByTransactionTypeCode(code)
		require.NoError(t, err)
		assert.Equal(t, name, back)
	}

	_, err := defs.GetTransactionTypeCodeByTransactionTypeName("Signer")
	require.ErrorIs(t, err, ErrUnknownTransactionType)
}

func TestOrdinal(t *testing.T) {
	defs := Get()
	fee, _ := defs.GetFieldInstanceByFieldName("Fee")
	seq, _ := defs.GetFieldInstanceByFieldName("Sequence")
	acct, _ := defs.GetFieldInstanceByFieldName("Account")
	assert.Less(t, seq.Ordinal(), fee.Ordinal())
	assert.Less(t, fee.Ordinal(), acct.Ordinal())
}
