package types

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goswtc/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goswtc/internal/codec/binary-codec/types/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	genesis = "jHb9CJAWyB4jr91VRWn96DkukG4bwdtyTh"
	gateway = "jGa9J9TkqtBcUoHe2zqhVFFbgUVED6o9or"
)

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func TestAmountSerialization(t *testing.T) {
	a := &Amount{NativeCurrency: DefaultNativeCurrency}

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"drops", amount.Drops(1000000), "40000000000F4240"},
		{"display decimal", decimal.RequireFromString("1"), "40000000000F4240"},
		{"display string", "0.01", "4000000000002710"},
		{"json number", json.Number("1"), "40000000000F4240"},
		{"zero drops", amount.Drops(0), "4000000000000000"},
		{
			"issued amount",
			amount.Amount{Value: "1", Currency: "JJCC", Issuer: gateway},
			"D4838D7EA4C680000000000000000000000000004A4A434300000000A582E432BFC48EEDEF852C814EC57F3CD2D41596",
		},
		{
			"issued amount from map",
			map[string]any{"value": "1", "currency": "JJCC", "issuer": gateway},
			"D4838D7EA4C680000000000000000000000000004A4A434300000000A582E432BFC48EEDEF852C814EC57F3CD2D41596",
		},
		{"native object", amount.Amount{Value: "1", Currency: "SWT"}, "40000000000F4240"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := a.FromJSON(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, upperHex(b))
		})
	}
}

func TestIssuedValueNormalization(t *testing.T) {
	b, err := encodeIssuedValue(decimal.RequireFromString("0.12345"))
	require.NoError(t, err)
	assert.Equal(t, "D44462C56DF9A800", upperHex(b))

	zero, err := encodeIssuedValue(decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "8000000000000000", upperHex(zero))

	neg, err := encodeIssuedValue(decimal.RequireFromString("-1"))
	require.NoError(t, err)
	assert.Equal(t, byte(0x94), neg[0])

	_, err = encodeIssuedValue(decimal.New(1, 100))
	require.ErrorIs(t, err, ErrAmountOutOfRange)
}

func TestAmountErrors(t *testing.T) {
	a := &Amount{NativeCurrency: DefaultNativeCurrency}

	_, err := a.FromJSON(amount.Drops(-1))
	require.ErrorIs(t, err, ErrAmountOutOfRange)

	_, err = a.FromJSON("abc")
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = a.FromJSON(amount.Amount{Value: "1", Currency: "JJCC", Issuer: "bad"})
	require.Error(t, err)

	_, err = a.FromJSON([]int{1})
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestUIntTypes(t *testing.T) {
	b, err := (&UInt8{}).FromJSON(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, b)

	b, err = (&UInt16{}).FromJSON("OfferCreate")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 7}, b)

	b, err = (&UInt16{}).FromJSON("Brokerage")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 205}, b)

	_, err = (&UInt16{}).FromJSON("NoSuchType")
	require.Error(t, err)

	b, err = (&UInt32{}).FromJSON(uint32(0x80000000))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0, 0, 0}, b)

	b, err = (&UInt32{}).FromJSON("42")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 42}, b)

	_, err = (&UInt32{}).FromJSON(int64(1) << 33)
	require.ErrorIs(t, err, ErrInvalidValue)

	_, err = (&UInt8{}).FromJSON(-1)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestUInt64(t *testing.T) {
	b, err := (&UInt64{}).FromJSON("a")
	require.NoError(t, err)
	assert.Equal(t, "000000000000000A", upperHex(b))

	b, err = (&UInt64{}).FromJSON(uint64(1000))
	require.NoError(t, err)
	assert.Equal(t, "00000000000003E8", upperHex(b))

	_, err = (&UInt64{}).FromJSON("zz")
	require.ErrorIs(t, err, ErrInvalidUInt64String)
}

func TestBlobAndAccount(t *testing.T) {
	b, err := (&Blob{}).FromJSON("ABCD")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xCD}, b)

	b, err = (&Blob{Text: true}).FromJSON("héllo")
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo"), b)

	_, err = (&Blob{}).FromJSON("XYZ")
	require.ErrorIs(t, err, ErrInvalidValue)

	b, err = (&AccountID{}).FromJSON(gateway)
	require.NoError(t, err)
	assert.Equal(t, "A582E432BFC48EEDEF852C814EC57F3CD2D41596", upperHex(b))

	_, err = (&AccountID{}).FromJSON("jBad")
	require.Error(t, err)
}

func TestHash(t *testing.T) {
	b, err := (&Hash{Length: 16}).FromJSON(strings.Repeat("AB", 16))
	require.NoError(t, err)
	assert.Len(t, b, 16)

	_, err = (&Hash{Length: 32}).FromJSON("AB")
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestPathSet(t *testing.T) {
	paths := [][]map[string]any{
		{{"currency": "CNY", "issuer": gateway}},
		{{"account": genesis}},
	}

	b, err := (&PathSet{NativeCurrency: DefaultNativeCurrency}).FromJSON(paths)
	require.NoError(t, err)
	assert.Equal(t,
		"30000000000000000000000000434E590000000000A582E432BFC48EEDEF852C814EC57F3CD2D41596FF01B5F762798A53D543A014CAF8B297CFF8F2F937E800",
		upperHex(b))

	native, err := (&PathSet{NativeCurrency: DefaultNativeCurrency}).FromJSON([]any{[]any{map[string]any{"currency": "SWT"}}})
	require.NoError(t, err)
	assert.Equal(t, "10"+strings.Repeat("00", 20)+"00", upperHex(native))

	_, err = (&PathSet{}).FromJSON([]any{[]any{map[string]any{}}})
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestSTObjectPayment(t *testing.T) {
	fields := map[string]any{
		"TransactionType": "Payment",
		"Flags":           uint32(0),
		"Sequence":        uint32(42),
		"Amount":          decimal.RequireFromString("1"),
		"Fee":             decimal.RequireFromString("0.01"),
		"SigningPubKey":   "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
		"Account":         genesis,
		"Destination":     gateway,
		"Memos": []any{
			map[string]any{"Memo": map[string]any{"MemoData": "hello"}},
		},
		"blob": "ignored",
	}

	b, err := (&STObject{Options: Options{NativeCurrency: DefaultNativeCurrency}}).FromJSON(fields)
	require.NoError(t, err)
	assert.Equal(t,
		"1200002200000000240000002A6140000000000F424068400000000000271073210330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD0208114B5F762798A53D543A014CAF8B297CFF8F2F937E88314A582E432BFC48EEDEF852C814EC57F3CD2D41596F9EA7D0568656C6C6FE1F1",
		upperHex(b))
}

func TestSTObjectSigningOnly(t *testing.T) {
	fields := map[string]any{
		"Sequence":     uint32(1),
		"TxnSignature": "ABCD",
	}

	all, err := (&STObject{}).FromJSON(fields)
	require.NoError(t, err)
	signing, err := (&STObject{Options: Options{SigningOnly: true}}).FromJSON(fields)
	require.NoError(t, err)

	assert.Equal(t, "2400000001", upperHex(signing))
	assert.Equal(t, "2400000001"+"7402ABCD", upperHex(all))
}

func TestSTObjectUnknownField(t *testing.T) {
	_, err := (&STObject{}).FromJSON(map[string]any{"Bogus": 1})
	require.Error(t, err)
}

func TestSTArrayElementShape(t *testing.T) {
	_, err := (&STArray{}).FromJSON([]any{map[string]any{"Memo": map[string]any{}, "Arg": map[string]any{}}})
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestNestedObjectWithSerializer(t *testing.T) {
	inner, err := (&STObject{}).FromJSON(map[string]any{"Parameter": "0102"})
	require.NoError(t, err)
	assert.Equal(t, "7012020102", upperHex(inner))

	s := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(definitions.Get()))
	require.NoError(t, s.WriteFieldAndValue(testutil.GetFieldInstance(t, "Arg"), inner))
	assert.Equal(t, "EB7012020102E1", upperHex(s.GetSink()))
}
