package amount

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const issuer = "jGa9J9TkqtBcUoHe2zqhVFFbgUVED6o9or"

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		valid bool
	}{
		{"native object", Amount{Value: "1.5", Currency: "SWT"}, true},
		{"issued object", Amount{Value: "10", Currency: "JJCC", Issuer: issuer}, true},
		{"hex currency", Amount{Value: "10", Currency: "0000000000000000000000004A4A434300000000", Issuer: issuer}, true},
		{"native with issuer", Amount{Value: "1", Currency: "SWT", Issuer: issuer}, false},
		{"issued without issuer", Amount{Value: "1", Currency: "JJCC"}, false},
		{"issued with bad issuer", Amount{Value: "1", Currency: "JJCC", Issuer: "jBad"}, false},
		{"non numeric value", Amount{Value: "abc", Currency: "SWT"}, false},
		{"bad currency", Amount{Value: "1", Currency: "J$", Issuer: issuer}, false},
		{"pointer", &Amount{Value: "1", Currency: "SWT"}, true},
		{"nil pointer", (*Amount)(nil), false},
		{"scalar", Scalar("1000000"), true},
		{"zero scalar", Scalar("0"), false},
		{"non numeric scalar", Scalar("ten"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.in, DefaultToken))
		})
	}
}

func TestToAmount(t *testing.T) {
	t.Run("native object to drops", func(t *testing.T) {
		v, err := ToAmount(Amount{Value: "1.2345678", Currency: "SWT"}, DefaultToken)
		require.NoError(t, err)
		assert.Equal(t, Drops(1234567), v)
	})

	t.Run("scalar stays minor units", func(t *testing.T) {
		v, err := ToAmount(Scalar("1000000"), DefaultToken)
		require.NoError(t, err)
		assert.Equal(t, Drops(1000000), v)
	})

	t.Run("issued object untouched", func(t *testing.T) {
		in := Amount{Value: "3", Currency: "JJCC", Issuer: issuer}
		v, err := ToAmount(in, DefaultToken)
		require.NoError(t, err)
		assert.Equal(t, in, v)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := ToAmount(Amount{Value: "100000000001", Currency: "SWT"}, DefaultToken)
		require.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("custom token", func(t *testing.T) {
		v, err := ToAmount(Amount{Value: "2", Currency: "MOAC"}, "MOAC")
		require.NoError(t, err)
		assert.Equal(t, Drops(2000000), v)
	})
}

func TestDropsDisplay(t *testing.T) {
	assert.True(t, decimal.RequireFromString("0.00001").Equal(Drops(10).Display()))
	assert.True(t, decimal.RequireFromString("12.5").Equal(Drops(12500000).Display()))
	assert.Equal(t, Drops(12500000), FromDisplay(decimal.RequireFromString("12.5")))
	assert.Equal(t, Drops(1), FromDisplay(decimal.RequireFromString("0.0000019")))
}

func TestDropsJSON(t *testing.T) {
	b, err := json.Marshal(Drops(42))
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(b))

	var d Drops
	require.NoError(t, json.Unmarshal([]byte(`"1000"`), &d))
	assert.Equal(t, Drops(1000), d)

	require.Error(t, json.Unmarshal([]byte(`"x"`), &d))
}

func TestWithSlippage(t *testing.T) {
	v, err := WithSlippage(Scalar("1000000"))
	require.NoError(t, err)
	assert.Equal(t, Scalar("1000100"), v)

	v, err = WithSlippage(Scalar("15"))
	require.NoError(t, err)
	assert.Equal(t, Scalar("15"), v)

	v, err = WithSlippage(Amount{Value: "2", Currency: "JJCC", Issuer: issuer})
	require.NoError(t, err)
	assert.Equal(t, Amount{Value: "2.0002", Currency: "JJCC", Issuer: issuer}, v)

	_, err = WithSlippage(Scalar("x"))
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestParseInput(t *testing.T) {
	v, err := ParseInput(json.RawMessage(`"1000"`))
	require.NoError(t, err)
	assert.Equal(t, Scalar("1000"), v)

	v, err = ParseInput(json.RawMessage(` {"value":"1","currency":"JJCC","issuer":"` + issuer + `"}`))
	require.NoError(t, err)
	assert.Equal(t, Amount{Value: "1", Currency: "JJCC", Issuer: issuer}, v)

	v, err = ParseInput(json.RawMessage(`25`))
	require.NoError(t, err)
	assert.Equal(t, Scalar("25"), v)

	_, err = ParseInput(json.RawMessage(`[]`))
	require.Error(t, err)
}
