package tx

import (
	"context"
	"strings"
	"testing"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayment(t *testing.T, remote Remote) *Transaction {
	t.Helper()
	tx := BuildPaymentTx(PaymentOptions{
		Source:      testSource,
		Destination: testDest,
		Amount:      amount.Scalar("1000000"),
	}, remote)
	require.Empty(t, tx.Errors())
	return tx
}

type pathRemote struct {
	placeholder
	paths map[string]PathChoice
}

func (r pathRemote) Path(key string) (PathChoice, bool) {
	c, ok := r.paths[key]
	return c, ok
}

func TestAddMemo(t *testing.T) {
	tx := newPayment(t, nil)
	tx.AddMemo("hello")
	tx.AddMemo("你好")

	v, _ := tx.Fields().Get("Memos")
	assert.Equal(t, []MemoWrapper{
		{Memo: Memo{MemoData: "68656C6C6F"}},
		{Memo: Memo{MemoData: "E4BDA0E5A5BD"}},
	}, v)
	assert.Equal(t, []string{"hello", "你好"}, tx.Memos())

	long := newPayment(t, nil)
	long.AddMemo(strings.Repeat("a", MaxMemoLength))
	assert.Empty(t, long.Errors())
	long.AddMemo(strings.Repeat("a", MaxMemoLength+1))
	assert.Equal(t, []string{"memo_len"}, slots(long))

	// one code point outside the BMP counts as two units
	astral := newPayment(t, nil)
	astral.AddMemo(strings.Repeat("😀", MaxMemoLength/2+1))
	assert.Equal(t, []string{"memo_len"}, slots(astral))
}

func TestSetFee(t *testing.T) {
	tx := newPayment(t, nil)
	tx.SetFee("12")
	v, _ := tx.Fields().Get("Fee")
	assert.Equal(t, amount.Drops(12), v)

	tx.SetFee("abc")
	assert.Equal(t, []string{"Fee"}, slots(tx))
	assert.False(t, tx.Fields().Has("Fee"))
	assert.EqualError(t, tx.firstError(), "invalid fee")

	tx.SetFee("9")
	assert.EqualError(t, tx.firstError(), "fee is too low")

	tx.SetFee("10")
	assert.Empty(t, tx.Errors())
	assert.Equal(t, []string{"Flags", "TransactionType", "Account", "Amount", "Destination", "Fee"}, tx.Fields().Keys())
}

func TestSetSequence(t *testing.T) {
	tx := newPayment(t, nil)
	for _, bad := range []string{"0", "-3", "1.0", "", "01", "4294967296"} {
		tx.SetSequence(bad)
		assert.Equal(t, []string{"Sequence"}, slots(tx), bad)
	}
	tx.SetSequence("+7")
	assert.Empty(t, tx.Errors())
	seq, ok := tx.Sequence()
	assert.True(t, ok)
	assert.Equal(t, uint32(7), seq)
}

func TestSetSendMax(t *testing.T) {
	tx := newPayment(t, nil)
	require.NoError(t, tx.SetSendMax(amount.Amount{Value: "2", Currency: "CNY", Issuer: testIssuer}))
	assert.True(t, tx.Fields().Has("SendMax"))

	assert.ErrorIs(t, tx.SetSendMax(amount.Scalar("0")), ErrInvalidSendMax)
	assert.Equal(t, []string{"send_max"}, slots(tx))
}

func TestSetTransferRate(t *testing.T) {
	tx := BuildAccountSetTx(AccountSetOptions{Type: AccountSetProperty, Source: testSource}, nil)
	require.NoError(t, tx.SetTransferRate(0.002))
	v, _ := tx.Fields().Get("TransferRate")
	assert.Equal(t, uint32(1002000000), v)

	require.NoError(t, tx.SetTransferRate(1))
	v, _ = tx.Fields().Get("TransferRate")
	assert.Equal(t, uint32(2000000000), v)

	assert.ErrorIs(t, tx.SetTransferRate(1.5), ErrInvalidTransferRate)
	assert.ErrorIs(t, tx.SetTransferRate(-0.1), ErrInvalidTransferRate)
	assert.Equal(t, []string{"transfer_rate"}, slots(tx))
}

func TestSetPath(t *testing.T) {
	const key = "0123456789abcdef0123456789abcdef01234567"
	const emptyKey = "fedcba9876543210fedcba9876543210fedcba98"
	path := PathSet{{{Currency: "CNY", Issuer: testIssuer}}}
	remote := pathRemote{paths: map[string]PathChoice{
		key:      {Paths: path, Choice: amount.Scalar("1000000")},
		emptyKey: {Choice: amount.Scalar("5")},
	}}

	tx := newPayment(t, remote)
	require.NoError(t, tx.SetPath(emptyKey))
	assert.False(t, tx.Fields().Has("Paths"))
	assert.False(t, tx.Fields().Has("SendMax"))

	require.NoError(t, tx.SetPath(key))
	v, _ := tx.Fields().Get("Paths")
	assert.Equal(t, path, v)
	v, _ = tx.Fields().Get("SendMax")
	assert.Equal(t, amount.Drops(1000100), v)

	assert.ErrorIs(t, tx.SetPath("short"), ErrInvalidPath)
	assert.ErrorIs(t, tx.SetPath(strings.Repeat("0", 40)), ErrPathNotFound)
	assert.EqualError(t, tx.firstError(), "key not found")

	noTable := newPayment(t, nil)
	assert.ErrorIs(t, noTable.SetPath(key), ErrPathNotFound)
}

func TestSetSecret(t *testing.T) {
	tx := newPayment(t, nil)
	tx.SetSecret("not a secret")
	assert.Equal(t, []string{"_secret"}, slots(tx))
	assert.Empty(t, tx.Secret())

	tx.SetSecret(testSecret)
	assert.Equal(t, testSecret, tx.Secret())
	assert.Equal(t, []string{"_secret"}, slots(tx), "a valid secret does not clear the earlier error")
	_, err := tx.Sign(context.Background(), WithSequence("1"))
	assert.ErrorIs(t, err, ErrInvalidSecret)
}

func TestSameSlotLastWriteWins(t *testing.T) {
	tx := newPayment(t, nil)
	tx.SetSequence("x")
	tx.AddMemo(strings.Repeat("m", MaxMemoLength+1))
	tx.SetSequence("-1")
	require.Len(t, tx.Errors(), 2)
	assert.Equal(t, "Sequence", tx.Errors()[0].Field)
	assert.EqualError(t, tx.Errors()[0], "invalid sequence")
}

func TestErrorsFollowFieldOrder(t *testing.T) {
	tx := BuildPaymentTx(PaymentOptions{Source: "bad"}, nil)
	tx.SetFee("5")
	assert.Equal(t, []string{"Fee", "src"}, slots(tx))

	_, err := tx.Sign(context.Background(), WithSecret(testSecret), WithSequence("1"))
	assert.EqualError(t, err, "fee is too low")
}
