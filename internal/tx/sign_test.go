package tx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LeJamon/goswtc/internal/amount"
	binarycodec "github.com/LeJamon/goswtc/internal/codec/binary-codec"
	"github.com/LeJamon/goswtc/internal/crypto/keypair"
	"github.com/LeJamon/goswtc/internal/protocol"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payment from genesis to testDest: flags 0, sequence 42, 1 SWT, fee 10000,
// followed by the signing key and the start of the signature field
const paymentPrefix = "1200002200000000240000002A6140000000000F4240684000000000002710" +
	"73210330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020" +
	"74"

type seqRemote struct {
	placeholder
	seq   uint32
	err   error
	calls int
}

func (r *seqRemote) SequenceSource() SequenceSource {
	return SequenceFunc(func(ctx context.Context, account string) (uint32, error) {
		r.calls++
		return r.seq, r.err
	})
}

type panicSerializer struct{}

func (panicSerializer) Encode(*Fields) (Encoded, error) {
	panic("boom")
}

func TestSignPayment(t *testing.T) {
	tx := newPayment(t, nil)
	tx.AddMemo("hello")

	blob, err := tx.Sign(context.Background(), WithSecret(testSecret), WithSequence("42"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(blob, paymentPrefix), blob)
	assert.True(t, strings.HasSuffix(blob, "F9EA7D0568656C6C6FE1F1"), blob)
	assert.True(t, tx.LocalSigned())
	assert.Equal(t, blob, tx.Blob())

	pub := tx.Fields().String("SigningPubKey")
	sig := tx.Fields().String("TxnSignature")
	assert.Equal(t, "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020", pub)

	fields := tx.Fields().Map()
	delete(fields, "TxnSignature")
	enc, err := binarycodec.New(amount.DefaultToken).FromJSON(fields)
	require.NoError(t, err)
	ok, err := keypair.Verify(enc.Hash(protocol.HashPrefixTxSign), sig, pub)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSignNormalizesOnce(t *testing.T) {
	tx := newPayment(t, nil)
	tx.AddMemo("héllo wörld")
	tx.SetSecret(testSecret)
	tx.SetSequence("1")

	first, err := tx.Sign(context.Background())
	require.NoError(t, err)

	v, _ := tx.Fields().Get("Amount")
	assert.True(t, decimal.NewFromInt(1).Equal(v.(decimal.Decimal)))
	v, _ = tx.Fields().Get("Fee")
	assert.True(t, decimal.RequireFromString("0.01").Equal(v.(decimal.Decimal)))
	memos, _ := tx.Fields().Get("Memos")
	assert.Equal(t, "héllo wörld", memos.([]MemoWrapper)[0].Memo.MemoData)

	second, err := tx.Sign(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"héllo wörld"}, tx.Memos())

	tx.AddMemo("again")
	third, err := tx.Sign(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
	assert.Equal(t, []string{"héllo wörld", "again"}, tx.Memos())
}

func TestSignResolvesSequenceOnce(t *testing.T) {
	remote := &seqRemote{seq: 42}
	tx := newPayment(t, remote)
	tx.SetSecret(testSecret)

	_, err := tx.Sign(context.Background())
	require.NoError(t, err)
	seq, _ := tx.Sequence()
	assert.Equal(t, uint32(42), seq)

	_, err = tx.Sign(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, remote.calls)
}

func TestSignErrors(t *testing.T) {
	t.Run("field error first", func(t *testing.T) {
		remote := &seqRemote{seq: 1}
		tx := BuildPaymentTx(PaymentOptions{Source: "bad"}, remote)
		_, err := tx.Sign(context.Background(), WithSecret(testSecret))
		assert.EqualError(t, err, "invalid source address")
		assert.Zero(t, remote.calls)
	})

	t.Run("no secret", func(t *testing.T) {
		_, err := newPayment(t, nil).Sign(context.Background(), WithSequence("1"))
		assert.ErrorIs(t, err, ErrNoSecret)
	})

	t.Run("sequence failure", func(t *testing.T) {
		lookup := errors.New("lookup failed")
		tx := newPayment(t, &seqRemote{err: lookup})
		_, err := tx.Sign(context.Background(), WithSecret(testSecret))
		assert.ErrorIs(t, err, lookup)
		assert.False(t, tx.LocalSigned())
	})

	t.Run("serializer panic", func(t *testing.T) {
		tx := newPayment(t, nil)
		_, err := tx.Sign(context.Background(), WithSecret(testSecret), WithSequence("1"), WithSerializer(panicSerializer{}))
		assert.ErrorIs(t, err, ErrSignPanic)
		assert.False(t, tx.LocalSigned())
	})
}

type balancesOnly struct {
	placeholder
	seq uint32
}

func (r balancesOnly) GetAccountBalances(ctx context.Context, account string) (*Balances, error) {
	return &Balances{Success: true, Sequence: r.seq}, nil
}

type infoAndBalances struct {
	balancesOnly
}

func (infoAndBalances) RequestAccountInfo(ctx context.Context, account string) (*AccountInfo, error) {
	return &AccountInfo{Account: account, Sequence: 9}, nil
}

type httpRemote struct {
	placeholder
	base string
}

func (r httpRemote) HTTPClient() *http.Client { return nil }

func (r httpRemote) BaseURL() string { return r.base }

func TestSequenceSourcePriority(t *testing.T) {
	ctx := context.Background()

	seq, err := selectSequenceSource(balancesOnly{seq: 42}).Sequence(ctx, testSource)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), seq)

	seq, err = selectSequenceSource(infoAndBalances{balancesOnly{seq: 42}}).Sequence(ctx, testSource)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), seq)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/accounts/"+testSource+"/balances", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"sequence":17,"balances":[]}`))
	}))
	defer srv.Close()

	seq, err = selectSequenceSource(httpRemote{base: srv.URL + "/v2/"}).Sequence(ctx, testSource)
	require.NoError(t, err)
	assert.Equal(t, uint32(17), seq)

	src, ok := selectSequenceSource(placeholder{}).(httpSequenceSource)
	require.True(t, ok)
	assert.Equal(t, DefaultPublicAPI, src.base)
}

func TestHTTPSequenceSourceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "missing") {
			_, _ = w.Write([]byte(`{"success":true}`))
			return
		}
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewHTTPSequenceSource(srv.Client(), srv.URL+"/")
	_, err := src.Sequence(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoSequence)

	_, err = src.Sequence(context.Background(), testSource)
	assert.ErrorContains(t, err, "status 500")
}
