package tx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/tx"
	"github.com/LeJamon/goswtc/internal/tx/txmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	source = "jHb9CJAWyB4jr91VRWn96DkukG4bwdtyTh"
	secret = "snoPBjXtMeMyMHUVTgbuqAfg1SUTb"
	dest   = "jGa9J9TkqtBcUoHe2zqhVFFbgUVED6o9or"
)

type balancesRemote struct {
	*txmock.MockRemote
	*txmock.MockBalancesGetter
}

func payment(remote tx.Remote) *tx.Transaction {
	return tx.BuildPaymentTx(tx.PaymentOptions{
		Source:      source,
		Destination: dest,
		Amount:      amount.Scalar("1000000"),
	}, remote)
}

func TestSubmitRefusesInvalidTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := txmock.NewMockRemote(ctrl)
	remote.EXPECT().Token().Return("SWT")
	remote.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bad := tx.BuildPaymentTx(tx.PaymentOptions{
		Source:      source,
		Destination: "jNotAnAddress",
		Amount:      amount.Scalar("1"),
	}, remote)

	_, err := bad.Submit(context.Background(), tx.WithSecret(secret))
	require.Error(t, err)
	assert.Equal(t, "invalid destination address", err.Error())

	var fe tx.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "dst", fe.Field)
}

func TestSubmitLocalSign(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := balancesRemote{txmock.NewMockRemote(ctrl), txmock.NewMockBalancesGetter(ctrl)}
	remote.MockRemote.EXPECT().Token().Return("SWT")
	remote.MockRemote.EXPECT().LocalSign().Return(true)
	remote.MockBalancesGetter.EXPECT().
		GetAccountBalances(gomock.Any(), source).
		Return(&tx.Balances{Success: true, Sequence: 42}, nil)

	var sent map[string]any
	remote.MockRemote.EXPECT().
		Submit(gomock.Any(), "submit", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload map[string]any, filter tx.Filter) (map[string]any, error) {
			sent = payload
			return filter(map[string]any{"engine_result": "tesSUCCESS"}), nil
		})

	p := payment(remote)
	res, err := p.Submit(context.Background(), tx.WithSecret(secret), tx.WithFilter(func(v map[string]any) map[string]any {
		v["filtered"] = true
		return v
	}))
	require.NoError(t, err)
	assert.Equal(t, true, res["filtered"])

	seq, ok := p.Sequence()
	require.True(t, ok)
	assert.Equal(t, uint32(42), seq)
	assert.Equal(t, p.Blob(), sent["tx_blob"])
	assert.True(t, p.LocalSigned())
}

func TestSubmitSignFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := balancesRemote{txmock.NewMockRemote(ctrl), txmock.NewMockBalancesGetter(ctrl)}
	remote.MockRemote.EXPECT().Token().Return("SWT")
	remote.MockRemote.EXPECT().LocalSign().Return(true)
	remote.MockBalancesGetter.EXPECT().
		GetAccountBalances(gomock.Any(), source).
		Return(nil, errors.New("offline"))

	_, err := payment(remote).Submit(context.Background(), tx.WithSecret(secret))
	assert.ErrorContains(t, err, "sign error: ")
	assert.ErrorContains(t, err, "offline")
}

func TestSubmitRemoteSign(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := txmock.NewMockRemote(ctrl)
	remote.EXPECT().Token().Return("SWT")
	remote.EXPECT().LocalSign().Return(false)
	remote.EXPECT().
		Submit(gomock.Any(), "submit", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload map[string]any, _ tx.Filter) (map[string]any, error) {
			assert.Equal(t, secret, payload["secret"])
			fields := payload["tx_json"].(map[string]any)
			assert.Equal(t, "Payment", fields["TransactionType"])
			assert.NotContains(t, fields, "TxnSignature")
			return map[string]any{}, nil
		})

	p := payment(remote)
	_, err := p.Submit(context.Background(), tx.WithSecret(secret))
	require.NoError(t, err)
	assert.False(t, p.LocalSigned())
}

func TestSubmitSignerForwardsBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := txmock.NewMockRemote(ctrl)
	remote.EXPECT().Token().Return("SWT")
	remote.EXPECT().
		Submit(gomock.Any(), "submit", map[string]any{"tx_blob": "DEADBEEF"}, gomock.Any()).
		Return(map[string]any{"engine_result": "tesSUCCESS"}, nil)

	res, err := tx.BuildSignTx("DEADBEEF", remote).Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tesSUCCESS", res["engine_result"])
}

type apiRemote struct {
	*txmock.MockRemote
	base string
}

func (r apiRemote) HTTPClient() *http.Client { return nil }

func (r apiRemote) BaseURL() string { return r.base }

func TestSubmitAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/blob", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "blob": body["blob"]})
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	mock := txmock.NewMockRemote(ctrl)
	mock.EXPECT().Token().Return("SWT").Times(2)
	remote := apiRemote{MockRemote: mock, base: srv.URL + "/v2/"}

	unsigned := payment(remote)
	_, err := unsigned.SubmitAPI(context.Background())
	assert.ErrorIs(t, err, tx.ErrNoBlob)

	p := payment(remote)
	blob, err := p.Sign(context.Background(), tx.WithSecret(secret), tx.WithSequence("5"))
	require.NoError(t, err)

	res, err := p.SubmitAPI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, blob, res["blob"])
}
