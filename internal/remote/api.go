package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/tx"
	"go.uber.org/zap"
)

const maxResponseSize = 1 << 20

// APIRemote talks to the REST API. It only accepts locally signed
// transactions.
type APIRemote struct {
	base   string
	cfg    settings
	logger *zap.Logger
}

var (
	_ tx.Remote             = (*APIRemote)(nil)
	_ tx.BalancesGetter     = (*APIRemote)(nil)
	_ tx.BlobPoster         = (*APIRemote)(nil)
	_ tx.HTTPClientProvider = (*APIRemote)(nil)
)

// NewAPIRemote returns a remote for the API rooted at base, for example
// "https://api.jingtum.com/v2/".
func NewAPIRemote(base string, opts ...Option) *APIRemote {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	cfg := newSettings(opts)
	return &APIRemote{
		base:   base,
		cfg:    cfg,
		logger: cfg.logger.With(zap.String("api", base)),
	}
}

// apiError is the body of a failed API call.
type apiError struct {
	Success   bool   `json:"success"`
	ErrorType string `json:"error_type"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

func (r *APIRemote) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.base+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.cfg.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return err
	}

	var status apiError
	_ = json.Unmarshal(data, &status)
	if resp.StatusCode >= http.StatusBadRequest || (!status.Success && status.Error != "") {
		r.logger.Debug("api call failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("error", status.Error),
		)
		code := status.Error
		if code == "" {
			code = resp.Status
		}
		return &ResponseError{Code: code, Number: resp.StatusCode, Message: status.Message}
	}
	return json.Unmarshal(data, out)
}

// GetAccountBalances returns the balances and next sequence of account.
func (r *APIRemote) GetAccountBalances(ctx context.Context, account string) (*tx.Balances, error) {
	var b tx.Balances
	if err := r.do(ctx, http.MethodGet, "accounts/"+url.PathEscape(account)+"/balances", nil, &b); err != nil {
		return nil, fmt.Errorf("get balances: %w", err)
	}
	return &b, nil
}

// PostBlob submits a signed blob.
func (r *APIRemote) PostBlob(ctx context.Context, blob string) (map[string]any, error) {
	var out map[string]any
	if err := r.do(ctx, http.MethodPost, "blob", map[string]any{"blob": blob}, &out); err != nil {
		return nil, fmt.Errorf("post blob: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// Submit posts the tx_blob of a submit command. Other commands and
// unsigned transactions are not supported.
func (r *APIRemote) Submit(ctx context.Context, method string, payload map[string]any, filter tx.Filter) (map[string]any, error) {
	blob, ok := payload["tx_blob"].(string)
	if method != "submit" || !ok {
		return nil, ErrRemoteSignUnsupported
	}
	out, err := r.PostBlob(ctx, blob)
	if err != nil {
		return nil, err
	}
	if filter != nil {
		out = filter(out)
	}
	return out, nil
}

func (r *APIRemote) HTTPClient() *http.Client { return r.cfg.httpClient }

func (r *APIRemote) BaseURL() string { return r.base }

func (r *APIRemote) Token() string { return r.cfg.token }

// LocalSign is always true: the API never sees secrets.
func (r *APIRemote) LocalSign() bool { return true }

func (r *APIRemote) Fee() amount.Drops { return r.cfg.fee }
