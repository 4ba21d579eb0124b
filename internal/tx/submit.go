package tx

import (
	"context"
	"fmt"
	"net/http"
)

// Submit sends the transaction through the remote. A Signer transaction
// forwards its blob, a local signing remote gets a freshly signed blob, and
// any other remote gets the secret with the unsigned fields.
//
// No request is made while a field error is recorded.
func (t *Transaction) Submit(ctx context.Context, opts ...Option) (map[string]any, error) {
	o := t.apply(opts)
	if err := t.firstError(); err != nil {
		return nil, err
	}

	var payload map[string]any
	switch {
	case t.TransactionType() == TypeSigner:
		payload = map[string]any{"tx_blob": t.Blob()}
	case t.remote.LocalSign():
		blob, err := t.sign(ctx, o)
		if err != nil {
			return nil, fmt.Errorf("sign error: %w", err)
		}
		payload = map[string]any{"tx_blob": blob}
	default:
		payload = map[string]any{
			"secret":  t.secret,
			"tx_json": t.fields.Map(),
		}
	}
	return t.remote.Submit(ctx, "submit", payload, o.filter)
}

// SubmitAPI posts a locally signed blob to the REST API.
func (t *Transaction) SubmitAPI(ctx context.Context) (map[string]any, error) {
	if err := t.firstError(); err != nil {
		return nil, err
	}
	blob := t.Blob()
	if blob == "" {
		return nil, ErrNoBlob
	}

	if p, ok := t.remote.(BlobPoster); ok {
		return p.PostBlob(ctx, blob)
	}
	client, base := httpClientFor(t.remote)
	var out map[string]any
	if err := postJSON(ctx, client, base+"blob", map[string]any{"blob": blob}, &out); err != nil {
		return nil, fmt.Errorf("post blob: %w", err)
	}
	return out, nil
}

func httpClientFor(remote Remote) (*http.Client, string) {
	if p, ok := remote.(HTTPClientProvider); ok {
		return orDefault(p.HTTPClient()), p.BaseURL()
	}
	return orDefault(nil), publicAPI(remote)
}
