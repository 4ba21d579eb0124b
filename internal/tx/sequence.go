package tx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrNoSequence is returned when a sequence source answers without a sequence.
var ErrNoSequence = errors.New("no sequence in response")

// SequenceSource resolves the next sequence number of an account.
type SequenceSource interface {
	Sequence(ctx context.Context, account string) (uint32, error)
}

// SequenceFunc adapts a function to SequenceSource.
type SequenceFunc func(ctx context.Context, account string) (uint32, error)

func (f SequenceFunc) Sequence(ctx context.Context, account string) (uint32, error) {
	return f(ctx, account)
}

// selectSequenceSource picks the one strategy a transaction resolves its
// sequence with. A declared source wins; otherwise the remote's
// capabilities are tried in order, ending at the public endpoint.
func selectSequenceSource(remote Remote) SequenceSource {
	if d, ok := remote.(SequenceDeclarer); ok {
		if src := d.SequenceSource(); src != nil {
			return src
		}
	}
	switch r := remote.(type) {
	case AccountInfoRequester:
		return accountInfoSource{r}
	case BalancesGetter:
		return balancesSource{r}
	case HTTPClientProvider:
		return NewHTTPSequenceSource(r.HTTPClient(), r.BaseURL())
	}
	return NewHTTPSequenceSource(nil, publicAPI(remote))
}

func publicAPI(remote Remote) string {
	if p, ok := remote.(PublicEndpoint); ok && p.PublicAPI() != "" {
		return p.PublicAPI()
	}
	return DefaultPublicAPI
}

type accountInfoSource struct {
	r AccountInfoRequester
}

func (s accountInfoSource) Sequence(ctx context.Context, account string) (uint32, error) {
	info, err := s.r.RequestAccountInfo(ctx, account)
	if err != nil {
		return 0, err
	}
	if info == nil || info.Sequence == 0 {
		return 0, ErrNoSequence
	}
	return info.Sequence, nil
}

type balancesSource struct {
	r BalancesGetter
}

func (s balancesSource) Sequence(ctx context.Context, account string) (uint32, error) {
	b, err := s.r.GetAccountBalances(ctx, account)
	if err != nil {
		return 0, err
	}
	if b == nil || b.Sequence == 0 {
		return 0, ErrNoSequence
	}
	return b.Sequence, nil
}

type httpSequenceSource struct {
	client *http.Client
	base   string
}

// NewHTTPSequenceSource reads sequences from GET {base}accounts/{account}/balances.
// A nil client means http.DefaultClient.
func NewHTTPSequenceSource(client *http.Client, base string) SequenceSource {
	return httpSequenceSource{client: orDefault(client), base: base}
}

func (s httpSequenceSource) Sequence(ctx context.Context, account string) (uint32, error) {
	var b Balances
	endpoint := s.base + "accounts/" + url.PathEscape(account) + "/balances"
	if err := getJSON(ctx, s.client, endpoint, &b); err != nil {
		return 0, fmt.Errorf("get balances: %w", err)
	}
	if b.Sequence == 0 {
		return 0, ErrNoSequence
	}
	return b.Sequence, nil
}
