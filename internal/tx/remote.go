package tx

import (
	"context"
	"errors"
	"net/http"

	"github.com/LeJamon/goswtc/internal/amount"
)

const (
	// DefaultPublicAPI serves sequence lookups and blob posts when the remote
	// offers nothing better.
	DefaultPublicAPI = "https://api.jingtum.com/v2/"

	// DefaultFee is the fee in minor units a transaction starts with.
	DefaultFee amount.Drops = 10000

	// MinFee is the lowest fee SetFee accepts, in minor units.
	MinFee = 10
)

// ErrNoRemote is returned when a transaction built without a remote is submitted.
var ErrNoRemote = errors.New("no remote to submit to")

// Filter post-processes a submit result.
type Filter func(map[string]any) map[string]any

// Remote is the network collaborator a transaction is built against.
type Remote interface {
	// Token is the base currency symbol.
	Token() string
	// LocalSign reports whether transactions are signed before submission.
	LocalSign() bool
	// Submit sends a command and returns its filtered result.
	Submit(ctx context.Context, method string, payload map[string]any, filter Filter) (map[string]any, error)
}

// AccountInfo is the part of an account_info response a transaction needs.
type AccountInfo struct {
	Account  string `json:"Account"`
	Sequence uint32 `json:"Sequence"`
	Balance  string `json:"Balance"`
}

// Balances is the REST balances response.
type Balances struct {
	Success  bool             `json:"success"`
	Sequence uint32           `json:"sequence"`
	Balances []map[string]any `json:"balances"`
}

// AccountInfoRequester is a remote that answers account_info requests.
type AccountInfoRequester interface {
	RequestAccountInfo(ctx context.Context, account string) (*AccountInfo, error)
}

// BalancesGetter is a remote that serves account balances.
type BalancesGetter interface {
	GetAccountBalances(ctx context.Context, account string) (*Balances, error)
}

// HTTPClientProvider is a remote with an HTTP client scoped to a base URL.
type HTTPClientProvider interface {
	HTTPClient() *http.Client
	BaseURL() string
}

// PublicEndpoint overrides the public fallback API base URL.
type PublicEndpoint interface {
	PublicAPI() string
}

// BlobPoster is a remote that accepts signed blobs over its API.
type BlobPoster interface {
	PostBlob(ctx context.Context, blob string) (map[string]any, error)
}

// PathChoice is a path found by path finding together with the amount to send.
type PathChoice struct {
	Paths  PathSet
	Choice amount.Input
}

// PathTable is a remote that caches path finding results by key.
type PathTable interface {
	Path(key string) (PathChoice, bool)
}

// FeeSource is a remote with its own default fee.
type FeeSource interface {
	Fee() amount.Drops
}

// SequenceDeclarer is a remote that names its sequence source explicitly.
type SequenceDeclarer interface {
	SequenceSource() SequenceSource
}

// placeholder stands in for a missing remote.
type placeholder struct{}

func (placeholder) Token() string { return amount.DefaultToken }

func (placeholder) LocalSign() bool { return true }

func (placeholder) Submit(context.Context, string, map[string]any, Filter) (map[string]any, error) {
	return nil, ErrNoRemote
}
