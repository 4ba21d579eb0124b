// Package remote implements the network collaborators transactions are
// submitted through: a websocket remote speaking the node's JSON protocol
// and a REST API remote.
package remote

import (
	"net/http"
	"time"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/tx"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Defaults
const (
	DefaultTimeout       = 30 * time.Second
	DefaultPingInterval  = 30 * time.Second
	DefaultPathCacheSize = 100
	DefaultDialRetries   = 5
)

type settings struct {
	token         string
	localSign     bool
	fee           amount.Drops
	publicAPI     string
	timeout       time.Duration
	pingInterval  time.Duration
	pathCacheSize int
	dialRetries   uint64
	logger        *zap.Logger
	httpClient    *http.Client
	dialer        *websocket.Dialer
}

func newSettings(opts []Option) settings {
	s := settings{
		token:         amount.DefaultToken,
		localSign:     true,
		fee:           tx.DefaultFee,
		publicAPI:     tx.DefaultPublicAPI,
		timeout:       DefaultTimeout,
		pingInterval:  DefaultPingInterval,
		pathCacheSize: DefaultPathCacheSize,
		dialRetries:   DefaultDialRetries,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: s.timeout}
	}
	if s.dialer == nil {
		s.dialer = &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: s.timeout,
		}
	}
	return s
}

// Option configures a remote.
type Option func(*settings)

// WithToken sets the base currency symbol.
func WithToken(token string) Option {
	return func(s *settings) {
		if token != "" {
			s.token = token
		}
	}
}

// WithLocalSign chooses whether transactions are signed before submission.
// Only the websocket remote can submit unsigned transactions.
func WithLocalSign(local bool) Option {
	return func(s *settings) { s.localSign = local }
}

// WithFee sets the default fee of transactions built against the remote.
func WithFee(fee amount.Drops) Option {
	return func(s *settings) { s.fee = fee }
}

// WithPublicAPI overrides the public REST endpoint.
func WithPublicAPI(base string) Option {
	return func(s *settings) { s.publicAPI = base }
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithPingInterval sets how often the websocket remote pings the server.
func WithPingInterval(d time.Duration) Option {
	return func(s *settings) { s.pingInterval = d }
}

// WithPathCacheSize sets how many path finding results are kept.
func WithPathCacheSize(n int) Option {
	return func(s *settings) { s.pathCacheSize = n }
}

// WithDialRetries sets how many times a failed dial is retried.
func WithDialRetries(n uint64) Option {
	return func(s *settings) { s.dialRetries = n }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithHTTPClient sets the client of the REST remote.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithDialer sets the websocket dialer.
func WithDialer(d *websocket.Dialer) Option {
	return func(s *settings) { s.dialer = d }
}
