// Package orderbook fans the ledger transaction stream out to listeners of
// individual order books.
package orderbook

import (
	"errors"
	"sync"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/events"
	"go.uber.org/zap"
)

var ErrNilListener = errors.New("nil listener")

// Stream delivers ledger transactions. The returned function detaches fn.
type Stream interface {
	OnTransaction(fn func(*events.TransactionEvent)) (detach func())
}

// Listener receives the events of one book.
type Listener func(*Event)

// Event is what listeners receive for a transaction touching their book.
type Event struct {
	Tx                  map[string]any `json:"tx"`
	Meta                *events.Meta   `json:"meta"`
	EngineResult        string         `json:"engine_result"`
	EngineResultCode    int            `json:"engine_result_code"`
	EngineResultMessage string         `json:"engine_result_message"`
	LedgerHash          string         `json:"ledger_hash"`
	LedgerIndex         uint32         `json:"ledger_index"`
	Validated           bool           `json:"validated"`

	// Summary describes the transaction from the sender's point of view.
	Summary *Summary `json:"summary,omitempty"`
}

// Subscriptions maps book keys to their listener. It is safe for
// concurrent use.
type Subscriptions struct {
	mu    sync.RWMutex
	token string
	books map[string]Listener
}

// NewSubscriptions returns an empty table for keys in the given base currency.
func NewSubscriptions(token string) *Subscriptions {
	if token == "" {
		token = amount.DefaultToken
	}
	return &Subscriptions{token: token, books: make(map[string]Listener)}
}

// Add registers l for key, replacing any previous listener.
func (s *Subscriptions) Add(key string, l Listener) error {
	pair, err := ParseKey(key, s.token)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrNilListener
	}
	s.mu.Lock()
	s.books[pair.Key(s.token)] = l
	s.mu.Unlock()
	return nil
}

// Remove drops the listener of key, if any.
func (s *Subscriptions) Remove(key string) error {
	pair, err := ParseKey(key, s.token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.books, pair.Key(s.token))
	s.mu.Unlock()
	return nil
}

// Len returns the number of subscribed books.
func (s *Subscriptions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

func (s *Subscriptions) lookup(keys []string) []Listener {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Listener
	for _, k := range keys {
		if l, ok := s.books[k]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Option configures an OrderBook.
type Option func(*OrderBook)

// WithToken sets the base currency symbol.
func WithToken(token string) Option {
	return func(b *OrderBook) { b.token = token }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *OrderBook) { b.logger = l }
}

// OrderBook dispatches stream transactions to book listeners.
type OrderBook struct {
	token  string
	logger *zap.Logger
	subs   *Subscriptions
	detach func()
}

// New attaches an OrderBook to stream.
func New(stream Stream, opts ...Option) *OrderBook {
	b := &OrderBook{token: amount.DefaultToken, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	b.subs = NewSubscriptions(b.token)
	b.detach = stream.OnTransaction(b.handle)
	return b
}

// Subscribe registers l for the book named by key. Invalid keys are
// rejected and nothing is stored.
func (b *OrderBook) Subscribe(key string, l Listener) error {
	if err := b.subs.Add(key, l); err != nil {
		return err
	}
	b.logger.Debug("book subscribed", zap.String("key", key))
	return nil
}

// Unsubscribe removes the listener of key.
func (b *OrderBook) Unsubscribe(key string) error {
	return b.subs.Remove(key)
}

// Subscriptions returns the subscription table.
func (b *OrderBook) Subscriptions() *Subscriptions {
	return b.subs
}

// Close detaches from the stream.
func (b *OrderBook) Close() {
	if b.detach != nil {
		b.detach()
		b.detach = nil
	}
}

func (b *OrderBook) handle(ev *events.TransactionEvent) {
	if ev == nil || ev.Meta == nil {
		return
	}
	keys := AffectedBooks(ev, b.token)
	if len(keys) == 0 {
		return
	}
	listeners := b.subs.lookup(keys)
	if len(listeners) == 0 {
		return
	}

	out := &Event{
		Tx:                  ev.Transaction,
		Meta:                ev.Meta,
		EngineResult:        ev.EngineResult,
		EngineResultCode:    ev.EngineResultCode,
		EngineResultMessage: ev.EngineResultMessage,
		LedgerHash:          ev.LedgerHash,
		LedgerIndex:         ev.LedgerIndex,
		Validated:           ev.Validated,
	}
	ProcessTx(out, ev.Account(), b.token)

	b.logger.Debug("dispatching book event",
		zap.Strings("books", keys),
		zap.Int("listeners", len(listeners)),
	)
	for _, l := range listeners {
		l(out)
	}
}
