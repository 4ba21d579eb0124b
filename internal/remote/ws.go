package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/events"
	"github.com/LeJamon/goswtc/internal/tx"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxMessageSize = 4 << 20
	writeWait      = 10 * time.Second
)

// WSRemote is a websocket connection to a node. Requests are correlated by
// id; transaction stream messages go to the listeners registered with
// OnTransaction, on the reader goroutine, in arrival order.
type WSRemote struct {
	url     string
	cfg     settings
	logger  *zap.Logger
	session string
	paths   *PathCache

	mu      sync.Mutex
	conn    *websocket.Conn
	nextID  uint64
	pending map[uint64]chan *events.Message
	cancel  context.CancelFunc
	group   *errgroup.Group
	// done is closed when the current connection ends.
	done chan struct{}

	writeMu sync.Mutex

	lmu          sync.RWMutex
	listeners    map[uint64]func(*events.TransactionEvent)
	nextListener uint64
}

var (
	_ tx.Remote               = (*WSRemote)(nil)
	_ tx.AccountInfoRequester = (*WSRemote)(nil)
	_ tx.PathTable            = (*WSRemote)(nil)
	_ tx.FeeSource            = (*WSRemote)(nil)
	_ tx.PublicEndpoint       = (*WSRemote)(nil)
)

// NewWSRemote returns a remote for the server at url. Call Connect before use.
func NewWSRemote(url string, opts ...Option) (*WSRemote, error) {
	cfg := newSettings(opts)
	paths, err := NewPathCache(cfg.pathCacheSize)
	if err != nil {
		return nil, err
	}
	session := uuid.NewString()
	return &WSRemote{
		url:       url,
		cfg:       cfg,
		logger:    cfg.logger.With(zap.String("server", url), zap.String("session", session)),
		session:   session,
		paths:     paths,
		pending:   make(map[uint64]chan *events.Message),
		listeners: make(map[uint64]func(*events.TransactionEvent)),
	}, nil
}

// Connect dials the server, retrying with exponential backoff, and starts
// the reader and keepalive goroutines.
func (r *WSRemote) Connect(ctx context.Context) error {
	r.mu.Lock()
	if r.conn != nil {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(200*time.Millisecond),
			backoff.WithMaxInterval(5*time.Second),
		), r.cfg.dialRetries),
		ctx,
	)
	conn, err := backoff.RetryNotifyWithData(func() (*websocket.Conn, error) {
		return r.dial(ctx)
	}, policy, func(err error, wait time.Duration) {
		r.logger.Warn("dial failed, retrying", zap.Error(err), zap.Duration("wait", wait))
	})
	if err != nil {
		return fmt.Errorf("connect %s: %w", r.url, err)
	}

	conn.SetReadLimit(maxMessageSize)
	r.extendReadDeadline(conn)
	conn.SetPongHandler(func(string) error {
		r.extendReadDeadline(conn)
		return nil
	})

	runCtx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(runCtx)

	r.mu.Lock()
	r.conn = conn
	r.cancel = cancel
	r.group = g
	r.done = make(chan struct{})
	r.mu.Unlock()

	g.Go(func() error { return r.readLoop(conn) })
	g.Go(func() error { return r.keepalive(gctx, conn) })

	r.logger.Info("connected")
	return nil
}

func (r *WSRemote) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, resp, err := r.cfg.dialer.DialContext(ctx, r.url, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		// a server that answers the handshake with a client error will not change its mind
		if resp != nil && resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	return conn, nil
}

func (r *WSRemote) extendReadDeadline(conn *websocket.Conn) {
	if r.cfg.pingInterval > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(2 * r.cfg.pingInterval))
	}
}

// Close closes the connection and waits for the background goroutines.
func (r *WSRemote) Close() error {
	r.mu.Lock()
	conn, cancel, g, done := r.conn, r.cancel, r.group, r.done
	r.conn, r.cancel, r.group = nil, nil, nil
	r.mu.Unlock()
	if conn == nil {
		return nil
	}
	close(done)

	r.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	r.writeMu.Unlock()
	err := conn.Close()
	cancel()
	_ = g.Wait()
	r.failPending()
	r.logger.Info("closed")
	return err
}

func (r *WSRemote) readLoop(conn *websocket.Conn) error {
	defer func() {
		if r.drop(conn) {
			r.failPending()
		}
	}()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				r.logger.Warn("connection lost", zap.Error(err))
			}
			return err
		}
		r.dispatch(data)
	}
}

// drop forgets conn after its reader stopped, unless Close or a later
// Connect already replaced it. Requests then fail with ErrClosed and Connect
// dials again.
func (r *WSRemote) drop(conn *websocket.Conn) bool {
	r.mu.Lock()
	if r.conn != conn {
		r.mu.Unlock()
		return false
	}
	cancel, done := r.cancel, r.done
	r.conn, r.cancel, r.group = nil, nil, nil
	r.mu.Unlock()

	cancel()
	close(done)
	_ = conn.Close()
	r.logger.Warn("disconnected")
	return true
}

// Done returns a channel closed when the current connection ends, by Close
// or because the server went away. It is closed already when not connected.
func (r *WSRemote) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return r.done
}

func (r *WSRemote) keepalive(ctx context.Context, conn *websocket.Conn) error {
	if r.cfg.pingInterval <= 0 {
		return nil
	}
	ticker := time.NewTicker(r.cfg.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			r.writeMu.Unlock()
			if err != nil {
				r.logger.Warn("ping failed", zap.Error(err))
				return err
			}
		}
	}
}

func (r *WSRemote) dispatch(data []byte) {
	var msg events.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		r.logger.Warn("malformed message", zap.Error(err))
		return
	}

	if msg.ID != nil {
		r.mu.Lock()
		ch, ok := r.pending[*msg.ID]
		delete(r.pending, *msg.ID)
		r.mu.Unlock()
		if ok {
			ch <- &msg
		}
		return
	}

	switch msg.Type {
	case events.TypeTransaction:
		var ev events.TransactionEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			r.logger.Warn("malformed transaction event", zap.Error(err))
			return
		}
		r.emit(&ev)
	default:
		r.logger.Debug("ignoring stream message", zap.String("type", msg.Type))
	}
}

func (r *WSRemote) emit(ev *events.TransactionEvent) {
	r.lmu.RLock()
	fns := make([]func(*events.TransactionEvent), 0, len(r.listeners))
	for _, fn := range r.listeners {
		fns = append(fns, fn)
	}
	r.lmu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
}

func (r *WSRemote) failPending() {
	r.mu.Lock()
	pending := r.pending
	r.pending = make(map[uint64]chan *events.Message)
	r.mu.Unlock()
	for _, ch := range pending {
		close(ch)
	}
}

// OnTransaction registers fn for transaction stream messages. Call
// SubscribeTransactions to have the server send them.
func (r *WSRemote) OnTransaction(fn func(*events.TransactionEvent)) func() {
	r.lmu.Lock()
	r.nextListener++
	id := r.nextListener
	r.listeners[id] = fn
	r.lmu.Unlock()
	return func() {
		r.lmu.Lock()
		delete(r.listeners, id)
		r.lmu.Unlock()
	}
}

// Request sends command with params and waits for its result.
func (r *WSRemote) Request(ctx context.Context, command string, params map[string]any) (json.RawMessage, error) {
	r.mu.Lock()
	conn := r.conn
	if conn == nil {
		r.mu.Unlock()
		return nil, ErrClosed
	}
	r.nextID++
	id := r.nextID
	ch := make(chan *events.Message, 1)
	r.pending[id] = ch
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.pending, id)
		r.mu.Unlock()
	}()

	msg := make(map[string]any, len(params)+2)
	for k, v := range params {
		msg[k] = v
	}
	msg["id"] = id
	msg["command"] = command

	r.writeMu.Lock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := conn.WriteJSON(msg)
	r.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", command, err)
	}

	if r.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.timeout)
		defer cancel()
	}

	select {
	case resp, ok := <-ch:
		if !ok {
			return nil, ErrClosed
		}
		if resp.Status == "error" || resp.Error != "" {
			return nil, &ResponseError{Code: resp.Error, Number: resp.ErrorCode, Message: resp.ErrorMessage}
		}
		return resp.Result, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", command, ctx.Err())
	}
}

// Submit sends a command and returns its result passed through filter.
func (r *WSRemote) Submit(ctx context.Context, method string, payload map[string]any, filter tx.Filter) (map[string]any, error) {
	raw, err := r.Request(ctx, method, payload)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: decode result: %w", method, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	if filter != nil {
		out = filter(out)
	}
	return out, nil
}

// RequestAccountInfo returns the account root of account.
func (r *WSRemote) RequestAccountInfo(ctx context.Context, account string) (*tx.AccountInfo, error) {
	raw, err := r.Request(ctx, "account_info", map[string]any{"account": account})
	if err != nil {
		return nil, err
	}
	var res struct {
		AccountData tx.AccountInfo `json:"account_data"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("account_info: decode result: %w", err)
	}
	return &res.AccountData, nil
}

// SubscribeTransactions asks the server to stream every transaction.
func (r *WSRemote) SubscribeTransactions(ctx context.Context) error {
	_, err := r.Request(ctx, "subscribe", map[string]any{"streams": []string{"transactions"}})
	return err
}

// UnsubscribeTransactions stops the transaction stream.
func (r *WSRemote) UnsubscribeTransactions(ctx context.Context) error {
	_, err := r.Request(ctx, "unsubscribe", map[string]any{"streams": []string{"transactions"}})
	return err
}

// PathRequest asks for the ways source can deliver Amount to destination.
type PathRequest struct {
	Source      string
	Destination string
	Amount      amount.Amount
}

// PathOption is one way of paying, identified by the key SetPath takes.
type PathOption struct {
	Key    string
	Choice amount.Input
	Paths  tx.PathSet
}

// FindPath runs path finding and caches every alternative.
func (r *WSRemote) FindPath(ctx context.Context, req PathRequest) ([]PathOption, error) {
	dest := any(req.Amount)
	if req.Amount.IsNative(r.cfg.token) {
		d, err := req.Amount.Decimal()
		if err != nil {
			return nil, fmt.Errorf("ripple_path_find: %w", err)
		}
		dest = amount.FromDisplay(d)
	}
	raw, err := r.Request(ctx, "ripple_path_find", map[string]any{
		"source_account":      req.Source,
		"destination_account": req.Destination,
		"destination_amount":  dest,
	})
	if err != nil {
		return nil, err
	}

	var res struct {
		Alternatives []struct {
			PathsComputed json.RawMessage `json:"paths_computed"`
			SourceAmount  json.RawMessage `json:"source_amount"`
		} `json:"alternatives"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("ripple_path_find: decode result: %w", err)
	}

	out := make([]PathOption, 0, len(res.Alternatives))
	for _, alt := range res.Alternatives {
		var paths tx.PathSet
		if len(alt.PathsComputed) > 0 {
			if err := json.Unmarshal(alt.PathsComputed, &paths); err != nil {
				return nil, fmt.Errorf("ripple_path_find: decode paths: %w", err)
			}
		}
		choice, err := amount.ParseInput(alt.SourceAmount)
		if err != nil {
			return nil, fmt.Errorf("ripple_path_find: decode source amount: %w", err)
		}
		pc := tx.PathChoice{Paths: paths, Choice: choice}
		key := r.paths.Put(alt.PathsComputed, pc)
		out = append(out, PathOption{Key: key, Choice: choice, Paths: paths})
	}
	return out, nil
}

// Path returns a cached path finding result.
func (r *WSRemote) Path(key string) (tx.PathChoice, bool) {
	return r.paths.Path(key)
}

func (r *WSRemote) Token() string { return r.cfg.token }

func (r *WSRemote) LocalSign() bool { return r.cfg.localSign }

func (r *WSRemote) Fee() amount.Drops { return r.cfg.fee }

func (r *WSRemote) PublicAPI() string { return r.cfg.publicAPI }

// Session returns the id this remote logs under.
func (r *WSRemote) Session() string { return r.session }

// IsClosed reports whether the remote has no open connection.
func (r *WSRemote) IsClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conn == nil
}
