package cli

import (
	"context"
	"errors"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/remote"
	"github.com/LeJamon/goswtc/internal/tx"
	"go.uber.org/zap"
)

var (
	errOffline          = errors.New("offline: nothing can be sent")
	errSequenceRequired = errors.New("offline: --sequence is required")
	errNeedsNode        = errors.New("this command needs a websocket node (remote.server) and no --offline")
	errConnectionLost   = errors.New("connection to the node was lost")
)

// offlineRemote signs with the configured token and fee and never
// touches the network.
type offlineRemote struct {
	token string
	fee   amount.Drops
}

var (
	_ tx.FeeSource        = offlineRemote{}
	_ tx.SequenceDeclarer = offlineRemote{}
)

func (r offlineRemote) Token() string     { return r.token }
func (r offlineRemote) LocalSign() bool   { return true }
func (r offlineRemote) Fee() amount.Drops { return r.fee }

func (r offlineRemote) Submit(context.Context, string, map[string]any, tx.Filter) (map[string]any, error) {
	return nil, errOffline
}

func (r offlineRemote) SequenceSource() tx.SequenceSource {
	return tx.SequenceFunc(func(context.Context, string) (uint32, error) {
		return 0, errSequenceRequired
	})
}

// session is the remote a command runs against.
type session struct {
	client tx.Remote
	// ws is set when connected to a node.
	ws *remote.WSRemote
}

func (s *session) Close() {
	if s.ws != nil {
		if err := s.ws.Close(); err != nil {
			logger.Debug("close remote", zap.Error(err))
		}
	}
}

func remoteOptions() []remote.Option {
	return []remote.Option{
		remote.WithToken(cfg.Network.Token),
		remote.WithLocalSign(cfg.Remote.LocalSign),
		remote.WithFee(cfg.Network.FeeDrops()),
		remote.WithPublicAPI(cfg.Network.PublicAPI),
		remote.WithTimeout(cfg.Remote.Timeout),
		remote.WithPingInterval(cfg.Remote.PingInterval),
		remote.WithPathCacheSize(cfg.Remote.PathCache),
		remote.WithDialRetries(cfg.Remote.DialRetries),
		remote.WithLogger(logger),
	}
}

// openSession picks the remote from the flags and configuration: offline,
// the REST API when remote.api is set, a websocket node otherwise.
func openSession(ctx context.Context) (*session, error) {
	switch {
	case offline:
		return &session{client: offlineRemote{token: cfg.Network.Token, fee: cfg.Network.FeeDrops()}}, nil
	case cfg.Remote.UsesAPI():
		return &session{client: remote.NewAPIRemote(cfg.Remote.API, remoteOptions()...)}, nil
	default:
		return openNode(ctx)
	}
}

func openNode(ctx context.Context) (*session, error) {
	if offline || cfg.Remote.Server == "" {
		return nil, errNeedsNode
	}
	ws, err := remote.NewWSRemote(cfg.Remote.Server, remoteOptions()...)
	if err != nil {
		return nil, err
	}
	if err := ws.Connect(ctx); err != nil {
		return nil, err
	}
	return &session{client: ws, ws: ws}, nil
}
