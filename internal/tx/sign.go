package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/LeJamon/goswtc/internal/amount"
	binarycodec "github.com/LeJamon/goswtc/internal/codec/binary-codec"
	"github.com/LeJamon/goswtc/internal/crypto/keypair"
	"github.com/LeJamon/goswtc/internal/protocol"
)

// ErrSignPanic wraps a panic raised while signing.
var ErrSignPanic = errors.New("signing panicked")

// Wallet signs with one key.
type Wallet interface {
	PublicKey() string
	SignHash(hash []byte) (string, error)
}

// KeyFactory creates wallets from secrets.
type KeyFactory interface {
	FromSecret(secret string) (Wallet, error)
	IsValidSecret(secret string) bool
}

// Encoded is a serialized transaction.
type Encoded interface {
	Hash(prefix uint32) []byte
	Hex() string
}

// Serializer encodes fields to the wire format.
type Serializer interface {
	Encode(fields *Fields) (Encoded, error)
}

type keypairFactory struct{}

func (keypairFactory) FromSecret(secret string) (Wallet, error) {
	return keypair.FromSecret(secret)
}

func (keypairFactory) IsValidSecret(secret string) bool {
	return keypair.IsValidSecret(secret)
}

var defaultKeys KeyFactory = keypairFactory{}

type codecSerializer struct {
	codec *binarycodec.Codec
}

func (s codecSerializer) Encode(fields *Fields) (Encoded, error) {
	return s.codec.FromJSON(fields.Map())
}

// NewSerializer returns the binary codec serializer for a base currency.
func NewSerializer(token string) Serializer {
	return codecSerializer{codec: binarycodec.New(token)}
}

// Option adjusts a Sign or Submit call.
type Option func(*callOptions)

type callOptions struct {
	secret     *string
	memo       *string
	sequence   *string
	keys       KeyFactory
	serializer Serializer
	filter     Filter
}

// WithSecret sets the secret before signing.
func WithSecret(secret string) Option {
	return func(o *callOptions) { o.secret = &secret }
}

// WithMemo adds a memo before signing.
func WithMemo(text string) Option {
	return func(o *callOptions) { o.memo = &text }
}

// WithSequence sets the sequence before signing.
func WithSequence(seq string) Option {
	return func(o *callOptions) { o.sequence = &seq }
}

// WithKeys replaces the wallet implementation.
func WithKeys(keys KeyFactory) Option {
	return func(o *callOptions) { o.keys = keys }
}

// WithSerializer replaces the serializer.
func WithSerializer(s Serializer) Option {
	return func(o *callOptions) { o.serializer = s }
}

// WithFilter post-processes the submit result.
func WithFilter(f Filter) Option {
	return func(o *callOptions) { o.filter = f }
}

func (t *Transaction) apply(opts []Option) *callOptions {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.keys != nil {
		t.keys = o.keys
	}
	if o.serializer == nil {
		o.serializer = NewSerializer(t.token)
	}
	if o.filter == nil {
		o.filter = func(v map[string]any) map[string]any { return v }
	}
	if o.secret != nil {
		t.SetSecret(*o.secret)
	}
	if o.memo != nil {
		t.AddMemo(*o.memo)
	}
	if o.sequence != nil {
		t.SetSequence(*o.sequence)
	}
	return o
}

// Sign resolves the sequence if needed, signs the transaction and returns
// the blob. Errors recorded by builders and mutators are returned first.
func (t *Transaction) Sign(ctx context.Context, opts ...Option) (string, error) {
	o := t.apply(opts)
	if err := t.firstError(); err != nil {
		return "", err
	}
	return t.sign(ctx, o)
}

func (t *Transaction) sign(ctx context.Context, o *callOptions) (string, error) {
	if t.secret == "" {
		return "", ErrNoSecret
	}
	if _, ok := t.Sequence(); !ok {
		seq, err := t.sequence.Sequence(ctx, t.Account())
		if err != nil {
			return "", fmt.Errorf("resolve sequence: %w", err)
		}
		t.set("Sequence", seq)
	}
	return t.signing(o.serializer)
}

func (t *Transaction) signing(ser Serializer) (blob string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSignPanic, r)
		}
	}()

	if err := t.normalize(); err != nil {
		return "", err
	}
	wallet, err := t.keys.FromSecret(t.secret)
	if err != nil {
		return "", err
	}

	t.fields.Delete("TxnSignature")
	t.fields.Delete("blob")
	t.localSigned = false
	t.set("SigningPubKey", wallet.PublicKey())

	enc, err := ser.Encode(t.fields)
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	sig, err := wallet.SignHash(enc.Hash(protocol.HashPrefixTxSign))
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}
	t.set("TxnSignature", sig)

	enc, err = ser.Encode(t.fields)
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	blob = enc.Hex()
	t.set("blob", blob)
	t.localSigned = true
	return blob, nil
}

var normalizedAmounts = []string{"Fee", "Amount", "SendMax", "TakerPays", "TakerGets"}

// normalize converts base currency amounts to display units and memo data
// back to text, the form the serializer takes.
func (t *Transaction) normalize() error {
	for _, name := range normalizedAmounts {
		if d, ok := t.fields.values[name].(amount.Drops); ok {
			t.fields.values[name] = d.Display()
		}
	}

	memos, _ := t.fields.values["Memos"].([]MemoWrapper)
	for i := t.memosDecoded; i < len(memos); i++ {
		text, err := hexToString(memos[i].Memo.MemoData)
		if err != nil {
			return fmt.Errorf("memo %d: %w", i, err)
		}
		memos[i].Memo.MemoData = text
	}
	t.memosDecoded = len(memos)
	return nil
}
