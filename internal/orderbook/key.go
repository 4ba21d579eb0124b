package orderbook

import (
	"errors"
	"strings"

	addresscodec "github.com/LeJamon/goswtc/internal/codec/address-codec"
	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/events"
)

// ErrInvalidKey is returned for keys that do not name a currency pair.
var ErrInvalidKey = errors.New("invalid key")

// Side is one currency of a pair. The base currency has no issuer.
type Side struct {
	Currency string
	Issuer   string
}

func (s Side) key(token string) string {
	if s.Currency == token {
		return token
	}
	return s.Currency + "/" + s.Issuer
}

// Pair is the two sides of a book: what offers in it give and take.
type Pair struct {
	Gets Side
	Pays Side
}

// Key returns the canonical key of the pair.
func (p Pair) Key(token string) string {
	return p.Gets.key(token) + ":" + p.Pays.key(token)
}

// Reverse returns the opposite book.
func (p Pair) Reverse() Pair {
	return Pair{Gets: p.Pays, Pays: p.Gets}
}

// ParseKey parses a "currency/issuer:currency/issuer" key. The base
// currency is written as its bare symbol; "SWT/" is accepted too.
func ParseKey(key, token string) (Pair, error) {
	gets, pays, ok := strings.Cut(key, ":")
	if !ok || strings.Contains(pays, ":") {
		return Pair{}, ErrInvalidKey
	}
	g, ok := parseSide(gets, token)
	if !ok {
		return Pair{}, ErrInvalidKey
	}
	p, ok := parseSide(pays, token)
	if !ok {
		return Pair{}, ErrInvalidKey
	}
	return Pair{Gets: g, Pays: p}, nil
}

func parseSide(s, token string) (Side, bool) {
	if s == token || s == token+"/" {
		return Side{Currency: token}, true
	}
	currency, issuer, ok := strings.Cut(s, "/")
	if !ok || !amount.IsValidCurrency(currency) || !addresscodec.IsValidAddress(issuer) {
		return Side{}, false
	}
	return Side{Currency: currency, Issuer: issuer}, true
}

// AffectedBooks returns the keys of the books an event touched, each book
// followed by its reverse, without duplicates.
func AffectedBooks(ev *events.TransactionEvent, token string) []string {
	if ev == nil || ev.Meta == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var keys []string
	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for _, an := range ev.Meta.AffectedNodes {
		node, _ := an.Node()
		if node == nil || node.LedgerEntryType != "Offer" {
			continue
		}
		fields := node.Fields()
		gets, ok := sideOf(fields["TakerGets"], token)
		if !ok {
			continue
		}
		pays, ok := sideOf(fields["TakerPays"], token)
		if !ok {
			continue
		}
		pair := Pair{Gets: gets, Pays: pays}
		add(pair.Key(token))
		add(pair.Reverse().Key(token))
	}
	return keys
}

func sideOf(v any, token string) (Side, bool) {
	a, ok := parseAmount(v, token)
	if !ok {
		return Side{}, false
	}
	if a.Currency == token {
		return Side{Currency: token}, true
	}
	return Side{Currency: a.Currency, Issuer: a.Issuer}, true
}
