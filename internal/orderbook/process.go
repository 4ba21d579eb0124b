package orderbook

import (
	"encoding/hex"
	"strings"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/events"
	"github.com/LeJamon/goswtc/internal/tx"
	"github.com/shopspring/decimal"
)

// Summary types.
const (
	SummarySent        = "sent"
	SummaryReceived    = "received"
	SummaryConvert     = "convert"
	SummaryTrusted     = "trusted"
	SummaryTrusting    = "trusting"
	SummaryOfferNew    = "offernew"
	SummaryOfferCancel = "offercancel"
	SummaryUnknown     = "unknown"
)

// Effect kinds.
const (
	EffectOfferCreated         = "offer_created"
	EffectOfferPartiallyFunded = "offer_partially_funded"
	EffectOfferFunded          = "offer_funded"
	EffectOfferCancelled       = "offer_cancelled"
)

// Summary is a transaction seen from one account.
type Summary struct {
	Type         string         `json:"type"`
	Hash         string         `json:"hash,omitempty"`
	Fee          string         `json:"fee,omitempty"`
	Result       string         `json:"result,omitempty"`
	Counterparty string         `json:"counterparty,omitempty"`
	Amount       *amount.Amount `json:"amount,omitempty"`
	OfferType    string         `json:"offertype,omitempty"`
	Gets         *amount.Amount `json:"gets,omitempty"`
	Pays         *amount.Amount `json:"pays,omitempty"`
	Seq          uint32         `json:"seq,omitempty"`
	OfferSeq     uint32         `json:"offerseq,omitempty"`
	Memos        []string       `json:"memos,omitempty"`
	Effects      []Effect       `json:"effects,omitempty"`
}

// Effect is a change to an offer caused by the transaction.
type Effect struct {
	Effect    string         `json:"effect"`
	Account   string         `json:"account"`
	OfferType string         `json:"type"`
	Seq       uint32         `json:"seq"`
	Gets      *amount.Amount `json:"gets,omitempty"`
	Pays      *amount.Amount `json:"pays,omitempty"`
	Got       *amount.Amount `json:"got,omitempty"`
	Paid      *amount.Amount `json:"paid,omitempty"`
}

// ProcessTx summarizes ev's transaction for account and stores the result
// in ev.Summary.
func ProcessTx(ev *Event, account, token string) *Event {
	t := ev.Tx
	s := &Summary{
		Type: summaryType(t, account),
		Hash: str(t, "hash"),
	}
	if fee, ok := parseAmount(t["Fee"], token); ok {
		s.Fee = fee.Value
	}
	if ev.Meta != nil {
		s.Result = ev.Meta.TransactionResult
	}

	switch s.Type {
	case SummarySent:
		s.Counterparty = str(t, "Destination")
		s.Amount, _ = parseAmount(t["Amount"], token)
	case SummaryReceived:
		s.Counterparty = str(t, "Account")
		s.Amount, _ = parseAmount(t["Amount"], token)
	case SummaryConvert:
		s.Amount, _ = parseAmount(t["Amount"], token)
	case SummaryTrusted, SummaryTrusting:
		s.Amount, _ = parseAmount(t["LimitAmount"], token)
		if s.Type == SummaryTrusted && s.Amount != nil {
			s.Counterparty = s.Amount.Issuer
		} else {
			s.Counterparty = str(t, "Account")
		}
	case SummaryOfferNew:
		s.OfferType = offerType(t["Flags"])
		s.Gets, _ = parseAmount(t["TakerGets"], token)
		s.Pays, _ = parseAmount(t["TakerPays"], token)
		s.Seq = num(t["Sequence"])
	case SummaryOfferCancel:
		s.OfferSeq = num(t["OfferSequence"])
	}

	s.Memos = memos(t)
	if ev.Meta != nil {
		s.Effects = offerEffects(ev.Meta, token)
	}
	ev.Summary = s
	return ev
}

func summaryType(t map[string]any, account string) string {
	src, dst := str(t, "Account"), str(t, "Destination")
	switch str(t, "TransactionType") {
	case tx.TypePayment:
		switch {
		case src == account && dst == account:
			return SummaryConvert
		case src == account:
			return SummarySent
		case dst == account:
			return SummaryReceived
		}
		return SummaryUnknown
	case tx.TypeOfferCreate:
		return SummaryOfferNew
	case tx.TypeOfferCancel:
		return SummaryOfferCancel
	case tx.TypeTrustSet:
		if src == account {
			return SummaryTrusted
		}
		return SummaryTrusting
	case tx.TypeRelationSet, tx.TypeRelationDel, tx.TypeAccountSet, tx.TypeSetRegularKey,
		tx.TypeBrokerage, tx.TypeConfigContract:
		return strings.ToLower(str(t, "TransactionType"))
	}
	return SummaryUnknown
}

func offerEffects(meta *events.Meta, token string) []Effect {
	var out []Effect
	for _, an := range meta.AffectedNodes {
		node, kind := an.Node()
		if node == nil || node.LedgerEntryType != "Offer" {
			continue
		}
		fields := node.Fields()
		e := Effect{
			Account:   str(fields, "Account"),
			OfferType: offerType(fields["Flags"]),
			Seq:       num(fields["Sequence"]),
		}
		e.Gets, _ = parseAmount(fields["TakerGets"], token)
		e.Pays, _ = parseAmount(fields["TakerPays"], token)

		prevGets, hasPrev := parseAmount(node.PreviousFields["TakerGets"], token)
		prevPays, _ := parseAmount(node.PreviousFields["TakerPays"], token)
		switch {
		case kind == events.Created:
			e.Effect = EffectOfferCreated
		case kind == events.Modified && hasPrev:
			e.Effect = EffectOfferPartiallyFunded
			e.Got, e.Paid = sub(prevGets, e.Gets), sub(prevPays, e.Pays)
		case kind == events.Deleted && hasPrev:
			e.Effect = EffectOfferFunded
			e.Got, e.Paid = sub(prevGets, e.Gets), sub(prevPays, e.Pays)
		case kind == events.Deleted:
			e.Effect = EffectOfferCancelled
		default:
			continue
		}
		out = append(out, e)
	}
	return out
}

// parseAmount reads a metadata amount: a string of minor units of the base
// currency or a {value, currency, issuer} object.
func parseAmount(v any, token string) (*amount.Amount, bool) {
	switch a := v.(type) {
	case string:
		d, err := decimal.NewFromString(a)
		if err != nil {
			return nil, false
		}
		return &amount.Amount{
			Value:    d.Div(decimal.NewFromInt(amount.MinorUnitsPerDisplay)).String(),
			Currency: token,
		}, true
	case map[string]any:
		value, _ := a["value"].(string)
		currency, _ := a["currency"].(string)
		issuer, _ := a["issuer"].(string)
		if currency == "" {
			return nil, false
		}
		return &amount.Amount{Value: value, Currency: currency, Issuer: issuer}, true
	}
	return nil, false
}

func sub(a, b *amount.Amount) *amount.Amount {
	if a == nil || b == nil {
		return nil
	}
	x, err := decimal.NewFromString(a.Value)
	if err != nil {
		return nil
	}
	y, err := decimal.NewFromString(b.Value)
	if err != nil {
		return nil
	}
	return &amount.Amount{Value: x.Sub(y).String(), Currency: a.Currency, Issuer: a.Issuer}
}

func offerType(flags any) string {
	if num(flags)&tx.TfSell != 0 {
		return tx.OfferSell
	}
	return tx.OfferBuy
}

func memos(t map[string]any) []string {
	list, _ := t["Memos"].([]any)
	var out []string
	for _, item := range list {
		wrapper, _ := item.(map[string]any)
		memo, _ := wrapper["Memo"].(map[string]any)
		data, _ := memo["MemoData"].(string)
		if b, err := hex.DecodeString(data); err == nil {
			out = append(out, string(b))
		} else {
			out = append(out, data)
		}
	}
	return out
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(v any) uint32 {
	switch n := v.(type) {
	case float64:
		return uint32(n)
	case uint32:
		return n
	case int:
		return uint32(n)
	}
	return 0
}
