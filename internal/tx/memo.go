package tx

import (
	"encoding/hex"
	"strings"
)

// Memo is the body of a memo entry. MemoData holds upper case hex of the
// UTF-8 text until the transaction is normalized for signing, then the text.
type Memo struct {
	MemoType   string `json:"MemoType,omitempty"`
	MemoData   string `json:"MemoData,omitempty"`
	MemoFormat string `json:"MemoFormat,omitempty"`
}

func (m Memo) fields() map[string]any {
	out := make(map[string]any, 3)
	if m.MemoType != "" {
		out["MemoType"] = m.MemoType
	}
	if m.MemoData != "" {
		out["MemoData"] = m.MemoData
	}
	if m.MemoFormat != "" {
		out["MemoFormat"] = m.MemoFormat
	}
	return out
}

// MemoWrapper wraps a Memo for serialization.
type MemoWrapper struct {
	Memo Memo `json:"Memo"`
}

// Arg is a contract call argument, hex encoded.
type Arg struct {
	Parameter string `json:"Parameter"`
}

// ArgWrapper wraps an Arg for serialization.
type ArgWrapper struct {
	Arg Arg `json:"Arg"`
}

// PathStep is one hop of a payment path.
type PathStep struct {
	Account  string `json:"account,omitempty"`
	Currency string `json:"currency,omitempty"`
	Issuer   string `json:"issuer,omitempty"`
}

func (s PathStep) fields() map[string]any {
	out := make(map[string]any, 3)
	if s.Account != "" {
		out["account"] = s.Account
	}
	if s.Currency != "" {
		out["currency"] = s.Currency
	}
	if s.Issuer != "" {
		out["issuer"] = s.Issuer
	}
	return out
}

// PathSet is the set of alternative paths of a payment.
type PathSet [][]PathStep

func stringToHex(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

func hexToString(h string) (string, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
