// Package amount models base-currency and issued-currency amounts and the
// conversions between minor units and display units.
package amount

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	addresscodec "github.com/LeJamon/goswtc/internal/codec/address-codec"
	"github.com/shopspring/decimal"
)

const (
	// DefaultToken is the base currency symbol used when a remote does not name one.
	DefaultToken = "SWT"

	// MinorUnitsPerDisplay is the number of minor units in one display unit.
	MinorUnitsPerDisplay = 1_000_000
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrTooLarge      = errors.New("invalid amount: amount's maximum value is 100000000000")

	scale      = decimal.NewFromInt(MinorUnitsPerDisplay)
	maxValue   = decimal.NewFromInt(100_000_000_000)
	slippage   = decimal.RequireFromString("1.0001")
	currencyRe = regexp.MustCompile(`^([a-zA-Z0-9]{3,6}|[A-F0-9]{40})$`)
)

// Input is an amount as supplied by callers: either a Scalar holding base
// currency minor units or an Amount object.
type Input interface {
	isInput()
}

// Scalar is a base currency amount in minor units, as a numeric string.
type Scalar string

func (Scalar) isInput() {}

// Amount is a currency amount in display units.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
}

func (Amount) isInput() {}

// IsNative reports whether a is denominated in the base currency token.
func (a Amount) IsNative(token string) bool {
	return a.Currency == token
}

// Decimal returns the parsed value.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(a.Value)
}

// Drops is a base currency amount in minor units. It is encoded as a JSON
// string, the way the network reports native amounts.
type Drops int64

func (d Drops) String() string {
	return strconv.FormatInt(int64(d), 10)
}

func (d Drops) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Drops) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	*d = Drops(v)
	return nil
}

// Display converts minor units to display units.
func (d Drops) Display() decimal.Decimal {
	return decimal.NewFromInt(int64(d)).Div(scale)
}

// FromDisplay converts display units to minor units, truncating any
// fraction of a minor unit.
func FromDisplay(v decimal.Decimal) Drops {
	return Drops(v.Mul(scale).Truncate(0).IntPart())
}

// IsValidCurrency reports whether c is a 3 to 6 character code or a
// 40 character hex currency.
func IsValidCurrency(c string) bool {
	return currencyRe.MatchString(c)
}

// IsValidAmount reports whether a has a numeric value, a valid currency and
// an issuer that fits the currency: none for the base token, a valid
// address otherwise.
func IsValidAmount(a Amount, token string) bool {
	if _, err := decimal.NewFromString(a.Value); err != nil {
		return false
	}
	if !IsValidCurrency(a.Currency) {
		return false
	}
	if a.IsNative(token) {
		return a.Issuer == ""
	}
	return addresscodec.IsValidAddress(a.Issuer)
}

// IsValidScalar reports whether s parses as a non-zero number.
func IsValidScalar(s Scalar) bool {
	v, err := decimal.NewFromString(string(s))
	return err == nil && !v.IsZero()
}

// IsValid reports whether in is a valid scalar or amount object.
func IsValid(in Input, token string) bool {
	switch v := in.(type) {
	case Scalar:
		return IsValidScalar(v)
	case Amount:
		return IsValidAmount(v, token)
	case *Amount:
		return v != nil && IsValidAmount(*v, token)
	default:
		return false
	}
}

// ToAmount converts a valid input to its field representation: Drops for
// the base currency, the Amount itself for issued currencies. Values above
// 10^11 display units are rejected.
func ToAmount(in Input, token string) (any, error) {
	switch v := in.(type) {
	case Scalar:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return nil, ErrInvalidAmount
		}
		return Drops(d.Truncate(0).IntPart()), nil
	case *Amount:
		if v == nil {
			return nil, ErrInvalidAmount
		}
		return ToAmount(*v, token)
	case Amount:
		d, err := v.Decimal()
		if err != nil {
			return nil, ErrInvalidAmount
		}
		if d.GreaterThan(maxValue) {
			return nil, ErrTooLarge
		}
		if v.IsNative(token) {
			return FromDisplay(d), nil
		}
		return v, nil
	default:
		return nil, ErrInvalidAmount
	}
}

// WithSlippage inflates a path choice by 1.0001. Scalars are truncated to
// whole minor units.
func WithSlippage(in Input) (Input, error) {
	switch v := in.(type) {
	case Scalar:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return nil, ErrInvalidAmount
		}
		return Scalar(d.Mul(slippage).Truncate(0).String()), nil
	case Amount:
		d, err := v.Decimal()
		if err != nil {
			return nil, ErrInvalidAmount
		}
		v.Value = d.Mul(slippage).String()
		return v, nil
	default:
		return nil, ErrInvalidAmount
	}
}

// ParseInput decodes a JSON amount: a string is a Scalar, an object an Amount.
func ParseInput(raw json.RawMessage) (Input, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrInvalidAmount
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return Scalar(s), nil
	case '{':
		var a Amount
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return a, nil
	default:
		if _, err := decimal.NewFromString(string(raw)); err != nil {
			return nil, ErrInvalidAmount
		}
		return Scalar(raw), nil
	}
}
