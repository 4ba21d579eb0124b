package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	addresscodec "github.com/LeJamon/goswtc/internal/codec/address-codec"
	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/shopspring/decimal"
)

const (
	minMantissa = 1_000_000_000_000_000
	maxMantissa = 9_999_999_999_999_999
	minExponent = -96
	maxExponent = 80

	// maxDrops is the largest native amount in minor units.
	maxDrops = 100_000_000_000_000_000

	notNativeBit = uint64(1) << 63
	positiveBit  = uint64(1) << 62
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrAmountOutOfRange = errors.New("amount out of range")

	bigMinMantissa = big.NewInt(minMantissa)
	bigMaxMantissa = big.NewInt(maxMantissa)
	bigTen         = big.NewInt(10)
)

// Amount encodes native amounts as 8 bytes and issued amounts as 8 bytes of
// mantissa and exponent followed by currency and issuer.
//
// Native values are display units unless given as amount.Drops.
type Amount struct {
	NativeCurrency string
}

func (a *Amount) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case amount.Drops:
		return encodeNative(int64(v))
	case decimal.Decimal:
		return encodeNative(int64(amount.FromDisplay(v)))
	case amount.Amount:
		return a.fromObject(v)
	case *amount.Amount:
		if v == nil {
			return nil, ErrInvalidAmount
		}
		return a.fromObject(*v)
	}

	if m, ok := asMap(value); ok {
		obj := amount.Amount{}
		obj.Value, _ = stringify(m["value"])
		obj.Currency, _ = m["currency"].(string)
		obj.Issuer, _ = m["issuer"].(string)
		return a.fromObject(obj)
	}

	s, ok := stringify(value)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrInvalidAmount, value)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	return encodeNative(int64(amount.FromDisplay(d)))
}

func (a *Amount) fromObject(obj amount.Amount) ([]byte, error) {
	d, err := decimal.NewFromString(obj.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if obj.Currency == a.NativeCurrency && obj.Issuer == "" {
		return encodeNative(int64(amount.FromDisplay(d)))
	}

	value, err := encodeIssuedValue(d)
	if err != nil {
		return nil, err
	}
	currency, err := encodeCurrency(obj.Currency, a.NativeCurrency)
	if err != nil {
		return nil, err
	}
	issuer, err := addresscodec.DecodeAddress(obj.Issuer)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 48)
	out = append(out, value...)
	out = append(out, currency...)
	out = append(out, issuer[:]...)
	return out, nil
}

func encodeNative(drops int64) ([]byte, error) {
	if drops < 0 || drops > maxDrops {
		return nil, fmt.Errorf("%w: %d drops", ErrAmountOutOfRange, drops)
	}
	return binary.BigEndian.AppendUint64(nil, uint64(drops)|positiveBit), nil
}

// encodeIssuedValue normalizes the mantissa into [10^15, 10^16) and packs
// sign, exponent and mantissa into 8 bytes.
func encodeIssuedValue(d decimal.Decimal) ([]byte, error) {
	if d.IsZero() {
		return binary.BigEndian.AppendUint64(nil, notNativeBit), nil
	}

	negative := d.IsNegative()
	mantissa := new(big.Int).Abs(d.Coefficient())
	exponent := int(d.Exponent())

	for mantissa.Cmp(bigMinMantissa) < 0 {
		mantissa.Mul(mantissa, bigTen)
		exponent--
	}
	for mantissa.Cmp(bigMaxMantissa) > 0 {
		mantissa.Quo(mantissa, bigTen)
		exponent++
	}

	if exponent < minExponent {
		return binary.BigEndian.AppendUint64(nil, notNativeBit), nil
	}
	if exponent > maxExponent {
		return nil, fmt.Errorf("%w: exponent %d", ErrAmountOutOfRange, exponent)
	}

	bits := notNativeBit | uint64(exponent+97)<<54 | mantissa.Uint64()
	if !negative {
		bits |= positiveBit
	}
	return binary.BigEndian.AppendUint64(nil, bits), nil
}

// encodeCurrency writes a 20 byte currency: zeros for the native code, the
// raw bytes of a 40 character hex code, otherwise the ASCII code at offset 12.
func encodeCurrency(code, native string) ([]byte, error) {
	out := make([]byte, 20)
	switch {
	case code == native:
		return out, nil
	case len(code) == 40:
		b, err := hex.DecodeString(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCurrency, code)
		}
		return b, nil
	case len(code) >= 3 && len(code) <= 8:
		copy(out[12:], code)
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case float64:
		return decimal.NewFromFloat(v).String(), true
	case int:
		return fmt.Sprint(v), true
	case int64:
		return fmt.Sprint(v), true
	case uint32:
		return fmt.Sprint(v), true
	case uint64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}
