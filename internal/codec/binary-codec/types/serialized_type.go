// Package types holds the per-type encoders of the binary codec.
//
//revive:disable:var-naming
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// DefaultNativeCurrency is the base currency code of the network.
const DefaultNativeCurrency = "SWT"

var (
	ErrUnsupportedType = errors.New("unsupported serialized type")
	ErrInvalidValue    = errors.New("invalid value")
)

// SerializedType encodes a JSON-like value to its wire bytes, without the
// field id or length prefix.
type SerializedType interface {
	FromJSON(value any) ([]byte, error)
}

// Options carries network specific encoding choices.
type Options struct {
	// NativeCurrency is the code whose amounts are encoded in the native form.
	NativeCurrency string
	// SigningOnly drops fields that are not signing fields.
	SigningOnly bool
}

func (o Options) native() string {
	if o.NativeCurrency == "" {
		return DefaultNativeCurrency
	}
	return o.NativeCurrency
}

// GetSerializedType returns the encoder for a definitions type name.
func GetSerializedType(typeName string, opts Options) (SerializedType, error) {
	switch typeName {
	case "UInt8":
		return &UInt8{}, nil
	case "UInt16":
		return &UInt16{}, nil
	case "UInt32":
		return &UInt32{}, nil
	case "UInt64":
		return &UInt64{}, nil
	case "Hash128":
		return &Hash{Length: 16}, nil
	case "Hash160":
		return &Hash{Length: 20}, nil
	case "Hash256":
		return &Hash{Length: 32}, nil
	case "Amount":
		return &Amount{NativeCurrency: opts.native()}, nil
	case "Blob":
		return &Blob{}, nil
	case "AccountID":
		return &AccountID{}, nil
	case "STObject":
		return &STObject{Options: opts}, nil
	case "STArray":
		return &STArray{Options: opts}, nil
	case "PathSet":
		return &PathSet{NativeCurrency: opts.native()}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typeName)
	}
}

// toUint64 accepts Go integers, integral floats, json.Number and decimal strings.
func toUint64(value any, bits int) (uint64, error) {
	var v uint64
	switch n := value.(type) {
	case int:
		if n < 0 {
			return 0, ErrInvalidValue
		}
		v = uint64(n)
	case int32:
		if n < 0 {
			return 0, ErrInvalidValue
		}
		v = uint64(n)
	case int64:
		if n < 0 {
			return 0, ErrInvalidValue
		}
		v = uint64(n)
	case uint:
		v = uint64(n)
	case uint8:
		v = uint64(n)
	case uint16:
		v = uint64(n)
	case uint32:
		v = uint64(n)
	case uint64:
		v = n
	case float64:
		if n < 0 || n != math.Trunc(n) || n > math.MaxUint64 {
			return 0, ErrInvalidValue
		}
		v = uint64(n)
	case json.Number:
		return toUint64(string(n), bits)
	case string:
		parsed, err := strconv.ParseUint(n, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		v = parsed
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidValue, value)
	}

	if bits < 64 && v >= 1<<bits {
		return 0, fmt.Errorf("%w: %d overflows %d bits", ErrInvalidValue, v, bits)
	}
	return v, nil
}

// asSlice flattens any slice value into []any.
func asSlice(value any) ([]any, bool) {
	if s, ok := value.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	default:
		return nil, false
	}
}
