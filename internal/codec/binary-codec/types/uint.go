package types

import (
	"encoding/binary"
	"regexp"

	"github.com/LeJamon/goswtc/internal/codec/binary-codec/definitions"
)

var numericRe = regexp.MustCompile(`^[0-9]+$`)

// UInt8 represents an 8-bit unsigned integer.
type UInt8 struct{}

func (u *UInt8) FromJSON(value any) ([]byte, error) {
	v, err := toUint64(value, 8)
	if err != nil {
		return nil, err
	}
	return []byte{byte(v)}, nil
}

// UInt16 represents a 16-bit unsigned integer. Transaction type names are
// resolved to their codes.
type UInt16 struct{}

func (u *UInt16) FromJSON(value any) ([]byte, error) {
	if name, ok := value.(string); ok && !numericRe.MatchString(name) {
		code, err := definitions.Get().GetTransactionTypeCodeByTransactionTypeName(name)
		if err != nil {
			return nil, err
		}
		value = code
	}

	v, err := toUint64(value, 16)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint16(nil, uint16(v)), nil
}

// UInt32 represents a 32-bit unsigned integer.
type UInt32 struct{}

func (u *UInt32) FromJSON(value any) ([]byte, error) {
	v, err := toUint64(value, 32)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint32(nil, uint32(v)), nil
}
