//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
)

// UInt64 represents a 64-bit unsigned integer.
type UInt64 struct{}

// ErrInvalidUInt64String is returned when a string value is not hex.
var ErrInvalidUInt64String = errors.New("invalid UInt64 string, value should be a hex string of at most 16 characters")

// FromJSON encodes a 64-bit unsigned integer. Strings are read as hex
// without leading zeros ("a" for 10); numbers are taken as is.
func (u *UInt64) FromJSON(value any) ([]byte, error) {
	strVal, ok := value.(string)
	if !ok {
		v, err := toUint64(value, 64)
		if err != nil {
			return nil, err
		}
		return binary.BigEndian.AppendUint64(nil, v), nil
	}

	if len(strVal) == 0 || len(strVal) > 16 {
		return nil, ErrInvalidUInt64String
	}
	strVal = strings.Repeat("0", 16-len(strVal)) + strVal
	decoded, err := hex.DecodeString(strVal)
	if err != nil {
		return nil, ErrInvalidUInt64String
	}
	return decoded, nil
}
