package types

import (
	"fmt"

	addresscodec "github.com/LeJamon/goswtc/internal/codec/address-codec"
)

// AccountID is a 20 byte account identifier written from its address.
type AccountID struct{}

func (a *AccountID) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case [20]byte:
		return v[:], nil
	case string:
		id, err := addresscodec.DecodeAddress(v)
		if err != nil {
			return nil, err
		}
		return id[:], nil
	default:
		return nil, fmt.Errorf("%w: account must be an address, got %T", ErrInvalidValue, value)
	}
}
