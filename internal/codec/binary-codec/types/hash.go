package types

import (
	"encoding/hex"
	"fmt"
)

// Hash is a fixed length hex value: Hash128, Hash160 or Hash256.
type Hash struct {
	Length int
}

func (h *Hash) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: hash must be a hex string", ErrInvalidValue)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if len(b) != h.Length {
		return nil, fmt.Errorf("%w: hash must be %d bytes, got %d", ErrInvalidValue, h.Length, len(b))
	}
	return b, nil
}
