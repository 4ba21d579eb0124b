package types

import (
	"encoding/hex"
	"fmt"
)

// textFields hold plain text at signing time and are written as UTF-8.
var textFields = map[string]bool{
	"MemoType":   true,
	"MemoData":   true,
	"MemoFormat": true,
}

// Blob is a variable length hex value.
type Blob struct {
	// Text writes the string bytes instead of decoding hex.
	Text bool
}

func (b *Blob) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		if b.Text {
			return []byte(v), nil
		}
		decoded, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: blob must be a string, got %T", ErrInvalidValue, value)
	}
}
