package addresscodec

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goswtc/internal/crypto"
)

const (
	// AccountVersion prefixes a 20-byte account ID.
	AccountVersion byte = 0x00
	// SeedVersion prefixes 16 bytes of family seed entropy.
	SeedVersion byte = 0x21

	// SeedLength is the size of family seed entropy in bytes.
	SeedLength = 16
)

var (
	ErrInvalidEncoding = errors.New("invalid base58 encoding")
	ErrChecksum        = errors.New("checksum mismatch")
	ErrInvalidVersion  = errors.New("unexpected version byte")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidSeed     = errors.New("invalid seed")
)

// EncodeAddress encodes a 20-byte account ID as a 'j' address.
func EncodeAddress(id [crypto.AccountIDSize]byte) string {
	return EncodeCheck(AccountVersion, id[:])
}

// DecodeAddress returns the account ID behind an address.
func DecodeAddress(address string) ([crypto.AccountIDSize]byte, error) {
	var id [crypto.AccountIDSize]byte

	payload, err := DecodeCheck(address, AccountVersion)
	if err != nil {
		return id, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if len(payload) != crypto.AccountIDSize {
		return id, ErrInvalidAddress
	}
	copy(id[:], payload)
	return id, nil
}

// IsValidAddress reports whether s is a well formed account address.
func IsValidAddress(s string) bool {
	_, err := DecodeAddress(s)
	return err == nil
}

// EncodeSeed encodes family seed entropy as an 's' secret.
func EncodeSeed(entropy []byte) (string, error) {
	if len(entropy) != SeedLength {
		return "", ErrInvalidSeed
	}
	return EncodeCheck(SeedVersion, entropy), nil
}

// DecodeSeed returns the entropy behind a secret.
func DecodeSeed(secret string) ([]byte, error) {
	payload, err := DecodeCheck(secret, SeedVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if len(payload) != SeedLength {
		return nil, ErrInvalidSeed
	}
	return payload, nil
}

// IsValidSecret reports whether s is a well formed family seed.
func IsValidSecret(s string) bool {
	_, err := DecodeSeed(s)
	return err == nil
}
