package tx

import (
	"regexp"
	"strconv"

	addresscodec "github.com/LeJamon/goswtc/internal/codec/address-codec"
	"github.com/LeJamon/goswtc/internal/amount"
)

var (
	positiveIntRe = regexp.MustCompile(`^[0-9]*[1-9][0-9]*$`)
	naturalIntRe  = regexp.MustCompile(`^\d+$`)
	sequenceRe    = regexp.MustCompile(`^\+?[1-9][0-9]*$`)
)

// IsValidAddress reports whether s is a well formed account address.
func IsValidAddress(s string) bool {
	return addresscodec.IsValidAddress(s)
}

// IsPositiveInteger reports whether s is a decimal integer greater than zero.
func IsPositiveInteger(s string) bool {
	return positiveIntRe.MatchString(s)
}

func isNaturalInteger(s string) bool {
	return naturalIntRe.MatchString(s)
}

func isValidAmount(in amount.Input, token string) bool {
	return in != nil && amount.IsValid(in, token)
}

func parseUint32(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

func parseUint64(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
