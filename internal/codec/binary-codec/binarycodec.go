// Package binarycodec serializes transaction field maps to the canonical
// wire encoding and hashes them.
package binarycodec

import (
	"encoding/hex"
	"strings"

	common "github.com/LeJamon/goswtc/internal/crypto/common"
	"github.com/LeJamon/goswtc/internal/codec/binary-codec/types"
	"github.com/LeJamon/goswtc/internal/protocol"
)

// Encoded is a serialized field map.
type Encoded struct {
	raw []byte
}

// Bytes returns the serialized bytes.
func (e *Encoded) Bytes() []byte {
	return e.raw
}

// Hex returns the serialized bytes as upper case hex.
func (e *Encoded) Hex() string {
	return strings.ToUpper(hex.EncodeToString(e.raw))
}

// Hash returns sha512half(prefix || bytes).
func (e *Encoded) Hash(prefix uint32) []byte {
	h := common.Sha512HalfPrefixed(prefix, e.raw)
	return h[:]
}

// Codec encodes field maps for one network.
type Codec struct {
	nativeCurrency string
}

// New returns a codec that writes amounts in nativeCurrency in the native form.
func New(nativeCurrency string) *Codec {
	if nativeCurrency == "" {
		nativeCurrency = types.DefaultNativeCurrency
	}
	return &Codec{nativeCurrency: nativeCurrency}
}

// FromJSON serializes every serializable field of fields.
func (c *Codec) FromJSON(fields map[string]any) (*Encoded, error) {
	return c.encode(fields, false)
}

// EncodeForSigning serializes the signing fields and returns the signing hash.
func (c *Codec) EncodeForSigning(fields map[string]any) ([]byte, error) {
	enc, err := c.encode(fields, true)
	if err != nil {
		return nil, err
	}
	return enc.Hash(protocol.HashPrefixTxSign), nil
}

func (c *Codec) encode(fields map[string]any, signingOnly bool) (*Encoded, error) {
	obj := &types.STObject{Options: types.Options{
		NativeCurrency: c.nativeCurrency,
		SigningOnly:    signingOnly,
	}}
	raw, err := obj.FromJSON(fields)
	if err != nil {
		return nil, err
	}
	return &Encoded{raw: raw}, nil
}

// Encode serializes fields for the default network and returns upper case hex.
func Encode(fields map[string]any) (string, error) {
	enc, err := New(types.DefaultNativeCurrency).FromJSON(fields)
	if err != nil {
		return "", err
	}
	return enc.Hex(), nil
}
