package types

import (
	"fmt"

	addresscodec "github.com/LeJamon/goswtc/internal/codec/address-codec"
)

const (
	pathStepAccount  byte = 0x01
	pathStepCurrency byte = 0x10
	pathStepIssuer   byte = 0x20

	pathSeparator byte = 0xFF
	pathSetEnd    byte = 0x00
)

// PathSet encodes a list of paths, each a list of steps with optional
// account, currency and issuer.
type PathSet struct {
	NativeCurrency string
}

func (p *PathSet) FromJSON(value any) ([]byte, error) {
	paths, ok := asSlice(value)
	if !ok {
		return nil, fmt.Errorf("%w: path set must be a list of paths", ErrInvalidValue)
	}

	var out []byte
	for i, raw := range paths {
		if i > 0 {
			out = append(out, pathSeparator)
		}
		steps, ok := asSlice(raw)
		if !ok {
			return nil, fmt.Errorf("%w: path %d must be a list of steps", ErrInvalidValue, i)
		}
		for _, rawStep := range steps {
			step, ok := asMap(rawStep)
			if !ok {
				return nil, fmt.Errorf("%w: path step must be an object", ErrInvalidValue)
			}
			encoded, err := p.encodeStep(step)
			if err != nil {
				return nil, err
			}
			out = append(out, encoded...)
		}
	}
	return append(out, pathSetEnd), nil
}

func (p *PathSet) encodeStep(step map[string]any) ([]byte, error) {
	account, _ := step["account"].(string)
	currency, _ := step["currency"].(string)
	issuer, _ := step["issuer"].(string)

	var kind byte
	var body []byte
	if account != "" {
		id, err := addresscodec.DecodeAddress(account)
		if err != nil {
			return nil, err
		}
		kind |= pathStepAccount
		body = append(body, id[:]...)
	}
	if currency != "" {
		c, err := encodeCurrency(currency, p.NativeCurrency)
		if err != nil {
			return nil, err
		}
		kind |= pathStepCurrency
		body = append(body, c...)
	}
	if issuer != "" {
		id, err := addresscodec.DecodeAddress(issuer)
		if err != nil {
			return nil, err
		}
		kind |= pathStepIssuer
		body = append(body, id[:]...)
	}
	if kind == 0 {
		return nil, fmt.Errorf("%w: empty path step", ErrInvalidValue)
	}
	return append([]byte{kind}, body...), nil
}
