package types

import (
	"fmt"

	"github.com/LeJamon/goswtc/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goswtc/internal/codec/binary-codec/serdes"
)

// STArray encodes a list of single key wrapper objects such as
// {"Memo": {...}}.
type STArray struct {
	Options Options
}

func (a *STArray) FromJSON(value any) ([]byte, error) {
	items, ok := asSlice(value)
	if !ok {
		return nil, fmt.Errorf("%w: array expected, got %T", ErrInvalidValue, value)
	}

	defs := definitions.Get()
	s := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
	inner := &STObject{Options: a.Options}

	for i, item := range items {
		wrapper, ok := asMap(item)
		if !ok || len(wrapper) != 1 {
			return nil, fmt.Errorf("%w: array element %d must be a single key object", ErrInvalidValue, i)
		}
		for name, body := range wrapper {
			fi, err := defs.GetFieldInstanceByFieldName(name)
			if err != nil {
				return nil, err
			}
			encoded, err := inner.FromJSON(body)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if err := s.WriteFieldAndValue(*fi, encoded); err != nil {
				return nil, err
			}
		}
	}
	return s.GetSink(), nil
}
