package serdes

import (
	"errors"

	"github.com/LeJamon/goswtc/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goswtc/internal/codec/binary-codec/serdes/interfaces"
)

var ErrInvalidFieldHeader = errors.New("invalid field header")

// FieldIDCodec encodes field names to their 1 to 3 byte field ids and back.
type FieldIDCodec struct {
	definitions interfaces.Definitions
}

func NewFieldIDCodec(defs interfaces.Definitions) *FieldIDCodec {
	return &FieldIDCodec{definitions: defs}
}

// Encode returns the field id of fieldName.
func (f *FieldIDCodec) Encode(fieldName string) ([]byte, error) {
	fh, err := f.definitions.GetFieldHeaderByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return encodeFieldHeader(*fh), nil
}

// Decode reads a field id and returns the field name.
func (f *FieldIDCodec) Decode(id []byte) (string, error) {
	fh, err := decodeFieldHeader(id)
	if err != nil {
		return "", err
	}
	return f.definitions.GetFieldNameByFieldHeader(f.definitions.CreateFieldHeader(fh.TypeCode, fh.FieldCode))
}

func encodeFieldHeader(fh definitions.FieldHeader) []byte {
	t, n := byte(fh.TypeCode), byte(fh.FieldCode)
	switch {
	case fh.TypeCode < 16 && fh.FieldCode < 16:
		return []byte{t<<4 | n}
	case fh.TypeCode < 16:
		return []byte{t << 4, n}
	case fh.FieldCode < 16:
		return []byte{n, t}
	default:
		return []byte{0, t, n}
	}
}

func decodeFieldHeader(id []byte) (definitions.FieldHeader, error) {
	if len(id) == 0 {
		return definitions.FieldHeader{}, ErrInvalidFieldHeader
	}
	typeCode, fieldCode := int32(id[0]>>4), int32(id[0]&0x0f)
	rest := id[1:]

	if typeCode == 0 {
		if len(rest) == 0 {
			return definitions.FieldHeader{}, ErrInvalidFieldHeader
		}
		typeCode, rest = int32(rest[0]), rest[1:]
	}
	if fieldCode == 0 {
		if len(rest) == 0 {
			return definitions.FieldHeader{}, ErrInvalidFieldHeader
		}
		fieldCode, rest = int32(rest[0]), rest[1:]
	}
	if len(rest) != 0 {
		return definitions.FieldHeader{}, ErrInvalidFieldHeader
	}
	return definitions.FieldHeader{TypeCode: typeCode, FieldCode: fieldCode}, nil
}
