package serdes

import (
	"bytes"
	"errors"

	"github.com/LeJamon/goswtc/internal/codec/binary-codec/definitions"
)

const (
	maxSingleByteLength = 192
	maxDoubleByteLength = 12480
	maxLength           = 918744
)

var ErrLengthPrefixTooLong = errors.New("length of value must not exceed 918744 bytes of data")

// BinarySerializer accumulates field ids and encoded values.
type BinarySerializer struct {
	sink         bytes.Buffer
	fieldIDCodec *FieldIDCodec
}

func NewBinarySerializer(codec *FieldIDCodec) *BinarySerializer {
	return &BinarySerializer{fieldIDCodec: codec}
}

// WriteFieldAndValue writes the field id, a length prefix for variable
// length fields, then value.
func (s *BinarySerializer) WriteFieldAndValue(fi definitions.FieldInstance, value []byte) error {
	header, err := s.fieldIDCodec.Encode(fi.FieldName)
	if err != nil {
		return err
	}
	s.sink.Write(header)

	if fi.IsVLEncoded {
		prefix, err := encodeVariableLength(len(value))
		if err != nil {
			return err
		}
		s.sink.Write(prefix)
	}
	s.sink.Write(value)

	switch fi.Type {
	case "STObject":
		s.sink.WriteByte(ObjectEndMarker)
	case "STArray":
		s.sink.WriteByte(ArrayEndMarker)
	}
	return nil
}

// GetSink returns the bytes written so far.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink.Bytes()
}

const (
	ObjectEndMarker byte = 0xE1
	ArrayEndMarker  byte = 0xF1
)

func encodeVariableLength(length int) ([]byte, error) {
	switch {
	case length < 0 || length > maxLength:
		return nil, ErrLengthPrefixTooLong
	case length <= maxSingleByteLength:
		return []byte{byte(length)}, nil
	case length <= maxDoubleByteLength:
		length -= maxSingleByteLength + 1
		return []byte{byte(193 + (length >> 8)), byte(length & 0xff)}, nil
	default:
		length -= maxDoubleByteLength + 1
		return []byte{byte(241 + (length >> 16)), byte((length >> 8) & 0xff), byte(length & 0xff)}, nil
	}
}
