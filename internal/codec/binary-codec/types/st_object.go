package types

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/LeJamon/goswtc/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goswtc/internal/codec/binary-codec/serdes"
)

// STObject encodes a set of fields in canonical order. The end marker is
// written by the enclosing serializer, so a top level object has none.
type STObject struct {
	Options Options
}

func (o *STObject) FromJSON(value any) ([]byte, error) {
	fields, ok := asMap(value)
	if !ok {
		return nil, fmt.Errorf("%w: object expected, got %T", ErrInvalidValue, value)
	}

	defs := definitions.Get()
	instances, err := o.collect(defs, fields)
	if err != nil {
		return nil, err
	}

	s := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
	for _, fi := range instances {
		encoded, err := o.encodeField(fi, fields[fi.FieldName])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fi.FieldName, err)
		}
		if err := s.WriteFieldAndValue(*fi, encoded); err != nil {
			return nil, fmt.Errorf("%s: %w", fi.FieldName, err)
		}
	}
	return s.GetSink(), nil
}

// collect resolves and sorts the serializable fields. Keys starting with a
// lower case letter are local bookkeeping and never serialized.
func (o *STObject) collect(defs *definitions.Definitions, fields map[string]any) ([]*definitions.FieldInstance, error) {
	instances := make([]*definitions.FieldInstance, 0, len(fields))
	for name := range fields {
		if name == "" || unicode.IsLower(rune(name[0])) {
			continue
		}
		fi, err := defs.GetFieldInstanceByFieldName(name)
		if err != nil {
			return nil, err
		}
		if !fi.IsSerialized || (o.Options.SigningOnly && !fi.IsSigningField) {
			continue
		}
		instances = append(instances, fi)
	}

	sort.Slice(instances, func(i, j int) bool {
		return instances[i].Ordinal() < instances[j].Ordinal()
	})
	return instances, nil
}

func (o *STObject) encodeField(fi *definitions.FieldInstance, value any) ([]byte, error) {
	if fi.Type == "Blob" {
		return (&Blob{Text: textFields[fi.FieldName]}).FromJSON(value)
	}
	st, err := GetSerializedType(fi.Type, o.Options)
	if err != nil {
		return nil, err
	}
	return st.FromJSON(value)
}
