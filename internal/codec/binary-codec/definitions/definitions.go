// Package definitions loads the field, type and transaction type codes used
// by the binary codec.
package definitions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

//go:embed definitions.json
var rawDefinitions []byte

var (
	ErrUnknownField           = errors.New("unknown field")
	ErrUnknownType            = errors.New("unknown type")
	ErrUnknownTransactionType = errors.New("unknown transaction type")

	once        sync.Once
	definitions *Definitions
)

// FieldHeader is the (type code, field code) pair written before every field.
type FieldHeader struct {
	TypeCode  int32
	FieldCode int32
}

// FieldInfo is the per-field metadata of the definitions file.
type FieldInfo struct {
	Nth            int32  `json:"nth"`
	IsVLEncoded    bool   `json:"isVLEncoded"`
	IsSerialized   bool   `json:"isSerialized"`
	IsSigningField bool   `json:"isSigningField"`
	Type           string `json:"type"`
}

// FieldInstance is a field together with its resolved header.
type FieldInstance struct {
	FieldName string
	*FieldInfo
	FieldHeader *FieldHeader
}

// Ordinal orders fields canonically: by type code, then by field code.
func (f *FieldInstance) Ordinal() int32 {
	return f.FieldHeader.TypeCode<<16 | f.FieldHeader.FieldCode
}

// Definitions indexes the definitions file.
type Definitions struct {
	Types            map[string]int32
	Fields           map[string]*FieldInstance
	FieldIDNameMap   map[FieldHeader]string
	TransactionTypes map[string]int32
}

type rawFile struct {
	Types            map[string]int32  `json:"TYPES"`
	Fields           []json.RawMessage `json:"FIELDS"`
	TransactionTypes map[string]int32  `json:"TRANSACTION_TYPES"`
}

// Get returns the process wide definitions, loading them on first use.
func Get() *Definitions {
	once.Do(func() {
		defs, err := load(rawDefinitions)
		if err != nil {
			panic(fmt.Sprintf("definitions: %v", err))
		}
		definitions = defs
	})
	return definitions
}

func load(data []byte) (*Definitions, error) {
	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	defs := &Definitions{
		Types:            raw.Types,
		Fields:           make(map[string]*FieldInstance, len(raw.Fields)),
		FieldIDNameMap:   make(map[FieldHeader]string, len(raw.Fields)),
		TransactionTypes: raw.TransactionTypes,
	}

	for _, entry := range raw.Fields {
		var pair [2]json.RawMessage
		if err := json.Unmarshal(entry, &pair); err != nil {
			return nil, err
		}
		var name string
		if err := json.Unmarshal(pair[0], &name); err != nil {
			return nil, err
		}
		info := &FieldInfo{}
		if err := json.Unmarshal(pair[1], info); err != nil {
			return nil, err
		}

		typeCode, ok := defs.Types[info.Type]
		if !ok {
			return nil, fmt.Errorf("%w %q for field %s", ErrUnknownType, info.Type, name)
		}
		header := &FieldHeader{TypeCode: typeCode, FieldCode: info.Nth}
		defs.Fields[name] = &FieldInstance{FieldName: name, FieldInfo: info, FieldHeader: header}
		defs.FieldIDNameMap[*header] = name
	}
	return defs, nil
}

func (d *Definitions) GetFieldInstanceByFieldName(fieldName string) (*FieldInstance, error) {
	fi, ok := d.Fields[fieldName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, fieldName)
	}
	return fi, nil
}

func (d *Definitions) GetFieldHeaderByFieldName(fieldName string) (*FieldHeader, error) {
	fi, err := d.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return fi.FieldHeader, nil
}

func (d *Definitions) GetFieldNameByFieldHeader(fh FieldHeader) (string, error) {
	name, ok := d.FieldIDNameMap[fh]
	if !ok {
		return "", fmt.Errorf("%w: type %d field %d", ErrUnknownField, fh.TypeCode, fh.FieldCode)
	}
	return name, nil
}

func (d *Definitions) CreateFieldHeader(typecode, fieldcode int32) FieldHeader {
	return FieldHeader{TypeCode: typecode, FieldCode: fieldcode}
}

func (d *Definitions) GetTransactionTypeCodeByTransactionTypeName(name string) (int32, error) {
	code, ok := d.TransactionTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTransactionType, name)
	}
	return code, nil
}

func (d *Definitions) GetTransactionTypeNameByTransactionTypeCode(code int32) (string, error) {
	for name, c := range d.TransactionTypes {
		if c == code {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownTransactionType, code)
}
