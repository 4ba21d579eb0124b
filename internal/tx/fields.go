package tx

import (
	"bytes"
	"encoding/json"
)

// Fields is the ordered field map of a transaction. Overwriting a field keeps
// the position of its first write.
type Fields struct {
	keys   []string
	values map[string]any
}

func newFields() *Fields {
	return &Fields{values: make(map[string]any)}
}

// Get returns the value of name.
func (f *Fields) Get(name string) (any, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Has reports whether name is present.
func (f *Fields) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Set writes name.
func (f *Fields) Set(name string, value any) {
	if _, ok := f.values[name]; !ok {
		f.keys = append(f.keys, name)
	}
	f.values[name] = value
}

// Delete removes name.
func (f *Fields) Delete(name string) {
	if _, ok := f.values[name]; !ok {
		return
	}
	delete(f.values, name)
	for i, k := range f.keys {
		if k == name {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the field names in insertion order.
func (f *Fields) Keys() []string {
	return append([]string(nil), f.keys...)
}

func (f *Fields) Len() int {
	return len(f.keys)
}

// String returns the field as a string, or "" when absent or not a string.
func (f *Fields) String(name string) string {
	s, _ := f.values[name].(string)
	return s
}

// Map returns a copy of the fields with nested transaction types expanded to
// maps and slices, the form the serializer consumes.
func (f *Fields) Map() map[string]any {
	out := make(map[string]any, len(f.keys))
	for _, k := range f.keys {
		out[k] = expand(f.values[k])
	}
	return out
}

func expand(v any) any {
	switch val := v.(type) {
	case []MemoWrapper:
		out := make([]any, len(val))
		for i, m := range val {
			out[i] = map[string]any{"Memo": m.Memo.fields()}
		}
		return out
	case []ArgWrapper:
		out := make([]any, len(val))
		for i, a := range val {
			out[i] = map[string]any{"Arg": map[string]any{"Parameter": a.Arg.Parameter}}
		}
		return out
	case PathSet:
		out := make([]any, len(val))
		for i, path := range val {
			steps := make([]any, len(path))
			for j, step := range path {
				steps[j] = step.fields()
			}
			out[i] = steps
		}
		return out
	default:
		return v
	}
}

// MarshalJSON writes the fields as a JSON object in insertion order.
func (f *Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FieldError is a validation failure recorded against a field slot.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}
