package codec

import (
	"encoding/json"
	"fmt"
)

// EnumTable maps the ordinals of an int-backed enum to their wire strings.
// Ordinal 0 is reserved for "unset" and has no wire form.
type EnumTable[T ~int] struct {
	name    string
	wire    []string
	ordinal map[string]T
}

// NewEnumTable builds a table whose first wire value corresponds to ordinal 1.
func NewEnumTable[T ~int](name string, wire ...string) EnumTable[T] {
	ordinal := make(map[string]T, len(wire))
	for i, w := range wire {
		if _, dup := ordinal[w]; dup {
			panic(fmt.Sprintf("codec: duplicate wire value %q in enum %s", w, name))
		}
		ordinal[w] = T(i + 1)
	}
	return EnumTable[T]{name: name, wire: wire, ordinal: ordinal}
}

// String returns the wire value of v, or an empty string if v is unset or
// out of range.
func (t EnumTable[T]) String(v T) string {
	if v < 1 || int(v) > len(t.wire) {
		return ""
	}
	return t.wire[v-1]
}

// Parse returns the ordinal for a wire value.
func (t EnumTable[T]) Parse(s string) (T, error) {
	v, ok := t.ordinal[s]
	if !ok {
		return 0, &DecodeError{Kind: UnknownEnumValue, Field: t.name, Value: fmt.Sprintf("%q", s)}
	}
	return v, nil
}

// Values returns all members in declaration order.
func (t EnumTable[T]) Values() []T {
	values := make([]T, len(t.wire))
	for i := range t.wire {
		values[i] = T(i + 1)
	}
	return values
}

// Marshal encodes v as its wire string. Unset values encode as null, which
// only happens when the owning field is not tagged omitempty.
func (t EnumTable[T]) Marshal(v T) ([]byte, error) {
	if v == 0 {
		return []byte("null"), nil
	}
	s := t.String(v)
	if s == "" {
		return nil, &EncodeError{Field: t.name, Reason: fmt.Sprintf("ordinal %d out of range", int(v))}
	}
	return json.Marshal(s)
}

// Unmarshal decodes a wire string into v, failing on values outside the table.
func (t EnumTable[T]) Unmarshal(data []byte, v *T) error {
	if string(data) == "null" {
		*v = 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Kind: TypeMismatch, Field: t.name, Value: string(data), Err: err}
	}

	parsed, err := t.Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
