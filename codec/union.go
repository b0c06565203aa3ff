package codec

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// DiscriminatorField is the JSON field that selects a union variant.
const DiscriminatorField = "type"

// Variant describes one member of a discriminated union. The first entry in
// Discriminants is written when the value leaves its type unset.
type Variant[T any] struct {
	Name          string
	Discriminants []string
	New           func() T
}

// Fallback builds a value for a discriminant no variant claims. fields holds
// every top-level member of the object, including the discriminator.
type Fallback[T any] func(discriminant string, fields map[string]json.RawMessage) (T, error)

// Union encodes and decodes a closed set of variants flattened into their
// parent object. Variants are consulted in declaration order and every
// discriminant belongs to exactly one variant.
type Union[T any] struct {
	name     string
	variants []Variant[T]
	byType   map[reflect.Type]int
	fallback Fallback[T]
	rawType  reflect.Type
}

// NewUnion builds a union. It panics if two variants claim the same
// discriminant or share a Go type, since either would make decoding ambiguous.
func NewUnion[T any](name string, variants ...Variant[T]) *Union[T] {
	u := &Union[T]{
		name:     name,
		variants: variants,
		byType:   make(map[reflect.Type]int, len(variants)),
	}

	owner := make(map[string]string)
	for i, v := range variants {
		if len(v.Discriminants) == 0 {
			panic(fmt.Sprintf("codec: variant %s of %s has no discriminant", v.Name, name))
		}
		for _, d := range v.Discriminants {
			if prev, dup := owner[d]; dup {
				panic(fmt.Sprintf("codec: discriminant %q of %s claimed by both %s and %s", d, name, prev, v.Name))
			}
			owner[d] = v.Name
		}

		rt := reflect.TypeOf(v.New())
		if _, dup := u.byType[rt]; dup {
			panic(fmt.Sprintf("codec: type %s registered twice in %s", rt, name))
		}
		u.byType[rt] = i
	}

	return u
}

// WithFallback registers the constructor used for unrecognised discriminants.
// sample is a value of the fallback's concrete type so that it can be encoded.
func (u *Union[T]) WithFallback(sample T, fallback Fallback[T]) *Union[T] {
	u.fallback = fallback
	u.rawType = reflect.TypeOf(sample)
	return u
}

// Variants returns the registered variants in priority order.
func (u *Union[T]) Variants() []Variant[T] {
	return u.variants
}

// Resolve returns the variant claiming discriminant, scanning in priority order.
func (u *Union[T]) Resolve(discriminant string) (Variant[T], bool) {
	for _, v := range u.variants {
		for _, d := range v.Discriminants {
			if d == discriminant {
				return v, true
			}
		}
	}
	return Variant[T]{}, false
}

// SetDefaultType fills value's discriminator with its variant's first
// discriminant when it is unset. value must be a pointer to a registered
// variant; anything else is left alone.
func (u *Union[T]) SetDefaultType(value T) {
	idx, ok := u.byType[reflect.TypeOf(value)]
	if !ok {
		return
	}
	field, ok := discriminatorField(reflect.ValueOf(value))
	if !ok || !field.IsZero() {
		return
	}
	raw, _ := json.Marshal(u.variants[idx].Discriminants[0])
	_ = json.Unmarshal(raw, field.Addr().Interface())
}

func discriminatorField(v reflect.Value) (reflect.Value, bool) {
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == DiscriminatorField && v.Field(i).CanSet() {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// Encode writes value's own fields with no envelope. A missing discriminator
// is filled with the variant default. Top-level keys come out sorted.
func (u *Union[T]) Encode(value T) ([]byte, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() == reflect.Ptr && rv.IsNil()) {
		return nil, &EncodeError{Field: u.name, Reason: "no variant set"}
	}

	body, err := encode(value, "")
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &EncodeError{Field: u.name, Reason: "variant does not encode as an object", Err: err}
	}

	rt := reflect.TypeOf(value)
	if rt == u.rawType {
		raw, ok := fields[DiscriminatorField]
		if !ok {
			return nil, &EncodeError{Field: u.name, Reason: "raw variant has no type"}
		}
		var discriminant string
		if err := json.Unmarshal(raw, &discriminant); err != nil {
			return nil, &EncodeError{Field: u.name, Reason: "type is not a string", Err: err}
		}
		if variant, claimed := u.Resolve(discriminant); claimed {
			return nil, &EncodeError{Field: u.name, Reason: fmt.Sprintf("type %q belongs to %s", discriminant, variant.Name)}
		}
		return encode(fields, "")
	}

	idx, ok := u.byType[rt]
	if !ok {
		return nil, &EncodeError{Field: u.name, Reason: fmt.Sprintf("%s is not a variant", rt)}
	}
	variant := u.variants[idx]

	if raw, ok := fields[DiscriminatorField]; ok {
		var discriminant string
		if err := json.Unmarshal(raw, &discriminant); err != nil {
			return nil, &EncodeError{Field: u.name, Reason: "type is not a string", Err: err}
		}
		if !contains(variant.Discriminants, discriminant) {
			return nil, &EncodeError{Field: u.name, Reason: fmt.Sprintf("type %q is not valid for %s", discriminant, variant.Name)}
		}
	} else {
		fields[DiscriminatorField], _ = json.Marshal(variant.Discriminants[0])
	}

	return encode(fields, "")
}

// Decode reads the discriminator and decodes data into the first variant that
// claims it.
func (u *Union[T]) Decode(data []byte) (T, error) {
	var zero T

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return zero, &DecodeError{Kind: MalformedJSON, Field: u.name, Err: err}
	}

	raw, ok := fields[DiscriminatorField]
	if !ok {
		return zero, &DecodeError{Kind: NoMatchingVariant, Field: u.name, Value: "<absent>"}
	}

	var discriminant string
	if err := json.Unmarshal(raw, &discriminant); err != nil {
		return zero, &DecodeError{Kind: TypeMismatch, Field: u.name + ".type", Value: string(raw), Err: err}
	}

	variant, ok := u.Resolve(discriminant)
	if !ok {
		if u.fallback != nil {
			return u.fallback(discriminant, fields)
		}
		return zero, &DecodeError{Kind: NoMatchingVariant, Field: u.name, Value: fmt.Sprintf("%q", discriminant)}
	}

	value := variant.New()
	if err := json.Unmarshal(data, value); err != nil {
		if IsDecodeError(err, UnknownEnumValue) {
			return zero, err
		}
		return zero, &DecodeError{Kind: NoMatchingVariant, Field: u.name, Value: fmt.Sprintf("%q", discriminant), Err: err}
	}

	return value, nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// RawObject is a union member of a type the client does not model. The
// discriminant is held in Type and the remaining members in Fields.
type RawObject struct {
	Type   string
	Fields map[string]json.RawMessage
}

// NewRawObject copies fields, moving the discriminator into Type.
func NewRawObject(discriminant string, fields map[string]json.RawMessage) RawObject {
	copied := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		if k != DiscriminatorField {
			copied[k] = v
		}
	}
	return RawObject{Type: discriminant, Fields: copied}
}

// Field decodes the named member into v. It reports false if the member is absent.
func (r RawObject) Field(name string, v interface{}) (bool, error) {
	raw, ok := r.Fields[name]
	if !ok {
		return false, nil
	}
	return true, Unmarshal(raw, v)
}

// MarshalJSON implements json.Marshaler.
func (r RawObject) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(r.Fields)+1)
	for k, v := range r.Fields {
		fields[k] = v
	}
	if r.Type != "" {
		fields[DiscriminatorField], _ = json.Marshal(r.Type)
	}
	return encode(fields, "")
}
