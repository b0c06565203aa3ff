package codec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeErrorKind enumerates the ways a response body can fail to decode
type DecodeErrorKind int

const (
	// MalformedJSON means the body is not syntactically valid JSON
	MalformedJSON DecodeErrorKind = iota

	// UnknownEnumValue means an enum field carried a wire value outside its table
	UnknownEnumValue

	// NoMatchingVariant means no union variant accepts the payload
	NoMatchingVariant

	// TypeMismatch means a JSON value had the wrong type for its field
	TypeMismatch
)

var decodeErrorKinds = [...]string{
	"malformed-json",
	"unknown-enum-value",
	"no-matching-variant",
	"type-mismatch",
}

// String representation of `DecodeErrorKind`
func (k DecodeErrorKind) String() string {
	if k < 0 || int(k) >= len(decodeErrorKinds) {
		return fmt.Sprintf("decode-error-kind(%d)", int(k))
	}
	return decodeErrorKinds[k]
}

// DecodeError is returned when JSON cannot be mapped onto the target type.
type DecodeError struct {
	Kind  DecodeErrorKind
	Field string
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case UnknownEnumValue:
		return fmt.Sprintf("unknown value %s for %s", e.Value, e.Field)
	case NoMatchingVariant:
		if e.Err != nil {
			return fmt.Sprintf("no variant of %s matches type %s: [%v]", e.Field, e.Value, e.Err)
		}
		return fmt.Sprintf("no variant of %s matches type %s", e.Field, e.Value)
	default:
		if e.Field != "" {
			return fmt.Sprintf("%s decoding %s: [%v]", e.Kind, e.Field, e.Err)
		}
		return fmt.Sprintf("%s: [%v]", e.Kind, e.Err)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError is returned when a model is in a state that cannot be serialized.
// These are programmer errors and are never sent over the wire.
type EncodeError struct {
	Field  string
	Reason string
	Err    error
}

func (e *EncodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot encode %s: %s: [%v]", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot encode %s: %s", e.Field, e.Reason)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err is a DecodeError of the given kind.
func IsDecodeError(err error, kind DecodeErrorKind) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Kind == kind
}

// classify converts errors produced by encoding/json into DecodeErrors, leaving
// DecodeErrors raised by custom unmarshalers untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DecodeError{Kind: MalformedJSON, Err: err}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = typeErr.Type.String()
		}
		return &DecodeError{Kind: TypeMismatch, Field: field, Value: typeErr.Value, Err: err}
	}

	return &DecodeError{Kind: MalformedJSON, Err: err}
}

var errEmptyBody = errors.New("empty body")

// asEncodeError unwraps the *json.MarshalerError that encoding/json puts
// around errors returned by custom marshalers.
func asEncodeError(err error, target **EncodeError) bool {
	return errors.As(err, target)
}
