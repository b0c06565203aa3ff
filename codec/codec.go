// Package codec converts between checkout models and their JSON wire form.
//
// The package holds no mutable state. Enum tables and union definitions are
// built once by the models package and are read-only afterwards, so every
// function here is safe for concurrent use.
package codec

import (
	"bytes"
	"encoding/json"
)

// Marshal serializes v to JSON. HTML characters are not escaped so URLs such
// as return addresses are sent byte-for-byte.
func Marshal(v interface{}) ([]byte, error) {
	return encode(v, "")
}

// MarshalIndent is Marshal with indented output, for display only.
func MarshalIndent(v interface{}, indent string) ([]byte, error) {
	return encode(v, indent)
}

// Unmarshal parses data into v. Every failure is returned as a *DecodeError.
func Unmarshal(data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return &DecodeError{Kind: MalformedJSON, Err: errEmptyBody}
	}
	return classify(json.Unmarshal(data, v))
}

func encode(v interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(v); err != nil {
		var ee *EncodeError
		if asEncodeError(err, &ee) {
			return nil, ee
		}
		return nil, &EncodeError{Field: "value", Reason: "json encoding failed", Err: err}
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
