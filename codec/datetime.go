package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateTimeLayout is the layout every outgoing date is written in. The trailing
// Z is literal; values are always converted to UTC first.
const DateTimeLayout = "2006-01-02T15:04:05.000Z"

// Layouts accepted when parsing, most specific first.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateTime is an absolute instant that travels as an ISO-8601 string.
type DateTime struct {
	time.Time
}

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// DateTimeFromMillis builds a DateTime from milliseconds since the Unix epoch.
func DateTimeFromMillis(ms int64) DateTime {
	return DateTime{Time: time.UnixMilli(ms).UTC()}
}

// FormatDateTime renders t in UTC with millisecond precision.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ParseDateTime parses an ISO-8601 date or date-time. Values without an
// offset are taken as UTC.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date format %q", s)
}

// String returns the wire representation.
func (d DateTime) String() string {
	return FormatDateTime(d.Time)
}

// Equal reports whether both values denote the same instant.
func (d DateTime) Equal(other DateTime) bool {
	return d.Time.Equal(other.Time)
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(FormatDateTime(d.Time))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Kind: TypeMismatch, Field: "date", Value: string(data), Err: err}
	}

	t, err := ParseDateTime(s)
	if err != nil {
		return &DecodeError{Kind: TypeMismatch, Field: "date", Value: s, Err: err}
	}
	d.Time = t
	return nil
}

// LenientBool decodes both JSON booleans and the strings "true"/"false",
// which the vendor uses interchangeably in a few responses.
type LenientBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *LenientBool) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(data) > 1 && data[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return &DecodeError{Kind: MalformedJSON, Field: "bool", Err: err}
		}
		s = unquoted
	}

	switch s {
	case "true":
		*b = true
	case "false", "null":
		*b = false
	default:
		return &DecodeError{Kind: TypeMismatch, Field: "bool", Value: string(data)}
	}
	return nil
}
