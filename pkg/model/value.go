// pkg/model/value.go
package model

import "fmt"

// ValueKind discriminates the three shapes a field value can arrive in.
// Source cells are text, but upstream systems occasionally hand us typed or
// absent values; rules must give a verdict for all three.
type ValueKind int

const (
	// ValueMissing is the zero value so that absent map keys read as missing.
	ValueMissing ValueKind = iota
	ValueText
	ValueOther
)

// Value is a field value as ingested: text, missing, or some other payload.
type Value struct {
	kind ValueKind
	text string
	raw  interface{}
}

// Text wraps a text value.
func Text(s string) Value {
	return Value{kind: ValueText, text: s}
}

// Missing is the absent value.
func Missing() Value {
	return Value{kind: ValueMissing}
}

// Other wraps a non-text payload. The payload is kept only so failure
// messages can show what was actually there.
func Other(v interface{}) Value {
	return Value{kind: ValueOther, raw: v}
}

// Kind returns the value's discriminator.
func (v Value) Kind() ValueKind {
	return v.kind
}

// AsText returns the text payload and whether the value is text.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == ValueText
}

// Raw renders the value for embedding in a failure message: text verbatim,
// missing as an empty string, anything else via the default formatting.
func (v Value) Raw() string {
	switch v.kind {
	case ValueText:
		return v.text
	case ValueMissing:
		return ""
	default:
		return fmt.Sprintf("%v", v.raw)
	}
}
