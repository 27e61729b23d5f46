// Package value implements the tagged attribute value type used by feature
// records. A Value holds exactly one of: null, boolean, integer, float, or
// string. The zero Value is the null value, which doubles as the default
// returned for any missing attribute.
package value

import "strconv"

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is the distinguished "no value" variant. The zero Value
	// has this kind.
	KindNull Kind = iota
	// KindBool holds a boolean.
	KindBool
	// KindInteger holds a 64-bit signed integer.
	KindInteger
	// KindFloat holds a 64-bit float.
	KindFloat
	// KindString holds a string.
	KindString
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a small immutable tagged union, passed by value.
//
// Values are comparable: two Values are equal when they hold the same kind
// and payload. All null Values compare equal.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the null value. Equivalent to the zero Value.
func Null() Value {
	return Value{}
}

// NewBool returns a boolean value.
func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NewInteger returns an integer value.
func NewInteger(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// NewFloat returns a float value.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the variant this value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether this is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Equal reports whether v and other hold the same kind and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// Bool returns the boolean payload, or false for non-bool values.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		return false
	}
	return v.b
}

// Integer returns the integer payload, or 0 for non-integer values.
func (v Value) Integer() int64 {
	if v.kind != KindInteger {
		return 0
	}
	return v.i
}

// Float returns the float payload, or 0 for non-float values.
func (v Value) Float() float64 {
	if v.kind != KindFloat {
		return 0
	}
	return v.f
}

// Text returns the string payload, or "" for non-string values.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// String formats the payload for display: "null" for the null value,
// "true"/"false" for booleans, base-10 digits for integers, the shortest
// exact representation for floats, and the raw string for strings.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return "null"
	}
}
