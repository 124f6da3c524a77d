package args

import "strconv"

// Kind discriminates the runtime type of a bound argument value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindEnum
)

// Value is a tagged variant holding one typed argument value. It is
// immutable once produced by Bind.
type Value struct {
	kind Kind
	str  string
	b    bool
	i    int64
}

func stringValue(s string) Value { return Value{kind: KindString, str: s} }
func boolValue(b bool) Value     { return Value{kind: KindBool, b: b} }
func intValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func enumValue(s string) Value   { return Value{kind: KindEnum, str: s} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Meaningful only for KindBool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload. Meaningful only for KindInt.
func (v Value) Int() int64 { return v.i }

// String returns the rendered form of the value: booleans as "true"/"false",
// integers in base-10, strings and enums verbatim.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	default:
		return v.str
	}
}

// Truthy reports whether the value guards a conditional block: booleans by
// their value, strings when non-empty and not the literal "false", integers
// when non-zero.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	default:
		return v.str != "" && v.str != "false"
	}
}

// Bound maps argument names to their typed values for the duration of a run.
type Bound map[string]Value

// Lookup returns the value bound to name.
func (b Bound) Lookup(name string) (Value, bool) {
	v, ok := b[name]
	return v, ok
}
