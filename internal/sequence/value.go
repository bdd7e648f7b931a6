package sequence

import "strconv"

// Kind identifies the concrete runtime type of a Value.
type Kind int

const (
	// KindString is the declared element type of a Sequence.
	KindString Kind = iota

	// KindInt is a numeric type foreign to the sequence declaration.
	KindInt
)

// String returns the type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed sequence element. The concrete type is
// carried only as a runtime tag; nothing about a Value guarantees that
// it matches the declared element type of the sequence holding it.
type Value struct {
	kind Kind
	str  string
	num  int64
}

// Str returns a string-kinded Value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an int-kinded Value.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Kind returns the concrete runtime kind of the value.
func (v Value) Kind() Kind { return v.kind }

// TypeName returns the concrete type name of the value.
func (v Value) TypeName() string { return v.kind.String() }

// Display returns the opaque display form of the value. It is defined
// for every kind and never fails.
func (v Value) Display() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.num, 10)
	}
	return v.str
}

// AsString returns the underlying string and true when the value is of
// the declared string type, and false otherwise.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Invoke resolves a named operation against the value's concrete
// runtime type at call time. An operation valid for the declared string
// type fails with *InvalidOperationError when the receiver turns out to
// be of a foreign kind, as does an operation no kind supports.
func (v Value) Invoke(method string) (Value, error) {
	if v.kind == KindString {
		switch method {
		case "length":
			return Int(int64(len(v.str))), nil
		}
	}
	return Value{}, &InvalidOperationError{
		Op:       method,
		Actual:   v.kind.String(),
		Expected: KindString.String(),
	}
}
