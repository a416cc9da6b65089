// Package vals implements Any, a small dynamic value type, and the arithmetic
// operators defined on it.
//
// A Value is exactly one of Text, Number, List, Set or Mapping. Values are
// immutable: nothing in this package modifies a Value after it has been
// built, so they can be freely shared, including between goroutines.
//
// A nil Value is not a valid value. Operators reject it with an error; the
// container constructors must not be given one.
package vals

// Value is implemented by the five variant types of this package and nothing
// else.
type Value interface {
	// Kind returns the variant of the value.
	Kind() Kind
	// Equal reports whether the receiver equals other, which must also be a
	// Value to be considered equal. See the Equal function.
	Equal(other any) bool
	// Repr returns the debug representation of the value. See the Repr
	// function.
	Repr(indent int) string
	// String returns the debug representation without pretty-printing.
	String() string

	isValue()
}

// Kind is the variant of a Value. The order of the constants is also the order
// in which Cmp sorts values of different kinds.
type Kind uint8

// Possible Kind values.
const (
	KindText Kind = iota
	KindNumber
	KindList
	KindSet
	KindMapping
)

// Kinds lists all the Kind values, in order.
var Kinds = []Kind{KindText, KindNumber, KindList, KindSet, KindMapping}

var kindNames = [...]string{
	KindText:    "text",
	KindNumber:  "number",
	KindList:    "list",
	KindSet:     "set",
	KindMapping: "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "!!kind"
}

// KindOf is like v.Kind(), but returns "nil" for a nil Value. It is used when
// building error messages.
func KindOf(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

// Text is a piece of text.
type Text string

// Number is a double-precision floating-point number.
type Number float64

func (Text) Kind() Kind { return KindText }
func (Number) Kind() Kind { return KindNumber }

func (t Text) Equal(other any) bool { return equalAny(t, other) }
func (n Number) Equal(other any) bool { return equalAny(n, other) }

func (t Text) Repr(indent int) string { return Repr(t, indent) }
func (n Number) Repr(indent int) string { return Repr(n, indent) }

func (t Text) String() string { return ReprPlain(t) }
func (n Number) String() string { return ReprPlain(n) }

func (Text) isValue() {}
func (Number) isValue() {}

func equalAny(v Value, other any) bool {
	o, ok := other.(Value)
	return ok && Equal(v, o)
}
