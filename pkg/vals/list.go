package vals

import (
	"iter"
	"slices"
)

// List is an ordered sequence of values. Duplicates are allowed. The zero
// value is an empty list.
type List struct {
	elems []Value
}

func (List) Kind() Kind { return KindList }
func (l List) Equal(other any) bool { return equalAny(l, other) }
func (l List) Repr(indent int) string { return Repr(l, indent) }
func (l List) String() string { return ReprPlain(l) }
func (List) isValue() {}

// Len returns the number of elements.
func (l List) Len() int { return len(l.elems) }

// At returns the i-th element. It panics if i is out of range.
func (l List) At(i int) Value { return l.elems[i] }

// Elems returns a copy of the elements.
func (l List) Elems() []Value { return slices.Clone(l.elems) }

// All returns an iterator over the elements, in order.
func (l List) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range l.elems {
			if !yield(v) {
				return
			}
		}
	}
}
