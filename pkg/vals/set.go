package vals

import (
	"iter"

	"github.com/emirpasic/gods/sets/treeset"
)

// Set is a collection of unique values, kept in ascending Cmp order. The zero
// value is an empty set.
type Set struct {
	tree *treeset.Set
}

func (Set) Kind() Kind { return KindSet }
func (s Set) Equal(other any) bool { return equalAny(s, other) }
func (s Set) Repr(indent int) string { return Repr(s, indent) }
func (s Set) String() string { return ReprPlain(s) }
func (Set) isValue() {}

// Len returns the number of elements.
func (s Set) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Size()
}

// Contains reports whether v is an element, as determined by Cmp.
func (s Set) Contains(v Value) bool {
	return s.tree != nil && v != nil && s.tree.Contains(v)
}

// Elems returns the elements in ascending order, in a newly allocated slice.
func (s Set) Elems() []Value {
	if s.tree == nil {
		return nil
	}
	elems := make([]Value, 0, s.tree.Size())
	for it := s.tree.Iterator(); it.Next(); {
		elems = append(elems, it.Value().(Value))
	}
	return elems
}

// All returns an iterator over the elements, in ascending order.
func (s Set) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if s.tree == nil {
			return
		}
		for it := s.tree.Iterator(); it.Next(); {
			if !yield(it.Value().(Value)) {
				return
			}
		}
	}
}
