package vals

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
)

// Mapping associates unique keys with values. Entries are kept in ascending
// Cmp order of their keys. The zero value is an empty mapping.
type Mapping struct {
	tree *treemap.Map
}

func (Mapping) Kind() Kind { return KindMapping }
func (m Mapping) Equal(other any) bool { return equalAny(m, other) }
func (m Mapping) Repr(indent int) string { return Repr(m, indent) }
func (m Mapping) String() string { return ReprPlain(m) }
func (Mapping) isValue() {}

// Len returns the number of entries.
func (m Mapping) Len() int {
	if m.tree == nil {
		return 0
	}
	return m.tree.Size()
}

// Get returns the value associated with k, as determined by Cmp.
func (m Mapping) Get(k Value) (Value, bool) {
	if m.tree == nil || k == nil {
		return nil, false
	}
	v, ok := m.tree.Get(k)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// Keys returns the keys in ascending order, in a newly allocated slice.
func (m Mapping) Keys() []Value {
	if m.tree == nil {
		return nil
	}
	keys := make([]Value, 0, m.tree.Size())
	for it := m.tree.Iterator(); it.Next(); {
		keys = append(keys, it.Key().(Value))
	}
	return keys
}

// All returns an iterator over the entries, in ascending order of keys.
func (m Mapping) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		if m.tree == nil {
			return
		}
		for it := m.tree.Iterator(); it.Next(); {
			if !yield(it.Key().(Value), it.Value().(Value)) {
				return
			}
		}
	}
}
