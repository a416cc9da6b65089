package vals

import "iter"

// Equal reports whether two values are equal. Equality is structural and deep,
// and values of different kinds are never equal. Numbers are compared with ==,
// so NaN is not equal to itself and -0 is equal to +0.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Text:
		b, ok := b.(Text)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case List:
		b, ok := b.(List)
		return ok && a.Len() == b.Len() && equalSeq(a.All(), b.All())
	case Set:
		// Elements of sets are always iterated in ascending order, so two
		// equal sets produce equal sequences.
		b, ok := b.(Set)
		return ok && a.Len() == b.Len() && equalSeq(a.All(), b.All())
	case Mapping:
		b, ok := b.(Mapping)
		return ok && a.Len() == b.Len() && equalMapping(a, b)
	}
	return false
}

func equalSeq(a, b iter.Seq[Value]) bool {
	nextB, stop := iter.Pull(b)
	defer stop()
	for va := range a {
		vb, ok := nextB()
		if !ok || !Equal(va, vb) {
			return false
		}
	}
	_, more := nextB()
	return !more
}

func equalMapping(a, b Mapping) bool {
	nextB, stop := iter.Pull2(b.All())
	defer stop()
	for ka, va := range a.All() {
		kb, vb, ok := nextB()
		if !ok || !Equal(ka, kb) || !Equal(va, vb) {
			return false
		}
	}
	_, _, more := nextB()
	return !more
}
