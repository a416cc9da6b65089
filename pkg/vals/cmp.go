package vals

import (
	"cmp"
	"iter"
	"strings"
)

// Cmp compares two values with a total order, returning -1, 0 or 1.
//
// Values of different kinds are ordered by their Kind. Texts are ordered
// bytewise. Numbers are ordered numerically, with NaN equal to itself and
// smaller than all other numbers, and -0 equal to +0. Lists and sets are
// ordered lexicographically by their elements, a proper prefix sorting first;
// mappings likewise by their key-value pairs.
//
// Cmp(a, b) is 0 iff Equal(a, b), except for numbers that are NaN or contain
// NaN.
func Cmp(a, b Value) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Text:
		return strings.Compare(string(a), string(b.(Text)))
	case Number:
		return cmp.Compare(float64(a), float64(b.(Number)))
	case List:
		return cmpSeq(a.All(), b.(List).All())
	case Set:
		return cmpSeq(a.All(), b.(Set).All())
	case Mapping:
		return cmpMapping(a, b.(Mapping))
	}
	panic("unreachable")
}

func cmpSeq(a, b iter.Seq[Value]) int {
	nextB, stop := iter.Pull(b)
	defer stop()
	for va := range a {
		vb, ok := nextB()
		if !ok {
			return 1
		}
		if c := Cmp(va, vb); c != 0 {
			return c
		}
	}
	if _, more := nextB(); more {
		return -1
	}
	return 0
}

func cmpMapping(a, b Mapping) int {
	nextB, stop := iter.Pull2(b.All())
	defer stop()
	for ka, va := range a.All() {
		kb, vb, ok := nextB()
		if !ok {
			return 1
		}
		if c := Cmp(ka, kb); c != 0 {
			return c
		}
		if c := Cmp(va, vb); c != 0 {
			return c
		}
	}
	if _, _, more := nextB(); more {
		return -1
	}
	return 0
}
