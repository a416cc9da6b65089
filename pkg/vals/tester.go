package vals

import (
	"testing"
)

// Tester is a helper for testing properties of a value.
type Tester struct {
	t *testing.T
	v Value
}

// TestValue returns a ValueTester.
func TestValue(t *testing.T, v Value) Tester {
	return Tester{t, v}
}

// Kind tests the Kind of the value.
func (vt Tester) Kind(wantKind Kind) Tester {
	vt.t.Helper()
	kind := vt.v.Kind()
	if kind != wantKind {
		vt.t.Errorf("Kind(v) = %s, want %s", kind, wantKind)
	}
	return vt
}

// Repr tests the Repr of the value.
func (vt Tester) Repr(wantRepr string) Tester {
	vt.t.Helper()
	repr := ReprPlain(vt.v)
	if repr != wantRepr {
		vt.t.Errorf("Repr(v) = %s, want %s", repr, wantRepr)
	}
	return vt
}

// ToString tests the ToString of the value.
func (vt Tester) ToString(wantString string) Tester {
	vt.t.Helper()
	s := ToString(vt.v)
	if s != wantString {
		vt.t.Errorf("ToString(v) = %q, want %q", s, wantString)
	}
	return vt
}

// Equal tests that the value is Equal to every of the given values, and has
// the same Hash and compares equal with each of them.
func (vt Tester) Equal(others ...Value) Tester {
	vt.t.Helper()
	for _, other := range others {
		if !Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %v) = false, want true", other)
		}
		if h1, h2 := Hash(vt.v), Hash(other); h1 != h2 {
			vt.t.Errorf("Hash(v) = %v, Hash(%v) = %v, want equal", h1, other, h2)
		}
		if c := Cmp(vt.v, other); c != 0 {
			vt.t.Errorf("Cmp(v, %v) = %v, want 0", other, c)
		}
	}
	return vt
}

// NotEqual tests that the value is not Equal to any of the given values.
func (vt Tester) NotEqual(others ...Value) Tester {
	vt.t.Helper()
	for _, other := range others {
		if Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %v) = true, want false", other)
		}
	}
	return vt
}

// Less tests that the value sorts before every one of the given values, and
// that they sort after it.
func (vt Tester) Less(others ...Value) Tester {
	vt.t.Helper()
	for _, other := range others {
		if c := Cmp(vt.v, other); c != -1 {
			vt.t.Errorf("Cmp(v, %v) = %v, want -1", other, c)
		}
		if c := Cmp(other, vt.v); c != 1 {
			vt.t.Errorf("Cmp(%v, v) = %v, want 1", other, c)
		}
	}
	return vt
}
