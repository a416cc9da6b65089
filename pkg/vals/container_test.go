package vals

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var valueComparer = cmp.Comparer(Equal)

func TestListAccessors(t *testing.T) {
	l := MakeList(Text("a"), Number(1), Text("a"))
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if !Equal(l.At(1), Number(1)) {
		t.Errorf("At(1) = %v, want (num 1)", l.At(1))
	}

	elems := l.Elems()
	want := []Value{Text("a"), Number(1), Text("a")}
	if diff := cmp.Diff(want, elems, valueComparer); diff != "" {
		t.Errorf("Elems() (-want +got):\n%s", diff)
	}
	elems[0] = Text("changed")
	if !Equal(l.At(0), Text("a")) {
		t.Errorf("modifying the result of Elems() changed the list")
	}

	var first []Value
	for v := range l.All() {
		first = append(first, v)
		break
	}
	if diff := cmp.Diff([]Value{Text("a")}, first, valueComparer); diff != "" {
		t.Errorf("All() with break (-want +got):\n%s", diff)
	}
}

func TestSetAccessors(t *testing.T) {
	s := MakeSet(Number(3), Text("x"), Number(1), Number(3))
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	for _, v := range []Value{Number(1), Number(3), Text("x")} {
		if !s.Contains(v) {
			t.Errorf("Contains(%v) = false, want true", v)
		}
	}
	for _, v := range []Value{Number(2), Text("y"), MakeList(), nil} {
		if s.Contains(v) {
			t.Errorf("Contains(%v) = true, want false", v)
		}
	}
	want := []Value{Text("x"), Number(1), Number(3)}
	if diff := cmp.Diff(want, s.Elems(), valueComparer); diff != "" {
		t.Errorf("Elems() (-want +got):\n%s", diff)
	}
}

func TestMappingAccessors(t *testing.T) {
	m := MakeMapping(Number(2), Text("two"), Text("one"), Number(1), MakeTextList("k"), MakeSet())
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
	if v, ok := m.Get(Number(2)); !ok || !Equal(v, Text("two")) {
		t.Errorf("Get(2) = (%v, %v), want (\"two\", true)", v, ok)
	}
	if v, ok := m.Get(MakeTextList("k")); !ok || !Equal(v, MakeSet()) {
		t.Errorf("Get([k]) = (%v, %v), want ({}, true)", v, ok)
	}
	if v, ok := m.Get(Text("two")); ok {
		t.Errorf("Get(\"two\") = (%v, %v), want (nil, false)", v, ok)
	}
	wantKeys := []Value{Text("one"), Number(2), MakeTextList("k")}
	if diff := cmp.Diff(wantKeys, m.Keys(), valueComparer); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	var vs []Value
	for _, v := range m.All() {
		vs = append(vs, v)
	}
	wantValues := []Value{Number(1), Text("two"), MakeSet()}
	if diff := cmp.Diff(wantValues, vs, valueComparer); diff != "" {
		t.Errorf("values from All() (-want +got):\n%s", diff)
	}
}

func TestZeroContainers(t *testing.T) {
	var (
		l List
		s Set
		m Mapping
	)
	if l.Len() != 0 || s.Len() != 0 || m.Len() != 0 {
		t.Errorf("zero containers are not empty")
	}
	if s.Contains(Number(1)) {
		t.Errorf("zero Set contains 1")
	}
	if s.Elems() != nil || m.Keys() != nil {
		t.Errorf("zero containers have elements")
	}
	if _, ok := m.Get(Text("k")); ok {
		t.Errorf("zero Mapping has key k")
	}
	for range s.All() {
		t.Errorf("zero Set yields an element")
	}
	for range m.All() {
		t.Errorf("zero Mapping yields an entry")
	}
	TestValue(t, s).Repr("{}")
	TestValue(t, m).Repr("[&]")
}
