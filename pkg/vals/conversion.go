package vals

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"

	"src.anyval.sh/pkg/errs"
)

// Conversion from native Go values.
//
// The constructors below cover the usual ways of building a Value in Go code;
// FromGo is a catch-all for nested native data, like the result of decoding
// JSON into an any.

// Integer is the set of Go integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of Go floating-point types.
type Float interface {
	~float32 | ~float64
}

// FromNumber converts any Go integer or float to a Number. Integers are
// widened to float64 and may lose precision beyond 2^53.
func FromNumber[T Integer | Float](x T) Number {
	return Number(float64(x))
}

// FromString converts a string to a Text.
func FromString(s string) Text {
	return Text(s)
}

// MakeList creates a List from the given values, in order.
func MakeList(vs ...Value) List {
	return List{slices.Clone(vs)}
}

// MakeTextList creates a List of Text from the given strings, in order.
func MakeTextList(ss ...string) List {
	if len(ss) == 0 {
		return List{}
	}
	elems := make([]Value, len(ss))
	for i, s := range ss {
		elems[i] = Text(s)
	}
	return List{elems}
}

// CollectList creates a List from the values produced by seq, in iteration
// order.
func CollectList(seq iter.Seq[Value]) List {
	return List{slices.Collect(seq)}
}

// MakeSet creates a Set from the given values. Values equal according to Cmp
// are kept once.
func MakeSet(vs ...Value) Set {
	tree := treeset.NewWith(comparator)
	for _, v := range vs {
		tree.Add(v)
	}
	return Set{tree}
}

// MakeMapping creates a Mapping from alternating keys and values. When a key
// appears more than once, the last value wins. It panics when given an odd
// number of arguments.
func MakeMapping(kvs ...Value) Mapping {
	if len(kvs)%2 == 1 {
		panic("odd number of arguments to MakeMapping")
	}
	tree := treemap.NewWith(comparator)
	for i := 0; i < len(kvs); i += 2 {
		tree.Put(kvs[i], kvs[i+1])
	}
	return Mapping{tree}
}

// comparator adapts Cmp to the comparator type of the gods containers.
func comparator(a, b any) int {
	return Cmp(a.(Value), b.(Value))
}

// FromGo converts native Go data to a Value. Values are returned as is. Go
// numbers become Number, strings become Text, slices and arrays become List,
// and maps become Mapping, converting elements recursively. Other types,
// including nil and bool, cannot be converted.
func FromGo(v any) (Value, error) {
	if v, ok := v.(Value); ok {
		return v, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Slice, reflect.Array:
		elems := make([]Value, rv.Len())
		for i := range elems {
			elem, err := fromElem(rv.Index(i))
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return List{elems}, nil
	case reflect.Map:
		tree := treemap.NewWith(comparator)
		for it := rv.MapRange(); it.Next(); {
			k, err := fromElem(it.Key())
			if err != nil {
				return nil, err
			}
			v, err := fromElem(it.Value())
			if err != nil {
				return nil, err
			}
			tree.Put(k, v)
		}
		return Mapping{tree}, nil
	case reflect.Interface:
		if rv.IsNil() {
			break
		}
		return fromElem(rv.Elem())
	}
	return nil, errs.BadValue{
		What:   "Go value",
		Valid:  "number, string, slice, array or map",
		Actual: goTypeName(rv),
	}
}

// fromElem converts an element of a container, which may already be a Value.
func fromElem(rv reflect.Value) (Value, error) {
	if rv.CanInterface() {
		if v, ok := rv.Interface().(Value); ok {
			return v, nil
		}
	}
	return fromReflect(rv)
}

func goTypeName(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	return fmt.Sprintf("%v", rv.Type())
}
