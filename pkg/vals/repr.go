package vals

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// NoPretty can be passed to Repr to suppress pretty-printing.
const NoPretty = math.MinInt

// ReprPlain is like Repr, but without pretty-printing.
func ReprPlain(v Value) string {
	return Repr(v, NoPretty)
}

// Repr returns the debug representation of a value. It is meant for humans
// reading diagnostics; the format may change and is never parsed back.
//
// Text is double-quoted, a Number n is written as (num n), a List as [a b], a
// Set as {a b} and a Mapping as [&k=v]. If indent is at least 0, containers
// are pretty-printed with one element per line, using indent as the current
// level of indentation; the indentation of the first line is assumed to have
// been written already.
func Repr(v Value, indent int) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case Text:
		return strconv.Quote(string(v))
	case Number:
		return "(num " + formatNumber(float64(v)) + ")"
	case List:
		b := NewListReprBuilder(indent)
		for _, elem := range v.elems {
			b.WriteElem(Repr(elem, indent+1))
		}
		return b.String()
	case Set:
		b := NewSetReprBuilder(indent)
		for elem := range v.All() {
			b.WriteElem(Repr(elem, indent+1))
		}
		return b.String()
	case Mapping:
		keys := make([]string, 0, v.Len())
		values := make([]string, 0, v.Len())
		maxKeyWidth := 0
		for k, val := range v.All() {
			kr := Repr(k, indent+1)
			keys = append(keys, kr)
			values = append(values, Repr(val, indent+2))
			if !strings.Contains(kr, "\n") {
				maxKeyWidth = max(maxKeyWidth, runewidth.StringWidth(kr))
			}
		}
		b := NewMapReprBuilder(indent)
		for i := range keys {
			b.WritePair(maxKeyWidth, keys[i], indent+2, values[i])
		}
		return b.String()
	}
	return "<unknown>"
}
