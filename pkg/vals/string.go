package vals

import (
	"math"
	"strconv"
)

// ToString converts a value to a string. Text is returned as is, and a Number
// is formatted as the shortest decimal that round-trips, without an exponent:
// 100 is "100", 2.5 is "2.5". Infinities are "inf" and "-inf". Containers fall
// back to ReprPlain.
func ToString(v Value) string {
	switch v := v.(type) {
	case Text:
		return string(v)
	case Number:
		return formatNumber(float64(v))
	default:
		return ReprPlain(v)
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
