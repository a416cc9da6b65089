// Package hash contains the hash combinators used to hash values.
package hash

import "math"

// DJBInit is the initial accumulator of a DJB hash.
const DJBInit uint32 = 5381

// DJBCombine folds h into the accumulator acc.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines hs in order, starting from DJBInit.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

// UInt64 folds a 64-bit integer into 32 bits.
func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

// Float64 hashes a float64 so that numbers that compare equal with == hash
// equally. In particular, -0 and +0 hash to the same value.
func Float64(f float64) uint32 {
	if f == 0 {
		f = 0
	}
	return UInt64(math.Float64bits(f))
}

// String hashes the bytes of s.
func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
