package strutil

import "strings"

// RepeatCapped is like strings.Repeat, but reports false instead of panicking
// or allocating when the result would be longer than max bytes. A count below
// 1 yields the empty string.
func RepeatCapped(s string, count, max int) (string, bool) {
	if count < 1 || s == "" {
		return "", true
	}
	if count > max/len(s) {
		return "", false
	}
	return strings.Repeat(s, count), true
}
