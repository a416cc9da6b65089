// Package strutil provides text utilities that work on characters rather
// than bytes.
package strutil

import "unicode/utf8"

// ChunkRunes splits s into consecutive pieces of n runes each. The last piece
// may be shorter. It returns nil for an empty s and panics if n < 1.
//
// Invalid UTF-8 bytes count as one rune each and are kept as is, so the
// concatenation of the result is always s.
func ChunkRunes(s string, n int) []string {
	if n < 1 {
		panic("ChunkRunes: n must be positive")
	}
	var chunks []string
	for s != "" {
		end, count := 0, 0
		for end < len(s) && count < n {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			count++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}
