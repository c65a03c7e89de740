// Package percent percent-encodes URL components with fixed character sets.
package percent

import "strings"

// Set is a table of ASCII bytes that must be encoded. Bytes >= 0x80 are
// always encoded.
type Set struct {
	encode [128]bool
}

func newSet(extra string) Set {
	var s Set
	for b := 0; b < 0x20; b++ {
		s.encode[b] = true
	}
	s.encode[0x7f] = true
	for i := 0; i < len(extra); i++ {
		s.encode[extra[i]] = true
	}
	return s
}

var (
	// Fragment covers controls plus space, '"', '<', '>' and '`'.
	Fragment = newSet(" \"<>`")
	// Path adds '#', '?', '{' and '}' to Fragment.
	Path = newSet(" \"<>`#?{}")
	// PathSegment adds '/' and '%' to Path.
	PathSegment = newSet(" \"<>`#?{}/%")
)

// Encodes reports whether b is escaped by the set.
func (s Set) Encodes(b byte) bool {
	return b >= 0x80 || s.encode[b]
}

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes every byte of the UTF-8 input that belongs to set.
func Encode(input string, set Set) string {
	n := 0
	for i := 0; i < len(input); i++ {
		if set.Encodes(input[i]) {
			n++
		}
	}
	if n == 0 {
		return input
	}

	var b strings.Builder
	b.Grow(len(input) + 2*n)
	for i := 0; i < len(input); i++ {
		c := input[i]
		if set.Encodes(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
