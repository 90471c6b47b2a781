// Package charset provides a compact set type over the 256 possible byte
// values, plus the set algebra needed to build and fold byte-class matchers.
package charset

import (
	"bytes"
	"fmt"
	"math/bits"
)

// Set is a finite set of byte values, stored as a 256-bit bitmap.
//
// Set is a value type: Union and Diff return new sets and never modify
// their operands. The zero value is the empty set.
type Set struct {
	bits [4]uint64
}

func index(b byte) (i uint, mask uint64) {
	i = uint(b >> 6)
	mask = uint64(1) << uint(b&0x3f)
	return i, mask
}

// Singleton returns the set containing only b.
func Singleton(b byte) Set {
	var s Set
	s.Add(b)
	return s
}

// Range returns the set containing every byte from lo through hi inclusive.
// If lo > hi, the result is the empty set.
func Range(lo, hi byte) Set {
	var s Set
	s.AddRange(lo, hi)
	return s
}

// Of returns the set containing each of the given bytes.
func Of(given ...byte) Set {
	var s Set
	for _, b := range given {
		s.Add(b)
	}
	return s
}

// All returns the set containing all 256 possible byte values.
func All() Set {
	var s Set
	for i := range s.bits {
		s.bits[i] = ^uint64(0)
	}
	return s
}

// Add inserts b into the set.
func (s *Set) Add(b byte) {
	i, mask := index(b)
	s.bits[i] |= mask
}

// AddRange inserts every byte from lo through hi inclusive.
// Does nothing when lo > hi.
func (s *Set) AddRange(lo, hi byte) {
	for x := uint(lo); x <= uint(hi); x++ {
		s.Add(byte(x))
	}
}

// Has returns true iff b is in the set.
func (s Set) Has(b byte) bool {
	i, mask := index(b)
	return (s.bits[i] & mask) == mask
}

// Len returns the number of bytes in the set.
func (s Set) Len() int {
	n := 0
	for _, w := range s.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty returns true iff the set contains no bytes.
func (s Set) IsEmpty() bool {
	return s.bits == [4]uint64{}
}

// Equal returns true iff s and t contain exactly the same bytes.
func (s Set) Equal(t Set) bool {
	return s.bits == t.bits
}

// Union returns the set of bytes present in s, in t, or in both.
func (s Set) Union(t Set) Set {
	var u Set
	for i := range u.bits {
		u.bits[i] = s.bits[i] | t.bits[i]
	}
	return u
}

// Diff returns the set of bytes present in s but not in t.
func (s Set) Diff(t Set) Set {
	var u Set
	for i := range u.bits {
		u.bits[i] = s.bits[i] &^ t.bits[i]
	}
	return u
}

// ForEach calls f exactly once for each byte in the set. The arguments for
// successive calls are guaranteed to be in ascending order.
func (s Set) ForEach(f func(b byte)) {
	for i := uint(0); i < 256; i++ {
		if s.Has(byte(i)) {
			f(byte(i))
		}
	}
}

// Bytes appends each byte in the set to out, then returns the updated slice.
func (s Set) Bytes(out []byte) []byte {
	s.ForEach(func(b byte) { out = append(out, b) })
	return out
}

// String renders the set in a compact form: contiguous runs of two or more
// bytes become 'a'..'z', lone bytes become 'c', the whole thing wrapped in
// braces. Newline, carriage return, and tab are escaped; other unprintable
// bytes are rendered as \xHH.
func (s Set) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	c := 0
	for c < 256 {
		if !s.Has(byte(c)) {
			c++
			continue
		}
		lo := c
		for c < 256 && s.Has(byte(c)) {
			c++
		}
		hi := c - 1
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeByteLiteral(&buf, byte(lo))
		if hi > lo {
			buf.WriteString("..")
			writeByteLiteral(&buf, byte(hi))
		}
	}
	buf.WriteByte('}')
	return buf.String()
}

func writeByteLiteral(buf *bytes.Buffer, b byte) {
	switch {
	case b == '\n':
		buf.WriteString(`'\n'`)
	case b == '\r':
		buf.WriteString(`'\r'`)
	case b == '\t':
		buf.WriteString(`'\t'`)
	case b == '\\' || b == '\'':
		buf.WriteByte('\'')
		buf.WriteByte('\\')
		buf.WriteByte(b)
		buf.WriteByte('\'')
	case b >= 0x20 && b < 0x7f:
		buf.WriteByte('\'')
		buf.WriteByte(b)
		buf.WriteByte('\'')
	default:
		fmt.Fprintf(buf, `\x%02x`, b)
	}
}
