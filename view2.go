package segview

import (
	"unicode/utf16"

	"segview/text"
)

// View2 is a string view backed by two borrowed segments, presented as one
// logical character sequence: first every character of segment 1, then every
// character of segment 2.
//
// The segments may reference the same or different sources, including
// overlapping or identical ranges. Like View1, a View2 is a lightweight
// value and borrows; it is valid only while both sources are alive and
// unmutated.
type View2 struct {
	s1, s2 text.Segment
}

// Join returns a view over the concatenation of a and b.
func Join(a, b text.Source) View2 {
	return View2{s1: text.Seg(a), s2: text.Seg(b)}
}

// JoinSegments returns a view over the concatenation of two segments.
func JoinSegments(s1, s2 text.Segment) View2 {
	return View2{s1: s1, s2: s2}
}

// Len returns the logical character count, the sum of both segment lengths.
func (v View2) Len() int {
	return v.s1.Len() + v.s2.Len()
}

// Segment1 returns the first borrowed segment.
func (v View2) Segment1() text.Segment {
	return v.s1
}

// Segment2 returns the second borrowed segment.
func (v View2) Segment2() text.Segment {
	return v.s2
}

// At resolves the logical character at position i: segment 1 for
// i < Segment1().Len(), segment 2 for the rest.
func (v View2) At(i int) uint16 {
	if i < v.s1.Len() {
		return v.s1.At(i)
	}
	return v.s2.At(i - v.s1.Len())
}

// IsWhitespace reports whether the view is empty or consists entirely of
// whitespace characters. Both segments must independently satisfy the
// all-whitespace predicate; an empty segment satisfies it vacuously.
func (v View2) IsWhitespace() bool {
	return segmentIsWhitespace(v.s1) && segmentIsWhitespace(v.s2)
}

// Equals reports whether v and other represent the same character sequence,
// compared ordinally.
//
// When both sides split at the same position the comparison runs directly
// over the backing segments; otherwise the segment shapes differ and the
// sides advance in lock-step through cursors.
func (v View2) Equals(other View2) bool {
	if v.Len() != other.Len() {
		return false
	}
	if v.s1.Len() == other.s1.Len() {
		for i := 0; i < v.s1.Len(); i++ {
			if v.s1.At(i) != other.s1.At(i) {
				return false
			}
		}
		for i := 0; i < v.s2.Len(); i++ {
			if v.s2.At(i) != other.s2.At(i) {
				return false
			}
		}
		return true
	}
	ca, cb := v.cursor(), other.cursor()
	for {
		a := ca.next()
		b := cb.next()
		if a == exhausted {
			return b == exhausted
		}
		if a != b {
			return false
		}
	}
}

// EqualsFold is Equals with ASCII case folding applied to each character
// pair. Non-ASCII characters are never folded.
func (v View2) EqualsFold(other View2) bool {
	if v.Len() != other.Len() {
		return false
	}
	ca, cb := v.cursor(), other.cursor()
	for {
		a := ca.next()
		b := cb.next()
		if a == exhausted {
			return b == exhausted
		}
		if foldASCII(uint16(a)) != foldASCII(uint16(b)) {
			return false
		}
	}
}

// Compare orders v against other ordinally, optionally with ASCII case
// folding.
//
// The result is negative, zero or positive; callers must test the sign only.
// When one view is a prefix of the other the result is the length difference,
// not a normalized -1/0/1.
func (v View2) Compare(other View2, foldCase bool) int {
	ca, cb := v.cursor(), other.cursor()
	for {
		a := ca.next()
		b := cb.next()
		if a == exhausted || b == exhausted {
			return v.Len() - other.Len()
		}
		if foldCase {
			a = int32(foldASCII(uint16(a)))
			b = int32(foldASCII(uint16(b)))
		}
		if a != b {
			return int(a) - int(b)
		}
	}
}

// Hash returns the case-sensitive hash of the view's character sequence.
//
// The hash is computed purely from the logical characters, never from the
// segment boundary, so it matches the hash of any equal view regardless of
// variant.
func (v View2) Hash() uint32 {
	var h hasher
	h.init()
	for i := 0; i < v.s1.Len(); i++ {
		h.write(v.s1.At(i))
	}
	for i := 0; i < v.s2.Len(); i++ {
		h.write(v.s2.At(i))
	}
	return h.sum()
}

// HashFold returns the ASCII-case-insensitive hash of the view's character
// sequence.
func (v View2) HashFold() uint32 {
	var h hasher
	h.init()
	for i := 0; i < v.s1.Len(); i++ {
		h.write(foldASCII(v.s1.At(i)))
	}
	for i := 0; i < v.s2.Len(); i++ {
		h.write(foldASCII(v.s2.At(i)))
	}
	return h.sum()
}

// String decodes the view to a Go string. This allocates. Decoding spans the
// segment boundary, so a surrogate pair split between the segments still
// decodes as one character.
func (v View2) String() string {
	units := make([]uint16, 0, v.Len())
	for i := 0; i < v.s1.Len(); i++ {
		units = append(units, v.s1.At(i))
	}
	for i := 0; i < v.s2.Len(); i++ {
		units = append(units, v.s2.At(i))
	}
	return string(utf16.Decode(units))
}

func (v View2) cursor() *cursor2 {
	return &cursor2{s1: v.s1, s2: v.s2}
}

func (View2) sealed() {}
