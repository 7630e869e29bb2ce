package segview

import "segview/text"

// exhausted is the sentinel a cursor returns once it has produced every
// logical character of its view.
const exhausted int32 = -1

// cursor1 walks the single segment of a View1, one code unit at a time.
//
// Cursors carry position state and must not be reused across passes; they are
// cheap to construct fresh per comparison.
type cursor1 struct {
	seg text.Segment
	i   int
}

func (c *cursor1) next() int32 {
	if c.i >= c.seg.Len() {
		return exhausted
	}
	u := c.seg.At(c.i)
	c.i++
	return int32(u)
}

// cursor2 walks both segments of a View2 in logical order, crossing the
// segment boundary transparently.
type cursor2 struct {
	s1, s2 text.Segment
	i      int
}

func (c *cursor2) next() int32 {
	if c.i < c.s1.Len() {
		u := c.s1.At(c.i)
		c.i++
		return int32(u)
	}
	j := c.i - c.s1.Len()
	if j >= c.s2.Len() {
		return exhausted
	}
	u := c.s2.At(j)
	c.i++
	return int32(u)
}

// foldASCII maps the code units a–z to A–Z and leaves every other code unit
// unchanged. This is intentionally not Unicode case conversion: no folding is
// performed for non-ASCII characters, so 'ä' and 'Ä' stay distinct even under
// the case-insensitive operations.
func foldASCII(u uint16) uint16 {
	if u-'a' <= 'z'-'a' {
		return u &^ 0x20
	}
	return u
}

// isWhitespaceUnit reports whether u is a whitespace code unit. The set
// covers the whitespace characters of the basic multilingual plane.
func isWhitespaceUnit(u uint16) bool {
	switch {
	case u == 0x0020 || (u >= 0x0009 && u <= 0x000D):
		return true
	case u < 0x0085:
		return false
	case u == 0x0085 || u == 0x00A0 || u == 0x1680:
		return true
	case u >= 0x2000 && u <= 0x200A:
		return true
	case u == 0x2028 || u == 0x2029 || u == 0x202F || u == 0x205F || u == 0x3000:
		return true
	}
	return false
}

// segmentIsWhitespace is the per-segment all-whitespace predicate. An empty
// segment satisfies it vacuously.
func segmentIsWhitespace(seg text.Segment) bool {
	for i := 0; i < seg.Len(); i++ {
		if !isWhitespaceUnit(seg.At(i)) {
			return false
		}
	}
	return true
}
