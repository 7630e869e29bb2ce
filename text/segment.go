package text

import "unicode/utf16"

// Segment is a borrowed view of a contiguous run of code units in a Source.
//
// Segments do not own text memory and never copy it. A segment is a
// lightweight value, copied by value, valid for as long as its source is
// alive and unmutated. The zero value is an empty segment.
type Segment struct {
	src Source
	off int
	n   int
}

// Seg returns a segment covering all of src. A nil src yields the empty
// segment.
func Seg(src Source) Segment {
	if src == nil {
		return Segment{}
	}
	return Segment{src: src, n: src.Len()}
}

// SegFrom returns the tail of src starting at offset start.
//
// Returns ErrOutOfRange if start lies outside [0, src.Len()]. The range is
// never clamped.
func SegFrom(src Source, start int) (Segment, error) {
	if src == nil {
		if start == 0 {
			return Segment{}, nil
		}
		return Segment{}, ErrOutOfRange
	}
	if start < 0 || start > src.Len() {
		return Segment{}, ErrOutOfRange
	}
	return Segment{src: src, off: start, n: src.Len() - start}, nil
}

// SegRange returns the segment [start, start+n) of src.
//
// Returns ErrOutOfRange if the range falls outside the source bounds. The
// range is never clamped.
func SegRange(src Source, start, n int) (Segment, error) {
	srcLen := 0
	if src != nil {
		srcLen = src.Len()
	}
	if start < 0 || n < 0 || start > srcLen || n > srcLen-start {
		return Segment{}, ErrOutOfRange
	}
	if src == nil {
		return Segment{}, nil
	}
	return Segment{src: src, off: start, n: n}, nil
}

// Len returns the number of code units in the segment.
func (seg Segment) Len() int {
	return seg.n
}

// IsEmpty reports whether the segment has no code units.
func (seg Segment) IsEmpty() bool {
	return seg.n == 0
}

// At returns the code unit at segment-local index i.
//
// The index must satisfy 0 <= i < Len(); out-of-range access is a programming
// error at this boundary, not a recoverable condition.
func (seg Segment) At(i int) uint16 {
	return seg.src.At(seg.off + i)
}

// Source returns the backing source. Nil for the empty segment.
func (seg Segment) Source() Source {
	return seg.src
}

// Offset returns the segment's start offset within its source.
func (seg Segment) Offset() int {
	return seg.off
}

// String decodes the segment's code units to a Go string. This allocates.
func (seg Segment) String() string {
	if seg.n == 0 {
		return ""
	}
	units := make([]uint16, seg.n)
	for i := 0; i < seg.n; i++ {
		units[i] = seg.At(i)
	}
	return string(utf16.Decode(units))
}
