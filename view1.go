package segview

import "segview/text"

// View1 is a string view backed by one borrowed segment.
//
// View1 is a lightweight value: copy it freely, never point at it. It borrows
// its characters from the segment's source and is valid for as long as that
// source is alive and unmutated.
type View1 struct {
	seg text.Segment
}

// FromText returns a view over all of src.
func FromText(src text.Source) View1 {
	return View1{seg: text.Seg(src)}
}

// Suffix returns a view over the tail of src starting at offset start.
//
// Returns text.ErrOutOfRange if start lies outside [0, src.Len()].
func Suffix(src text.Source, start int) (View1, error) {
	seg, err := text.SegFrom(src, start)
	if err != nil {
		return View1{}, err
	}
	return View1{seg: seg}, nil
}

// Slice returns a view over the code units [start, start+n) of src.
//
// Returns text.ErrOutOfRange if the range falls outside the source bounds;
// the range is never clamped.
func Slice(src text.Source, start, n int) (View1, error) {
	seg, err := text.SegRange(src, start, n)
	if err != nil {
		return View1{}, err
	}
	return View1{seg: seg}, nil
}

// FromSegment wraps an existing segment in a view.
func FromSegment(seg text.Segment) View1 {
	return View1{seg: seg}
}

// Len returns the logical character count of the view.
func (v View1) Len() int {
	return v.seg.Len()
}

// Segment returns the borrowed segment backing this view.
func (v View1) Segment() text.Segment {
	return v.seg
}

// IsWhitespace reports whether the view is empty or consists entirely of
// whitespace characters.
func (v View1) IsWhitespace() bool {
	return segmentIsWhitespace(v.seg)
}

// Equals reports whether v and other represent the same character sequence,
// compared ordinally. Both sides are single-segment, so the comparison runs
// directly over the backing characters without cursor indirection.
func (v View1) Equals(other View1) bool {
	if v.seg.Len() != other.seg.Len() {
		return false
	}
	for i := 0; i < v.seg.Len(); i++ {
		if v.seg.At(i) != other.seg.At(i) {
			return false
		}
	}
	return true
}

// EqualsFold is Equals with ASCII case folding applied to each character
// pair. Non-ASCII characters are never folded.
func (v View1) EqualsFold(other View1) bool {
	if v.seg.Len() != other.seg.Len() {
		return false
	}
	for i := 0; i < v.seg.Len(); i++ {
		if foldASCII(v.seg.At(i)) != foldASCII(other.seg.At(i)) {
			return false
		}
	}
	return true
}

// Compare orders v against other ordinally, optionally with ASCII case
// folding.
//
// The result is negative, zero or positive; callers must test the sign only.
// When one view is a prefix of the other the result is the length difference,
// not a normalized -1/0/1.
func (v View1) Compare(other View1, foldCase bool) int {
	n := v.seg.Len()
	if other.seg.Len() < n {
		n = other.seg.Len()
	}
	for i := 0; i < n; i++ {
		a, b := v.seg.At(i), other.seg.At(i)
		if foldCase {
			a, b = foldASCII(a), foldASCII(b)
		}
		if a != b {
			return int(a) - int(b)
		}
	}
	return v.seg.Len() - other.seg.Len()
}

// Hash returns the case-sensitive hash of the view's character sequence.
func (v View1) Hash() uint32 {
	var h hasher
	h.init()
	for i := 0; i < v.seg.Len(); i++ {
		h.write(v.seg.At(i))
	}
	return h.sum()
}

// HashFold returns the ASCII-case-insensitive hash of the view's character
// sequence.
func (v View1) HashFold() uint32 {
	var h hasher
	h.init()
	for i := 0; i < v.seg.Len(); i++ {
		h.write(foldASCII(v.seg.At(i)))
	}
	return h.sum()
}

// String decodes the view to a Go string. This allocates and is meant for
// diagnostics and boundary crossings, not for the hot keying paths.
func (v View1) String() string {
	return v.seg.String()
}

func (v View1) cursor() *cursor1 {
	return &cursor1{seg: v.seg}
}

func (View1) sealed() {}
