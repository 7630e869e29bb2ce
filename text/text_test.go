package text

import (
	"errors"
	"testing"
)

func TestBufferEncodesToCodeUnits(t *testing.T) {
	b := New("a😀")
	// 'a' is one unit, 😀 a surrogate pair.
	if b.Len() != 3 {
		t.Fatalf("expected 3 code units, got %d", b.Len())
	}
	if b.At(0) != 'a' {
		t.Errorf("expected unit 'a' at 0, got %#x", b.At(0))
	}
	if b.At(1) < 0xD800 || b.At(1) > 0xDBFF {
		t.Errorf("expected high surrogate at 1, got %#x", b.At(1))
	}
	if b.String() != "a😀" {
		t.Errorf("expected roundtrip 'a😀', got %q", b.String())
	}
}

func TestFromUnitsCopiesInput(t *testing.T) {
	units := []uint16{'a', 'b'}
	b := FromUnits(units)
	units[0] = 'X'
	if b.At(0) != 'a' {
		t.Errorf("buffer should not alias input units, got %#x", b.At(0))
	}
}

func TestNilBufferIsEmpty(t *testing.T) {
	var b *Buffer
	if b.Len() != 0 {
		t.Errorf("expected nil buffer length 0, got %d", b.Len())
	}
	if b.String() != "" {
		t.Errorf("expected nil buffer to decode to \"\"")
	}
}

func TestSegConstructors(t *testing.T) {
	src := New("abcdefg")
	whole := Seg(src)
	if whole.Len() != 7 || whole.At(0) != 'a' {
		t.Errorf("unexpected whole segment: len=%d", whole.Len())
	}
	tail, err := SegFrom(src, 2)
	if err != nil {
		t.Fatalf("unexpected SegFrom error: %v", err)
	}
	if tail.Len() != 5 || tail.At(0) != 'c' {
		t.Errorf("unexpected tail segment: len=%d first=%q", tail.Len(), rune(tail.At(0)))
	}
	mid, err := SegRange(src, 2, 3)
	if err != nil {
		t.Fatalf("unexpected SegRange error: %v", err)
	}
	if mid.String() != "cde" {
		t.Errorf("expected 'cde', got %q", mid.String())
	}
	if mid.Offset() != 2 {
		t.Errorf("expected offset 2, got %d", mid.Offset())
	}
}

func TestSegBoundsAreNeverClamped(t *testing.T) {
	src := New("abc")
	cases := []struct {
		start, n int
	}{
		{-1, 1}, {0, 4}, {4, 0}, {2, 2}, {0, -1},
	}
	for _, c := range cases {
		if _, err := SegRange(src, c.start, c.n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SegRange(%d,%d): expected ErrOutOfRange, got %v", c.start, c.n, err)
		}
	}
	if _, err := SegFrom(src, -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SegFrom(-1): expected ErrOutOfRange, got %v", err)
	}
	if _, err := SegFrom(src, 3); err != nil {
		t.Errorf("SegFrom(len) is the empty tail, got error %v", err)
	}
}

func TestEmptySegment(t *testing.T) {
	var seg Segment
	if !seg.IsEmpty() || seg.Len() != 0 {
		t.Errorf("zero segment must be empty")
	}
	if seg.String() != "" {
		t.Errorf("expected empty decode, got %q", seg.String())
	}
	if Seg(nil).Len() != 0 {
		t.Errorf("Seg(nil) must be empty")
	}
}
