package text

import "unicode/utf16"

// Source is a read-only random-access sequence of 16-bit code units.
//
// A Source is the memory that segments and views borrow from. It must never
// mutate while segments referencing it are alive, and it must outlive every
// segment constructed from it. Both guarantees are the caller's obligation;
// nothing in this package enforces them at runtime.
type Source interface {
	// Len returns the number of code units in the sequence.
	Len() int
	// At returns the code unit at index i. The index must satisfy
	// 0 <= i < Len(); access outside that range is a programming error.
	At(i int) uint16
}

// Buffer is an immutable in-memory Source backed by a code-unit slice.
//
// A Buffer created by
//
//	&Buffer{}
//
// is a valid object and behaves like the empty text.
type Buffer struct {
	units []uint16
}

// New creates a buffer from a Go string, encoding it to 16-bit code units.
// Characters outside the basic multilingual plane occupy two units
// (a surrogate pair).
func New(s string) *Buffer {
	return &Buffer{units: utf16.Encode([]rune(s))}
}

// FromUnits creates a buffer from raw code units. The input slice is copied,
// so later modifications of it do not violate the buffer's immutability.
func FromUnits(units []uint16) *Buffer {
	return &Buffer{units: append([]uint16(nil), units...)}
}

// Len returns the number of code units in the buffer.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.units)
}

// At returns the code unit at index i.
func (b *Buffer) At(i int) uint16 {
	return b.units[i]
}

// String decodes the buffer back to a Go string. This allocates; it is meant
// for diagnostics and for leaving the zero-copy world at a boundary.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(utf16.Decode(b.units))
}

// Units returns a copied slice of the buffer's code units.
func (b *Buffer) Units() []uint16 {
	if b == nil {
		return nil
	}
	return append([]uint16(nil), b.units...)
}

var _ Source = &Buffer{}
