package segview

import (
	"io"
	"unicode/utf16"
	"unicode/utf8"
)

// Reader returns a reader for the UTF-8 encoding of view's characters.
//
// The view's 16-bit code units are decoded on the fly, combining surrogate
// pairs even across a View2 segment boundary; unpaired surrogates decode to
// the Unicode replacement character.
func Reader(view View) io.Reader {
	return &viewReader{next: unitStream(view)}
}

type viewReader struct {
	next       func() int32
	pending    int32 // look-ahead unit after an unpaired high surrogate
	hasPending bool
	buf        []byte // encoded bytes not yet delivered
	scratch    [utf8.UTFMax]byte
}

func (vr *viewReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(vr.buf) > 0 {
			c := copy(p[n:], vr.buf)
			vr.buf = vr.buf[c:]
			n += c
			continue
		}
		r, ok := vr.decodeRune()
		if !ok {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		k := utf8.EncodeRune(vr.scratch[:], r)
		vr.buf = vr.scratch[:k]
	}
	return n, nil
}

func (vr *viewReader) take() int32 {
	if vr.hasPending {
		vr.hasPending = false
		return vr.pending
	}
	return vr.next()
}

func (vr *viewReader) decodeRune() (rune, bool) {
	u := vr.take()
	if u == exhausted {
		return 0, false
	}
	if !utf16.IsSurrogate(rune(u)) {
		return rune(u), true
	}
	u2 := vr.take()
	if u2 == exhausted {
		return utf8.RuneError, true
	}
	r := utf16.DecodeRune(rune(u), rune(u2))
	if r == utf8.RuneError {
		// u was unpaired; reconsider u2 on the next round.
		vr.pending = u2
		vr.hasPending = true
	}
	return r, true
}

// unitStream returns a fresh single-pass producer of view's logical code
// units, dispatching to the variant's cursor.
func unitStream(view View) func() int32 {
	switch v := view.(type) {
	case View1:
		return v.cursor().next
	case View2:
		return v.cursor().next
	}
	assert(false, "unknown view variant presented to reader")
	return nil
}
