package segview

import (
	"unicode"

	"segview/text"
)

// Span is a code-unit range descriptor inside a source.
//
// Pos is the start offset, Len is the span length in code units.
type Span struct {
	Pos int
	Len int
}

// WordSpans scans src for words and returns one span per word, in logical
// order. A word is a maximal run of letter or digit code units; everything
// else separates words. Classification looks at single code units, so
// characters outside the basic multilingual plane (surrogate pairs) count as
// separators.
func WordSpans(src text.Source) []Span {
	if src == nil {
		return nil
	}
	var spans []Span
	inWord := false
	start := 0
	n := src.Len()
	for i := 0; i < n; i++ {
		if isWordUnit(src.At(i)) {
			if !inWord {
				inWord = true
				start = i
			}
			continue
		}
		if inWord {
			inWord = false
			spans = append(spans, Span{Pos: start, Len: i - start})
		}
	}
	if inWord {
		spans = append(spans, Span{Pos: start, Len: n - start})
	}
	return spans
}

// Words scans src for words and returns a zero-copy View1 per word, in
// logical order. The views borrow from src; see WordSpans for the word
// definition.
func Words(src text.Source) []View1 {
	spans := WordSpans(src)
	if len(spans) == 0 {
		return nil
	}
	views := make([]View1, len(spans))
	for i, span := range spans {
		v, err := Slice(src, span.Pos, span.Len)
		assert(err == nil, "word span out of source bounds")
		views[i] = v
	}
	return views
}

func isWordUnit(u uint16) bool {
	r := rune(u)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
