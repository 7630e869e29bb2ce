package segview

import (
	"io"
	"strings"
	"testing"

	"segview/text"
)

func TestReaderDecodesView(t *testing.T) {
	v := Join(text.New("abc"), text.New("defg"))
	out, err := io.ReadAll(Reader(v))
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if string(out) != "abcdefg" {
		t.Errorf("expected 'abcdefg', got %q", out)
	}
}

func TestReaderJoinsSurrogatePairAcrossBoundary(t *testing.T) {
	// 😀 encodes as a surrogate pair; split it between the two segments.
	buf := text.New("x😀y")
	s1, err := text.SegRange(buf, 0, 2)
	if err != nil {
		t.Fatalf("unexpected SegRange error: %v", err)
	}
	s2, err := text.SegRange(buf, 2, 2)
	if err != nil {
		t.Fatalf("unexpected SegRange error: %v", err)
	}
	v := JoinSegments(s1, s2)
	out, err := io.ReadAll(Reader(v))
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if string(out) != "x😀y" {
		t.Errorf("expected 'x😀y', got %q", out)
	}
}

func TestReaderSmallDestination(t *testing.T) {
	v := FromText(text.New(strings.Repeat("ab", 40)))
	r := Reader(v)
	var collected []byte
	p := make([]byte, 3)
	for {
		n, err := r.Read(p)
		collected = append(collected, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected read error: %v", err)
		}
	}
	if string(collected) != strings.Repeat("ab", 40) {
		t.Errorf("reassembled text differs from source")
	}
}

func TestReaderEmptyView(t *testing.T) {
	out, err := io.ReadAll(Reader(View1{}))
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected no bytes from empty view, got %d", len(out))
	}
}
