package segview

import (
	"testing"

	"segview/text"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestCompareMatchesEquality(t *testing.T) {
	views := []View{
		FromText(text.New("abc")),
		Join(text.New("a"), text.New("bc")),
		FromText(text.New("abd")),
		FromText(text.New("ab")),
		Join(text.New("abc"), text.New("d")),
		View1{},
	}
	for _, a := range views {
		for _, b := range views {
			eq := Equal(a, b)
			cmp := Compare(a, b)
			if eq != (cmp == 0) {
				t.Errorf("Compare(%v,%v)=%d disagrees with Equal=%v", a, b, cmp, eq)
			}
			if sign(Compare(a, b)) != -sign(Compare(b, a)) {
				t.Errorf("Compare not antisymmetric for %v / %v", a, b)
			}
		}
	}
}

func TestCompareOrdersOrdinally(t *testing.T) {
	ab := FromText(text.New("ab"))
	ac := Join(text.New("a"), text.New("c"))
	if Compare(ab, ac) >= 0 {
		t.Errorf("expected 'ab' < 'ac', got %d", Compare(ab, ac))
	}
	if Compare(ac, ab) <= 0 {
		t.Errorf("expected 'ac' > 'ab', got %d", Compare(ac, ab))
	}
}

func TestComparePrefixDecidesByLength(t *testing.T) {
	short := FromText(text.New("ab"))
	long := Join(text.New("ab"), text.New("cd"))
	if got := Compare(short, long); got != -2 {
		t.Errorf("expected raw length difference -2, got %d", got)
	}
	if got := Compare(long, short); got != 2 {
		t.Errorf("expected raw length difference 2, got %d", got)
	}
}

func TestCompareFold(t *testing.T) {
	mixed := FromText(text.New("AbC"))
	split := Join(text.New("a"), text.New("Bc"))
	if CompareFold(mixed, split) != 0 {
		t.Errorf("expected fold-compare 0, got %d", CompareFold(mixed, split))
	}
	if Compare(mixed, split) == 0 {
		t.Errorf("expected case-sensitive compare to differ")
	}
	// 'B' orders before 'a' ordinally, but folding uppercases both sides.
	b := FromText(text.New("b"))
	A := FromText(text.New("A"))
	if CompareFold(b, A) <= 0 {
		t.Errorf("expected folded 'b' > 'A', got %d", CompareFold(b, A))
	}
}

func TestCompareSameVariantDirect(t *testing.T) {
	x := FromText(text.New("abcx"))
	y := FromText(text.New("abcy"))
	if got := x.Compare(y, false); got != int('x')-int('y') {
		t.Errorf("expected character difference %d, got %d", int('x')-int('y'), got)
	}
	p := Join(text.New("ab"), text.New("cx"))
	q := Join(text.New("abc"), text.New("y"))
	if sign(p.Compare(q, false)) != -1 {
		t.Errorf("expected 'abcx' < 'abcy' across shapes, got %d", p.Compare(q, false))
	}
}
