package segview

// Cross-variant equality and ordering.
//
// View1 and View2 can appear as either side of an equality, ordering or hash
// operation. Normalizing both sides to one shape would force an allocation,
// so instead each pair of variants gets its own algorithm: same-variant pairs
// run directly over the backing segments where the shapes allow it, and mixed
// pairs advance both sides in lock-step through per-variant cursors. Dispatch
// is an exhaustive type switch over the closed View interface; an unknown
// variant is a programming error and trips an assertion.

// Equal reports whether x and y represent the same logical character
// sequence, compared ordinally.
func Equal(x, y View) bool {
	return equalViews(x, y, false)
}

// EqualFold is Equal with ASCII case folding applied to each character pair.
// Non-ASCII characters are never folded.
func EqualFold(x, y View) bool {
	return equalViews(x, y, true)
}

// Compare orders x against y ordinally.
//
// The result is negative, zero or positive; callers must test the sign only.
// When one view is a prefix of the other the result is the length
// difference, not a normalized -1/0/1.
func Compare(x, y View) int {
	return compareViews(x, y, false)
}

// CompareFold is Compare with ASCII case folding applied to each character
// pair.
func CompareFold(x, y View) int {
	return compareViews(x, y, true)
}

func equalViews(x, y View, foldCase bool) bool {
	switch a := x.(type) {
	case View1:
		switch b := y.(type) {
		case View1:
			if foldCase {
				return a.EqualsFold(b)
			}
			return a.Equals(b)
		case View2:
			return equalMixed(a, b, foldCase)
		}
	case View2:
		switch b := y.(type) {
		case View1:
			return equalMixed(b, a, foldCase)
		case View2:
			if foldCase {
				return a.EqualsFold(b)
			}
			return a.Equals(b)
		}
	}
	assert(false, "unknown view variant presented to comparer")
	return false
}

func compareViews(x, y View, foldCase bool) int {
	switch a := x.(type) {
	case View1:
		switch b := y.(type) {
		case View1:
			return a.Compare(b, foldCase)
		case View2:
			return compareMixed(a, b, foldCase)
		}
	case View2:
		switch b := y.(type) {
		case View1:
			return -compareMixed(b, a, foldCase)
		case View2:
			return a.Compare(b, foldCase)
		}
	}
	assert(false, "unknown view variant presented to comparer")
	return 0
}

// equalMixed compares a single-segment view against a two-segment view in
// lock-step. Lengths are known equal or checked here, so exhaustion on one
// side implies exhaustion on the other.
func equalMixed(a View1, b View2, foldCase bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ca, cb := a.cursor(), b.cursor()
	for {
		ua := ca.next()
		ub := cb.next()
		if ua == exhausted {
			return true
		}
		if foldCase {
			ua = int32(foldASCII(uint16(ua)))
			ub = int32(foldASCII(uint16(ub)))
		}
		if ua != ub {
			return false
		}
	}
}

// compareMixed orders a single-segment view against a two-segment view.
// Iteration covers min(len(a), len(b)) positions; an equal prefix decides by
// length difference.
func compareMixed(a View1, b View2, foldCase bool) int {
	ca, cb := a.cursor(), b.cursor()
	for {
		ua := ca.next()
		ub := cb.next()
		if ua == exhausted || ub == exhausted {
			return a.Len() - b.Len()
		}
		if foldCase {
			ua = int32(foldASCII(uint16(ua)))
			ub = int32(foldASCII(uint16(ub)))
		}
		if ua != ub {
			return int(ua) - int(ub)
		}
	}
}
