package segview

// Comparer is a stateless equality and hashing strategy over views, suitable
// as the key strategy of a hash table or set keyed by views.
//
// Two fixed configurations exist: Ordinal compares case-sensitively,
// OrdinalFold applies ASCII-only case folding. Under either configuration,
// views that compare equal hash identically.
type Comparer struct {
	foldCase bool
}

var (
	// Ordinal compares and hashes views case-sensitively.
	Ordinal = Comparer{}
	// OrdinalFold compares and hashes views with ASCII-only case folding.
	OrdinalFold = Comparer{foldCase: true}
)

// Equals reports whether x and y are equal under this comparer's mode.
func (c Comparer) Equals(x, y View) bool {
	return equalViews(x, y, c.foldCase)
}

// Hash returns the hash of x under this comparer's mode. Equal views hash
// identically regardless of variant.
func (c Comparer) Hash(x View) uint32 {
	switch v := x.(type) {
	case View1:
		if c.foldCase {
			return v.HashFold()
		}
		return v.Hash()
	case View2:
		if c.foldCase {
			return v.HashFold()
		}
		return v.Hash()
	}
	assert(false, "unknown view variant presented to comparer")
	return 0
}

// Compare orders x against y under this comparer's mode; see Compare for the
// sign-only contract of the result.
func (c Comparer) Compare(x, y View) int {
	return compareViews(x, y, c.foldCase)
}
