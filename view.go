package segview

// View is the common handle over the two view variants.
//
// It exposes just enough for heterogeneous variants to mix in one collection:
// length, the whitespace predicate, and the case-insensitive hash. The hot
// equality and ordering paths deliberately stay off this interface; they live
// as free functions (Equal, Compare and friends) specialized per concrete
// variant pair, so that mixing variants costs no virtual dispatch per
// character.
//
// The interface is closed: only View1 and View2 implement it. Code that
// dispatches over a View may therefore match exhaustively on those two types;
// anything else is a programming error.
type View interface {
	// Len returns the total logical character count.
	Len() int
	// IsWhitespace reports whether the view is empty or all whitespace.
	IsWhitespace() bool
	// HashFold returns the ASCII-case-insensitive hash of the view.
	HashFold() uint32

	sealed()
}

var (
	_ View = View1{}
	_ View = View2{}
)
