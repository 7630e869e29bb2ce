/*
Package segview provides zero-copy string views composed of one or two
borrowed text segments.

# Views

High-volume parsing and keying workloads often materialize millions of
short-lived substrings just to use them as dictionary or set keys. Each of
those substrings is a fresh allocation and later garbage, even though the
characters already sit in memory inside the source text. Views avoid this:
a view references runs of code units in existing, immutable text and behaves
like a string for the operations keying needs, namely equality, ordering and
hashing.

Two variants exist. View1 covers one contiguous run; View2 stitches two runs
into one logical character sequence, for example a token split across two
buffers. Both are lightweight values, copied by value, and both present the
same ordinal contract: two views are equal exactly when their logical
character sequences are equal, no matter how many segments back either side,
and equal views hash identically under the same mode. Comparisons come in a
case-sensitive form and an ASCII-only case-insensitive form; characters
outside a–z/A–Z are never folded, which is a deliberate limitation and not
a bug.

Views borrow. They own no text memory, copy nothing, and are valid only as
long as every source they reference is alive and unmutated. That lifetime
contract is the caller's obligation.

A view created by

	View1{}

is a valid object and behaves like the empty string.

_________________________________________________________________________

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package segview

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
