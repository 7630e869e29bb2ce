/*
Package textfile loads text files as immutable code-unit buffers.

Whole files load synchronously with Load. Large corpora can instead be
streamed: StreamFile reads a file in fragments, splits only at UTF-8 rune
boundaries, decodes each fragment into an immutable text.Buffer and
broadcasts the buffers to any number of subscribers. Consumers typically
slice zero-copy views out of each fragment buffer as it arrives.

_________________________________________________________________________

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segview'
func tracer() tracing.Trace {
	return tracing.Select("segview")
}
