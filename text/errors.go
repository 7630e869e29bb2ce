package text

import "errors"

var (
	// ErrOutOfRange signals a segment offset/length outside the source bounds.
	ErrOutOfRange = errors.New("text: segment range out of source bounds")
)
