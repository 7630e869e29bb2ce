package segview

import "errors"

var (
	// ErrUnsupportedSegmentCount signals a request for a view over more than
	// two source texts.
	ErrUnsupportedSegmentCount = errors.New("segview: more than two source texts")
)
