package segview

import "segview/text"

// Of builds the minimal-segment view over the given source texts.
//
// No sources yield an empty View1, one source a View1 over all of it, two
// sources a View2 over their concatenation. More than two sources are not
// supported and return ErrUnsupportedSegmentCount.
func Of(srcs ...text.Source) (View, error) {
	switch len(srcs) {
	case 0:
		return View1{}, nil
	case 1:
		return FromText(srcs[0]), nil
	case 2:
		return Join(srcs[0], srcs[1]), nil
	}
	T().Errorf("view requested over %d texts", len(srcs))
	return nil, ErrUnsupportedSegmentCount
}
