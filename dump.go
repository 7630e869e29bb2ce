package segview

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes a human-readable description of view's segment structure to w
// (for debugging purposes).
//
// Each segment prints on its own line with its offset, length and decoded
// text. When w is a terminal, segments are colorized with a small palette;
// otherwise output stays plain.
func Dump(w io.Writer, view View) {
	palette := segmentPalette(w)
	switch v := view.(type) {
	case View1:
		fmt.Fprintf(w, "View1 len=%d\n", v.Len())
		dumpSegment(w, palette[0], 1, v.Segment().Offset(), v.Len(), v.String())
	case View2:
		fmt.Fprintf(w, "View2 len=%d\n", v.Len())
		dumpSegment(w, palette[0], 1, v.Segment1().Offset(), v.Segment1().Len(), v.Segment1().String())
		dumpSegment(w, palette[1], 2, v.Segment2().Offset(), v.Segment2().Len(), v.Segment2().String())
	default:
		assert(false, "unknown view variant presented to dump")
	}
}

func dumpSegment(w io.Writer, c *color.Color, no, off, n int, content string) {
	label := fmt.Sprintf("  segment %d @%d +%d", no, off, n)
	if c != nil {
		label = c.Sprint(label)
	}
	fmt.Fprintf(w, "%s “%s”\n", label, content)
}

func segmentPalette(w io.Writer) [2]*color.Color {
	if !isTerminal(w) {
		return [2]*color.Color{}
	}
	return [2]*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgGreen),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
