/*
Package htmltext extracts the textual content of HTML documents as immutable
code-unit buffers, so HTML corpora can be keyed with zero-copy views.

_________________________________________________________________________

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"segview/text"
)

// Text parses an HTML document and returns the concatenation of its text
// nodes as one immutable buffer. It resembles the text produced by
//
//	document.body.innerText
//
// in JavaScript, except that no CSS styling is interpreted; only the contents
// of script and style elements are skipped.
func Text(input io.Reader) (*text.Buffer, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	collectText(doc, &sb)
	return text.New(sb.String()), nil
}

// InnerText returns the textual content of an HTML element and all its
// descendents as one immutable buffer.
func InnerText(n *html.Node) *text.Buffer {
	var sb strings.Builder
	collectText(n, &sb)
	return text.New(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
