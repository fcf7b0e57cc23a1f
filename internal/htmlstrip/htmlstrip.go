// Package htmlstrip reduces an HTML document to its visible text, for
// callers that opt a page into stripping before tokenization.
package htmlstrip

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip parses s as HTML and returns the concatenation of its text nodes,
// trimmed of leading/trailing whitespace. If s does not parse as HTML, it is
// returned unchanged rather than failing the analysis over it.
func Strip(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
