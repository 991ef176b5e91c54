package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// parseDocument parses rendered markup into a queryable document. goquery
// compiles invalid selectors into never-matching matchers, so a bad
// hard-coded selector downstream degrades to "field not found" instead of
// aborting the call.
func parseDocument(content string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(content))
}

// rawText concatenates every text node under the selection, preserving
// internal whitespace, and trims the result. Used for code blocks, where
// Selection.Text's behavior around nested spans matters less than keeping
// the node walk explicit and indentation intact.
func rawText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		collectText(&b, n)
	}
	return strings.TrimSpace(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// lastToken returns the final whitespace-separated token of s. Label rows
// like "评测状态 Accepted" keep the verdict last.
func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// allDigits reports whether s is non-empty and purely ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
