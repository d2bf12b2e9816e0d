// Package htmltext converts HTML-saved mail into plain text lines suitable
// for the line-oriented reply pipeline.
package htmltext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists elements that end a visual line in rendered mail.
const blockSelector = "p, div, tr, li, blockquote, pre, h1, h2, h3, h4, h5, h6"

// Convert renders an HTML document to plain text, preserving line structure
// well enough for the header and signature heuristics to run over the result.
// Scripts, styles, and the document head contribute nothing; explicit breaks
// and block-level elements become line breaks. Runs of blank lines collapse
// to one.
func Convert(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("br").AfterHtml("\n")
	doc.Find(blockSelector).AfterHtml("\n")

	var out []string
	for _, line := range strings.Split(doc.Find("body").Text(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n"), nil
}
