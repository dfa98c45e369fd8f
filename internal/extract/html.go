package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText strips an HTML document down to the text a reader would
// see, so web-hosted agreements can enter the analysis pipeline as
// plain text. Script, style, and similar non-content subtrees are
// skipped. html.Parse is lenient, so plain-text input passes through
// with whitespace normalized rather than erroring.
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "nav", "footer":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}

// LooksLikeHTML reports whether content should be run through
// VisibleText before analysis.
func LooksLikeHTML(content string, contentType string) bool {
	if strings.Contains(contentType, "text/html") || strings.Contains(contentType, "xhtml") {
		return true
	}
	head := strings.ToLower(strings.TrimSpace(content))
	if len(head) > 256 {
		head = head[:256]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
