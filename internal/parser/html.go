package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// htmlPolicy drops scripts, embedded frames and attributes before the markup
// is walked. A Policy is safe for concurrent use once built.
var htmlPolicy = bluemonday.UGCPolicy()

// HTMLExtractor handles HTML files. Headings, list items and paragraphs each
// become lines; everything else contributes text only through them.
type HTMLExtractor struct{}

func (e *HTMLExtractor) Extract(r io.Reader, filename string) (*Extraction, error) {
	doc, err := html.Parse(htmlPolicy.SanitizeReader(r))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var lines []string
	blank := func() {
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if headingLevel(n.Data) > 0 {
				if t := textContent(n); t != "" {
					blank()
					lines = append(lines, strings.ToUpper(t))
				}
				return // Don't recurse into heading children (already extracted text).
			}

			// Skip non-content elements.
			switch n.Data {
			case "script", "style", "nav", "noscript", "template":
				return
			case "hr":
				lines = append(lines, markdownRule)
				return
			case "li":
				if t := textContent(n); t != "" {
					lines = append(lines, "• "+t)
				}
				return
			case "p", "blockquote", "pre", "address", "dt", "dd":
				if t := textContent(n); t != "" {
					lines = append(lines, strings.Split(t, "\n")...)
				}
				return
			case "tr":
				if t := rowText(n); t != "" {
					lines = append(lines, t)
				}
				return
			}
		}

		if n.Type == html.TextNode {
			// Loose text directly inside containers such as <div>.
			if t := collapseSpace(n.Data); t != "" {
				lines = append(lines, t)
			}
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Find <body> or use whole document.
	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return &Extraction{Text: strings.TrimRight(strings.Join(lines, "\n"), "\n")}, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// textContent returns the node's text with runs of whitespace collapsed and
// <br> kept as a line break.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			buf.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			buf.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)

	parts := strings.Split(buf.String(), "\n")
	out := parts[:0]
	for _, p := range parts {
		if p = collapseSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}

func rowText(tr *html.Node) string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			if t := strings.ReplaceAll(textContent(c), "\n", " "); t != "" {
				cells = append(cells, t)
			}
		}
	}
	return strings.Join(cells, " | ")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
