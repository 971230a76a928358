package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdownRule is the line emitted for a thematic break.
const markdownRule = "────────────────────"

// MarkdownExtractor handles Markdown files using goldmark. Headings become
// upper-case section titles and list items become bullet lines, matching the
// conventions of a plain-text resume.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (*Extraction, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	if len(src) == 0 {
		return nil, ErrEmpty
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var lines []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if len(lines) > 0 && n.HasBlankPreviousLines() {
			lines = append(lines, "")
		}
		lines = append(lines, markdownBlockLines(n, src)...)
	}

	return &Extraction{Text: strings.Join(lines, "\n")}, nil
}

func markdownBlockLines(n ast.Node, src []byte) []string {
	switch node := n.(type) {
	case *ast.Heading:
		return []string{strings.ToUpper(extractText(node, src))}
	case *ast.List:
		var lines []string
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			lines = append(lines, markdownListItem(item, src)...)
		}
		return lines
	case *ast.ThematicBreak:
		return []string{markdownRule}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var lines []string
		segs := n.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			lines = append(lines, strings.TrimRight(string(seg.Value(src)), "\n"))
		}
		return lines
	default:
		t := extractText(n, src)
		if t == "" {
			return nil
		}
		return strings.Split(t, "\n")
	}
}

// markdownListItem flattens a list item and any nested lists into bullet
// lines. Nesting depth is not kept.
func markdownListItem(item ast.Node, src []byte) []string {
	var lines []string
	var head []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if l, ok := c.(*ast.List); ok {
			lines = append(lines, markdownBlockLines(l, src)...)
			continue
		}
		if t := extractText(c, src); t != "" {
			head = append(head, strings.ReplaceAll(t, "\n", " "))
		}
	}
	if len(head) > 0 {
		lines = append([]string{"• " + strings.Join(head, " ")}, lines...)
	}
	return lines
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && !n.HasChildren() {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
