package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXExtractor handles .docx files. Each paragraph becomes one line;
// empty paragraphs are kept as blank lines because resumes use them as
// section spacing.
type DOCXExtractor struct{}

func (e *DOCXExtractor) Extract(r io.Reader, filename string) (*Extraction, error) {
	// go-docx needs a ReaderAt+size, so write to temp file.
	tmp, err := os.CreateTemp("", "resumetailor-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	defer tmp.Close()

	size, err := io.Copy(tmp, r)
	if err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if size == 0 {
		return nil, ErrEmpty
	}

	doc, err := docx.Parse(tmp, size)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var lines []string
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			lines = append(lines, docxParagraphLine(v))
		case *docx.Table:
			lines = append(lines, docxTableLines(v)...)
		}
	}

	return &Extraction{Text: strings.TrimRight(strings.Join(lines, "\n"), "\n")}, nil
}

// docxParagraphLine flattens a paragraph, prefixing list paragraphs with a
// bullet glyph so they classify as bullets again.
func docxParagraphLine(para *docx.Paragraph) string {
	text := strings.TrimSpace(docxParagraphText(para))
	if text != "" && docxIsListItem(para) && !strings.HasPrefix(text, "•") {
		text = "• " + text
	}
	return text
}

func docxIsListItem(para *docx.Paragraph) bool {
	if para.Properties == nil {
		return false
	}
	if para.Properties.NumProperties != nil {
		return true
	}
	if para.Properties.Style == nil {
		return false
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	return strings.HasPrefix(style, "listbullet") || style == "listparagraph"
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			switch v := rc.(type) {
			case *docx.Text:
				buf.WriteString(v.Text)
			case *docx.Tab:
				buf.WriteByte(' ')
			}
		}
	}
	return buf.String()
}

// docxTableLines emits one line per table row with cells joined by " | ".
func docxTableLines(tbl *docx.Table) []string {
	var lines []string
	for _, row := range tbl.TableRows {
		var cells []string
		for _, cell := range row.TableCells {
			var parts []string
			for _, p := range cell.Paragraphs {
				if t := strings.TrimSpace(docxParagraphText(p)); t != "" {
					parts = append(parts, t)
				}
			}
			if len(parts) > 0 {
				cells = append(cells, strings.Join(parts, " "))
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, " | "))
		}
	}
	return lines
}
