package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFExtractor handles PDF files. It tries the Go library first,
// then falls back to pdftotext if enabled.
type PDFExtractor struct {
	FallbackPdftotext bool
}

func (e *PDFExtractor) Extract(r io.Reader, filename string) (*Extraction, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "resumetailor-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	n, err := io.Copy(tmp, r)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if n == 0 {
		return nil, ErrEmpty
	}

	text, err := extractPDFText(tmpPath)
	if (err != nil || strings.TrimSpace(text) == "") && e.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	pages, err := pdfPageCount(tmpPath)
	if err != nil {
		// Text was recovered; a page count is informational only.
		pages = strings.Count(text, "\f") + 1
	}

	return &Extraction{
		Text:  joinPages(text),
		Pages: pages,
	}, nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := pageText(page)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

// pageText rebuilds the page's lines from positioned text runs. Plain-text
// extraction drops line breaks, which the line classifier depends on.
func pageText(page pdflib.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var line strings.Builder
		var prevEnd float64
		for i, word := range row.Content {
			// Some producers position words instead of emitting spaces.
			if i > 0 && word.X-prevEnd > word.FontSize*0.2 &&
				!strings.HasSuffix(line.String(), " ") && !strings.HasPrefix(word.S, " ") {
				line.WriteByte(' ')
			}
			line.WriteString(word.S)
			prevEnd = word.X + word.W
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return strings.Join(lines, "\n"), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

func pdfPageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}
	return ctx.PageCount, nil
}

// joinPages replaces page separators with a blank line so page breaks read
// as section gaps.
func joinPages(text string) string {
	var pages []string
	for _, p := range strings.Split(normalizeNewlines(text), "\f") {
		p = strings.Trim(p, "\n")
		if strings.TrimSpace(p) != "" {
			pages = append(pages, p)
		}
	}
	return strings.Join(pages, "\n\n")
}
