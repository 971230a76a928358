package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/resumetailor/internal/render"
)

func TestPDFExtractor_RenderedResume(t *testing.T) {
	res, err := render.Render("SUMMARY\nBackend engineer\n\nSKILLS\n• Go", render.FormatPDF, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	e := &PDFExtractor{}
	got, err := e.Extract(bytes.NewReader(res.Data), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"SUMMARY", "SKILLS"} {
		if !strings.Contains(got.Text, want) {
			t.Errorf("expected extracted text to contain %q, got %q", want, got.Text)
		}
	}
	if got.Pages != res.Pages {
		t.Errorf("expected %d pages, got %d", res.Pages, got.Pages)
	}
}

func TestPDFExtractor_EmptyAndCorrupt(t *testing.T) {
	e := &PDFExtractor{}
	if _, err := e.Extract(bytes.NewReader(nil), "empty.pdf"); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := e.Extract(bytes.NewReader([]byte("%PDF-garbage")), "bad.pdf"); err == nil {
		t.Error("expected error for corrupt pdf")
	}
}

func TestJoinPages(t *testing.T) {
	got := joinPages("Page one\n\fPage two\r\n\f  \f")
	if got != "Page one\n\nPage two" {
		t.Errorf("unexpected %q", got)
	}
}
