package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupported is returned for file types the service cannot read.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrLegacyDoc is returned for binary Word 97-2003 files.
	ErrLegacyDoc = errors.New("legacy .doc files are not supported, save as .docx")
	// ErrEmpty is returned when an upload has no bytes.
	ErrEmpty = errors.New("empty file")
)

// Extraction is the plain text recovered from an uploaded resume.
type Extraction struct {
	Text  string
	Pages int // Source page count, 0 when the format has no pages.
}

// Extractor converts raw document bytes into resume text.
type Extractor interface {
	Extract(r io.Reader, filename string) (*Extraction, error)
}

// Options tunes extractor construction.
type Options struct {
	FallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string, opts Options) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: opts.FallbackPdftotext}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".doc":
		return nil, ErrLegacyDoc
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// ForUpload picks an extractor from the file name, falling back to the
// declared content type when the name has no recognised extension.
func ForUpload(filename, contentType string, opts Options) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if SupportedExtensions[ext] || ext == ".doc" {
		return ForFile(filename, opts)
	}

	mime := strings.ToLower(contentType)
	switch {
	case mime == "application/msword":
		return nil, ErrLegacyDoc
	case strings.Contains(mime, "pdf"):
		return ForFile("upload.pdf", opts)
	case strings.Contains(mime, "officedocument.wordprocessingml.document"):
		return ForFile("upload.docx", opts)
	case strings.HasPrefix(mime, "text/markdown"):
		return ForFile("upload.md", opts)
	case strings.HasPrefix(mime, "text/html"):
		return ForFile("upload.html", opts)
	case strings.HasPrefix(mime, "text/"):
		return ForFile("upload.txt", opts)
	}
	return ForFile(filename, opts)
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// normalizeNewlines converts CRLF and bare CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
