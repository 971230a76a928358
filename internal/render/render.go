package render

import (
	"fmt"
	"strings"

	"github.com/dgallion1/resumetailor/internal/doctree"
)

// Format is a requested output format.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
	FormatTXT  Format = "txt"
)

// MIME types returned alongside rendered bytes.
const (
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEPDF  = "application/pdf"
	MIMETXT  = "text/plain"
)

// ParseFormat maps a selector such as "PDF" or "docx" to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatDOCX:
		return FormatDOCX, nil
	case FormatPDF:
		return FormatPDF, nil
	case FormatTXT:
		return FormatTXT, nil
	}
	return "", fmt.Errorf("%w: unsupported format %q (use docx, pdf or txt)", ErrInvalidInput, s)
}

// MIMEType returns the content type for the format.
func (f Format) MIMEType() string {
	switch f {
	case FormatDOCX:
		return MIMEDOCX
	case FormatPDF:
		return MIMEPDF
	default:
		return MIMETXT
	}
}

// Profile returns the classification thresholds for the format's path.
// TXT output never classifies, but shares the DOCX thresholds for previews.
func (f Format) Profile() doctree.Profile {
	if f == FormatPDF {
		return doctree.ProfilePDF
	}
	return doctree.ProfileDOCX
}

// Result is a fully rendered document.
type Result struct {
	Data     []byte
	MIMEType string
	FileName string
	Format   Format
	Blocks   int // Blocks in the built document (0 for txt)
	Pages    int // Pages laid out (pdf only)
}

// Render builds a Document from text and serializes it in the requested
// format. Text output is the input bytes verbatim. Either the whole byte
// sequence is returned or an error; never a partial document.
func Render(text string, format Format, fileName string) (*Result, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	res := &Result{
		MIMEType: format.MIMEType(),
		FileName: SuggestedFileName(fileName, format),
		Format:   format,
	}

	switch format {
	case FormatTXT:
		res.Data = []byte(text)
		return res, nil

	case FormatDOCX:
		doc := doctree.Build(text, format.Profile())
		data, err := RenderDOCX(doc)
		if err != nil {
			return nil, err
		}
		res.Data = data
		res.Blocks = doc.Len()
		return res, nil

	case FormatPDF:
		doc := doctree.Build(text, format.Profile())
		pages := Layout(doc, DefaultGeometry)
		data, err := paint(pages, DefaultGeometry)
		if err != nil {
			return nil, err
		}
		res.Data = data
		res.Blocks = doc.Len()
		res.Pages = len(pages)
		return res, nil
	}

	return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, format)
}

// SuggestedFileName returns the caller's name with double quotes removed,
// or resume.<ext> when none was given.
func SuggestedFileName(name string, format Format) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `"`, ""))
	if name == "" {
		return "resume." + string(format)
	}
	return name
}

// ContentDisposition builds an attachment header value for name.
func ContentDisposition(name string) string {
	return fmt.Sprintf(`attachment; filename="%s"`, strings.ReplaceAll(name, `"`, ""))
}

// vocabulary is the set of block kinds a renderer can express.
type vocabulary map[doctree.Kind]bool

// normalize maps kinds outside the vocabulary to a paragraph carrying the
// block's original text.
func (v vocabulary) normalize(b doctree.Block) doctree.Block {
	if v[b.Kind] {
		return b
	}
	return doctree.Block{Kind: doctree.KindParagraph, Text: b.Text}
}
