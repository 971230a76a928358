package render

import (
	"bytes"
	"embed"
	"io/fs"
	"strings"

	"github.com/dgallion1/resumetailor/internal/doctree"
	"github.com/fumiama/go-docx"
)

const (
	styleHeading = "Heading1"
	styleBullet  = "ListBullet"

	// Spacing after a block, in twentieths of a point.
	headingSpacingAfter = 200
	bodySpacingAfter    = 100

	// Run size in half-points (11pt).
	bodyFontSize = "22"

	// Hanging indent for the single bullet level, in twips.
	bulletIndent = 360
)

var docxVocabulary = vocabulary{
	doctree.KindBlank:     true,
	doctree.KindHeading:   true,
	doctree.KindBullet:    true,
	doctree.KindParagraph: true,
}

// RenderDOCX serializes doc as a single-section word-processing document.
// Divider blocks have no DOCX form and are written as paragraphs.
func RenderDOCX(doc doctree.Document) ([]byte, error) {
	f := docx.New().UseTemplate(templateName, docx.DefaultTemplateFilesList, templateFS{})

	// go-docx cannot emit w:spacing/@w:after, so each block's trailing gap
	// is written as the next paragraph's w:before.
	gap := 0
	for _, b := range doc.Blocks {
		b = docxVocabulary.normalize(b)

		p := f.AddParagraph()
		if gap > 0 {
			spaceBefore(p, gap)
		}

		switch b.Kind {
		case doctree.KindBlank:
			gap = 0
		case doctree.KindHeading:
			p.Style(styleHeading)
			p.AddText(b.Text)
			gap = headingSpacingAfter
		case doctree.KindBullet:
			// A visual bullet: glyph, tab and hanging indent under the
			// ListBullet style. There is no numbering part, so word
			// processors see a styled paragraph rather than a list item.
			p.Style(styleBullet)
			indent(p, bulletIndent)
			p.AddText("•\t" + b.Text).Size(bodyFontSize)
			gap = bodySpacingAfter
		default:
			p.AddText(b.Text).Size(bodyFontSize)
			gap = bodySpacingAfter
		}
	}

	// One section, US Letter with 1in margins.
	f.Document.Body.Items = append(f.Document.Body.Items, &docx.SectPr{
		PgSz:  &docx.PgSz{W: 12240, H: 15840},
		PgMar: &docx.PgMar{Top: 1440, Left: 1440, Bottom: 1440, Right: 1440, Header: 720, Footer: 720},
	})

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, &RenderError{Format: FormatDOCX, Err: err}
	}
	return buf.Bytes(), nil
}

func spaceBefore(p *docx.Paragraph, twips int) {
	if p.Properties == nil {
		p.Properties = &docx.ParagraphProperties{}
	}
	p.Properties.Spacing = &docx.Spacing{Before: twips}
}

func indent(p *docx.Paragraph, twips int) {
	if p.Properties == nil {
		p.Properties = &docx.ParagraphProperties{}
	}
	p.Properties.Ind = &docx.Ind{Left: twips, Hanging: twips}
}

// The bundled go-docx template has no heading or list styles, so the
// renderer serves its own styles.xml and takes every other part from the
// library's default template.

const templateName = "resume"

//go:embed template/styles.xml
var stylesFS embed.FS

type templateFS struct{}

func (templateFS) Open(name string) (fs.File, error) {
	rel, ok := strings.CutPrefix(name, "xml/"+templateName+"/")
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if rel == "word/styles.xml" {
		return stylesFS.Open("template/styles.xml")
	}
	return docx.TemplateXMLFS.Open("xml/default/" + rel)
}
