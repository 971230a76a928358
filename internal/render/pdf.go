package render

import (
	"bytes"

	"github.com/dgallion1/resumetailor/internal/doctree"
	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "Helvetica"

// RenderPDF lays out doc on US Letter pages and returns the PDF bytes.
func RenderPDF(doc doctree.Document) ([]byte, error) {
	return paint(Layout(doc, DefaultGeometry), DefaultGeometry)
}

// paint replays laid-out pages onto a gofpdf document. Drawing accumulates
// in gofpdf's buffer and is flushed by Output; the first drawing error
// aborts the whole render.
func paint(pages []Page, g Geometry) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetAutoPageBreak(false, g.Margin)
	pdf.SetCreator("resumetailor", true)
	pdf.SetTitle("Resume", true)

	// Core fonts are cp1252; translate UTF-8 text before drawing.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			drawOp(pdf, op, tr)
			if pdf.Err() {
				return nil, &RenderError{Format: FormatPDF, Err: pdf.Error()}
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Format: FormatPDF, Err: err}
	}
	return buf.Bytes(), nil
}

func drawOp(pdf *gofpdf.Fpdf, op Op, tr func(string) string) {
	switch op.Kind {
	case OpRect:
		pdf.SetDrawColor(op.Gray, op.Gray, op.Gray)
		pdf.SetLineWidth(op.LineWidth)
		pdf.Rect(op.X, op.Y, op.W, op.H, "D")
	case OpLine:
		pdf.SetDrawColor(op.Gray, op.Gray, op.Gray)
		pdf.SetLineWidth(op.LineWidth)
		pdf.Line(op.X, op.Y, op.X2, op.Y2)
	case OpText:
		style := ""
		if op.Bold {
			style = "B"
		}
		pdf.SetFont(fontFamily, style, op.FontSize)
		pdf.SetXY(op.X, op.Y)
		pdf.MultiCell(op.W, op.LineHeight, tr(op.Text), "", "L", false)
	}
}
