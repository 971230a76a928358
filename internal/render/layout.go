package render

import "github.com/dgallion1/resumetailor/internal/doctree"

// Geometry fixes the page box, fonts and per-block advances used by the
// paginated layout. All values are in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	BorderInset  float64 // Outer rectangle distance from the page edge.
	HeaderOffset float64 // Header divider distance below the top margin.
	BodyGap      float64 // Body start distance below the header divider.

	HeadingSize float64
	BodySize    float64

	HeadingAdvance   float64
	BulletAdvance    float64
	ParagraphAdvance float64
	BlankAdvance     float64
	DividerAdvance   float64

	SeparatorOffset float64 // Heading separator distance above the cursor.
	SeparatorGap    float64 // Cursor advance after a heading separator.

	HeadingIndent   float64
	ParagraphIndent float64
	BulletIndent    float64
}

// DefaultGeometry is a US Letter page with 50pt margins.
var DefaultGeometry = Geometry{
	PageWidth:  612,
	PageHeight: 792,
	Margin:     50,

	BorderInset:  20,
	HeaderOffset: 30,
	BodyGap:      20,

	HeadingSize: 14,
	BodySize:    11,

	HeadingAdvance:   22,
	BulletAdvance:    16,
	ParagraphAdvance: 16,
	BlankAdvance:     8,
	DividerAdvance:   10,

	SeparatorOffset: 4,
	SeparatorGap:    8,

	HeadingIndent:   5,
	ParagraphIndent: 10,
	BulletIndent:    25,
}

// HeaderY is the vertical position of the thick header divider.
func (g Geometry) HeaderY() float64 { return g.Margin + g.HeaderOffset }

// BodyTop is where the cursor starts on every page.
func (g Geometry) BodyTop() float64 { return g.HeaderY() + g.BodyGap }

// Bottom is the cursor threshold that triggers a new page.
func (g Geometry) Bottom() float64 { return g.PageHeight - g.Margin }

func (g Geometry) contentRight() float64 { return g.PageWidth - g.Margin }

// OpKind identifies a drawing primitive.
type OpKind int

const (
	OpRect OpKind = iota
	OpLine
	OpText
)

// Op is one drawing command. Rect uses X, Y, W, H; Line runs from (X, Y)
// to (X2, Y2); Text is drawn in a box of width W starting at (X, Y) and
// wraps inside that width.
type Op struct {
	Kind OpKind

	X, Y, X2, Y2 float64
	W, H         float64

	LineWidth float64
	Gray      int // Stroke gray level, 0 black to 255 white.

	Text       string
	FontSize   float64
	Bold       bool
	LineHeight float64
}

// Page is the ordered drawing commands for one page.
type Page struct {
	Ops []Op
}

// cursor is the layout state threaded from block to block.
type cursor struct {
	Y              float64
	LastWasHeading bool
	PageHasContent bool
}

// Layout folds the document into pages of drawing commands. Each block's
// advance is fixed by its kind and does not count wrapped lines, so a line
// that wraps overlaps whatever is drawn below it.
func Layout(doc doctree.Document, g Geometry) []Page {
	pages := []Page{{Ops: g.pageSetup()}}
	cur := g.startCursor()

	for _, b := range doc.Blocks {
		if cur.Y > g.Bottom() {
			pages = append(pages, Page{Ops: g.pageSetup()})
			cur = g.startCursor()
		}

		var ops []Op
		cur, ops = g.place(cur, b)
		last := &pages[len(pages)-1]
		last.Ops = append(last.Ops, ops...)
	}
	return pages
}

func (g Geometry) startCursor() cursor {
	return cursor{Y: g.BodyTop()}
}

// pageSetup draws the outer border and the thick header divider.
func (g Geometry) pageSetup() []Op {
	inset := g.BorderInset
	return []Op{
		{
			Kind:      OpRect,
			X:         inset,
			Y:         inset,
			W:         g.PageWidth - 2*inset,
			H:         g.PageHeight - 2*inset,
			LineWidth: 1,
		},
		{
			Kind:      OpLine,
			X:         g.Margin,
			Y:         g.HeaderY(),
			X2:        g.contentRight(),
			Y2:        g.HeaderY(),
			LineWidth: 2,
		},
	}
}

// place lays out a single block and returns the advanced cursor.
func (g Geometry) place(cur cursor, b doctree.Block) (cursor, []Op) {
	var ops []Op

	switch b.Kind {
	case doctree.KindBlank:
		if !cur.LastWasHeading {
			cur.Y += g.BlankAdvance
		}
		cur.LastWasHeading = false
		return cur, nil

	case doctree.KindHeading:
		if cur.PageHasContent {
			y := cur.Y - g.SeparatorOffset
			ops = append(ops, Op{
				Kind:      OpLine,
				X:         g.Margin,
				Y:         y,
				X2:        g.contentRight(),
				Y2:        y,
				LineWidth: 0.5,
				Gray:      200,
			})
			cur.Y += g.SeparatorGap
		}
		ops = append(ops, g.text(b.Text, cur.Y, g.HeadingIndent, g.HeadingSize, true))
		cur.Y += g.HeadingAdvance
		cur.LastWasHeading = true

	case doctree.KindBullet:
		ops = append(ops, g.text("• "+b.Text, cur.Y, g.BulletIndent, g.BodySize, false))
		cur.Y += g.BulletAdvance
		cur.LastWasHeading = false

	case doctree.KindDivider:
		ops = append(ops, Op{
			Kind:      OpLine,
			X:         g.Margin,
			Y:         cur.Y,
			X2:        g.contentRight(),
			Y2:        cur.Y,
			LineWidth: 0.75,
			Gray:      120,
		})
		cur.Y += g.DividerAdvance
		cur.LastWasHeading = false

	default:
		ops = append(ops, g.text(b.Text, cur.Y, g.ParagraphIndent, g.BodySize, false))
		cur.Y += g.ParagraphAdvance
		cur.LastWasHeading = false
	}

	cur.PageHasContent = true
	return cur, ops
}

func (g Geometry) text(s string, y, indent, size float64, bold bool) Op {
	x := g.Margin + indent
	return Op{
		Kind:       OpText,
		X:          x,
		Y:          y,
		W:          g.contentRight() - x,
		Text:       s,
		FontSize:   size,
		Bold:       bold,
		LineHeight: size * 1.25,
	}
}
