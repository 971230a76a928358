package doctree

// Kind is the structural role of a single resume line.
type Kind int

const (
	KindBlank Kind = iota
	KindHeading
	KindBullet
	KindDivider
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeading:
		return "heading"
	case KindBullet:
		return "bullet"
	case KindDivider:
		return "divider"
	case KindParagraph:
		return "paragraph"
	}
	return "unknown"
}

// Block is one renderer-independent unit of document structure.
type Block struct {
	Kind Kind   // Structural role
	Text string // Display text; empty for Blank, the raw glyph run for Divider
}

// Document is the ordered block sequence built from one submitted text.
// Renderers consume it read-only.
type Document struct {
	Blocks []Block
}

// Len returns the number of blocks.
func (d Document) Len() int {
	return len(d.Blocks)
}

// Count returns how many blocks have the given kind.
func (d Document) Count(k Kind) int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == k {
			n++
		}
	}
	return n
}
