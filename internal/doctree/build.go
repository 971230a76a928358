package doctree

import "strings"

// Build splits text into lines and classifies each one in order.
// It accepts any string: "" yields an empty Document, and otherwise the
// block count equals the number of newline-delimited lines.
func Build(text string, p Profile) Document {
	if text == "" {
		return Document{}
	}

	lines := strings.Split(text, "\n")
	doc := Document{Blocks: make([]Block, 0, len(lines))}
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		doc.Blocks = append(doc.Blocks, Classify(line, p))
	}
	return doc
}
