package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TextExtractor handles plain text files. The text is kept as-is apart from
// a leading byte order mark and invalid UTF-8 sequences.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (*Extraction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	return &Extraction{Text: strings.ToValidUTF8(string(data), "�")}, nil
}
