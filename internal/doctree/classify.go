package doctree

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Profile holds the classification thresholds for one output path.
// The DOCX and PDF paths historically disagree on the heading length
// limit and on whether short lines need a minimum length, so each is
// kept as an explicit value rather than merged.
type Profile struct {
	Name          string
	HeadingMaxLen int  // Heading lines must be shorter than this (runes).
	HeadingMinLen int  // Heading lines must be at least this long; 0 disables the guard.
	Dividers      bool // Whether rule-only lines become Divider blocks.
}

var (
	// ProfileDOCX classifies for the word-processing path. It has no
	// divider concept and no minimum heading length.
	ProfileDOCX = Profile{
		Name:          "docx",
		HeadingMaxLen: 50,
		HeadingMinLen: 0,
		Dividers:      false,
	}

	// ProfilePDF classifies for the paginated path.
	ProfilePDF = Profile{
		Name:          "pdf",
		HeadingMaxLen: 60,
		HeadingMinLen: 3,
		Dividers:      true,
	}
)

var (
	// space also covers NBSP and the other Unicode space separators that
	// survive PDF and DOCX extraction.
	space          = `[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]`
	headingPattern = regexp.MustCompile(`^[A-Z](?:[A-Z]|` + space + `)+$`)
	bulletPattern  = regexp.MustCompile(`^(•|-|\*)` + space + `*`)
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// trimLine strips leading and trailing whitespace, including byte order
// marks.
func trimLine(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// Classify determines the structural role of a raw line. Rules are tried
// in a fixed order and the first match wins; the result depends only on
// the trimmed line text.
func Classify(line string, p Profile) Block {
	trimmed := trimLine(line)
	if trimmed == "" {
		return Block{Kind: KindBlank}
	}

	if isHeading(trimmed, p) {
		return Block{Kind: KindHeading, Text: trimmed}
	}

	if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") {
		return Block{Kind: KindBullet, Text: bulletPattern.ReplaceAllString(trimmed, "")}
	}

	if p.Dividers && isDivider(trimmed) {
		return Block{Kind: KindDivider, Text: trimmed}
	}

	return Block{Kind: KindParagraph, Text: trimmed}
}

func isHeading(s string, p Profile) bool {
	if !headingPattern.MatchString(s) {
		return false
	}
	n := utf8.RuneCountInString(s)
	if n >= p.HeadingMaxLen {
		return false
	}
	return n >= p.HeadingMinLen
}

// isDivider reports whether s is made only of horizontal-rule glyphs.
func isDivider(s string) bool {
	for _, r := range s {
		if !isRuleGlyph(r) {
			return false
		}
	}
	return true
}

func isRuleGlyph(r rune) bool {
	// Box drawing block.
	if r >= 0x2500 && r <= 0x257F {
		return true
	}
	switch r {
	case '-', '_', '=', '~', '‐', '‒', '–', '—', '―', '⎯', '﹘', '－', '＿':
		return true
	}
	return false
}
