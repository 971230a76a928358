package tailor

import (
	"regexp"
	"strings"
)

var injectionPattern = regexp.MustCompile(
	`(?i)(ignore\s+(previous|all|above)|system\s*prompt|you\s+are\s+now|` +
		`act\s+as\s+|pretend\s+|forget\s+(everything|all)|override|` +
		`new\s+instructions)`,
)

// maxFlags caps how many phrases FlagInstructions reports.
const maxFlags = 5

// FlagInstructions returns the distinct instruction-like phrases found in
// user-supplied text, lower-cased with whitespace collapsed. The text is
// still sent to the model; callers only log the result.
func FlagInstructions(s string) []string {
	matches := injectionPattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		m = strings.ToLower(strings.Join(strings.Fields(m), " "))
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
		if len(out) == maxFlags {
			break
		}
	}
	return out
}
