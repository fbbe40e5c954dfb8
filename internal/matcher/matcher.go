// Package matcher checks input lines for containing the pattern - two variants differing only in case policy
package matcher

import (
	"strings"

	"github.com/UnendingLoop/gremp/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns every line of contents that contains pattern as a
// substring, case-sensitive. Lines are numbered from 1 in document order;
// an empty pattern matches every line.
func Search(pattern, contents string) []model.Match {
	var result []model.Match
	for _, m := range Lines(contents) {
		if strings.Contains(m.Text, pattern) {
			result = append(result, m)
		}
	}
	return result
}

// SearchCaseInsensitive is Search with both the pattern and every line
// lower-cased first. Lowering goes through x/text with the Und language so
// multi-byte runes fold the same way regardless of locale.
func SearchCaseInsensitive(pattern, contents string) []model.Match {
	lower := cases.Lower(language.Und)
	pattern = lower.String(pattern)

	var result []model.Match
	for _, m := range Lines(contents) {
		if strings.Contains(lower.String(m.Text), pattern) {
			result = append(result, m)
		}
	}
	return result
}

// Lines splits contents into numbered lines. Both "\n" and "\r\n" terminate
// a line; a trailing terminator produces no extra empty line. A "\r" not
// followed by "\n" is ordinary line text. The returned texts are views into
// contents, not copies.
func Lines(contents string) []model.Match {
	var lines []model.Match
	n := 1
	for contents != "" {
		line, rest, found := strings.Cut(contents, "\n")
		if found {
			line = strings.TrimSuffix(line, "\r")
		}
		lines = append(lines, model.Match{Line: n, Text: line})
		contents = rest
		n++
	}
	return lines
}
