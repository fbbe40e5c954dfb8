// Package processor turns the raw match list into final output records
package processor

import (
	"fmt"

	"github.com/UnendingLoop/gremp/internal/matcher"
	"github.com/UnendingLoop/gremp/internal/model"
)

// Process runs the matcher variant selected by gp over contents and shapes
// the result: plain numbered records by default, a single count for -c,
// the complement set for -v, context windows for -A/-B/-C. The returned
// slice is empty when nothing matched - that is a valid state, not an error.
func Process(gp *model.GrepParam, contents string) []string {
	var matches []model.Match
	switch gp.IgnoreCase {
	case true: // -i or CASE_INSENSITIVE present
		matches = matcher.SearchCaseInsensitive(gp.Pattern, contents)
	default:
		matches = matcher.Search(gp.Pattern, contents)
	}

	if gp.InvertResult { // -v
		matches = invert(matcher.Lines(contents), matches)
	}

	if gp.CountFound { // -c
		return []string{fmt.Sprintf("%d", len(matches))}
	}

	if gp.CtxAfter == 0 && gp.CtxBefore == 0 {
		result := make([]string, 0, len(matches))
		for _, m := range matches {
			result = append(result, normalizeLine(m))
		}
		return result
	}

	return withContext(gp, matcher.Lines(contents), matches)
}

// invert keeps the lines that are NOT present in matches; both slices are
// ordered by line number, so a single merge walk is enough.
func invert(lines, matches []model.Match) []model.Match {
	result := make([]model.Match, 0, len(lines)-len(matches))
	i := 0
	for _, line := range lines {
		if i < len(matches) && matches[i].Line == line.Line {
			i++
			continue
		}
		result = append(result, line)
	}
	return result
}

// withContext emits every match together with up to CtxBefore lines above it
// and CtxAfter lines below it, inserting "--" between non-adjacent groups.
// No line is emitted twice even when windows overlap.
func withContext(gp *model.GrepParam, lines, matches []model.Match) []string {
	var result []string
	lastPrinted := 0

	for _, m := range matches {
		from := m.Line - gp.CtxBefore
		if from < lastPrinted+1 {
			from = lastPrinted + 1
		}
		to := m.Line + gp.CtxAfter
		if to > len(lines) {
			to = len(lines)
		}

		// separator only between groups that don't touch each other
		if lastPrinted != 0 && m.Line-gp.CtxBefore > lastPrinted+1 {
			result = append(result, "--")
		}

		for n := from; n <= to; n++ {
			result = append(result, normalizeLine(lines[n-1]))
			lastPrinted = n
		}
	}

	return result
}

func normalizeLine(m model.Match) string {
	return fmt.Sprintf("%d. %s", m.Line, m.Text)
}
