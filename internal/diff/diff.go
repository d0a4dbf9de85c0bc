// Package diff computes in-process line diffs between two whole-file text
// snapshots. No external diff binary is involved.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Algorithm selects the line alignment strategy.
type Algorithm int

const (
	// AlgorithmGreedy is a forward scan: equal lines emit context, a
	// mismatch emits the old line as a deletion and re-checks, and an
	// exhausted old side emits the remaining new lines as insertions. It is
	// not edit-distance minimal, but its hunk shape is stable and cheap.
	AlgorithmGreedy Algorithm = iota
	// AlgorithmMyers computes a minimal diff via diffmatchpatch's
	// line-mode Myers implementation, rendered in the same unified shape.
	AlgorithmMyers
)

// ParseAlgorithm maps a config/flag value to an Algorithm. Unknown values
// fall back to the greedy scan.
func ParseAlgorithm(s string) Algorithm {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "myers", "minimal":
		return AlgorithmMyers
	default:
		return AlgorithmGreedy
	}
}

// Options configures a diff computation.
type Options struct {
	Algorithm Algorithm
}

// Result holds a unified diff and its change counts. The counts follow the
// additive convention: a line that differs at the same position counts as
// one insertion and one deletion, so Insertions-Deletions always equals the
// net line-count change.
type Result struct {
	Text       string
	Insertions int
	Deletions  int
}

type row struct {
	kind byte // ' ', '+', or '-'
	text string
}

// Compute diffs two whole-file snapshots. Identical snapshots produce a
// zero Result. An empty old snapshot is the file-creation case: the whole
// new file renders as a single hunk of insertions.
func Compute(oldText, newText, pathLabel string, opts Options) Result {
	if oldText == newText {
		return Result{}
	}

	oldLines := SplitLines(oldText)
	newLines := SplitLines(newText)

	insertions, deletions := countChanges(oldLines, newLines)

	var rows []row
	if opts.Algorithm == AlgorithmMyers {
		rows = alignMyers(oldText, newText)
	} else {
		rows = alignGreedy(oldLines, newLines)
	}

	return Result{
		Text:       render(pathLabel, len(oldLines), len(newLines), rows),
		Insertions: insertions,
		Deletions:  deletions,
	}
}

// SplitLines splits a snapshot into lines, treating a trailing newline as a
// terminator rather than the start of an empty final line. An empty
// snapshot has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// countChanges compares both snapshots position-by-position, independent of
// the rendered alignment. Aggregate stats consumers rely on this convention.
func countChanges(oldLines, newLines []string) (insertions, deletions int) {
	n := len(oldLines)
	if len(newLines) > n {
		n = len(newLines)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(oldLines):
			insertions++
		case i >= len(newLines):
			deletions++
		case oldLines[i] != newLines[i]:
			insertions++
			deletions++
		}
	}
	return insertions, deletions
}

func alignGreedy(oldLines, newLines []string) []row {
	rows := make([]row, 0, len(oldLines)+len(newLines))
	i, j := 0, 0
	for i < len(oldLines) || j < len(newLines) {
		switch {
		case i < len(oldLines) && j < len(newLines) && oldLines[i] == newLines[j]:
			rows = append(rows, row{' ', oldLines[i]})
			i++
			j++
		case i < len(oldLines):
			rows = append(rows, row{'-', oldLines[i]})
			i++
		default:
			rows = append(rows, row{'+', newLines[j]})
			j++
		}
	}
	return rows
}

func alignMyers(oldText, newText string) []row {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var rows []row
	for _, d := range diffs {
		kind := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = '+'
		case diffmatchpatch.DiffDelete:
			kind = '-'
		}
		for _, line := range SplitLines(d.Text) {
			rows = append(rows, row{kind, line})
		}
	}
	return rows
}

// render produces unified-diff-like text: header lines, a single hunk
// header covering the whole file, then one prefixed line per row.
func render(pathLabel string, oldCount, newCount int, rows []row) string {
	var b strings.Builder
	b.WriteString("--- a/" + pathLabel + "\n")
	b.WriteString("+++ b/" + pathLabel + "\n")
	fmt.Fprintf(&b, "@@ -1,%d +1,%d @@\n", oldCount, newCount)
	for _, r := range rows {
		b.WriteByte(r.kind)
		b.WriteString(r.text)
		b.WriteByte('\n')
	}
	return b.String()
}
