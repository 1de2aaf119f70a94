// Package diff computes line-level diffs between two document revisions.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Line struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	OldLine int    `json:"old_line,omitempty"`
	NewLine int    `json:"new_line,omitempty"`
}

type Hunk struct {
	Lines []Line `json:"lines"`
}

// Stats summarizes a diff for list views.
type Stats struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

const (
	LineContext = "context"
	LineAdded   = "added"
	LineRemoved = "removed"
)

// contextLines is how many unchanged lines are kept on each side of a
// change when grouping into hunks.
const contextLines = 3

// TextDiff computes a line diff between two versions of a document and
// groups the changed regions into hunks with surrounding context.
func TextDiff(before, after string) []Hunk {
	lines := diffLines(before, after)
	return groupHunks(lines)
}

// DiffStats counts added and removed lines without materializing hunks.
func DiffStats(before, after string) Stats {
	var s Stats
	for _, line := range diffLines(before, after) {
		switch line.Type {
		case LineAdded:
			s.Added++
		case LineRemoved:
			s.Removed++
		}
	}
	return s
}

func diffLines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	oldLine := 1
	newLine := 1
	for _, diff := range diffs {
		chunkLines := strings.Split(diff.Text, "\n")
		if len(chunkLines) > 0 && chunkLines[len(chunkLines)-1] == "" {
			chunkLines = chunkLines[:len(chunkLines)-1]
		}
		for _, line := range chunkLines {
			switch diff.Type {
			case diffmatchpatch.DiffEqual:
				lines = append(lines, Line{Type: LineContext, Text: line, OldLine: oldLine, NewLine: newLine})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				lines = append(lines, Line{Type: LineRemoved, Text: line, OldLine: oldLine})
				oldLine++
			case diffmatchpatch.DiffInsert:
				lines = append(lines, Line{Type: LineAdded, Text: line, NewLine: newLine})
				newLine++
			}
		}
	}
	return lines
}

// groupHunks splits the flat line list into hunks, keeping contextLines
// of unchanged text around each changed region and dropping the rest.
func groupHunks(lines []Line) []Hunk {
	if len(lines) == 0 {
		return nil
	}

	// Mark which lines survive: every change plus its context window.
	keep := make([]bool, len(lines))
	hasChange := false
	for i, line := range lines {
		if line.Type == LineContext {
			continue
		}
		hasChange = true
		lo := i - contextLines
		if lo < 0 {
			lo = 0
		}
		hi := i + contextLines
		if hi >= len(lines) {
			hi = len(lines) - 1
		}
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}
	if !hasChange {
		return nil
	}

	var hunks []Hunk
	var current []Line
	for i, line := range lines {
		if !keep[i] {
			if len(current) > 0 {
				hunks = append(hunks, Hunk{Lines: current})
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		hunks = append(hunks, Hunk{Lines: current})
	}
	return hunks
}

const MaxDiffLines = 5000

// TextDiffWithLimit refuses to diff inputs larger than maxLines total,
// returning truncated=true instead of hunks.
func TextDiffWithLimit(before, after string, maxLines int) ([]Hunk, bool) {
	if maxLines <= 0 {
		maxLines = MaxDiffLines
	}
	if lineCount(before)+lineCount(after) > maxLines {
		return nil, true
	}
	return TextDiff(before, after), false
}

func lineCount(value string) int {
	if value == "" {
		return 0
	}
	return strings.Count(value, "\n") + 1
}
