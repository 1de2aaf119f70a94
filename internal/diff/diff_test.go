package diff

import (
	"strings"
	"testing"
)

func TestTextDiffIdentical(t *testing.T) {
	content := "line one\nline two\nline three\n"
	hunks := TextDiff(content, content)
	if len(hunks) != 0 {
		t.Errorf("expected no hunks for identical input, got %d", len(hunks))
	}
}

func TestTextDiffSimpleChange(t *testing.T) {
	before := "alpha\nbeta\ngamma\n"
	after := "alpha\nBETA\ngamma\n"

	hunks := TextDiff(before, after)
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(hunks))
	}

	var added, removed []string
	for _, line := range hunks[0].Lines {
		switch line.Type {
		case LineAdded:
			added = append(added, line.Text)
		case LineRemoved:
			removed = append(removed, line.Text)
		}
	}
	if len(removed) != 1 || removed[0] != "beta" {
		t.Errorf("expected removed [beta], got %v", removed)
	}
	if len(added) != 1 || added[0] != "BETA" {
		t.Errorf("expected added [BETA], got %v", added)
	}
}

func TestTextDiffLineNumbers(t *testing.T) {
	before := "a\nb\nc\n"
	after := "a\nc\n"

	hunks := TextDiff(before, after)
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(hunks))
	}
	for _, line := range hunks[0].Lines {
		switch {
		case line.Type == LineRemoved && line.Text == "b":
			if line.OldLine != 2 {
				t.Errorf("expected removed line at old line 2, got %d", line.OldLine)
			}
			if line.NewLine != 0 {
				t.Errorf("removed line should have no new line number, got %d", line.NewLine)
			}
		case line.Type == LineContext && line.Text == "c":
			if line.OldLine != 3 || line.NewLine != 2 {
				t.Errorf("expected context c at old 3 / new 2, got %d/%d", line.OldLine, line.NewLine)
			}
		}
	}
}

func TestTextDiffHunkGrouping(t *testing.T) {
	// Two edits far apart should produce two separate hunks with
	// limited context, not one hunk spanning the whole file.
	var b, a strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("same\n")
		a.WriteString("same\n")
	}
	before := "CHANGED-TOP\n" + b.String() + "bottom\n"
	after := "changed-top\n" + a.String() + "BOTTOM\n"

	hunks := TextDiff(before, after)
	if len(hunks) != 2 {
		t.Fatalf("expected 2 hunks, got %d", len(hunks))
	}
	for _, h := range hunks {
		if len(h.Lines) > 2+2*contextLines {
			t.Errorf("hunk too large: %d lines", len(h.Lines))
		}
	}
}

func TestDiffStats(t *testing.T) {
	before := "a\nb\nc\n"
	after := "a\nx\ny\nc\n"

	s := DiffStats(before, after)
	if s.Removed != 1 {
		t.Errorf("expected 1 removed, got %d", s.Removed)
	}
	if s.Added != 2 {
		t.Errorf("expected 2 added, got %d", s.Added)
	}
}

func TestTextDiffWithLimit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("line\n")
	}
	big := sb.String()

	hunks, truncated := TextDiffWithLimit(big, big+"extra\n", 50)
	if !truncated {
		t.Error("expected truncated result for oversized input")
	}
	if hunks != nil {
		t.Error("expected nil hunks when truncated")
	}

	hunks, truncated = TextDiffWithLimit("a\n", "b\n", 50)
	if truncated {
		t.Error("did not expect truncation for small input")
	}
	if len(hunks) != 1 {
		t.Errorf("expected 1 hunk, got %d", len(hunks))
	}
}
