package edit

import (
	"reflect"
	"strings"
	"testing"

	"inkwell/api/internal/chunk"
)

const sample = "# Title\n\nFirst paragraph.\n\nSecond paragraph.\n\n- a list item"

func TestApplyNoEditsRoundTrip(t *testing.T) {
	result := Apply(sample, nil)
	if !reflect.DeepEqual(chunk.Split(result), chunk.Split(sample)) {
		t.Errorf("no-op apply changed chunk content:\n%q\n%q", sample, result)
	}
}

func TestApplyUnknownIDTolerance(t *testing.T) {
	baseline := Apply(sample, nil)
	result := Apply(sample, []Operation{{Action: ActionUpdate, ID: "nonexistent", Content: "x"}})
	if result != baseline {
		t.Errorf("edit targeting unknown id changed the document:\n%q\n%q", baseline, result)
	}
}

func TestApplyUnknownActionSkipped(t *testing.T) {
	target := chunk.Split(sample)[1]
	baseline := Apply(sample, nil)
	result := Apply(sample, []Operation{{Action: "replace_all", ID: target.ID, Content: "x"}})
	if result != baseline {
		t.Errorf("unknown action mutated the document")
	}
}

func TestApplyEmptyDocument(t *testing.T) {
	if got := Apply("", []Operation{{Action: ActionDelete, ID: "anything"}}); got != "" {
		t.Errorf("delete on empty document: got %q, want empty", got)
	}
	if got := Apply("", []Operation{{Action: ActionInsert, Content: "Hello"}}); got != "Hello" {
		t.Errorf("insert into empty document: got %q, want %q", got, "Hello")
	}
	got := Apply("", []Operation{
		{Action: ActionInsert, Content: "# Intro"},
		{Action: ActionUpdate, ID: "x", Content: "nope"},
		{Action: ActionInsert, Content: "Body."},
	})
	if got != "# Intro\n\nBody." {
		t.Errorf("mixed batch on empty document: got %q", got)
	}
}

func TestApplyInsertNoOpOnNonEmptyDocument(t *testing.T) {
	baseline := Apply(sample, nil)
	result := Apply(sample, []Operation{{Action: ActionInsert, Content: "sneaky"}})
	if result != baseline {
		t.Errorf("insert on non-empty document must be a no-op")
	}
}

func TestApplyUpdate(t *testing.T) {
	target := chunk.Split(sample)[1]
	result := Apply(sample, []Operation{{Action: ActionUpdate, ID: target.ID, Content: "Rewritten paragraph."}})
	chunks := chunk.Split(result)
	if chunks[1].Content != "Rewritten paragraph." {
		t.Errorf("updated chunk content = %q", chunks[1].Content)
	}
	if len(chunks) != 4 {
		t.Errorf("update changed chunk count: %d", len(chunks))
	}
}

func TestApplyUpdateRederivesType(t *testing.T) {
	target := chunk.Split(sample)[1] // a paragraph
	result := Apply(sample, []Operation{{Action: ActionUpdate, ID: target.ID, Content: "## Promoted"}})
	if got := chunk.Split(result)[1].Type; got != chunk.TypeHeading {
		t.Errorf("updated chunk type = %s, want heading", got)
	}
}

func TestApplyUpdateKeepsIDAddressableWithinBatch(t *testing.T) {
	// The working chunk keeps the id the model was shown, so a second edit
	// in the same batch may still target it.
	target := chunk.Split(sample)[1]
	result := Apply(sample, []Operation{
		{Action: ActionUpdate, ID: target.ID, Content: "Intermediate."},
		{Action: ActionUpdate, ID: target.ID, Content: "Final."},
	})
	if got := chunk.Split(result)[1].Content; got != "Final." {
		t.Errorf("second update against original id did not resolve: %q", got)
	}
}

func TestApplyDelete(t *testing.T) {
	target := chunk.Split(sample)[0]
	result := Apply(sample, []Operation{{Action: ActionDelete, ID: target.ID}})
	chunks := chunk.Split(result)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks after delete, got %d", len(chunks))
	}
	if chunks[0].Content != "First paragraph." {
		t.Errorf("wrong chunk removed; first is now %q", chunks[0].Content)
	}
}

func TestApplyInsertAfterAndBefore(t *testing.T) {
	original := chunk.Split(sample)
	result := Apply(sample, []Operation{{Action: ActionInsertAfter, ID: original[0].ID, Content: "An abstract."}})
	chunks := chunk.Split(result)
	if chunks[1].Content != "An abstract." {
		t.Errorf("insert_after placed chunk at wrong position: %v", chunks)
	}

	result = Apply(sample, []Operation{{Action: ActionInsertBefore, ID: original[0].ID, Content: "A preamble."}})
	chunks = chunk.Split(result)
	if chunks[0].Content != "A preamble." {
		t.Errorf("insert_before placed chunk at wrong position: %v", chunks)
	}
}

func TestApplySequentialDeleteTheInsertAfter(t *testing.T) {
	original := chunk.Split(sample)
	x := original[1] // "First paragraph."
	y := original[2] // "Second paragraph."
	result := Apply(sample, []Operation{
		{Action: ActionDelete, ID: x.ID},
		{Action: ActionInsertAfter, ID: y.ID, Content: "Z"},
	})
	chunks := chunk.Split(result)
	contents := make([]string, len(chunks))
	for i, c := range chunks {
		contents[i] = c.Content
	}
	want := []string{"# Title", "Second paragraph.", "Z", "- a list item"}
	if !reflect.DeepEqual(contents, want) {
		t.Errorf("sequential apply mismatch:\n got %v\nwant %v", contents, want)
	}
}

func TestApplyPassesThroughUneditedBytes(t *testing.T) {
	weird := "para  with   spacing\n\n```\n  indented code\n```"
	target := chunk.Split(weird)[0]
	result := Apply(weird, []Operation{{Action: ActionUpdate, ID: target.ID, Content: "changed"}})
	if !strings.Contains(result, "```\n  indented code\n```") {
		t.Errorf("unedited chunk was not preserved byte-for-byte:\n%q", result)
	}
}
