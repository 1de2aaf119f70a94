package edit

import (
	"strings"
	"testing"
)

func TestParseResponseProse(t *testing.T) {
	msg := ParseResponse("Just a normal reply.")
	if msg.Content != "Just a normal reply." {
		t.Errorf("content = %q", msg.Content)
	}
	if msg.Preview != "" || msg.Edits != nil {
		t.Errorf("prose should carry no preview/edits: %+v", msg)
	}
}

func TestParseResponseEmpty(t *testing.T) {
	msg := ParseResponse("   \n  ")
	if msg.Content != "" || msg.Edits != nil {
		t.Errorf("expected empty message, got %+v", msg)
	}
}

func TestParseResponseEnvelope(t *testing.T) {
	raw := `{"summary":"Updated X.","edits":[{"action":"update","id":"abc","content":"Y"}]}`
	msg := ParseResponse(raw)
	if msg.Content != "Updated X." {
		t.Errorf("content = %q, want summary", msg.Content)
	}
	if !strings.Contains(msg.Preview, "Y") {
		t.Errorf("preview %q should contain edit content", msg.Preview)
	}
	if len(msg.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(msg.Edits))
	}
	if msg.Edits[0].Action != ActionUpdate || msg.Edits[0].ID != "abc" || msg.Edits[0].Content != "Y" {
		t.Errorf("unexpected edit: %+v", msg.Edits[0])
	}
}

func TestParseResponseFenceStripping(t *testing.T) {
	unfenced := ParseResponse(`{"summary":"s","edits":[]}`)
	jsonFenced := ParseResponse("```json\n{\"summary\":\"s\",\"edits\":[]}\n```")
	bareFenced := ParseResponse("```\n{\"summary\":\"s\",\"edits\":[]}\n```")

	for name, msg := range map[string]Message{"json fence": jsonFenced, "bare fence": bareFenced} {
		if msg.Content != unfenced.Content {
			t.Errorf("%s: content = %q, want %q", name, msg.Content, unfenced.Content)
		}
		if msg.Preview != unfenced.Preview {
			t.Errorf("%s: preview = %q, want %q", name, msg.Preview, unfenced.Preview)
		}
	}
}

func TestParseResponseJSONWithoutEnvelopeKeys(t *testing.T) {
	raw := `{"title":"not an envelope"}`
	msg := ParseResponse(raw)
	if msg.Content != raw {
		t.Errorf("content = %q, want raw text passthrough", msg.Content)
	}
	if msg.Edits != nil || msg.Preview != "" {
		t.Errorf("non-envelope JSON should degrade to prose: %+v", msg)
	}
}

func TestParseResponseInvalidJSON(t *testing.T) {
	raw := `{"summary": "broken`
	msg := ParseResponse(raw)
	if msg.Content != raw {
		t.Errorf("content = %q, want raw text passthrough", msg.Content)
	}
	if msg.Edits != nil {
		t.Errorf("invalid JSON must not produce edits")
	}
}

func TestParseResponseDeleteOnlyPreviewFallback(t *testing.T) {
	msg := ParseResponse(`{"summary":"Deleted a section.","edits":[{"action":"delete","id":"abc"}]}`)
	if msg.Preview != PreviewFallback {
		t.Errorf("preview = %q, want fallback placeholder", msg.Preview)
	}
	if len(msg.Edits) != 1 {
		t.Errorf("expected the delete edit to survive, got %d", len(msg.Edits))
	}
}

func TestParseResponseMalformedEditEntriesSkipped(t *testing.T) {
	raw := `{"summary":"s","edits":[{"action":5},{"action":"delete","id":"ok"}]}`
	msg := ParseResponse(raw)
	if len(msg.Edits) != 1 {
		t.Fatalf("expected 1 surviving edit, got %d", len(msg.Edits))
	}
	if msg.Edits[0].ID != "ok" {
		t.Errorf("wrong edit survived: %+v", msg.Edits[0])
	}
}

func TestParseResponseSummaryOnly(t *testing.T) {
	msg := ParseResponse(`{"summary":"No structural changes."}`)
	if msg.Content != "No structural changes." {
		t.Errorf("content = %q", msg.Content)
	}
	if msg.Preview != PreviewFallback {
		t.Errorf("preview = %q, want fallback", msg.Preview)
	}
}
