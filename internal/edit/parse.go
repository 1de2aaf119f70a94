package edit

import (
	"encoding/json"
	"strings"
)

// PreviewFallback is shown when no edit in an envelope carries content,
// which happens for delete-only batches.
const PreviewFallback = "This action will modify the document."

// Message is the parsed form of a raw model response. Preview and Edits are
// set only when the response was detected as an edit envelope.
type Message struct {
	Content string      `json:"content"`
	Preview string      `json:"preview,omitempty"`
	Edits   []Operation `json:"edits,omitempty"`
}

// ParseResponse decides whether raw model output is an edit envelope or
// conversational prose. It does shape detection only; ids and actions are
// checked later by Apply. ParseResponse never fails: any input that does not
// parse as an envelope comes back as plain content.
func ParseResponse(raw string) Message {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Message{}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripFences(text)), &obj); err != nil {
		return Message{Content: text}
	}

	rawSummary, hasSummary := obj["summary"]
	rawEdits, hasEdits := obj["edits"]
	if !hasSummary && !hasEdits {
		// Valid JSON, but not an edit envelope.
		return Message{Content: text}
	}

	var summary string
	if hasSummary {
		_ = json.Unmarshal(rawSummary, &summary)
	}

	var edits []Operation
	if hasEdits {
		var items []json.RawMessage
		if err := json.Unmarshal(rawEdits, &items); err == nil {
			for _, item := range items {
				var op Operation
				if err := json.Unmarshal(item, &op); err != nil {
					continue
				}
				edits = append(edits, op)
			}
		}
	}

	parts := make([]string, 0, len(edits))
	for _, op := range edits {
		if op.Content != "" {
			parts = append(parts, op.Content)
		}
	}
	preview := strings.Join(parts, "\n\n")
	if preview == "" {
		preview = PreviewFallback
	}

	content := summary
	if content == "" {
		content = text
	}
	return Message{Content: content, Preview: preview, Edits: edits}
}

// stripFences removes a ```json or bare ``` wrapper. Models sometimes fence
// the envelope despite instructions not to, so detection tolerates it.
func stripFences(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	return text
}
