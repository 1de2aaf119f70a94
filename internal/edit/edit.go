// Package edit implements the structured-edit protocol: parsing model
// responses into edit envelopes and applying them to a document's chunks.
package edit

// Action is the closed set of edit instructions a model may propose. Values
// outside this set are dropped at apply time, never surfaced as errors.
type Action string

const (
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionInsertAfter  Action = "insert_after"
	ActionInsertBefore Action = "insert_before"
	// ActionInsert is honored only when the document has zero chunks.
	ActionInsert Action = "insert"
)

func (a Action) known() bool {
	switch a {
	case ActionUpdate, ActionDelete, ActionInsertAfter, ActionInsertBefore, ActionInsert:
		return true
	}
	return false
}

// Operation is a single model-proposed edit. Every field is untrusted input;
// validation happens lazily in Apply.
type Operation struct {
	Action  Action `json:"action"`
	ID      string `json:"id,omitempty"`
	Content string `json:"content,omitempty"`
}

// Envelope is the JSON object a model emits in editing mode.
type Envelope struct {
	Summary string      `json:"summary"`
	Edits   []Operation `json:"edits"`
}
