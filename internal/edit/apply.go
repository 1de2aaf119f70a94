package edit

import (
	"strings"

	"inkwell/api/internal/chunk"
)

// Apply re-chunks original independently of whatever chunk view the model
// was shown and applies edits in order against the working slice. Edits
// naming unknown ids or actions are skipped without aborting the batch, and
// chunks not referenced by any edit pass through byte-identical. Apply never
// fails.
func Apply(original string, edits []Operation) string {
	chunks := chunk.Split(original)

	// An empty document only honors inserts; everything else is a no-op.
	if len(chunks) == 0 {
		for _, op := range edits {
			content := strings.TrimSpace(op.Content)
			if op.Action != ActionInsert || content == "" {
				continue
			}
			chunks = append(chunks, newChunk(content))
		}
		return join(chunks)
	}

	for _, op := range edits {
		// insert is only valid on an empty document.
		if !op.Action.known() || op.Action == ActionInsert {
			continue
		}
		idx := indexOf(chunks, op.ID)
		if idx < 0 {
			continue
		}
		content := strings.TrimSpace(op.Content)
		switch op.Action {
		case ActionUpdate:
			if content == "" {
				continue
			}
			// The stored id is deliberately left as the model saw it, so a
			// later edit in the same batch can still address this chunk.
			chunks[idx].Content = content
			chunks[idx].Type = chunk.InferType(content)
		case ActionDelete:
			chunks = append(chunks[:idx], chunks[idx+1:]...)
		case ActionInsertAfter, ActionInsertBefore:
			if content == "" {
				continue
			}
			at := idx
			if op.Action == ActionInsertAfter {
				at = idx + 1
			}
			chunks = append(chunks[:at], append([]chunk.Chunk{newChunk(content)}, chunks[at:]...)...)
		}
	}
	return join(chunks)
}

func newChunk(content string) chunk.Chunk {
	return chunk.Chunk{
		ID:      chunk.DeriveID(content),
		Type:    chunk.InferType(content),
		Content: content,
	}
}

func indexOf(chunks []chunk.Chunk, id string) int {
	for i, c := range chunks {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func join(chunks []chunk.Chunk) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, c.Content)
	}
	return strings.Join(parts, "\n\n")
}
