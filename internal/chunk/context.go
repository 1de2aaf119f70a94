package chunk

import (
	"fmt"
	"strings"
)

// Serialize renders chunks into the labeled textual context shown to the
// model, plus the comma-joined list of ids the model may target. Both follow
// chunk order.
func Serialize(chunks []Chunk) (context string, idList string) {
	blocks := make([]string, 0, len(chunks))
	ids := make([]string, 0, len(chunks))
	for _, c := range chunks {
		blocks = append(blocks, fmt.Sprintf("CHUNK %s (%s):\n\"%s\"", c.ID, c.Type, c.Content))
		ids = append(ids, c.ID)
	}
	return strings.Join(blocks, "\n\n"), strings.Join(ids, ", ")
}
