// Package chunk decomposes Markdown documents into addressable,
// content-hashed blocks, the unit of granularity for proposed edits.
package chunk

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
)

// Type classifies a chunk by its leading characters. It is derived from
// content and never persisted on its own.
type Type string

const (
	TypeParagraph Type = "paragraph"
	TypeHeading   Type = "heading"
	TypeMath      Type = "math"
	TypeCode      Type = "code"
	TypeList      Type = "list"
)

// Chunk is the addressable unit of document structure. Identical trimmed
// content always yields the same ID, so an edit that changes content
// necessarily changes the chunk's identity.
type Chunk struct {
	ID      string `json:"id"`
	Type    Type   `json:"type"`
	Content string `json:"content"`
}

var (
	blankLineRe = regexp.MustCompile(`\n[ \t\r]*\n+`)
	headingRe   = regexp.MustCompile(`^#{1,6}\s`)
	listRe      = regexp.MustCompile(`^([-*+]\s|\d+\.)`)
)

// DeriveID returns the first 12 hex characters of the SHA-1 digest of the
// trimmed content.
func DeriveID(content string) string {
	sum := sha1.Sum([]byte(strings.TrimSpace(content)))
	return hex.EncodeToString(sum[:])[:12]
}

// Split decomposes markdown into ordered chunks on blank-line boundaries.
// Blocks are trimmed and empty blocks dropped. Split is pure: calling it
// twice on the same input yields the same slice, and document order maps
// to slice order.
func Split(markdown string) []Chunk {
	blocks := blankLineRe.Split(markdown, -1)
	chunks := make([]Chunk, 0, len(blocks))
	for _, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		chunks = append(chunks, Chunk{
			ID:      DeriveID(trimmed),
			Type:    InferType(trimmed),
			Content: trimmed,
		})
	}
	return chunks
}

// InferType classifies a trimmed block, testing patterns in priority order:
// heading, math, code, list, then paragraph.
func InferType(content string) Type {
	switch {
	case headingRe.MatchString(content):
		return TypeHeading
	case isMath(content):
		return TypeMath
	case strings.HasPrefix(content, "```"):
		return TypeCode
	case listRe.MatchString(content):
		return TypeList
	default:
		return TypeParagraph
	}
}

func isMath(content string) bool {
	if strings.HasPrefix(content, "$$") {
		return true
	}
	// A single leading $ opens inline math.
	return strings.HasPrefix(content, "$")
}
