package export

import (
	"strings"
	"testing"
	"time"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "My Document", "My-Document"},
		{"special characters stripped", "Notes: draft (v2)!", "Notes-draft-v2"},
		{"empty title", "", "document"},
		{"only special characters", "???", "document"},
		{"hyphens and underscores kept", "a-b_c", "a-b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.expected {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}

	t.Run("long title truncated", func(t *testing.T) {
		got := sanitizeFilename(strings.Repeat("a", 100))
		if len(got) != 50 {
			t.Errorf("expected 50 chars, got %d", len(got))
		}
	})
}

func TestPercentEncodeForDataURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc", "abc"},
		{"a b", "a%20b"},
		{"<p>", "%3Cp%3E"},
		{"a+b", "a%2Bb"},
	}
	for _, tt := range tests {
		if got := percentEncodeForDataURL(tt.input); got != tt.expected {
			t.Errorf("percentEncodeForDataURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderDocumentHTML(t *testing.T) {
	html, err := RenderDocumentHTML(TemplateData{
		Title:       "Field Notes",
		ContentHTML: "<p>Body &amp; soul</p>",
		Author:      "Avery",
		UpdatedAt:   time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RenderDocumentHTML() error = %v", err)
	}

	if !strings.Contains(html, "<title>Field Notes</title>") {
		t.Error("expected title in head")
	}
	if !strings.Contains(html, "<p>Body &amp; soul</p>") {
		t.Error("expected content HTML passed through unescaped")
	}
	if !strings.Contains(html, "Avery") {
		t.Error("expected author in meta line")
	}
	if !strings.Contains(html, "Mar 14, 2026") {
		t.Error("expected formatted date in meta line")
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewService()
	_, err := svc.Export(Document{Title: "Doc", Content: "# Hi"}, Format("epub"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
