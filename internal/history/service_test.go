package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestDocumentHistoryLifecycle(t *testing.T) {
	tempDir := t.TempDir()
	svc := New(tempDir)

	initial := "# Notes\n\nFirst paragraph.\n"

	if err := svc.EnsureRepo("doc-1", initial, "Avery"); err != nil {
		t.Fatalf("EnsureRepo() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "doc-1")); err != nil {
		t.Fatalf("repo directory missing: %v", err)
	}

	// Re-ensuring is a no-op.
	if err := svc.EnsureRepo("doc-1", "other content", "Avery"); err != nil {
		t.Fatalf("second EnsureRepo() error = %v", err)
	}

	updated := "# Notes\n\nFirst paragraph.\n\nSecond paragraph.\n"
	commit, err := svc.Commit("doc-1", updated, "Avery", "Add second paragraph")
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if commit.Hash == "" {
		t.Fatal("expected commit hash")
	}
	if commit.Added == 0 {
		t.Errorf("expected added lines in commit stats, got %+v", commit)
	}

	history, err := svc.History("doc-1", 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].Hash != commit.Hash {
		t.Errorf("expected newest commit first, got %s", history[0].Hash)
	}

	content, err := svc.ContentAt("doc-1", commit.Hash)
	if err != nil {
		t.Fatalf("ContentAt() error = %v", err)
	}
	if content != updated {
		t.Fatalf("unexpected content at %s: %q", commit.Hash, content)
	}

	// The original revision is still reachable.
	first, err := svc.ContentAt("doc-1", history[1].Hash)
	if err != nil {
		t.Fatalf("ContentAt(first) error = %v", err)
	}
	if first != initial {
		t.Fatalf("unexpected initial content: %q", first)
	}
}

func TestHistoryLimit(t *testing.T) {
	tempDir := t.TempDir()
	svc := New(tempDir)

	if err := svc.EnsureRepo("doc-1", "v0\n", "Avery"); err != nil {
		t.Fatalf("EnsureRepo() error = %v", err)
	}
	for i := 1; i <= 5; i++ {
		if _, err := svc.Commit("doc-1", fmt.Sprintf("v%d\n", i), "Avery", fmt.Sprintf("Revision %d", i)); err != nil {
			t.Fatalf("Commit() error = %v", err)
		}
	}

	history, err := svc.History("doc-1", 3)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries with limit, got %d", len(history))
	}
}

func TestRemove(t *testing.T) {
	tempDir := t.TempDir()
	svc := New(tempDir)

	if err := svc.EnsureRepo("doc-1", "content\n", "Avery"); err != nil {
		t.Fatalf("EnsureRepo() error = %v", err)
	}
	if err := svc.Remove("doc-1"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "doc-1")); !os.IsNotExist(err) {
		t.Fatal("expected repo directory to be gone")
	}

	if _, err := svc.History("doc-1", 10); err == nil {
		t.Error("expected error reading history of removed repo")
	}
}

func TestConcurrentCommits(t *testing.T) {
	tempDir := t.TempDir()
	svc := New(tempDir)

	if err := svc.EnsureRepo("doc-1", "base\n", "Avery"); err != nil {
		t.Fatalf("EnsureRepo() error = %v", err)
	}

	const writers = 12
	var wg sync.WaitGroup
	errCh := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			content := fmt.Sprintf("revision-%02d\n", idx)
			if _, err := svc.Commit("doc-1", content, "Avery", fmt.Sprintf("Commit %02d", idx)); err != nil {
				errCh <- err
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			t.Fatalf("Commit() concurrent error = %v", err)
		}
	}

	history, err := svc.History("doc-1", 100)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) < writers+1 {
		t.Fatalf("expected at least %d commits in history, got %d", writers+1, len(history))
	}

	head, err := svc.ContentAt("doc-1", history[0].Hash)
	if err != nil {
		t.Fatalf("ContentAt(head) error = %v", err)
	}
	if !strings.HasPrefix(head, "revision-") {
		t.Fatalf("unexpected head content after concurrent commits: %q", head)
	}
}
