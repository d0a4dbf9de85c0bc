package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository.
func createTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := gogit.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return tmpDir, repo
}

// commitFile writes path with content and commits it, returning the commit
// hash. The author defaults to Test Author unless overridden via sig.
func commitFile(t *testing.T, repo *gogit.Repository, path, content, message string, when time.Time, sig *object.Signature) string {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	filePath := filepath.Join(w.Filesystem.Root(), filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := w.Add(path); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	if sig == nil {
		sig = &object.Signature{Name: "Test Author", Email: "test@example.com"}
	}
	sig.When = when

	hash, err := w.Commit(message, &gogit.CommitOptions{Author: sig})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash.String()
}
