package history

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/defenseunicorns/lula-sub002/internal/git"
	"github.com/defenseunicorns/lula-sub002/internal/yamldiff"
)

func TestCommitRecordWireShape(t *testing.T) {
	rec := CommitRecord{
		Hash:        strings.Repeat("a", 40),
		ShortHash:   "aaaaaaa",
		Author:      "Alice",
		AuthorEmail: "alice@example.com",
		Date:        "2026-02-01T09:00:00Z",
		Message:     "revise control",
		Changes:     ChangeSummary{Insertions: 1, Deletions: 1, Files: 2},
		Diff:        "--- a/controls/ac-1.yaml\n",
		YAMLDiff:    &yamldiff.Result{HasChanges: true, Available: true},
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	// The viewer layer reads these names verbatim.
	for _, name := range []string{"hash", "shortHash", "author", "authorEmail", "date", "message", "changes", "diff", "yamlDiff"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("wire payload missing field %q: %s", name, data)
		}
	}

	var changes map[string]int
	if err := json.Unmarshal(fields["changes"], &changes); err != nil {
		t.Fatalf("Unmarshal(changes) error: %v", err)
	}
	for _, name := range []string{"insertions", "deletions", "files"} {
		if _, ok := changes[name]; !ok {
			t.Errorf("changes payload missing field %q", name)
		}
	}
}

func TestCommitRecordOmitsEmptyPayloads(t *testing.T) {
	data, err := json.Marshal(CommitRecord{Hash: strings.Repeat("a", 40)})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if strings.Contains(string(data), "diff") {
		t.Errorf("unenriched record must omit diff payloads: %s", data)
	}
}

func TestFileHistoryResultHidesDiffFailures(t *testing.T) {
	result := FileHistoryResult{FilePath: "controls/ac-1.yaml", Commits: []CommitRecord{}, DiffFailures: 3}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if strings.Contains(string(data), "DiffFailures") || strings.Contains(string(data), "diffFailures") {
		t.Errorf("DiffFailures is diagnostic only, not wire data: %s", data)
	}
}

func TestNewCommitRecord(t *testing.T) {
	when := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	rec := newCommitRecord(git.CommitInfo{
		SHA:     strings.Repeat("b", 40),
		When:    when,
		Author:  git.AuthorInfo{Name: "Bob", Email: "bob@example.com"},
		Message: "create control",
	})

	if rec.ShortHash != strings.Repeat("b", 7) {
		t.Errorf("ShortHash = %q", rec.ShortHash)
	}
	if rec.Date != "2026-02-01T09:00:00Z" {
		t.Errorf("Date = %q, want RFC3339", rec.Date)
	}
	if rec.Author != "Bob" || rec.AuthorEmail != "bob@example.com" {
		t.Errorf("author = %q <%q>", rec.Author, rec.AuthorEmail)
	}
}
