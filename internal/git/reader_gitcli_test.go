package git

import (
	"context"
	"os/exec"
	"testing"
	"time"
)

func requireGitCLI(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestCommitsGitCLI_MatchesGoGit(t *testing.T) {
	requireGitCLI(t)

	dir, repo := createTestRepo(t)
	commitFile(t, repo, "controls/ac-1.yaml", "id: ac-1\n", "add ac-1", baseTime, nil)
	commitFile(t, repo, "README.md", "readme\n", "add readme", baseTime.Add(time.Hour), nil)
	commitFile(t, repo, "controls/ac-1.yaml", "id: ac-1\nstatus: Planned\n", "plan ac-1", baseTime.Add(2*time.Hour), nil)

	goGit, err := NewReader(ReadOptions{RepoPath: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cli, err := NewReader(ReadOptions{RepoPath: dir, Engine: EngineGitCLI})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := goGit.Commits(context.Background(), "controls/ac-1.yaml", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := cli.Commits(context.Background(), "controls/ac-1.yaml", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("cli engine found %d commits, go-git found %d", len(got), len(want))
	}
	for i := range got {
		if got[i].SHA != want[i].SHA {
			t.Errorf("commit %d SHA = %s, want %s", i, got[i].ShortSHA(), want[i].ShortSHA())
		}
		if got[i].ParentSHA != want[i].ParentSHA {
			t.Errorf("commit %d parent = %q, want %q", i, got[i].ParentSHA, want[i].ParentSHA)
		}
		if got[i].Message != want[i].Message {
			t.Errorf("commit %d message = %q, want %q", i, got[i].Message, want[i].Message)
		}
		if !got[i].When.Equal(want[i].When) {
			t.Errorf("commit %d when = %v, want %v", i, got[i].When, want[i].When)
		}
	}
}

func TestCommitsGitCLI_MaxDepth(t *testing.T) {
	requireGitCLI(t)

	dir, repo := createTestRepo(t)
	for i := 0; i < 4; i++ {
		content := "id: ac-1\nrev: " + string(rune('a'+i)) + "\n"
		commitFile(t, repo, "controls/ac-1.yaml", content, "rev", baseTime.Add(time.Duration(i)*time.Hour), nil)
	}

	cli, err := NewReader(ReadOptions{RepoPath: dir, Engine: EngineGitCLI})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cli.Commits(context.Background(), "controls/ac-1.yaml", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("commits = %d, want 2", len(got))
	}
}

func TestContentAtGitCLI(t *testing.T) {
	requireGitCLI(t)

	dir, repo := createTestRepo(t)
	first := commitFile(t, repo, "README.md", "readme\n", "add readme", baseTime, nil)
	second := commitFile(t, repo, "controls/ac-1.yaml", "id: ac-1\n", "add ac-1", baseTime.Add(time.Hour), nil)

	cli, err := NewReader(ReadOptions{RepoPath: dir, Engine: EngineGitCLI})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := cli.ContentAt(context.Background(), second, "controls/ac-1.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != "id: ac-1\n" {
		t.Errorf("ContentAt = %q, %v", got, ok)
	}

	_, ok, err = cli.ContentAt(context.Background(), first, "controls/ac-1.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected absence for a path added later")
	}
}
