package git

import (
	"strings"
	"time"
)

// CommitInfo represents minimal information about a Git commit.
type CommitInfo struct {
	SHA       string
	ParentSHA string // first parent; empty for a root commit
	When      time.Time
	Author    AuthorInfo
	Message   string
}

// ShortSHA returns the abbreviated commit identifier.
func (c CommitInfo) ShortSHA() string {
	if len(c.SHA) < 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// ContributorKey returns a normalized identifier for grouping contributors.
func (a AuthorInfo) ContributorKey() string {
	return strings.ToLower(a.Email)
}

// RepoStats aggregates repository-wide history facts.
type RepoStats struct {
	TotalCommits int
	Contributors int
	FirstCommit  time.Time
	LastCommit   time.Time
}

// ActivityEntry is a commit paired with the number of tracked files it touched.
type ActivityEntry struct {
	Commit       CommitInfo
	MatchedFiles int
}

// Engine selects how history is read from the repository.
type Engine int

const (
	// EngineGoGit reads objects in-process through the go-git object model.
	EngineGoGit Engine = iota
	// EngineGitCLI shells out to the git binary for history walks and
	// content reconstruction. Stats and the activity feed always use the
	// in-process engine.
	EngineGitCLI
)

// ParseEngine maps a config/flag value to an Engine. Unknown values fall
// back to the in-process engine.
func ParseEngine(s string) Engine {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cli", "gitcli", "native":
		return EngineGitCLI
	default:
		return EngineGoGit
	}
}

// ReadOptions configures a repository reader.
type ReadOptions struct {
	RepoPath string
	Engine   Engine
	Include  []string // Glob patterns for the activity feed
	Exclude  []string // Glob patterns for the activity feed
}
