package git

import "context"

// HistorySource defines the read operations the history service needs from
// a repository. This abstraction allows for easier testing and alternative
// engine implementations.
type HistorySource interface {
	// Commits returns the commits that touched path, newest first, in
	// commit-graph ancestry order. maxDepth bounds the walk; 0 is unbounded.
	// An empty path walks the whole repository.
	Commits(ctx context.Context, path string, maxDepth int) ([]CommitInfo, error)

	// ContentAt reconstructs the content of path as of the given commit.
	// ok is false when the path did not exist at that commit.
	ContentAt(ctx context.Context, commitID, path string) (content string, ok bool, err error)

	// TouchedFiles lists the paths changed by the given commit relative to
	// its first parent. A root commit reports every path in its tree.
	TouchedFiles(ctx context.Context, commitID string) ([]string, error)

	// Stats aggregates repository-wide commit counts, contributors, and the
	// first/last commit timestamps.
	Stats(ctx context.Context) (RepoStats, error)

	// RecentActivity returns the newest commits that touched any path
	// matching the configured include/exclude filters.
	RecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error)
}

// Compile-time interface conformance check.
var _ HistorySource = (*Reader)(nil)
