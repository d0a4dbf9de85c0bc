package git

import "context"

// MockSource is a test double for Reader. It allows tests to provide
// predefined history data without needing a real Git repository.
type MockSource struct {
	// History maps a path to its commits, newest first. The empty key holds
	// the repository-wide walk.
	History map[string][]CommitInfo
	// Content maps commitID -> path -> file content.
	Content map[string]map[string]string
	// Touched maps commitID -> changed paths.
	Touched map[string][]string
	// ContentErrs maps commitID -> error, simulating per-commit decode
	// failures during diff enrichment.
	ContentErrs map[string]error

	StatsResult RepoStats
	Activity    []ActivityEntry
	Err         error
}

// Commits returns the predefined history for path, applying maxDepth.
func (m *MockSource) Commits(_ context.Context, path string, maxDepth int) ([]CommitInfo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	commits := m.History[path]
	if maxDepth > 0 && len(commits) > maxDepth {
		commits = commits[:maxDepth]
	}
	return commits, nil
}

// ContentAt returns the predefined content for commitID and path.
func (m *MockSource) ContentAt(_ context.Context, commitID, path string) (string, bool, error) {
	if m.Err != nil {
		return "", false, m.Err
	}
	if err := m.ContentErrs[commitID]; err != nil {
		return "", false, err
	}
	content, ok := m.Content[commitID][path]
	return content, ok, nil
}

// TouchedFiles returns the predefined changed paths for commitID.
func (m *MockSource) TouchedFiles(_ context.Context, commitID string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Touched[commitID], nil
}

// Stats returns the predefined repository stats.
func (m *MockSource) Stats(_ context.Context) (RepoStats, error) {
	if m.Err != nil {
		return RepoStats{}, m.Err
	}
	return m.StatsResult, nil
}

// RecentActivity returns the predefined activity entries, applying limit.
func (m *MockSource) RecentActivity(_ context.Context, limit int) ([]ActivityEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	entries := m.Activity
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Compile-time interface conformance check.
var _ HistorySource = (*MockSource)(nil)
