// Package history is the entry point the viewer layer and CLI call. It
// orchestrates the history walk, content reconstruction, and diff
// computation, and collapses every expected failure into benign empty
// results.
package history

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/defenseunicorns/lula-sub002/internal/diff"
	"github.com/defenseunicorns/lula-sub002/internal/git"
	"github.com/defenseunicorns/lula-sub002/internal/yamldiff"
)

const (
	// DefaultLimit bounds a history walk when the caller passes no limit.
	DefaultLimit = 50
	// DefaultDiffDepth is the number of newest commits that receive diff
	// enrichment. Diffing is the expensive step; older commits carry no
	// diff payload.
	DefaultDiffDepth = 5
)

// Options configures a Service. The zero value of the numeric fields means
// "use the default".
type Options struct {
	RepoPath     string
	DefaultLimit int
	DiffDepth    int
	Algorithm    diff.Algorithm
	Engine       git.Engine
	Include      []string // activity feed globs
	Exclude      []string // activity feed globs

	// Logger receives unexpected errors swallowed at the facade boundary.
	// Nil discards them.
	Logger *log.Logger

	// Source overrides repository access; tests inject a git.MockSource
	// here. When nil the repository is re-resolved on every operation.
	Source git.HistorySource
}

// Service exposes the public history operations. All operations return
// empty/zero shapes for "not a repository" and "no history"; unexpected
// errors are logged and collapsed to the same shapes rather than
// propagated.
type Service struct {
	opts   Options
	logger *log.Logger
}

// NewService creates a history service. No repository state is cached; each
// operation re-resolves the repository and re-walks from the object store.
func NewService(opts Options) *Service {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultLimit
	}
	if opts.DiffDepth <= 0 {
		opts.DiffDepth = DefaultDiffDepth
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{opts: opts, logger: logger}
}

func (s *Service) open() (git.HistorySource, error) {
	if s.opts.Source != nil {
		return s.opts.Source, nil
	}
	reader, err := git.NewReader(git.ReadOptions{
		RepoPath: s.opts.RepoPath,
		Engine:   s.opts.Engine,
		Include:  s.opts.Include,
		Exclude:  s.opts.Exclude,
	})
	if err != nil {
		return nil, err
	}
	return reader, nil
}

// IsRepository reports whether the configured path sits inside a Git work
// tree. It never fails; resolution errors report false.
func (s *Service) IsRepository(_ context.Context) bool {
	_, err := s.open()
	if err != nil {
		if !errors.Is(err, git.ErrNotARepository) {
			s.logger.Printf("resolve repository: %v", err)
		}
		return false
	}
	return true
}

// GetFileHistory returns the commits that touched filePath, newest first,
// bounded by limit (0 means the configured default). Only the newest
// DiffDepth commits carry diff payloads. A per-commit enrichment failure
// zeroes that commit's changes and continues the walk.
func (s *Service) GetFileHistory(ctx context.Context, filePath string, limit int) *FileHistoryResult {
	result := &FileHistoryResult{FilePath: filePath, Commits: []CommitRecord{}}

	src, err := s.open()
	if err != nil {
		s.degrade("file history", err)
		return result
	}
	if limit <= 0 {
		limit = s.opts.DefaultLimit
	}

	// Walk one past the limit so truncation is detectable instead of being
	// silently presented as complete history.
	infos, err := src.Commits(ctx, filePath, limit+1)
	if err != nil {
		s.degrade("file history", err)
		return result
	}
	if len(infos) > limit {
		infos = infos[:limit]
		result.Truncated = true
	}

	for idx, info := range infos {
		rec := newCommitRecord(info)
		if idx < s.opts.DiffDepth {
			if err := s.enrich(ctx, src, filePath, info, &rec); err != nil {
				rec.Changes = ChangeSummary{}
				rec.Diff = ""
				rec.YAMLDiff = nil
				result.DiffFailures++
				s.logger.Printf("diff enrichment for %s at %s: %v", filePath, info.ShortSHA(), err)
			}
		}
		result.Commits = append(result.Commits, rec)
	}

	result.TotalCommits = len(result.Commits)
	if n := len(result.Commits); n > 0 {
		result.LastCommit = &result.Commits[0]
		result.FirstCommit = &result.Commits[n-1]
	}
	return result
}

// GetFileCommitCount counts every commit that touched filePath. The walk is
// unbounded and computes no diffs.
func (s *Service) GetFileCommitCount(ctx context.Context, filePath string) int {
	src, err := s.open()
	if err != nil {
		s.degrade("commit count", err)
		return 0
	}
	infos, err := src.Commits(ctx, filePath, 0)
	if err != nil {
		s.degrade("commit count", err)
		return 0
	}
	return len(infos)
}

// GetLatestCommit returns the most recent commit that touched filePath, or
// nil when the file has no history. The record is not enriched: Changes,
// Diff, and YAMLDiff stay at their zero values regardless of what the
// commit changed. Callers that need the change payload should use
// GetFileHistory with a limit of 1.
func (s *Service) GetLatestCommit(ctx context.Context, filePath string) *CommitRecord {
	src, err := s.open()
	if err != nil {
		s.degrade("latest commit", err)
		return nil
	}
	infos, err := src.Commits(ctx, filePath, 1)
	if err != nil {
		s.degrade("latest commit", err)
		return nil
	}
	if len(infos) == 0 {
		return nil
	}
	rec := newCommitRecord(infos[0])
	return &rec
}

// GetFileContentAtCommit reconstructs filePath's content as of commitID.
// ok is false when the path did not exist at that commit, the commit is
// unknown, or the repository cannot be resolved.
func (s *Service) GetFileContentAtCommit(ctx context.Context, filePath, commitID string) (string, bool) {
	src, err := s.open()
	if err != nil {
		s.degrade("content at commit", err)
		return "", false
	}
	content, ok, err := src.ContentAt(ctx, commitID, filePath)
	if err != nil {
		s.degrade("content at commit", err)
		return "", false
	}
	return content, ok
}

// GetRepositoryStats aggregates repository-wide commit counts, distinct
// contributors, and the first/last commit timestamps.
func (s *Service) GetRepositoryStats(ctx context.Context) *RepositoryStats {
	stats := &RepositoryStats{}

	src, err := s.open()
	if err != nil {
		s.degrade("repository stats", err)
		return stats
	}
	raw, err := src.Stats(ctx)
	if err != nil {
		s.degrade("repository stats", err)
		return stats
	}

	stats.TotalCommits = raw.TotalCommits
	stats.Contributors = raw.Contributors
	stats.FirstCommitDate = formatDate(raw.FirstCommit)
	stats.LastCommitDate = formatDate(raw.LastCommit)
	return stats
}

// GetRecentActivity returns the newest commits that touched any tracked
// control file, bounded by limit (0 means the configured default limit).
func (s *Service) GetRecentActivity(ctx context.Context, limit int) []ActivityRecord {
	src, err := s.open()
	if err != nil {
		s.degrade("recent activity", err)
		return []ActivityRecord{}
	}
	if limit <= 0 {
		limit = s.opts.DefaultLimit
	}
	entries, err := src.RecentActivity(ctx, limit)
	if err != nil {
		s.degrade("recent activity", err)
		return []ActivityRecord{}
	}

	records := make([]ActivityRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, ActivityRecord{
			CommitRecord: newCommitRecord(entry.Commit),
			MatchedFiles: entry.MatchedFiles,
		})
	}
	return records
}

// enrich computes the diff payloads for one commit: the file snapshot at
// the commit against the snapshot at its first parent, the semantic YAML
// diff when both sides parse, and the commit's touched-file count.
func (s *Service) enrich(ctx context.Context, src git.HistorySource, filePath string, info git.CommitInfo, rec *CommitRecord) error {
	newText, ok, err := src.ContentAt(ctx, info.SHA, filePath)
	if err != nil {
		return err
	}
	if !ok {
		newText = ""
	}

	var oldText string
	if info.ParentSHA != "" {
		oldText, ok, err = src.ContentAt(ctx, info.ParentSHA, filePath)
		if err != nil {
			return err
		}
		if !ok {
			oldText = ""
		}
	}

	touched, err := src.TouchedFiles(ctx, info.SHA)
	if err != nil {
		return err
	}

	d := diff.Compute(oldText, newText, filepath.ToSlash(filePath), diff.Options{Algorithm: s.opts.Algorithm})
	rec.Diff = d.Text
	rec.Changes = ChangeSummary{Insertions: d.Insertions, Deletions: d.Deletions, Files: len(touched)}

	if yd := yamldiff.Compare(oldText, newText); yd.Available {
		rec.YAMLDiff = &yd
	}
	return nil
}

// degrade logs an error swallowed at the facade boundary. Expected absences
// ("not a repository") stay quiet; history display is supplementary and
// must not crash or spam a caller.
func (s *Service) degrade(op string, err error) {
	if errors.Is(err, git.ErrNotARepository) {
		return
	}
	s.logger.Printf("%s: %v", op, err)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
