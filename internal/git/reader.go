package git

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// ErrNotARepository indicates that no Git metadata directory was found
// between the start path and the filesystem root. Callers are expected to
// treat this as a steady state, not a fault.
var ErrNotARepository = errors.New("not a git repository")

// Reader reads file history from a Git repository.
type Reader struct {
	repo *gogit.Repository
	root string
	opts ReadOptions
}

// NewReader resolves the repository enclosing opts.RepoPath and returns a
// reader for it. The resolution walks upward from the start path; when no
// repository is found it returns ErrNotARepository.
func NewReader(opts ReadOptions) (*Reader, error) {
	repo, err := gogit.PlainOpenWithOptions(opts.RepoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, ErrNotARepository
		}
		return nil, err
	}

	root := opts.RepoPath
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	return &Reader{repo: repo, root: root, opts: opts}, nil
}

// Root returns the resolved repository root directory.
func (r *Reader) Root() string {
	return r.root
}

// Commits returns the commits that touched path, newest first. The order
// follows commit-graph ancestry (descendant before ancestor), not
// timestamps. An untouched path yields an empty result, not an error.
func (r *Reader) Commits(ctx context.Context, path string, maxDepth int) ([]CommitInfo, error) {
	if r.opts.Engine == EngineGitCLI {
		return r.commitsGitCLI(ctx, path, maxDepth)
	}

	head, err := r.repo.Head()
	if err != nil {
		// A repository with no commits yet has no HEAD reference.
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	logOpts := &gogit.LogOptions{From: head.Hash()}
	if rel := r.relPath(path); rel != "" {
		logOpts.PathFilter = func(p string) bool { return p == rel }
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, err
	}
	defer cIter.Close()

	var results []CommitInfo
	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		results = append(results, toCommitInfo(c))
		if maxDepth > 0 && len(results) >= maxDepth {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// ContentAt reconstructs the content of path as of the given commit. It
// resolves the commit's root tree and descends directory-by-directory; a
// missing path segment reports absence rather than an error. Binary blobs
// also report absence, since only structured text files are served.
func (r *Reader) ContentAt(ctx context.Context, commitID, path string) (string, bool, error) {
	if r.opts.Engine == EngineGitCLI {
		return r.contentAtGitCLI(ctx, commitID, path)
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(commitID))
	if err != nil {
		if isMissingObject(err) {
			return "", false, nil
		}
		return "", false, err
	}

	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		if isMissingObject(err) {
			return "", false, nil
		}
		return "", false, err
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", false, err
	}

	file, err := tree.File(r.relPath(path))
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	if bin, err := file.IsBinary(); err != nil || bin {
		return "", false, err
	}

	content, err := file.Contents()
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}

// TouchedFiles lists the paths changed by the given commit relative to its
// first parent. A root commit reports every path in its tree.
func (r *Reader) TouchedFiles(ctx context.Context, commitID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(commitID))
	if err != nil {
		return nil, err
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, err
	}
	return r.changedPaths(commit)
}

// Stats walks the full history and aggregates repository-wide counts.
func (r *Reader) Stats(ctx context.Context) (RepoStats, error) {
	var stats RepoStats

	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return stats, nil
		}
		return stats, err
	}

	cIter, err := r.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return stats, err
	}
	defer cIter.Close()

	contributors := map[string]struct{}{}
	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.TotalCommits++
		contributors[AuthorInfo{Name: c.Author.Name, Email: c.Author.Email}.ContributorKey()] = struct{}{}
		when := c.Author.When
		if stats.FirstCommit.IsZero() || when.Before(stats.FirstCommit) {
			stats.FirstCommit = when
		}
		if when.After(stats.LastCommit) {
			stats.LastCommit = when
		}
		return nil
	})
	if err != nil {
		return RepoStats{}, err
	}

	stats.Contributors = len(contributors)
	return stats, nil
}

// RecentActivity returns the newest commits that touched any path matching
// the include/exclude filters, bounded by limit.
func (r *Reader) RecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	cIter, err := r.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}
	defer cIter.Close()

	var entries []ActivityEntry
	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		paths, err := r.changedPaths(c)
		if err != nil {
			return err
		}
		matched := 0
		for _, p := range paths {
			if r.matchesFilters(p) {
				matched++
			}
		}
		if matched == 0 {
			return nil
		}
		entries = append(entries, ActivityEntry{Commit: toCommitInfo(c), MatchedFiles: matched})
		if limit > 0 && len(entries) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// changedPaths diffs a commit against its first parent. Root commits report
// every file in their tree.
func (r *Reader) changedPaths(c *object.Commit) ([]string, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}

	if c.NumParents() == 0 {
		var paths []string
		err := tree.Files().ForEach(func(f *object.File) error {
			paths = append(paths, f.Name)
			return nil
		})
		return paths, err
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, err
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(changes))
	for _, change := range changes {
		name := change.To.Name
		if name == "" {
			name = change.From.Name
		}
		paths = append(paths, name)
	}
	return paths, nil
}

// matchesFilters checks if a path matches the include/exclude filters.
func (r *Reader) matchesFilters(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range r.opts.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(r.opts.Include) == 0 {
		return true
	}

	// Check include patterns
	for _, pattern := range r.opts.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}

// relPath converts a caller-supplied path to the slash-separated
// repository-relative form the object model uses.
func (r *Reader) relPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		if rel, err := filepath.Rel(r.root, path); err == nil {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}

func toCommitInfo(c *object.Commit) CommitInfo {
	// Keep the subject line only; bodies are noise in history listings.
	message := c.Message
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}

	var parent string
	if c.NumParents() > 0 {
		parent = c.ParentHashes[0].String()
	}

	return CommitInfo{
		SHA:       c.Hash.String(),
		ParentSHA: parent,
		When:      c.Author.When,
		Author:    AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Message:   message,
	}
}

func isMissingObject(err error) bool {
	return errors.Is(err, plumbing.ErrObjectNotFound) ||
		errors.Is(err, plumbing.ErrReferenceNotFound) ||
		strings.Contains(err.Error(), "reference not found")
}
