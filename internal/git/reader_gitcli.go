package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Each commit header line is prefixed by 0x1e (record separator) with
// NUL-separated fields, making the output reliably parseable as records
// split by 0x1e.
const gitLogFormat = "%x1e%H%x00%P%x00%aI%x00%an%x00%ae%x00%s"

func (r *Reader) commitsGitCLI(ctx context.Context, path string, maxDepth int) ([]CommitInfo, error) {
	args := []string{
		"-C", r.root,
		"log",
		"--no-color",
		"--pretty=format:" + gitLogFormat,
	}
	if maxDepth > 0 {
		args = append(args, fmt.Sprintf("-n%d", maxDepth))
	}
	if rel := r.relPath(path); rel != "" {
		args = append(args, "--", rel)
	}

	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		msg := string(out)
		// Branchless repositories and untouched paths are steady states.
		if strings.Contains(msg, "does not have any commits yet") ||
			strings.Contains(msg, "unknown revision") {
			return nil, nil
		}
		if strings.Contains(msg, "not a git repository") {
			return nil, ErrNotARepository
		}
		return nil, fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(msg))
	}

	records := bytes.Split(out, []byte{0x1e})
	results := make([]CommitInfo, 0, len(records))

	for _, rec := range records {
		rec = bytes.TrimSpace(rec)
		if len(rec) == 0 {
			continue
		}

		fields := bytes.SplitN(rec, []byte{0x00}, 6)
		if len(fields) < 6 {
			return nil, fmt.Errorf("unexpected git log header format")
		}

		when, err := time.Parse(time.RFC3339, string(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("parse author date: %w", err)
		}

		var parent string
		if parents := strings.Fields(string(fields[1])); len(parents) > 0 {
			parent = parents[0]
		}

		results = append(results, CommitInfo{
			SHA:       string(fields[0]),
			ParentSHA: parent,
			When:      when,
			Author:    AuthorInfo{Name: string(fields[3]), Email: string(fields[4])},
			Message:   string(fields[5]),
		})
	}

	return results, nil
}

func (r *Reader) contentAtGitCLI(ctx context.Context, commitID, path string) (string, bool, error) {
	spec := commitID + ":" + r.relPath(path)
	out, err := exec.CommandContext(ctx, "git", "-C", r.root, "show", spec).CombinedOutput()
	if err != nil {
		msg := string(out)
		// The path not existing at that commit is an expected absence, as is
		// an unresolvable commit identifier.
		if strings.Contains(msg, "does not exist") ||
			strings.Contains(msg, "exists on disk, but not in") ||
			strings.Contains(msg, "bad object") ||
			strings.Contains(msg, "invalid object name") ||
			strings.Contains(msg, "unknown revision") {
			return "", false, nil
		}
		return "", false, fmt.Errorf("git show failed: %w: %s", err, strings.TrimSpace(msg))
	}
	return string(out), true, nil
}
