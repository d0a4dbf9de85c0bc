package history

import (
	"time"

	"github.com/defenseunicorns/lula-sub002/internal/git"
	"github.com/defenseunicorns/lula-sub002/internal/yamldiff"
)

// ChangeSummary aggregates the change counts of one commit. Insertions and
// deletions are scoped to the queried file; Files counts every path the
// commit touched.
type ChangeSummary struct {
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
	Files      int `json:"files"`
}

// CommitRecord is the wire shape the viewer layer renders verbatim; field
// names are part of the contract. Diff and YAMLDiff are populated only for
// the newest commits of a history query.
type CommitRecord struct {
	Hash        string           `json:"hash"`
	ShortHash   string           `json:"shortHash"`
	Author      string           `json:"author"`
	AuthorEmail string           `json:"authorEmail"`
	Date        string           `json:"date"` // ISO-8601
	Message     string           `json:"message"`
	Changes     ChangeSummary    `json:"changes"`
	Diff        string           `json:"diff,omitempty"`
	YAMLDiff    *yamldiff.Result `json:"yamlDiff,omitempty"`
}

// FileHistoryResult aggregates one file's commit history, newest first.
// FirstCommit is the oldest commit retained by the walk; when Truncated is
// set it is only the oldest commit examined, not the file's true origin.
type FileHistoryResult struct {
	FilePath     string         `json:"filePath"`
	Commits      []CommitRecord `json:"commits"`
	TotalCommits int            `json:"totalCommits"`
	FirstCommit  *CommitRecord  `json:"firstCommit,omitempty"`
	LastCommit   *CommitRecord  `json:"lastCommit,omitempty"`
	Truncated    bool           `json:"truncated,omitempty"`

	// DiffFailures counts commits whose diff enrichment failed; their
	// records carry zero changes and no diff payload. It lets callers tell
	// a degraded history apart from an empty one.
	DiffFailures int `json:"-"`
}

// RepositoryStats aggregates repository-wide history facts, not scoped to
// any one file.
type RepositoryStats struct {
	TotalCommits    int    `json:"totalCommits"`
	Contributors    int    `json:"contributors"`
	FirstCommitDate string `json:"firstCommitDate,omitempty"`
	LastCommitDate  string `json:"lastCommitDate,omitempty"`
}

// ActivityRecord is one entry of the repository-wide activity feed: a
// commit plus the number of tracked control files it touched.
type ActivityRecord struct {
	CommitRecord
	MatchedFiles int `json:"matchedFiles"`
}

func newCommitRecord(info git.CommitInfo) CommitRecord {
	return CommitRecord{
		Hash:        info.SHA,
		ShortHash:   info.ShortSHA(),
		Author:      info.Author.Name,
		AuthorEmail: info.Author.Email,
		Date:        info.When.Format(time.RFC3339),
		Message:     info.Message,
	}
}
