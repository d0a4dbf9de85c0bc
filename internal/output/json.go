package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/defenseunicorns/lula-sub002/internal/history"
)

// JSONHistoryWriter writes file history reports as JSON.
type JSONHistoryWriter struct{}

// JSONHistoryReport is the JSON output structure for a file history query.
// The embedded result keeps the commit records in their wire shape.
type JSONHistoryReport struct {
	RepoPath    string                     `json:"repo"`
	GeneratedAt string                     `json:"generatedAt"`
	Result      *history.FileHistoryResult `json:"history"`
}

// Write outputs the file history report as JSON.
func (w *JSONHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	return writeJSON(&JSONHistoryReport{
		RepoPath:    report.RepoPath,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Result:      report.Result,
	}, options)
}

// JSONActivityWriter writes activity feed reports as JSON.
type JSONActivityWriter struct{}

// JSONActivityReport is the JSON output structure for the activity feed.
type JSONActivityReport struct {
	RepoPath    string                   `json:"repo"`
	GeneratedAt string                   `json:"generatedAt"`
	Commits     []history.ActivityRecord `json:"commits"`
}

// Write outputs the activity report as JSON.
func (w *JSONActivityWriter) Write(report *ActivityReport, options OutputOptions) error {
	return writeJSON(&JSONActivityReport{
		RepoPath:    report.RepoPath,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Commits:     report.Commits,
	}, options)
}

// JSONStatsWriter writes repository statistics as JSON.
type JSONStatsWriter struct{}

// JSONStatsReport is the JSON output structure for repository statistics.
type JSONStatsReport struct {
	RepoPath    string                   `json:"repo"`
	GeneratedAt string                   `json:"generatedAt"`
	Stats       *history.RepositoryStats `json:"stats"`
}

// Write outputs the stats report as JSON.
func (w *JSONStatsWriter) Write(report *StatsReport, options OutputOptions) error {
	return writeJSON(&JSONStatsReport{
		RepoPath:    report.RepoPath,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Stats:       report.Stats,
	}, options)
}

func writeJSON(payload any, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode JSON report: %w", err)
	}
	return nil
}
