package output

import (
	"time"

	"github.com/defenseunicorns/lula-sub002/internal/history"
)

// Compile-time interface conformance checks.
// These ensure that all writer types correctly implement their respective interfaces.
var (
	// HistoryReportWriter implementations
	_ HistoryReportWriter = (*ConsoleHistoryWriter)(nil)
	_ HistoryReportWriter = (*JSONHistoryWriter)(nil)
	_ HistoryReportWriter = (*CSVHistoryWriter)(nil)
	_ HistoryReportWriter = (*MarkdownHistoryWriter)(nil)

	// ActivityReportWriter implementations
	_ ActivityReportWriter = (*ConsoleActivityWriter)(nil)
	_ ActivityReportWriter = (*JSONActivityWriter)(nil)
	_ ActivityReportWriter = (*CSVActivityWriter)(nil)
	_ ActivityReportWriter = (*MarkdownActivityWriter)(nil)

	// StatsReportWriter implementations
	_ StatsReportWriter = (*ConsoleStatsWriter)(nil)
	_ StatsReportWriter = (*JSONStatsWriter)(nil)
	_ StatsReportWriter = (*CSVStatsWriter)(nil)
	_ StatsReportWriter = (*MarkdownStatsWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
	ShowDiff   bool
}

// HistoryReport holds a file history query result for rendering.
type HistoryReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Result      *history.FileHistoryResult
}

// ActivityReport holds a repository activity query result for rendering.
type ActivityReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Commits     []history.ActivityRecord
}

// StatsReport holds repository statistics for rendering.
type StatsReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Stats       *history.RepositoryStats
}

// HistoryReportWriter writes file history reports.
type HistoryReportWriter interface {
	Write(report *HistoryReport, options OutputOptions) error
}

// ActivityReportWriter writes activity feed reports.
type ActivityReportWriter interface {
	Write(report *ActivityReport, options OutputOptions) error
}

// StatsReportWriter writes repository statistics reports.
type StatsReportWriter interface {
	Write(report *StatsReport, options OutputOptions) error
}

// NewHistoryReportWriter creates a history writer for the specified format.
func NewHistoryReportWriter(format OutputFormat) HistoryReportWriter {
	switch format {
	case FormatJSON:
		return &JSONHistoryWriter{}
	case FormatCSV:
		return &CSVHistoryWriter{}
	case FormatMarkdown:
		return &MarkdownHistoryWriter{}
	default:
		return &ConsoleHistoryWriter{}
	}
}

// NewActivityReportWriter creates an activity writer for the specified format.
func NewActivityReportWriter(format OutputFormat) ActivityReportWriter {
	switch format {
	case FormatJSON:
		return &JSONActivityWriter{}
	case FormatCSV:
		return &CSVActivityWriter{}
	case FormatMarkdown:
		return &MarkdownActivityWriter{}
	default:
		return &ConsoleActivityWriter{}
	}
}

// NewStatsReportWriter creates a stats writer for the specified format.
func NewStatsReportWriter(format OutputFormat) StatsReportWriter {
	switch format {
	case FormatJSON:
		return &JSONStatsWriter{}
	case FormatCSV:
		return &CSVStatsWriter{}
	case FormatMarkdown:
		return &MarkdownStatsWriter{}
	default:
		return &ConsoleStatsWriter{}
	}
}
