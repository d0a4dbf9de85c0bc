package output

import (
	"fmt"
)

// MarkdownHistoryWriter writes file history reports as Markdown.
type MarkdownHistoryWriter struct{}

// Write outputs the file history report as Markdown.
func (w *MarkdownHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	result := report.Result

	fmt.Fprintf(out, "# History for `%s`\n\n", result.FilePath)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Commits:** %d", result.TotalCommits)
	if result.Truncated {
		fmt.Fprint(out, " (truncated)")
	}
	fmt.Fprint(out, "\n\n")

	if result.TotalCommits == 0 {
		fmt.Fprintln(out, "No activity history for this file.")
		return nil
	}

	fmt.Fprintln(out, "| # | Commit | Date | Author | Insertions | Deletions | Message |")
	fmt.Fprintln(out, "|---|--------|------|--------|------------|-----------|---------|")
	for i, rec := range result.Commits {
		fmt.Fprintf(out, "| %d | `%s` | %s | %s | %d | %d | %s |\n",
			i+1, rec.ShortHash, rec.Date, rec.Author,
			rec.Changes.Insertions, rec.Changes.Deletions, truncateMessage(rec.Message))
	}

	if options.ShowDiff {
		for _, rec := range result.Commits {
			if rec.Diff == "" {
				continue
			}
			fmt.Fprintf(out, "\n## %s %s\n\n", rec.ShortHash, rec.Message)
			if rec.YAMLDiff != nil && rec.YAMLDiff.HasChanges {
				for _, fc := range rec.YAMLDiff.Added {
					fmt.Fprintf(out, "- added `%s`: %v\n", fc.Field, fc.New)
				}
				for _, fc := range rec.YAMLDiff.Removed {
					fmt.Fprintf(out, "- removed `%s`: %v\n", fc.Field, fc.Old)
				}
				for _, fc := range rec.YAMLDiff.Changed {
					fmt.Fprintf(out, "- changed `%s`: %v -> %v\n", fc.Field, fc.Old, fc.New)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "```diff\n%s```\n", rec.Diff)
		}
	}

	return nil
}

// MarkdownActivityWriter writes activity feed reports as Markdown.
type MarkdownActivityWriter struct{}

// Write outputs the activity report as Markdown.
func (w *MarkdownActivityWriter) Write(report *ActivityReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Recent Control-File Activity")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)

	if len(report.Commits) == 0 {
		fmt.Fprintln(out, "No activity for tracked control files.")
		return nil
	}

	fmt.Fprintln(out, "| # | Commit | Date | Author | Files | Message |")
	fmt.Fprintln(out, "|---|--------|------|--------|-------|---------|")
	for i, rec := range report.Commits {
		fmt.Fprintf(out, "| %d | `%s` | %s | %s | %d | %s |\n",
			i+1, rec.ShortHash, rec.Date, rec.Author, rec.MatchedFiles, truncateMessage(rec.Message))
	}

	return nil
}

// MarkdownStatsWriter writes repository statistics as Markdown.
type MarkdownStatsWriter struct{}

// Write outputs the stats report as Markdown.
func (w *MarkdownStatsWriter) Write(report *StatsReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	stats := report.Stats

	fmt.Fprintln(out, "# Repository Statistics")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintln(out, "| Metric | Value |")
	fmt.Fprintln(out, "|--------|-------|")
	fmt.Fprintf(out, "| Total commits | %d |\n", stats.TotalCommits)
	fmt.Fprintf(out, "| Contributors | %d |\n", stats.Contributors)
	if stats.FirstCommitDate != "" {
		fmt.Fprintf(out, "| First commit | %s |\n", stats.FirstCommitDate)
	}
	if stats.LastCommitDate != "" {
		fmt.Fprintf(out, "| Last commit | %s |\n", stats.LastCommitDate)
	}

	return nil
}
