package output

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/defenseunicorns/lula-sub002/internal/yamldiff"
)

// ConsoleHistoryWriter writes file history reports to the console.
type ConsoleHistoryWriter struct{}

// Write outputs the file history report to the console.
func (w *ConsoleHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	result := report.Result

	color.Green("History for %s", result.FilePath)
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Commits: %d", result.TotalCommits)
	if result.Truncated {
		fmt.Print(" (truncated; older history not shown)")
	}
	fmt.Println()
	if result.DiffFailures > 0 {
		color.Yellow("Warning: diff computation failed for %d commit(s)", result.DiffFailures)
	}
	fmt.Println()

	if result.TotalCommits == 0 {
		fmt.Println("No activity history for this file.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCommit\tDate\tAuthor\t+/-\tMessage")
	for i, rec := range result.Commits {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t+%d/-%d\t%s\n",
			i+1,
			rec.ShortHash,
			rec.Date,
			rec.Author,
			rec.Changes.Insertions,
			rec.Changes.Deletions,
			truncateMessage(rec.Message),
		)
	}
	tw.Flush()

	if options.ShowDiff {
		for _, rec := range result.Commits {
			if rec.Diff == "" && rec.YAMLDiff == nil {
				continue
			}
			fmt.Println()
			color.Cyan("commit %s  %s", rec.ShortHash, rec.Message)
			if rec.YAMLDiff != nil && rec.YAMLDiff.HasChanges {
				printFieldChanges(rec.YAMLDiff)
			}
			if rec.Diff != "" {
				printDiff(rec.Diff)
			}
		}
	}

	return nil
}

// ConsoleActivityWriter writes activity feed reports to the console.
type ConsoleActivityWriter struct{}

// Write outputs the activity report to the console.
func (w *ConsoleActivityWriter) Write(report *ActivityReport, options OutputOptions) error {
	color.Green("Recent control-file activity")
	fmt.Printf("Repository: %s\n\n", report.RepoPath)

	if len(report.Commits) == 0 {
		fmt.Println("No activity for tracked control files.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCommit\tDate\tAuthor\tFiles\tMessage")
	for i, rec := range report.Commits {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			i+1,
			rec.ShortHash,
			rec.Date,
			rec.Author,
			rec.MatchedFiles,
			truncateMessage(rec.Message),
		)
	}
	tw.Flush()

	return nil
}

// ConsoleStatsWriter writes repository statistics to the console.
type ConsoleStatsWriter struct{}

// Write outputs the stats report to the console.
func (w *ConsoleStatsWriter) Write(report *StatsReport, options OutputOptions) error {
	color.Green("Repository statistics")
	fmt.Printf("Repository: %s\n\n", report.RepoPath)

	stats := report.Stats
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total commits:\t%d\n", stats.TotalCommits)
	fmt.Fprintf(tw, "Contributors:\t%d\n", stats.Contributors)
	if stats.FirstCommitDate != "" {
		fmt.Fprintf(tw, "First commit:\t%s\n", stats.FirstCommitDate)
	}
	if stats.LastCommitDate != "" {
		fmt.Fprintf(tw, "Last commit:\t%s\n", stats.LastCommitDate)
	}
	tw.Flush()

	return nil
}

func printFieldChanges(yd *yamldiff.Result) {
	for _, fc := range yd.Added {
		color.Green("  + %s: %v", fc.Field, fc.New)
	}
	for _, fc := range yd.Removed {
		color.Red("  - %s: %v", fc.Field, fc.Old)
	}
	for _, fc := range yd.Changed {
		color.Yellow("  ~ %s: %v -> %v", fc.Field, fc.Old, fc.New)
	}
}

func printDiff(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			color.Cyan("%s", line)
		case strings.HasPrefix(line, "+"):
			color.Green("%s", line)
		case strings.HasPrefix(line, "-"):
			color.Red("%s", line)
		default:
			fmt.Println(line)
		}
	}
}
