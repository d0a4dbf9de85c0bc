package output

import (
	"fmt"
)

// CSVHistoryWriter writes file history reports as CSV.
type CSVHistoryWriter struct{}

// Write outputs the file history report as CSV. Diff payloads are omitted;
// CSV serves spreadsheet-style audit exports of the commit rows.
func (w *CSVHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	writer, file, err := openCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"Hash", "ShortHash", "Date", "Author", "AuthorEmail", "Insertions", "Deletions", "Files", "Message"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, rec := range report.Result.Commits {
		row := []string{
			rec.Hash,
			rec.ShortHash,
			rec.Date,
			rec.Author,
			rec.AuthorEmail,
			fmt.Sprintf("%d", rec.Changes.Insertions),
			fmt.Sprintf("%d", rec.Changes.Deletions),
			fmt.Sprintf("%d", rec.Changes.Files),
			rec.Message,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVActivityWriter writes activity feed reports as CSV.
type CSVActivityWriter struct{}

// Write outputs the activity report as CSV.
func (w *CSVActivityWriter) Write(report *ActivityReport, options OutputOptions) error {
	writer, file, err := openCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"Hash", "ShortHash", "Date", "Author", "AuthorEmail", "MatchedFiles", "Message"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, rec := range report.Commits {
		row := []string{
			rec.Hash,
			rec.ShortHash,
			rec.Date,
			rec.Author,
			rec.AuthorEmail,
			fmt.Sprintf("%d", rec.MatchedFiles),
			rec.Message,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVStatsWriter writes repository statistics as CSV.
type CSVStatsWriter struct{}

// Write outputs the stats report as a single CSV record.
func (w *CSVStatsWriter) Write(report *StatsReport, options OutputOptions) error {
	writer, file, err := openCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"TotalCommits", "Contributors", "FirstCommitDate", "LastCommitDate"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	stats := report.Stats
	row := []string{
		fmt.Sprintf("%d", stats.TotalCommits),
		fmt.Sprintf("%d", stats.Contributors),
		stats.FirstCommitDate,
		stats.LastCommitDate,
	}
	if err := writer.Write(row); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}
