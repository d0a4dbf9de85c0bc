package output

import (
	"encoding/csv"
	"io"
	"os"
)

const messageColumnWidth = 72

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func openCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(out), file, nil
}

func truncateMessage(message string) string {
	if len(message) <= messageColumnWidth {
		return message
	}
	return message[:messageColumnWidth-3] + "..."
}
