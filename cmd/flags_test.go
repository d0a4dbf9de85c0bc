package cmd

import (
	"testing"

	"github.com/defenseunicorns/lula-sub002/internal/output"
)

func TestGetOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  output.OutputFormat
	}{
		{"console", output.FormatConsole},
		{"json", output.FormatJSON},
		{"csv", output.FormatCSV},
		{"markdown", output.FormatMarkdown},
		{"md", output.FormatMarkdown},
		{"", output.FormatConsole},
		{"bogus", output.FormatConsole},
	}
	for _, tt := range tests {
		if got := getOutputFormat(tt.input); got != tt.want {
			t.Errorf("getOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAppCommands(t *testing.T) {
	app := App()

	want := map[string]bool{
		"log": false, "show": false, "count": false,
		"latest": false, "stats": false, "activity": false,
	}
	for _, c := range app.Commands {
		if _, ok := want[c.Name]; ok {
			want[c.Name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("command %q not registered", name)
		}
	}
}
