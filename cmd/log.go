package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/defenseunicorns/lula-sub002/internal/output"
)

// LogCmd returns the log command.
func LogCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Maximum number of commits to walk",
		},
		&cli.StringFlag{
			Name:  "algorithm",
			Usage: "Diff algorithm (greedy, myers)",
		},
		&cli.BoolFlag{
			Name:  "no-diff",
			Usage: "Suppress diff rendering in console and markdown output",
		},
	)

	return &cli.Command{
		Name:      "log",
		Aliases:   []string{"l"},
		Usage:     "Show the commit history of a control file",
		ArgsUsage: "<file>",
		Flags:     flags,
		Action:    logAction,
	}
}

func logAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing file argument")
	}
	filePath := c.Args().Get(0)

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	result := ctx.Service.GetFileHistory(c.Context, filePath, c.Int("limit"))

	report := &output.HistoryReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Result:      result,
	}

	opts := OutputOptions(c)
	writer := output.NewHistoryReportWriter(opts.Format)
	return writer.Write(report, opts)
}
