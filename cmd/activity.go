package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/defenseunicorns/lula-sub002/internal/output"
)

// ActivityCmd returns the activity command.
func ActivityCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Maximum number of commits to list",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
	)

	return &cli.Command{
		Name:    "activity",
		Aliases: []string{"a"},
		Usage:   "Show recent commits across tracked control files",
		Flags:   flags,
		Action:  activityAction,
	}
}

func activityAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	report := &output.ActivityReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Commits:     ctx.Service.GetRecentActivity(c.Context, c.Int("limit")),
	}

	opts := OutputOptions(c)
	writer := output.NewActivityReportWriter(opts.Format)
	return writer.Write(report, opts)
}
