package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/defenseunicorns/lula-sub002/internal/output"
)

// StatsCmd returns the stats command.
func StatsCmd() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Show repository-wide history statistics",
		Flags:  commonFlags(),
		Action: statsAction,
	}
}

func statsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	report := &output.StatsReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Stats:       ctx.Service.GetRepositoryStats(c.Context),
	}

	opts := OutputOptions(c)
	writer := output.NewStatsReportWriter(opts.Format)
	return writer.Write(report, opts)
}
