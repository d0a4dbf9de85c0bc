package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// CountCmd returns the count command.
func CountCmd() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "Count the commits that touched a control file",
		ArgsUsage: "<file>",
		Flags:     commonFlags(),
		Action:    countAction,
	}
}

func countAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing file argument")
	}
	filePath := c.Args().Get(0)

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	fmt.Println(ctx.Service.GetFileCommitCount(c.Context, filePath))
	return nil
}
