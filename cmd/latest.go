package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/defenseunicorns/lula-sub002/internal/output"
)

// LatestCmd returns the latest command.
func LatestCmd() *cli.Command {
	return &cli.Command{
		Name:      "latest",
		Usage:     "Show the most recent commit that touched a control file",
		ArgsUsage: "<file>",
		Flags:     commonFlags(),
		Action:    latestAction,
	}
}

func latestAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing file argument")
	}
	filePath := c.Args().Get(0)

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	rec := ctx.Service.GetLatestCommit(c.Context, filePath)
	if rec == nil {
		fmt.Println("No history for this file.")
		return nil
	}

	if getOutputFormat(c.String("format")) == output.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Printf("%s  %s  %s <%s>  %s\n", rec.ShortHash, rec.Date, rec.Author, rec.AuthorEmail, rec.Message)
	return nil
}
