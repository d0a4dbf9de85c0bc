package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// ShowCmd returns the show command.
func ShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the content of a control file as of a commit",
		ArgsUsage: "<file> <commit>",
		Flags:     commonFlags(),
		Action:    showAction,
	}
}

func showAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: show <file> <commit>")
	}
	filePath := c.Args().Get(0)
	commitID := c.Args().Get(1)

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	content, ok := ctx.Service.GetFileContentAtCommit(c.Context, filePath, commitID)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s did not exist at %s\n", filePath, commitID)
		return nil
	}

	fmt.Print(content)
	return nil
}
