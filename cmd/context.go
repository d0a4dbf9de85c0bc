package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/defenseunicorns/lula-sub002/config"
	"github.com/defenseunicorns/lula-sub002/internal/diff"
	"github.com/defenseunicorns/lula-sub002/internal/git"
	"github.com/defenseunicorns/lula-sub002/internal/history"
	"github.com/defenseunicorns/lula-sub002/internal/output"
)

// CommandContext holds common state for command execution. It encapsulates
// the shared setup logic across all history commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Service  *history.Service
}

// NewCommandContext creates a context from CLI flags. It performs
// configuration loading and history service construction. The service is
// deliberately constructed even when the path is not a repository; every
// operation degrades to its empty-result shape in that case.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	repoPath := c.String("repo")
	if repoPath == "" {
		repoPath = "."
	}

	service := history.NewService(history.Options{
		RepoPath:     repoPath,
		DefaultLimit: cfg.History.DefaultLimit,
		DiffDepth:    cfg.History.DiffDepth,
		Algorithm:    diff.ParseAlgorithm(cfg.Diff.Algorithm),
		Engine:       git.ParseEngine(cfg.Git.Engine),
		Include:      cfg.Filters.Include,
		Exclude:      cfg.Filters.Exclude,
		Logger:       log.New(os.Stderr, "controlhist: ", log.LstdFlags),
	})

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Service:  service,
	}, nil
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
		ShowDiff:   !c.Bool("no-diff"),
	}
}
