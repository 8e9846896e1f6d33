package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	version = "dev"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	commit = "unknown"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	buildTime = "unknown"
)

func main() {
	if err := run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newRootCommand().Run(context.Background(), args)
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "prosedown",
		Usage:   "Convert between markdown and a structured document tree",
		Version: versionString(),
		Commands: []*cli.Command{
			newParseCommand(),
			newRenderCommand(),
			newFmtCommand(),
			newInspectCommand(),
			newInitCommand(),
		},
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildTime)
}
