package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/prosedown/prosedown/internal/config"
	"github.com/prosedown/prosedown/internal/fetch"
	"github.com/prosedown/prosedown/internal/parser"
)

func newParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Convert markdown to a document tree (JSON)",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "Fetch the markdown document from a URL",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "Emit single-line JSON",
			},
		},
		Action: parseAction,
	}
}

func parseAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: prosedown parse [file]").
			Errorf("expected at most 1 argument, got %d", cmd.Args().Len())
	}

	if cmd.String("url") != "" && cmd.Args().Len() > 0 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Pass either a file argument or --url, not both").
			Errorf("conflicting input sources")
	}

	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return err
	}

	input, err := resolveMarkdownInput(ctx, cmd)
	if err != nil {
		return err
	}

	tree := parser.Parse(input, parser.Options{DisabledStyles: cfg.DisabledStyles()})

	encoder := json.NewEncoder(os.Stdout)
	if !cmd.Bool("compact") {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(tree); err != nil {
		return oops.
			Code("JSON_ERROR").
			Wrapf(err, "encoding document tree")
	}

	return nil
}

func resolveMarkdownInput(ctx context.Context, cmd *cli.Command) (string, error) {
	if rawURL := cmd.String("url"); rawURL != "" {
		return fetch.New().Document(ctx, rawURL)
	}

	return readInput(cmd.Args().First())
}
