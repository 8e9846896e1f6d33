package main

import (
	"context"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/prosedown/prosedown/internal/config"
	"github.com/prosedown/prosedown/internal/doc"
	"github.com/prosedown/prosedown/internal/outline"
	"github.com/prosedown/prosedown/internal/parser"
	"github.com/prosedown/prosedown/internal/ui"
)

const previewLength = 48

func newInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the block structure of a markdown file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
		},
		Action: inspectAction,
	}
}

func inspectAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: prosedown inspect <file>").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	path := cmd.Args().First()

	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return err
	}

	input, err := readInput(path)
	if err != nil {
		return err
	}

	tree := parser.Parse(input, parser.Options{DisabledStyles: cfg.DisabledStyles()})

	report := ui.InspectReport{
		Path:     path,
		Lines:    strings.Count(input, "\n") + 1,
		Blocks:   blockInfos(tree),
		Headings: outline.Extract([]byte(input)),
	}

	return ui.RenderInspect(report, ui.InspectOptions{JSON: cmd.Bool("json")})
}

func blockInfos(tree *doc.Node) []ui.BlockInfo {
	blocks := make([]ui.BlockInfo, 0, len(tree.Content))

	for i, block := range tree.Content {
		info := ui.BlockInfo{
			Index:   i + 1,
			Kind:    string(block.Type),
			Preview: preview(block),
		}

		if block.Type == doc.TypeOrderedList && block.Attrs != nil {
			info.Style = string(block.Attrs.ListStyle)
			info.Order = block.Attrs.Order
			info.Items = len(block.Content)
		}

		blocks = append(blocks, info)
	}

	return blocks
}

func preview(block *doc.Node) string {
	text := block.PlainText()
	if block.Type == doc.TypeOrderedList && len(block.Content) > 0 {
		text = block.Content[0].PlainText()
	}

	text = strings.Join(strings.Fields(text), " ")
	if runes := []rune(text); len(runes) > previewLength {
		return string(runes[:previewLength]) + "…"
	}

	return text
}
