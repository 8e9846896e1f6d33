package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/prosedown/prosedown/internal/doc"
	"github.com/prosedown/prosedown/internal/render"
)

func newRenderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Convert a document tree (JSON) back to markdown",
		ArgsUsage: "[file]",
		Action:    renderAction,
	}
}

func renderAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: prosedown render [file]").
			Errorf("expected at most 1 argument, got %d", cmd.Args().Len())
	}

	input, err := readInput(cmd.Args().First())
	if err != nil {
		return err
	}

	tree := &doc.Node{}
	if err := json.Unmarshal([]byte(input), tree); err != nil {
		return oops.
			Code("JSON_ERROR").
			Hint("Input must be a tree produced by 'prosedown parse'").
			Wrapf(err, "decoding document tree")
	}

	markdown, err := render.Serialize(tree)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(os.Stdout, markdown)
	return err
}
