package main

import (
	"context"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/prosedown/prosedown/internal/config"
	"github.com/prosedown/prosedown/internal/format"
	"github.com/prosedown/prosedown/internal/parser"
	"github.com/prosedown/prosedown/internal/ui"
)

func newFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Canonicalize markdown files through a parse/serialize round trip",
		ArgsUsage: "[pattern...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Report files that need formatting without writing; exit nonzero if any",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show what would change without writing files",
			},
			&cli.IntFlag{
				Name:    "parallel",
				Aliases: []string{"p"},
				Usage:   "Maximum parallel workers (0 = use config default)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Exclude glob pattern (repeatable)",
			},
		},
		Action: fmtAction,
	}
}

func fmtAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return err
	}

	patterns := cmd.Args().Slice()
	if len(patterns) == 0 {
		patterns = cfg.Fmt.Patterns
	}

	exclude := append([]string{}, cfg.Fmt.Exclude...)
	exclude = append(exclude, cmd.StringSlice("exclude")...)

	parallel := cmd.Int("parallel")
	if parallel <= 0 {
		parallel = cfg.Fmt.Parallel
	}

	check := cmd.Bool("check")
	dryRun := cmd.Bool("dry-run")
	printer := ui.NewFormatPrinter(check, dryRun)

	result, err := format.Run(ctx, ".", format.Options{
		Patterns:    patterns,
		Exclude:     exclude,
		Check:       check,
		DryRun:      dryRun,
		MaxParallel: parallel,
		Parser:      parser.Options{DisabledStyles: cfg.DisabledStyles()},
		OnEvent:     printer.HandleEvent,
	})
	if err != nil {
		return err
	}

	printer.PrintSummary(result)

	if result.Failed > 0 {
		return oops.
			Code("FMT_FAILED").
			With("failed_files", result.Failed).
			Errorf("%d file(s) failed during formatting", result.Failed)
	}

	if check && result.Changed > 0 {
		return oops.
			Code("CHECK_FAILED").
			With("changed_files", result.Changed).
			Hint("Run 'prosedown fmt' to rewrite them").
			Errorf("%d file(s) need formatting", result.Changed)
	}

	return nil
}
