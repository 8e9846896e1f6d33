package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"
)

const starterConfig = `# prosedown configuration

[convert]
# List styles to read as plain prose instead of list markers.
# disabled_styles = ["upper-alpha"]

[fmt]
patterns = ["**/*.md"]
# exclude = ["vendor/**"]
parallel = 4
`

func newInitCommand() *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Create a starter prosedown.toml in the current directory",
		Action: initAction,
	}
}

func initAction(_ context.Context, _ *cli.Command) error {
	const configName = "prosedown.toml"

	if _, err := os.Stat(configName); err == nil {
		return oops.
			Code("CONFIG_EXISTS").
			With("path", configName).
			Hint("Edit the existing file or remove it first").
			Errorf("%s already exists", configName)
	}

	if err := os.WriteFile(configName, []byte(starterConfig), 0o644); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", configName).
			Wrapf(err, "writing starter config")
	}

	fmt.Printf("created %s\n", configName)
	return nil
}
