package main

import (
	"io"
	"os"

	"github.com/samber/oops"
)

// readInput resolves the document text for a command: a file argument when
// given, stdin otherwise.
func readInput(path string) (string, error) {
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", oops.
				Code("FILE_READ_ERROR").
				With("path", path).
				Wrapf(err, "reading input file")
		}

		return string(content), nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", oops.
			Code("FILE_READ_ERROR").
			Hint("Pass a file argument or pipe content on stdin").
			Wrapf(err, "reading stdin")
	}

	return string(content), nil
}
