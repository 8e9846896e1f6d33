// Package format canonicalizes markdown files on disk by running each one
// through a parse/serialize round trip. The engine is UI-free: progress is
// reported through an event callback so the command layer owns all output.
package format

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	stdsync "sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"

	"github.com/prosedown/prosedown/internal/parser"
	"github.com/prosedown/prosedown/internal/render"
)

const defaultMaxParallel = 4

type Options struct {
	Patterns []string
	Exclude  []string

	// Check reports files that would change without writing anything.
	Check bool
	// DryRun writes nothing but still reports per-file status.
	DryRun      bool
	MaxParallel int

	Parser  parser.Options
	OnEvent func(Event)
}

type EventKind int

const (
	EventRunStart EventKind = iota
	EventFileDone
)

type Event struct {
	Kind EventKind

	// Total is set on EventRunStart.
	Total int

	// Path, Changed and Err are set on EventFileDone.
	Path    string
	Changed bool
	Err     error
}

type RunResult struct {
	Files     int
	Changed   int
	Unchanged int
	Failed    int
}

type fileState struct {
	changed bool
	err     error
}

// Run formats every file matching opts.Patterns under root. It returns an
// error only when the run itself cannot proceed; per-file failures are
// counted in the result and reported through OnEvent.
func Run(ctx context.Context, root string, opts Options) (*RunResult, error) {
	files, err := Expand(root, opts.Patterns, opts.Exclude)
	if err != nil {
		return nil, err
	}

	emit(opts.OnEvent, Event{Kind: EventRunStart, Total: len(files)})

	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}

	states := make(map[string]fileState, len(files))
	var statesMu stdsync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	for _, relPath := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			state := fileState{}
			state.changed, state.err = formatFile(filepath.Join(root, relPath), opts)

			statesMu.Lock()
			states[relPath] = state
			statesMu.Unlock()

			emit(opts.OnEvent, Event{
				Kind:    EventFileDone,
				Path:    relPath,
				Changed: state.changed,
				Err:     state.err,
			})
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, oops.Wrapf(err, "waiting for format workers")
	}

	result := &RunResult{Files: len(files)}
	for _, relPath := range files {
		state := states[relPath]
		switch {
		case state.err != nil:
			result.Failed++
		case state.changed:
			result.Changed++
		default:
			result.Unchanged++
		}
	}

	return result, nil
}

// Expand resolves doublestar patterns relative to root into a sorted,
// de-duplicated list of relative file paths, minus exclusions.
func Expand(root string, patterns []string, exclude []string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, oops.
				Code("INVALID_PATTERN").
				With("pattern", pattern).
				Hint("Patterns use doublestar syntax, e.g. docs/**/*.md").
				Wrapf(err, "expanding pattern %q", pattern)
		}

		for _, match := range matches {
			if _, dup := seen[match]; dup {
				continue
			}

			excluded, err := matchesAny(exclude, match)
			if err != nil {
				return nil, err
			}

			if excluded {
				continue
			}

			info, err := os.Stat(filepath.Join(root, match))
			if err != nil || info.IsDir() {
				continue
			}

			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	slices.Sort(files)
	return files, nil
}

func matchesAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.PathMatch(pattern, path)
		if err != nil {
			return false, oops.
				Code("INVALID_PATTERN").
				With("pattern", pattern).
				Wrapf(err, "matching exclude pattern %q", pattern)
		}

		if matched {
			return true, nil
		}
	}

	return false, nil
}

// formatFile round-trips one file and reports whether its content changed.
func formatFile(path string, opts Options) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, oops.
			Code("FILE_READ_ERROR").
			With("path", path).
			Wrapf(err, "reading file")
	}

	tree := parser.Parse(string(content), opts.Parser)
	formatted, err := render.Serialize(tree)
	if err != nil {
		return false, oops.
			Code("FORMAT_FAILED").
			With("path", path).
			Wrapf(err, "serializing document")
	}

	if formatted == string(content) {
		return false, nil
	}

	if opts.Check || opts.DryRun {
		return true, nil
	}

	if err := writeFileAtomic(path, []byte(formatted)); err != nil {
		return false, err
	}

	return true, nil
}

func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".prosedown-fmt-*.tmp")
	if err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "creating temporary file")
	}

	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, err := tempFile.Write(content); err != nil {
		_ = tempFile.Close()
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "writing temporary file")
	}

	if err := tempFile.Close(); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "closing temporary file")
	}

	if err := os.Rename(tempPath, path); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "replacing destination file")
	}

	return nil
}

func emit(onEvent func(Event), e Event) {
	if onEvent != nil {
		onEvent(e)
	}
}
