// Package parser converts flat markdown text into a document tree. The
// pipeline is a line classifier feeding a finite-state block grouper, a
// list builder for marker runs and a document assembler; it is specialized
// for ordered lists with numeric or alphabetic markers and treats every
// other line as plain prose.
package parser

import (
	"strings"

	"github.com/prosedown/prosedown/internal/doc"
)

// Options threads caller configuration through a parse. The zero value
// enables every list style.
type Options struct {
	// DisabledStyles lists marker styles that should be read as plain
	// prose instead of list items.
	DisabledStyles []doc.ListStyle
}

func (o Options) styleDisabled(style doc.ListStyle) bool {
	for _, s := range o.DisabledStyles {
		if s == style {
			return true
		}
	}

	return false
}

// Parse converts markdown into a document tree. It is total: every input
// string yields a tree, and empty input yields a doc holding exactly one
// empty paragraph. The returned tree is freshly allocated per call, so
// concurrent parses need no coordination.
func Parse(input string, opts Options) *doc.Node {
	lines := classify(input, opts)
	runs := groupBlocks(lines)

	return assemble(runs)
}

func classify(input string, opts Options) []classified {
	raw := strings.Split(input, "\n")
	lines := make([]classified, 0, len(raw))

	for _, line := range raw {
		c := classifyLine(line)
		if kind, ok := markerRunKind(c.kind); ok && opts.styleDisabled(kind.listStyle()) {
			c = classified{kind: linePlain, text: c.raw, raw: c.raw}
		}

		lines = append(lines, c)
	}

	return lines
}

// assemble concatenates block runs into the document root. Marker runs
// become ordered lists; each line of a plain run becomes its own
// paragraph, so a serialize/parse cycle maps lines one to one.
func assemble(runs []run) *doc.Node {
	var blocks []*doc.Node

	for _, r := range runs {
		if r.kind == runPlain {
			for _, line := range r.lines {
				blocks = append(blocks, doc.NewParagraph(doc.NewText(line.text)))
			}

			continue
		}

		blocks = append(blocks, buildList(r))
	}

	if len(blocks) == 0 {
		blocks = []*doc.Node{doc.NewParagraph()}
	}

	return doc.NewDoc(blocks...)
}
