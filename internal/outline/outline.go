// Package outline extracts a heading outline from markdown so inspect can
// show where each block sits in the wider document.
package outline

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

const (
	setextH1Level = 1
	setextH2Level = 2
)

type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// Extract parses content with gomarkdown and returns its headings in
// document order, each annotated with the 1-based line it starts on.
func Extract(content []byte) []Heading {
	content = stripBOM(content)

	mdParser := parser.NewWithExtensions(parser.CommonExtensions)
	root := mdParser.Parse(content)

	var headings []Heading
	ast.WalkFunc(root, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		if heading, isHeading := node.(*ast.Heading); isHeading {
			text := headingText(heading)
			if text != "" {
				headings = append(headings, Heading{Level: heading.Level, Text: text})
			}
		}

		return ast.GoToNext
	})

	assignHeadingLineNumbers(headings, content)
	return headings
}

func headingText(node ast.Node) string {
	var buf strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if entering {
			if text, ok := n.(*ast.Text); ok {
				buf.Write(text.Literal)
			}
		}

		return ast.GoToNext
	})

	return strings.Join(strings.Fields(buf.String()), " ")
}

func stripBOM(content []byte) []byte {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:]
	}

	return content
}

// assignHeadingLineNumbers scans content for heading markers and assigns
// the correct line number to each heading in document order. gomarkdown's
// AST does not store source positions, so they are recovered by hand.
func assignHeadingLineNumbers(headings []Heading, content []byte) {
	if len(headings) == 0 {
		return
	}

	lines := bytes.Split(content, []byte("\n"))
	hi := 0
	inFenced := false

	for lineIdx := 0; lineIdx < len(lines) && hi < len(headings); lineIdx++ {
		line := lines[lineIdx]
		trimmed := bytes.TrimSpace(line)

		if isFenceMarker(trimmed) {
			inFenced = !inFenced
			continue
		}

		if inFenced {
			continue
		}

		if level := atxHeadingLevel(line); level == headings[hi].Level {
			headings[hi].Line = lineIdx + 1
			hi++
			continue
		}

		if level := setextHeadingLevel(lines, lineIdx, trimmed); level == headings[hi].Level {
			headings[hi].Line = lineIdx + 1
			hi++
		}
	}
}

func isFenceMarker(trimmed []byte) bool {
	return bytes.HasPrefix(trimmed, []byte("```")) || bytes.HasPrefix(trimmed, []byte("~~~"))
}

// atxHeadingLevel returns the heading level (1-6) for an ATX heading line,
// or 0 if the line is not an ATX heading.
func atxHeadingLevel(line []byte) int {
	spaces := 0
	for spaces < len(line) && spaces < 4 && line[spaces] == ' ' {
		spaces++
	}

	if spaces >= 4 || spaces >= len(line) || line[spaces] != '#' {
		return 0
	}

	level := 0
	for spaces+level < len(line) && level < 7 && line[spaces+level] == '#' {
		level++
	}

	if level >= 1 && level <= 6 && spaces+level < len(line) && line[spaces+level] == ' ' {
		return level
	}

	return 0
}

// setextHeadingLevel returns the heading level for setext-style headings
// (1 for === underline, 2 for --- underline), or 0 if not a setext heading.
func setextHeadingLevel(lines [][]byte, lineIdx int, trimmed []byte) int {
	if lineIdx+1 >= len(lines) || len(trimmed) == 0 {
		return 0
	}

	nextTrimmed := bytes.TrimSpace(lines[lineIdx+1])
	if allSameChar(nextTrimmed, '=') {
		return setextH1Level
	}

	if allSameChar(nextTrimmed, '-') {
		return setextH2Level
	}

	return 0
}

func allSameChar(b []byte, ch byte) bool {
	if len(b) == 0 {
		return false
	}

	for _, c := range b {
		if c != ch {
			return false
		}
	}

	return true
}
