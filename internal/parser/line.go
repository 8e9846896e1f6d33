package parser

import (
	"strconv"
	"strings"

	"github.com/prosedown/prosedown/internal/doc"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineNumber
	lineLowerAlpha
	lineUpperAlpha
	linePlain
)

// classified is a single input line after classification. For marker lines,
// value holds the marker's numeric value (digits parsed literally, letters
// mapped a/A=1 … z/Z=26) and text the content after the marker separator.
// For plain lines text is the whole line. raw always keeps the original
// line so a marker can be demoted to plain text without loss.
type classified struct {
	kind  lineKind
	value int
	text  string
	raw   string
}

// classifyLine is total: every input line maps to exactly one kind.
// Priority order: blank, number marker, lower-alpha marker, upper-alpha
// marker, plain. A trailing carriage return is stripped first so CRLF
// input classifies the same as LF input.
func classifyLine(line string) classified {
	line = strings.TrimSuffix(line, "\r")

	if isBlank(line) {
		return classified{kind: lineBlank, raw: line}
	}

	if c, ok := classifyNumberMarker(line); ok {
		return c
	}

	if c, ok := classifyAlphaMarker(line); ok {
		return c
	}

	return classified{kind: linePlain, text: line, raw: line}
}

func isBlank(line string) bool {
	for i := range len(line) {
		if line[i] != ' ' && line[i] != '\t' && line[i] != '\r' {
			return false
		}
	}

	return true
}

// classifyNumberMarker matches lines of the form "<digits>. <rest>".
func classifyNumberMarker(line string) (classified, bool) {
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}

	if digits == 0 || !hasMarkerSeparator(line, digits) {
		return classified{}, false
	}

	value, err := strconv.Atoi(line[:digits])
	if err != nil || value < 1 {
		// Out-of-range or zero-valued markers read as prose.
		return classified{}, false
	}

	return classified{
		kind:  lineNumber,
		value: value,
		text:  line[digits+2:],
		raw:   line,
	}, true
}

// classifyAlphaMarker matches "<single-letter>. <rest>", lowercase before
// uppercase. A lone letter before ". " is indistinguishable from an
// abbreviation starting a sentence; it always reads as a marker here.
func classifyAlphaMarker(line string) (classified, bool) {
	if len(line) == 0 || !hasMarkerSeparator(line, 1) {
		return classified{}, false
	}

	letter := line[0]

	value := doc.AlphaValue(letter)
	if value == 0 {
		return classified{}, false
	}

	c := classified{value: value, text: line[3:], raw: line}
	if letter >= 'a' && letter <= 'z' {
		c.kind = lineLowerAlpha
	} else {
		c.kind = lineUpperAlpha
	}

	return c, true
}

// hasMarkerSeparator reports whether line[at:] starts with ". ".
func hasMarkerSeparator(line string, at int) bool {
	return at+1 < len(line) && line[at] == '.' && line[at+1] == ' '
}
