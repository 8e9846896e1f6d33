package parser

import (
	"fmt"
	"strings"

	"github.com/prosedown/prosedown/internal/doc"
)

func (k runKind) listStyle() doc.ListStyle {
	switch k {
	case runNumber:
		return doc.ListStyleNumber
	case runLowerAlpha:
		return doc.ListStyleLowerAlpha
	case runUpperAlpha:
		return doc.ListStyleUpperAlpha
	default:
		panic(fmt.Sprintf("parser: run kind %d is not a marker kind", k))
	}
}

// buildList converts one homogeneous marker run into an orderedList node.
// The list's style comes from the run kind and its order from the first
// line's marker value. Each line becomes listItem > paragraph > text with
// incidental whitespace trimmed.
//
// Homogeneity of the run is an invariant the grouper guarantees; a mixed
// run is a grouper bug, not user input, so it panics instead of returning
// an error.
func buildList(r run) *doc.Node {
	if len(r.lines) == 0 {
		panic("parser: empty marker run")
	}

	items := make([]*doc.Node, 0, len(r.lines))
	for _, line := range r.lines {
		kind, ok := markerRunKind(line.kind)
		if !ok || kind != r.kind {
			panic(fmt.Sprintf("parser: line kind %d in run of kind %d", line.kind, r.kind))
		}

		para := doc.NewParagraph()
		if text := strings.TrimSpace(line.text); text != "" {
			para = doc.NewParagraph(doc.NewText(text))
		}

		items = append(items, doc.NewListItem(para))
	}

	return doc.NewOrderedList(r.kind.listStyle(), r.lines[0].value, items...)
}
