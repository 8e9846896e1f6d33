// Package render walks a document tree and reconstructs markdown text.
// List markers are recomputed from each list's recorded style and start
// index; the recorded attributes are authoritative and are never
// re-inferred from content.
package render

import (
	"strings"

	"github.com/samber/oops"

	"github.com/prosedown/prosedown/internal/doc"
)

// Serialize renders a document tree back to markdown, one block per output
// line. It is total for any tree produced by the parser; externally built
// trees that violate the structural invariants (non-uniform list children,
// missing attrs) are rejected with a structural error rather than rendered
// on a best guess.
func Serialize(root *doc.Node) (string, error) {
	if root == nil || root.Type != doc.TypeDoc {
		return "", oops.
			Code("INVALID_NODE").
			Hint("Serialize expects a doc root node").
			Errorf("cannot serialize non-doc root")
	}

	if err := root.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range root.Content {
		switch block.Type {
		case doc.TypeParagraph:
			b.WriteString(block.PlainText())
			b.WriteString("\n")
		case doc.TypeOrderedList:
			writeOrderedList(&b, block)
		default:
			// Validate only admits paragraph and orderedList blocks.
			return "", oops.
				Code("INVALID_NODE").
				With("type", string(block.Type)).
				Errorf("unexpected block type %q", string(block.Type))
		}
	}

	return b.String(), nil
}

// writeOrderedList emits one "<marker>. <text>" line per item, with the
// marker for the item at position i computed from order+i in the recorded
// style and case.
func writeOrderedList(b *strings.Builder, list *doc.Node) {
	style := list.Attrs.ListStyle
	order := list.Attrs.Order

	for i, item := range list.Content {
		b.WriteString(style.Marker(order + i))
		b.WriteString(". ")
		b.WriteString(item.PlainText())
		b.WriteString("\n")
	}
}
