// Package doc defines the document tree produced by parsing markdown and
// consumed by the serializer. The node set is closed: doc, paragraph, text,
// orderedList and listItem, with exhaustive switches in every traversal.
// The JSON projection ({type, attrs?, content?}, text leaves carrying a
// text field) is the stable wire contract shared with calling systems.
package doc

import (
	"github.com/samber/oops"
)

type Type string

const (
	TypeDoc         Type = "doc"
	TypeParagraph   Type = "paragraph"
	TypeText        Type = "text"
	TypeOrderedList Type = "orderedList"
	TypeListItem    Type = "listItem"
)

// Attrs carries the attributes of an orderedList node. ListStyle is uniform
// across all items of one list; Order is the 1-based start index derived
// from the first item's marker.
type Attrs struct {
	ListStyle ListStyle `json:"listStyle"`
	Order     int       `json:"order"`
}

// Node is one tagged node of the tree. Attrs is set only on orderedList
// nodes, Text only on text leaves, Content on everything that owns children.
type Node struct {
	Type    Type    `json:"type"`
	Attrs   *Attrs  `json:"attrs,omitempty"`
	Text    string  `json:"text,omitempty"`
	Content []*Node `json:"content,omitempty"`
}

func NewDoc(blocks ...*Node) *Node {
	return &Node{Type: TypeDoc, Content: blocks}
}

func NewParagraph(inlines ...*Node) *Node {
	return &Node{Type: TypeParagraph, Content: inlines}
}

func NewText(text string) *Node {
	return &Node{Type: TypeText, Text: text}
}

func NewOrderedList(style ListStyle, order int, items ...*Node) *Node {
	return &Node{
		Type:    TypeOrderedList,
		Attrs:   &Attrs{ListStyle: style, Order: order},
		Content: items,
	}
}

func NewListItem(blocks ...*Node) *Node {
	return &Node{Type: TypeListItem, Content: blocks}
}

// Validate checks the structural invariants the serializer relies on. Trees
// built by the parser always pass; externally constructed trees are checked
// here so malformed input is rejected instead of silently mis-rendered.
func (n *Node) Validate() error {
	if n == nil {
		return oops.
			Code("INVALID_NODE").
			Errorf("nil node")
	}

	switch n.Type {
	case TypeDoc:
		for _, child := range n.Content {
			if child == nil || (child.Type != TypeParagraph && child.Type != TypeOrderedList) {
				return oops.
					Code("INVALID_NODE").
					With("parent", n.Type).
					Errorf("doc children must be paragraph or orderedList nodes")
			}

			if err := child.Validate(); err != nil {
				return err
			}
		}

	case TypeParagraph:
		for _, child := range n.Content {
			if child == nil || child.Type != TypeText {
				return oops.
					Code("INVALID_NODE").
					With("parent", n.Type).
					Errorf("paragraph children must be text nodes")
			}
		}

	case TypeText:
		if len(n.Content) > 0 {
			return oops.
				Code("INVALID_NODE").
				Errorf("text nodes cannot own children")
		}

	case TypeOrderedList:
		if n.Attrs == nil {
			return oops.
				Code("INVALID_ATTRS").
				Hint("orderedList nodes require listStyle and order attributes").
				Errorf("orderedList node is missing attrs")
		}

		if !n.Attrs.ListStyle.Valid() {
			return oops.
				Code("INVALID_ATTRS").
				With("listStyle", string(n.Attrs.ListStyle)).
				Hint("Supported styles: number, lower-alpha, upper-alpha").
				Errorf("unknown list style %q", string(n.Attrs.ListStyle))
		}

		if n.Attrs.Order < 1 {
			return oops.
				Code("INVALID_ATTRS").
				With("order", n.Attrs.Order).
				Errorf("orderedList order must be a positive integer")
		}

		for _, child := range n.Content {
			if child == nil || child.Type != TypeListItem {
				return oops.
					Code("INVALID_LIST").
					Hint("orderedList content must be uniform listItem nodes").
					Errorf("orderedList child is not a listItem")
			}

			if err := child.Validate(); err != nil {
				return err
			}
		}

	case TypeListItem:
		for _, child := range n.Content {
			if child == nil || child.Type != TypeParagraph {
				return oops.
					Code("INVALID_LIST").
					Errorf("listItem children must be paragraph nodes")
			}

			if err := child.Validate(); err != nil {
				return err
			}
		}

	default:
		return oops.
			Code("INVALID_NODE").
			With("type", string(n.Type)).
			Errorf("unknown node type %q", string(n.Type))
	}

	return nil
}

// PlainText concatenates the text leaves under n in document order.
func (n *Node) PlainText() string {
	if n == nil {
		return ""
	}

	if n.Type == TypeText {
		return n.Text
	}

	var out string
	for _, child := range n.Content {
		out += child.PlainText()
	}

	return out
}
