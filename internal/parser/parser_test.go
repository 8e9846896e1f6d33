package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/prosedown/prosedown/internal/doc"
	"github.com/prosedown/prosedown/internal/parser"
)

func document(blocks ...*doc.Node) *doc.Node {
	return doc.NewDoc(blocks...)
}

func paragraph(text string) *doc.Node {
	if text == "" {
		return doc.NewParagraph()
	}

	return doc.NewParagraph(doc.NewText(text))
}

func list(style doc.ListStyle, order int, texts ...string) *doc.Node {
	items := make([]*doc.Node, 0, len(texts))
	for _, text := range texts {
		items = append(items, doc.NewListItem(paragraph(text)))
	}

	return doc.NewOrderedList(style, order, items...)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *doc.Node
	}{
		{
			name:  "empty input yields one empty paragraph",
			input: "",
			want:  document(paragraph("")),
		},
		{
			name:  "blank lines only yield one empty paragraph",
			input: "\n\n  \n",
			want:  document(paragraph("")),
		},
		{
			name:  "single prose line",
			input: "Just a sentence.",
			want:  document(paragraph("Just a sentence.")),
		},
		{
			name:  "each prose line becomes its own paragraph",
			input: "first line\nsecond line",
			want:  document(paragraph("first line"), paragraph("second line")),
		},
		{
			name:  "lower alpha list",
			input: "a. x\nb. y",
			want:  document(list(doc.ListStyleLowerAlpha, 1, "x", "y")),
		},
		{
			name:  "upper alpha list",
			input: "A. First item\nB. Second item",
			want:  document(list(doc.ListStyleUpperAlpha, 1, "First item", "Second item")),
		},
		{
			name:  "number list keeps literal start index",
			input: "4. fourth\n5. fifth",
			want:  document(list(doc.ListStyleNumber, 4, "fourth", "fifth")),
		},
		{
			name:  "alpha list starting mid-alphabet",
			input: "c. third\nd. fourth",
			want:  document(list(doc.ListStyleLowerAlpha, 3, "third", "fourth")),
		},
		{
			name:  "blank lines keep one list together",
			input: "a. Do this.\n\nb. Do that.",
			want:  document(list(doc.ListStyleLowerAlpha, 1, "Do this.", "Do that.")),
		},
		{
			name:  "CRLF blank lines keep one list together",
			input: "a. Do this.\r\n\r\nb. Do that.\r\n",
			want:  document(list(doc.ListStyleLowerAlpha, 1, "Do this.", "Do that.")),
		},
		{
			name:  "CRLF prose lines drop the carriage return",
			input: "first\r\nsecond\r\n",
			want:  document(paragraph("first"), paragraph("second")),
		},
		{
			name:  "case change splits lists",
			input: "a. x\nB. y",
			want: document(
				list(doc.ListStyleLowerAlpha, 1, "x"),
				list(doc.ListStyleUpperAlpha, 2, "y"),
			),
		},
		{
			name:  "digits and letters split lists",
			input: "1. x\na. y",
			want: document(
				list(doc.ListStyleNumber, 1, "x"),
				list(doc.ListStyleLowerAlpha, 1, "y"),
			),
		},
		{
			name:  "prose between lists",
			input: "a. x\ninterlude\nb. y",
			want: document(
				list(doc.ListStyleLowerAlpha, 1, "x"),
				paragraph("interlude"),
				list(doc.ListStyleLowerAlpha, 2, "y"),
			),
		},
		{
			name:  "item text is trimmed",
			input: "1. padded   ",
			want:  document(list(doc.ListStyleNumber, 1, "padded")),
		},
		{
			name:  "marker with empty text yields empty item",
			input: "1. \n2. real",
			want:  document(list(doc.ListStyleNumber, 1, "", "real")),
		},
		{
			name:  "trailing newline adds nothing",
			input: "a. x\nb. y\n",
			want:  document(list(doc.ListStyleLowerAlpha, 1, "x", "y")),
		},
		{
			name:  "mixed document",
			input: "Intro text.\n\n1. one\n2. two\n\nOutro text.",
			want: document(
				paragraph("Intro text."),
				list(doc.ListStyleNumber, 1, "one", "two"),
				paragraph("Outro text."),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parser.Parse(tt.input, parser.Options{})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseStyleDetection(t *testing.T) {
	t.Parallel()

	tree := parser.Parse("a. x\nb. y", parser.Options{})

	if len(tree.Content) != 1 {
		t.Fatalf("Parse() produced %d blocks, want 1", len(tree.Content))
	}

	block := tree.Content[0]
	if block.Type != doc.TypeOrderedList {
		t.Fatalf("block type = %q, want orderedList", block.Type)
	}

	if block.Attrs.ListStyle != doc.ListStyleLowerAlpha {
		t.Errorf("listStyle = %q, want lower-alpha", block.Attrs.ListStyle)
	}

	if block.Attrs.Order != 1 {
		t.Errorf("order = %d, want 1", block.Attrs.Order)
	}

	if len(block.Content) != 2 {
		t.Errorf("items = %d, want 2", len(block.Content))
	}
}

func TestParseDisabledStyles(t *testing.T) {
	t.Parallel()

	opts := parser.Options{DisabledStyles: []doc.ListStyle{doc.ListStyleUpperAlpha}}

	got := parser.Parse("A. looks like a marker\nB. but style is disabled", opts)
	want := document(
		paragraph("A. looks like a marker"),
		paragraph("B. but style is disabled"),
	)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() with disabled upper-alpha mismatch (-want +got):\n%s", diff)
	}

	// Other styles stay active.
	gotNumbers := parser.Parse("1. still a list", opts)
	wantNumbers := document(list(doc.ListStyleNumber, 1, "still a list"))

	if diff := cmp.Diff(wantNumbers, gotNumbers); diff != "" {
		t.Errorf("Parse() with active number style mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAllocatesFreshTrees(t *testing.T) {
	t.Parallel()

	first := parser.Parse("a. x", parser.Options{})
	second := parser.Parse("a. x", parser.Options{})

	if first == second {
		t.Fatalf("Parse() returned the same tree for two calls")
	}

	first.Content[0].Attrs.Order = 99
	if second.Content[0].Attrs.Order != 1 {
		t.Errorf("mutating one tree affected another")
	}
}
