package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/prosedown/prosedown/internal/outline"
)

// BlockInfo is the flattened view of one top-level block used by inspect.
type BlockInfo struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Style   string `json:"style,omitempty"`
	Order   int    `json:"order,omitempty"`
	Items   int    `json:"items,omitempty"`
	Preview string `json:"preview"`
}

type InspectReport struct {
	Path     string            `json:"path,omitempty"`
	Lines    int               `json:"lines"`
	Blocks   []BlockInfo       `json:"blocks"`
	Headings []outline.Heading `json:"headings,omitempty"`
}

type InspectOptions struct {
	JSON bool
}

func RenderInspect(report InspectReport, opts InspectOptions) error {
	if opts.JSON {
		return renderInspectJSON(report)
	}

	renderInspectTable(os.Stdout, report)
	return nil
}

func renderInspectJSON(report InspectReport) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode inspect report json: %w", err)
	}

	return nil
}

func renderInspectTable(w io.Writer, report InspectReport) {
	if report.Path != "" {
		fmt.Fprintf(w, "%s (%d lines)\n\n", report.Path, report.Lines)
	}

	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleRounded)

	writer.AppendHeader(table.Row{"#", "KIND", "STYLE", "ORDER", "ITEMS", "PREVIEW"})

	for _, block := range report.Blocks {
		style := block.Style
		order := ""
		items := ""

		if block.Kind == "orderedList" {
			order = fmt.Sprintf("%d", block.Order)
			items = fmt.Sprintf("%d", block.Items)
		}

		writer.AppendRow(table.Row{
			block.Index,
			block.Kind,
			style,
			order,
			items,
			block.Preview,
		})
	}

	writer.Render()

	if len(report.Headings) > 0 {
		fmt.Fprintln(w, "\nHEADINGS:")
		for _, h := range report.Headings {
			indent := strings.Repeat("  ", h.Level-1)
			fmt.Fprintf(w, "%3d  %s%s\n", h.Line, indent, h.Text)
		}
	}
}
