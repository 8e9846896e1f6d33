package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prosedown/prosedown/internal/format"
	"github.com/prosedown/prosedown/internal/ui"
)

var errMock = errors.New("mock error")

func TestHandleEventChanged(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewFormatPrinterWithWriter(&buf, false, false)

	p.HandleEvent(format.Event{
		Kind:    format.EventFileDone,
		Path:    "docs/list.md",
		Changed: true,
	})

	out := buf.String()
	if !strings.Contains(out, "docs/list.md") {
		t.Errorf("output missing file path, got: %q", out)
	}

	if !strings.Contains(out, "formatted") {
		t.Errorf("output missing 'formatted', got: %q", out)
	}
}

func TestHandleEventUnchanged(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewFormatPrinterWithWriter(&buf, false, false)

	p.HandleEvent(format.Event{
		Kind: format.EventFileDone,
		Path: "docs/clean.md",
	})

	if !strings.Contains(buf.String(), "unchanged") {
		t.Errorf("output missing 'unchanged', got: %q", buf.String())
	}
}

func TestHandleEventCheckMode(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewFormatPrinterWithWriter(&buf, true, false)

	p.HandleEvent(format.Event{
		Kind:    format.EventFileDone,
		Path:    "docs/list.md",
		Changed: true,
	})

	if !strings.Contains(buf.String(), "needs formatting") {
		t.Errorf("check output missing 'needs formatting', got: %q", buf.String())
	}
}

func TestHandleEventError(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewFormatPrinterWithWriter(&buf, false, false)

	p.HandleEvent(format.Event{
		Kind: format.EventFileDone,
		Path: "docs/bad.md",
		Err:  errMock,
	})

	out := buf.String()
	if !strings.Contains(out, "docs/bad.md") {
		t.Errorf("error output missing file path, got: %q", out)
	}

	if !strings.Contains(out, "mock error") {
		t.Errorf("error output missing error message, got: %q", out)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewFormatPrinterWithWriter(&buf, false, false)

	p.PrintSummary(&format.RunResult{
		Files:     4,
		Changed:   2,
		Unchanged: 1,
		Failed:    1,
	})

	out := buf.String()
	for _, want := range []string{"4 file(s)", "2 changed", "1 unchanged", "1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q, got: %q", want, out)
		}
	}
}

func TestPrintSummaryDryRun(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewFormatPrinterWithWriter(&buf, false, true)

	p.PrintSummary(&format.RunResult{Files: 1, Changed: 1})

	out := buf.String()
	if !strings.Contains(out, "dry-run complete") {
		t.Errorf("summary missing dry-run label, got: %q", out)
	}

	if !strings.Contains(out, "no files were written") {
		t.Errorf("summary missing dry-run note, got: %q", out)
	}
}
