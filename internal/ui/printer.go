package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/progress"

	"github.com/prosedown/prosedown/internal/format"
)

// progressThreshold is the batch size above which a progress bar is shown
// in addition to per-file lines.
const progressThreshold = 20

type styles struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	dim    *color.Color
	bold   *color.Color
}

func newStyles() styles {
	return styles{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		dim:    color.New(color.Faint),
		bold:   color.New(color.Bold),
	}
}

// FormatPrinter renders format engine events to stderr with colored output.
type FormatPrinter struct {
	w       io.Writer
	check   bool
	dryRun  bool
	mu      sync.Mutex
	s       styles
	tracker *progress.Tracker
}

// NewFormatPrinter creates a FormatPrinter that writes to stderr.
func NewFormatPrinter(check bool, dryRun bool) *FormatPrinter {
	return &FormatPrinter{
		w:      os.Stderr,
		check:  check,
		dryRun: dryRun,
		s:      newStyles(),
	}
}

// NewFormatPrinterWithWriter creates a FormatPrinter that writes to the
// given writer and never attaches a progress bar.
func NewFormatPrinterWithWriter(w io.Writer, check bool, dryRun bool) *FormatPrinter {
	return &FormatPrinter{
		w:      w,
		check:  check,
		dryRun: dryRun,
		s:      newStyles(),
	}
}

// HandleEvent is the callback wired into format.Options.OnEvent.
func (p *FormatPrinter) HandleEvent(e format.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Kind {
	case format.EventRunStart:
		p.handleStart(e)
	case format.EventFileDone:
		p.handleDone(e)
	}
}

func (p *FormatPrinter) handleStart(e format.Event) {
	if p.w != os.Stderr || e.Total < progressThreshold {
		return
	}

	writer := NewProgressWriter()
	writer.SetOutputWriter(p.w)

	p.tracker = &progress.Tracker{
		Message: "formatting",
		Total:   int64(e.Total),
		Units:   progress.UnitsDefault,
	}
	writer.AppendTracker(p.tracker)

	go writer.Render()
}

func (p *FormatPrinter) handleDone(e format.Event) {
	if p.tracker != nil {
		p.tracker.Increment(1)
	}

	switch {
	case e.Err != nil:
		fmt.Fprintf(p.w, "%s %s: %s\n",
			p.s.red.Sprint("✗"),
			p.s.bold.Sprint(e.Path),
			e.Err,
		)

	case e.Changed && p.check:
		fmt.Fprintf(p.w, "%s %s %s\n",
			p.s.yellow.Sprint("!"),
			p.s.bold.Sprint(e.Path),
			p.s.dim.Sprint("(needs formatting)"),
		)

	case e.Changed:
		fmt.Fprintf(p.w, "%s %s %s\n",
			p.s.green.Sprint("✓"),
			p.s.bold.Sprint(e.Path),
			p.s.dim.Sprint("(formatted)"),
		)

	default:
		fmt.Fprintf(p.w, "%s %s %s\n",
			p.s.dim.Sprint("—"),
			p.s.bold.Sprint(e.Path),
			p.s.dim.Sprint("(unchanged)"),
		)
	}
}

// PrintSummary renders a final summary line after the run completes.
func (p *FormatPrinter) PrintSummary(r *format.RunResult) {
	if r == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w)

	label := "fmt complete"
	switch {
	case p.check:
		label = "check complete"
	case p.dryRun:
		label = p.s.yellow.Sprint("dry-run complete")
	}

	parts := fmt.Sprintf("%s: %d file(s), %d changed, %d unchanged",
		label,
		r.Files,
		r.Changed,
		r.Unchanged,
	)

	if r.Failed > 0 {
		parts += fmt.Sprintf(", %s",
			p.s.red.Sprintf("%d failed", r.Failed),
		)
	}

	fmt.Fprintln(p.w, parts)

	if p.dryRun {
		fmt.Fprintln(p.w, p.s.dim.Sprint("no files were written"))
	}
}
