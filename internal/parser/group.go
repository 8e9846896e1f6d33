package parser

// runKind identifies the block kind of one homogeneous run of lines.
type runKind int

const (
	runPlain runKind = iota
	runNumber
	runLowerAlpha
	runUpperAlpha
)

// run is a maximal sequence of same-kind lines. Blank lines are never part
// of a run; for marker runs they are skipped over, for plain runs they act
// as terminators.
type run struct {
	kind  runKind
	lines []classified
}

func markerRunKind(kind lineKind) (runKind, bool) {
	switch kind {
	case lineNumber:
		return runNumber, true
	case lineLowerAlpha:
		return runLowerAlpha, true
	case lineUpperAlpha:
		return runUpperAlpha, true
	default:
		return runPlain, false
	}
}

// groupBlocks partitions classified lines into homogeneous runs with a
// single left-to-right scan. The scan holds one open run at a time:
//
//   - a marker line extends the open run only when the kinds match exactly
//     (digits vs. lower-alpha vs. upper-alpha); any mismatch closes the old
//     run and opens a new one
//   - a blank line closes an open plain run but only suspends a marker run,
//     which is what keeps "a. Do this.\n\nb. Do that." a single list
//   - a plain line closes any open marker run
//   - end of input closes whatever run is open
func groupBlocks(lines []classified) []run {
	var runs []run
	var open *run

	flush := func() {
		if open != nil {
			runs = append(runs, *open)
			open = nil
		}
	}

	extend := func(kind runKind, line classified) {
		if open != nil && open.kind != kind {
			flush()
		}

		if open == nil {
			open = &run{kind: kind}
		}

		open.lines = append(open.lines, line)
	}

	for _, line := range lines {
		switch line.kind {
		case lineBlank:
			if open != nil && open.kind == runPlain {
				flush()
			}
		case linePlain:
			extend(runPlain, line)
		default:
			kind, ok := markerRunKind(line.kind)
			if ok {
				extend(kind, line)
			}
		}
	}

	flush()
	return runs
}
