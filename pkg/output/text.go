package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/gclidtime/pkg/analyzer"
	"github.com/ccollicutt/gclidtime/pkg/classifier"
)

// Messages for runs that end without a timestamp.
const (
	MsgEmpty       = "No GCLID provided."
	MsgNoCandidate = "No plausible timestamp-like varint found in this GCLID."
)

// TextFormatter formats outcomes as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the outcome as text.
func (f *TextFormatter) Format(ctx context.Context, outcome *Outcome, w io.Writer) error {
	if outcome.Empty() {
		fmt.Fprintln(w, MsgEmpty)
		return nil
	}

	fmt.Fprintf(w, "Character length: %d\n", outcome.Length)

	if decErr := outcome.DecodeError(); decErr != nil {
		fmt.Fprintf(w, "Decode error: %v\n", decErr.Err)
		return nil
	}
	if outcome.Err != nil {
		return outcome.Err
	}

	report := outcome.Report
	if f.opts.All {
		f.formatCandidates(report, w)
	}

	if !report.Found() {
		fmt.Fprintln(w, MsgNoCandidate)
	} else {
		f.formatBest(report, w)
	}

	if f.opts.Verbose {
		f.formatMetadata(report, w)
	}

	return nil
}

func (f *TextFormatter) formatBest(report *analyzer.Report, w io.Writer) {
	best := report.Best
	fmt.Fprintf(w, "Timestamp (raw integer): %s\n", best.Candidate.Value)
	fmt.Fprintf(w, "Assumed units: %s\n", best.Unit)
	fmt.Fprintf(w, "UTC datetime: %s\n", ISO(best.UTC))
	fmt.Fprintf(w, "Local (%s): %s\n", best.Zone(), ISO(best.Local))

	if f.opts.Verbose {
		fmt.Fprintf(w, "Byte span: [%d, %d)\n", best.Candidate.Start, best.Candidate.End)
	}
}

func (f *TextFormatter) formatCandidates(report *analyzer.Report, w io.Writer) {
	fmt.Fprintf(w, "Decoded bytes: %d\n", report.ByteLength)
	fmt.Fprintf(w, "Varints scanned: %d (%d plausible)\n", len(report.Candidates), report.Plausible())

	for _, c := range report.Candidates {
		marker := " "
		if report.Found() && c.Start == report.Best.Candidate.Start {
			marker = "*"
		}
		unit := "-"
		if c.Unit != classifier.UnitNone {
			unit = c.Unit.String()
		}
		fmt.Fprintf(w, "%s [%3d, %3d) %-12s %s\n", marker, c.Start, c.End, unit, c.Value)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatMetadata(report *analyzer.Report, w io.Writer) {
	fmt.Fprintf(w, "Run ID: %s\n", report.Metadata.RunID)
	fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration)
}
