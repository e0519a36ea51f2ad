// Package output provides formatting for analysis outcomes.
package output

import (
	"errors"
	"time"

	"github.com/ccollicutt/gclidtime/pkg/analyzer"
	"github.com/ccollicutt/gclidtime/pkg/gclid"
)

// Outcome is everything a single run produced. Exactly one of Err and
// Report is set.
type Outcome struct {
	// Length is the character length of the trimmed token.
	Length int

	// Err is gclid.ErrEmptyInput or a *gclid.DecodeError.
	Err error

	// Report is the analysis result when decoding succeeded.
	Report *analyzer.Report
}

// NewOutcome builds an outcome from the analyzer's return values.
func NewOutcome(token string, report *analyzer.Report, err error) *Outcome {
	o := &Outcome{Report: report, Err: err}
	if report != nil {
		o.Length = report.Length
	} else {
		o.Length = gclid.Length(token)
	}
	return o
}

// Empty returns true if no token was provided.
func (o *Outcome) Empty() bool {
	return errors.Is(o.Err, gclid.ErrEmptyInput)
}

// DecodeError returns the decoding failure, if any.
func (o *Outcome) DecodeError() *gclid.DecodeError {
	var decErr *gclid.DecodeError
	if errors.As(o.Err, &decErr) {
		return decErr
	}
	return nil
}

// isoLayout renders whole seconds; isoMicroLayout adds microseconds.
const (
	isoLayout      = "2006-01-02T15:04:05-07:00"
	isoMicroLayout = "2006-01-02T15:04:05.000000-07:00"
)

// ISO formats t as ISO-8601 with a numeric offset. Fractional seconds
// appear only when non-zero.
func ISO(t time.Time) string {
	if t.Nanosecond() == 0 {
		return t.Format(isoLayout)
	}
	return t.Format(isoMicroLayout)
}
