// Package selector picks the most plausible timestamp among classified
// candidates and resolves it to calendar time.
package selector

import (
	"time"

	"github.com/ccollicutt/gclidtime/pkg/classifier"
)

// Result is the selected classification rendered in UTC and a local zone.
type Result struct {
	classifier.Classification

	// UTC is the instant in UTC.
	UTC time.Time

	// Local is the same instant in the configured zone.
	Local time.Time
}

// Zone returns the name of the local zone.
func (r *Result) Zone() string {
	return r.Local.Location().String()
}

// Select returns the best classification, or false if there is none.
//
// Units are tried in classifier.Priority order and the first unit with any
// candidate is used, whatever the values in later units. Within that unit
// the largest value wins; on a tie the earliest candidate is kept.
func Select(classifications []classifier.Classification) (classifier.Classification, bool) {
	for _, unit := range classifier.Priority {
		best, ok := largest(classifications, unit)
		if ok {
			return best, true
		}
	}
	return classifier.Classification{}, false
}

func largest(classifications []classifier.Classification, unit classifier.Unit) (classifier.Classification, bool) {
	var best classifier.Classification
	found := false

	for _, c := range classifications {
		if c.Unit != unit {
			continue
		}
		if !found || c.Candidate.Value.Cmp(best.Candidate.Value) > 0 {
			best = c
			found = true
		}
	}

	return best, found
}

// Resolve converts a classification to calendar time in UTC and in loc.
// A nil loc is treated as UTC.
func Resolve(c classifier.Classification, loc *time.Location) *Result {
	if loc == nil {
		loc = time.UTC
	}

	utc := c.Time()
	return &Result{
		Classification: c,
		UTC:            utc,
		Local:          utc.In(loc),
	}
}
