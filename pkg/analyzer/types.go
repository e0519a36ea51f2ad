// Package analyzer runs the token analysis pipeline: decode, scan,
// classify and select.
package analyzer

import (
	"time"

	"github.com/ccollicutt/gclidtime/pkg/classifier"
	"github.com/ccollicutt/gclidtime/pkg/selector"
	"github.com/ccollicutt/gclidtime/pkg/varint"
)

// Report is the complete output of one analysis.
type Report struct {
	// Token is the trimmed input.
	Token string

	// Length is the character length of Token.
	Length int

	// ByteLength is the number of decoded bytes.
	ByteLength int

	// Candidates lists every scanned varint in byte order, classified or not.
	Candidates []ScannedCandidate

	// Best is the selected timestamp, or nil if no candidate was plausible.
	Best *selector.Result

	// Metadata provides context about the run.
	Metadata Metadata
}

// ScannedCandidate is a scanned varint and the unit it classified as.
// Unit is classifier.UnitNone for implausible values.
type ScannedCandidate struct {
	varint.Candidate
	Unit classifier.Unit
}

// Metadata provides context about an analysis run.
type Metadata struct {
	// RunID identifies the run in logs and output.
	RunID string

	// Zone is the name of the local zone used for rendering.
	Zone string

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time

	// Duration is how long the analysis took.
	Duration time.Duration
}

// Found returns true if a plausible timestamp was selected.
func (r *Report) Found() bool {
	return r.Best != nil
}

// Plausible returns the number of candidates that classified to a unit.
func (r *Report) Plausible() int {
	n := 0
	for _, c := range r.Candidates {
		if c.Unit != classifier.UnitNone {
			n++
		}
	}
	return n
}
