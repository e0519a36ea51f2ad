// Package classifier decides whether an integer looks like an epoch
// timestamp, and in which unit.
package classifier

import (
	"time"

	"github.com/ccollicutt/gclidtime/pkg/varint"
)

// Unit is the inferred resolution of an epoch timestamp.
type Unit string

const (
	UnitNone         Unit = ""
	UnitMicroseconds Unit = "microseconds"
	UnitMilliseconds Unit = "milliseconds"
	UnitSeconds      Unit = "seconds"
)

// Priority lists the units from most to least preferred.
// Classification and selection both follow this order.
var Priority = []Unit{UnitMicroseconds, UnitMilliseconds, UnitSeconds}

// String returns the unit name, or "none".
func (u Unit) String() string {
	if u == UnitNone {
		return "none"
	}
	return string(u)
}

// Classification is a candidate judged plausible as a timestamp.
type Classification struct {
	// Candidate is the scanned varint.
	Candidate varint.Candidate

	// Unit is the inferred resolution. Never UnitNone.
	Unit Unit

	// Seconds is the value converted to seconds since the Unix epoch.
	Seconds float64
}

// Time returns the instant the classification represents, in UTC.
// The conversion is done on the integer value so no precision is lost.
func (c Classification) Time() time.Time {
	v := c.Candidate.Value.Int64()
	switch c.Unit {
	case UnitMicroseconds:
		return time.UnixMicro(v).UTC()
	case UnitMilliseconds:
		return time.UnixMilli(v).UTC()
	default:
		return time.Unix(v, 0).UTC()
	}
}
