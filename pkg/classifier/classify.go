package classifier

import (
	"math/big"

	"github.com/ccollicutt/gclidtime/pkg/varint"
)

// band is an inclusive magnitude range associated with current-era dates
// in one unit.
type band struct {
	unit    Unit
	min     *big.Int
	max     *big.Int
	perSecs float64
}

// bands are checked in Priority order.
var bands = []band{
	{unit: UnitMicroseconds, min: pow10(14), max: pow10(16), perSecs: 1_000_000},
	{unit: UnitMilliseconds, min: pow10(11), max: pow10(13), perSecs: 1_000},
	{unit: UnitSeconds, min: pow10(9), max: pow10(10), perSecs: 1},
}

// UnitOf returns the unit whose band contains v, or UnitNone.
func UnitOf(v *big.Int) Unit {
	if b, ok := match(v); ok {
		return b.unit
	}
	return UnitNone
}

// Classify returns the classification of a candidate, or false if its value
// falls outside every band.
func Classify(c varint.Candidate) (Classification, bool) {
	b, ok := match(c.Value)
	if !ok {
		return Classification{}, false
	}

	// Values inside a band are at most 10^16 and fit in an int64.
	secs := float64(c.Value.Int64()) / b.perSecs

	return Classification{
		Candidate: c,
		Unit:      b.unit,
		Seconds:   secs,
	}, true
}

func match(v *big.Int) (band, bool) {
	for _, b := range bands {
		if v.Cmp(b.min) >= 0 && v.Cmp(b.max) <= 0 {
			return b, true
		}
	}
	return band{}, false
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
