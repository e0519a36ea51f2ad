// Package varint tokenizes a byte sequence into protobuf-style varints.
//
// The scan is greedy and never backtracks: every byte belongs to exactly one
// candidate, and a varint that starts inside the span of an earlier
// candidate is never seen.
package varint

import (
	"iter"
	"math/big"
)

const (
	continuationBit = 0x80
	payloadMask     = 0x7f
	payloadBits     = 7
)

// Candidate is a varint decoded from raw[Start:End].
type Candidate struct {
	// Start is the offset of the first byte consumed.
	Start int

	// End is one past the last byte consumed. Always greater than Start.
	End int

	// Value is the decoded magnitude. Never nil.
	Value *big.Int
}

// Len returns the number of bytes the candidate spans.
func (c Candidate) Len() int {
	return c.End - c.Start
}

// Scan returns the candidates of raw in order. The sequence is lazy and can
// be iterated any number of times.
//
// A trailing run of continuation bytes with no terminator is yielded as an
// ordinary candidate ending at len(raw).
func Scan(raw []byte) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		pos := 0
		for pos < len(raw) {
			c := next(raw, pos)
			pos = c.End
			if !yield(c) {
				return
			}
		}
	}
}

// All collects every candidate of raw.
func All(raw []byte) []Candidate {
	var out []Candidate
	for c := range Scan(raw) {
		out = append(out, c)
	}
	return out
}

// next decodes one varint starting at raw[start].
func next(raw []byte, start int) Candidate {
	value := new(big.Int)
	part := new(big.Int)
	shift := uint(0)

	i := start
	for i < len(raw) {
		b := raw[i]
		i++

		part.SetUint64(uint64(b & payloadMask))
		value.Or(value, part.Lsh(part, shift))

		if b&continuationBit == 0 {
			break
		}
		shift += payloadBits
	}

	return Candidate{Start: start, End: i, Value: value}
}
