// Package eval contains static position evaluation for the underchex
// engine core.
package eval

import "fmt"

// Score is a signed evaluation in centipawns, from White's perspective
// unless otherwise noted (EvaluateForColor flips it to the side-to-move's
// perspective, per spec.md §4.D).
type Score int32

const (
	NegInfScore Score = -1 << 30
	InfScore    Score = 1 << 30
	ZeroScore   Score = 0

	// CheckmateValue anchors mate scoring: ±(CheckmateValue - depth), per
	// spec.md §4.F, so that shorter mates score strictly higher than
	// longer ones.
	CheckmateValue Score = 1_000_000
)

func (s Score) String() string {
	return fmt.Sprintf("%v", int32(s))
}

// Max returns the larger of a, b.
func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a, b.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// Negate flips the score's sign, saturating at the infinite bounds so
// negating NegInfScore does not overflow back into range.
func (s Score) Negate() Score {
	switch s {
	case NegInfScore:
		return InfScore
	case InfScore:
		return NegInfScore
	default:
		return -s
	}
}
