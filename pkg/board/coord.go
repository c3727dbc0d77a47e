// Package board contains hexagonal board representation, piece model and
// move generation for the underchex engine core.
package board

import "fmt"

// Coord is an axial hex coordinate (q, r) on a radius-4 hex board. The
// third cube coordinate s = -q-r is implicit. Equality and hashing use
// (q, r) only, which is exactly what Go's comparable-struct map keys do,
// so Coord is used directly as a map key throughout this package.
type Coord struct {
	Q, R int8
}

// Radius is the hex board radius: the maximum of |q|, |r|, |s| for any
// valid cell. The board has 3*Radius*(Radius+1)+1 = 61 cells.
const Radius = 4

// NumCells is the number of valid cells on the board.
const NumCells = 3*Radius*(Radius+1) + 1

// NewCoord constructs a Coord from (q, r).
func NewCoord(q, r int8) Coord {
	return Coord{Q: q, R: r}
}

// S returns the implicit cube coordinate s = -q-r.
func (c Coord) S() int8 {
	return -c.Q - c.R
}

// IsValid reports whether c lies on the radius-4 hex board.
func (c Coord) IsValid() bool {
	return maxAbs3(c.Q, c.R, c.S()) <= Radius
}

// Add returns the coordinate reached by adding a delta.
func (c Coord) Add(d Coord) Coord {
	return Coord{Q: c.Q + d.Q, R: c.R + d.R}
}

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Q: c.Q - o.Q, R: c.R - o.R}
}

func (c Coord) String() string {
	return fmt.Sprintf("%v,%v", c.Q, c.R)
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}

func maxAbs3(a, b, c int8) int8 {
	m := abs8(a)
	if v := abs8(b); v > m {
		m = v
	}
	if v := abs8(c); v > m {
		m = v
	}
	return m
}

// IsValidCell reports whether (q, r) identifies a cell on the board.
func IsValidCell(q, r int8) bool {
	return Coord{Q: q, R: r}.IsValid()
}

// allCells is computed once and reused by GetAllCells.
var allCells = computeAllCells()

func computeAllCells() []Coord {
	var cells []Coord
	for q := int8(-Radius); q <= Radius; q++ {
		for r := int8(-Radius); r <= Radius; r++ {
			c := Coord{Q: q, R: r}
			if c.IsValid() {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// GetAllCells returns the 61 valid cells of the board. The returned slice
// is a fresh copy; callers may mutate it freely.
func GetAllCells() []Coord {
	out := make([]Coord, len(allCells))
	copy(out, allCells)
	return out
}

// HexDistance returns the hex grid distance between a and b.
func HexDistance(a, b Coord) int {
	d := a.Sub(b)
	return int(maxAbs3(d.Q, d.R, d.S()))
}

// Neighbor returns the cell adjacent to c in direction d, and whether that
// cell is on the board.
func Neighbor(c Coord, d Direction) (Coord, bool) {
	n := c.Add(d.Delta())
	return n, n.IsValid()
}

// Ray returns the ordered sequence of valid cells reached by repeatedly
// stepping in direction d from start, excluding start itself, stopping at
// the first off-board step.
func Ray(start Coord, d Direction) []Coord {
	var out []Coord
	cur := start
	for {
		next, ok := Neighbor(cur, d)
		if !ok {
			break
		}
		out = append(out, next)
		cur = next
	}
	return out
}

// GetDirection returns the unique direction d such that to = from + k*Delta(d)
// for some integer k > 0, and true. If no such direction exists (including
// from == to), it returns the zero Direction and false.
func GetDirection(from, to Coord) (Direction, bool) {
	dq := int(to.Q) - int(from.Q)
	dr := int(to.R) - int(from.R)

	switch {
	case dq == 0 && dr == 0:
		return 0, false
	case dq == 0:
		if dr < 0 {
			return North, true
		}
		return South, true
	case dr == 0:
		if dq < 0 {
			return NorthWest, true
		}
		return SouthEast, true
	case dr == -dq:
		if dq > 0 {
			return NorthEast, true
		}
		return SouthWest, true
	default:
		return 0, false
	}
}

// knightOffsets are the six fixed knight leap deltas.
var knightOffsets = []Coord{
	{Q: 1, R: -2},
	{Q: -1, R: -1},
	{Q: 2, R: -1},
	{Q: 1, R: 1},
	{Q: -1, R: 2},
	{Q: -2, R: 1},
}

// GetKnightTargets returns the knight leap destinations from c that land
// on a valid cell.
func GetKnightTargets(c Coord) []Coord {
	var out []Coord
	for _, d := range knightOffsets {
		t := c.Add(d)
		if t.IsValid() {
			out = append(out, t)
		}
	}
	return out
}

// IsPromotionZone reports whether c is the promotion rank for color.
func IsPromotionZone(c Coord, color Color) bool {
	if color == White {
		return c.R == -Radius
	}
	return c.R == Radius
}
