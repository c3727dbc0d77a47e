package board

import "fmt"

// Position is an immutable snapshot of piece placement. It carries no
// side-to-move, clocks or history: those are the host adapter's concern
// (spec.md §1). A Position is safe to share across goroutines since it is
// never mutated after construction; every mutator returns a new value.
type Position struct {
	cells map[Coord]Piece
}

// NewPosition builds a Position from a set of placements (a map, so each
// cell holds at most one piece). It panics if a placement names an
// off-board cell: that is an invariant violation that cannot arise from
// well-formed input (spec.md §7).
func NewPosition(placements map[Coord]Piece) *Position {
	cells := make(map[Coord]Piece, len(placements))
	for c, p := range placements {
		if !c.IsValid() {
			panic(fmt.Sprintf("board: invalid cell in position: %v", c))
		}
		cells[c] = p
	}
	return &Position{cells: cells}
}

// EmptyPosition returns a Position with no pieces.
func EmptyPosition() *Position {
	return &Position{cells: map[Coord]Piece{}}
}

// At returns the piece at c, if any.
func (p *Position) At(c Coord) (Piece, bool) {
	piece, ok := p.cells[c]
	return piece, ok
}

// Occupied reports whether c holds a piece.
func (p *Position) Occupied(c Coord) bool {
	_, ok := p.cells[c]
	return ok
}

// Cells returns every occupied (cell, piece) pair. Callers must not
// mutate the returned map.
func (p *Position) Cells() map[Coord]Piece {
	return p.cells
}

// PieceCount returns the total number of pieces on the board.
func (p *Position) PieceCount() int {
	return len(p.cells)
}

// KingPosition returns the cell holding color's king, if present.
func (p *Position) KingPosition(color Color) (Coord, bool) {
	for c, piece := range p.cells {
		if piece.Type == King && piece.Color == color {
			return c, true
		}
	}
	return Coord{}, false
}

// with returns a new Position with the given cell set to piece.
func (p *Position) with(c Coord, piece Piece) *Position {
	next := make(map[Coord]Piece, len(p.cells)+1)
	for k, v := range p.cells {
		next[k] = v
	}
	next[c] = piece
	return &Position{cells: next}
}

// without returns a new Position with the given cell cleared.
func (p *Position) without(c Coord) *Position {
	next := make(map[Coord]Piece, len(p.cells))
	for k, v := range p.cells {
		if k != c {
			next[k] = v
		}
	}
	return &Position{cells: next}
}

// ApplyMove returns the Position that results from playing m. It does not
// validate legality: callers are expected to only apply pseudo-legal (or
// legal) moves produced by this package. The piece at From is removed;
// the promoted piece (if any) or the moving piece is placed at To,
// overwriting anything that was there.
func (p *Position) ApplyMove(m Move) *Position {
	next := p.without(m.From)

	placed := m.Piece
	if m.IsPromotion() {
		variant := NoVariant
		if m.Promotion == Lance {
			variant = VariantA // Open Question decision, see DESIGN.md.
		}
		placed = NewPiece(m.Promotion, m.Piece.Color, variant)
	}
	return next.with(m.To, placed)
}

// PseudoLegalMoves returns every pseudo-legal move for color in this
// position: moves that obey per-piece movement rules and cannot land on a
// friendly piece, without checking whether the mover's own king ends up
// attacked.
func (p *Position) PseudoLegalMoves(color Color) []Move {
	var moves []Move
	for from, piece := range p.cells {
		if piece.Color != color {
			continue
		}
		moves = p.appendPieceMoves(moves, from, piece)
	}
	return moves
}

func (p *Position) appendPieceMoves(moves []Move, from Coord, piece Piece) []Move {
	switch piece.Type {
	case Pawn:
		return p.appendPawnMoves(moves, from, piece)
	case King:
		return p.appendKingMoves(moves, from, piece)
	case Knight:
		return p.appendKnightMoves(moves, from, piece)
	default:
		return p.appendSliderMoves(moves, from, piece)
	}
}

// pawnForward is the single non-capturing step direction per color.
func pawnForward(color Color) Direction {
	if color == White {
		return North
	}
	return South
}

// pawnCaptureDirections are {forward, forward-left, forward-right} for color.
func pawnCaptureDirections(color Color) []Direction {
	if color == White {
		return []Direction{North, NorthWest, NorthEast}
	}
	return []Direction{South, SouthWest, SouthEast}
}

func (p *Position) appendPawnMoves(moves []Move, from Coord, piece Piece) []Move {
	fwd := pawnForward(piece.Color)
	if to, ok := Neighbor(from, fwd); ok && !p.Occupied(to) {
		moves = appendWithPromotion(moves, piece, from, to, nil)
	}
	for _, d := range pawnCaptureDirections(piece.Color) {
		to, ok := Neighbor(from, d)
		if !ok {
			continue
		}
		target, occ := p.At(to)
		if !occ || target.Color == piece.Color {
			continue
		}
		moves = appendWithPromotion(moves, piece, from, to, &target)
	}
	return moves
}

// appendWithPromotion emits one move, or one move per promotion target if
// to is in the mover's promotion zone.
func appendWithPromotion(moves []Move, piece Piece, from, to Coord, captured *Piece) []Move {
	base := NewMove(piece, from, to)
	if captured != nil {
		base = base.WithCapture(*captured)
	}
	if IsPromotionZone(to, piece.Color) {
		for _, t := range PromotionTargets {
			moves = append(moves, base.WithPromotion(t))
		}
		return moves
	}
	return append(moves, base)
}

func (p *Position) appendKingMoves(moves []Move, from Coord, piece Piece) []Move {
	for _, d := range AllDirections() {
		to, ok := Neighbor(from, d)
		if !ok {
			continue
		}
		moves = appendStepOrCapture(moves, piece, from, to, p)
	}
	return moves
}

func (p *Position) appendKnightMoves(moves []Move, from Coord, piece Piece) []Move {
	for _, to := range GetKnightTargets(from) {
		moves = appendStepOrCapture(moves, piece, from, to, p)
	}
	return moves
}

// appendStepOrCapture emits a move to `to` if it is empty or holds an
// opponent piece (never a friendly piece).
func appendStepOrCapture(moves []Move, piece Piece, from, to Coord, p *Position) []Move {
	target, occ := p.At(to)
	if !occ {
		return append(moves, NewMove(piece, from, to))
	}
	if target.Color == piece.Color {
		return moves
	}
	return append(moves, NewMove(piece, from, to).WithCapture(target))
}

func (p *Position) appendSliderMoves(moves []Move, from Coord, piece Piece) []Move {
	for _, d := range piece.Directions() {
		cur := from
		for {
			to, ok := Neighbor(cur, d)
			if !ok {
				break
			}
			target, occ := p.At(to)
			if !occ {
				moves = append(moves, NewMove(piece, from, to))
				cur = to
				continue
			}
			if target.Color != piece.Color {
				moves = append(moves, NewMove(piece, from, to).WithCapture(target))
			}
			break // blocked, friendly or enemy: ray stops here either way
		}
	}
	return moves
}

// IsAttacked reports whether cell is attacked by any piece of color by.
// This must match move generation exactly (spec.md §4.C): a square is
// attacked iff some pseudo-legal by-move could capture a piece sitting
// there.
func (p *Position) IsAttacked(cell Coord, by Color) bool {
	for _, d := range pawnCaptureDirections(by) {
		// A by-colored pawn attacks cell iff cell is reached by stepping
		// forward-capture from the pawn's square, i.e. the pawn sits one
		// step behind cell along the *reverse* of that capture direction.
		from, ok := Neighbor(cell, d.Opposite())
		if !ok {
			continue
		}
		if piece, occ := p.At(from); occ && piece.Color == by && piece.Type == Pawn {
			return true
		}
	}
	for _, d := range AllDirections() {
		from, ok := Neighbor(cell, d)
		if !ok {
			continue
		}
		if piece, occ := p.At(from); occ && piece.Color == by && piece.Type == King {
			return true
		}
	}
	for _, from := range GetKnightTargets(cell) {
		if piece, occ := p.At(from); occ && piece.Color == by && piece.Type == Knight {
			return true
		}
	}
	for _, d := range AllDirections() {
		cur := cell
		for {
			next, ok := Neighbor(cur, d)
			if !ok {
				break
			}
			piece, occ := p.At(next)
			if !occ {
				cur = next
				continue
			}
			if piece.Color == by && piece.IsSlider() && containsDirection(piece.Directions(), d.Opposite()) {
				return true
			}
			break // first piece hit along the ray blocks it either way
		}
	}
	return false
}

func containsDirection(set []Direction, d Direction) bool {
	for _, x := range set {
		if x == d {
			return true
		}
	}
	return false
}

// IsInCheck reports whether color's king exists and is attacked. A color
// with no king on the board is never in check.
func (p *Position) IsInCheck(color Color) bool {
	king, ok := p.KingPosition(color)
	if !ok {
		return false
	}
	return p.IsAttacked(king, color.Opponent())
}

// HasKing reports whether color has a king on the board.
func (p *Position) HasKing(color Color) bool {
	_, ok := p.KingPosition(color)
	return ok
}

// LegalMoves returns the pseudo-legal moves for color that do not leave
// color's own king in check after being applied.
func (p *Position) LegalMoves(color Color) []Move {
	pseudo := p.PseudoLegalMoves(color)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := p.ApplyMove(m)
		if !next.IsInCheck(color) {
			legal = append(legal, m)
		}
	}
	return legal
}

// ValidateMove checks whether moving from -> to is legal for turn, and
// returns the legality, whether it is a capture, and (if illegal) the
// stable reason token from spec.md §6/§7.
func (p *Position) ValidateMove(from, to Coord, turn Color) (bool, bool, ValidationReason) {
	piece, ok := p.At(from)
	if !ok {
		return false, false, NoPieceAtSource
	}
	if piece.Color != turn {
		return false, false, NotYourPiece
	}
	if !to.IsValid() {
		return false, false, InvalidDestination
	}

	for _, m := range p.LegalMoves(turn) {
		if m.From == from && m.To == to {
			return true, m.IsCapture(), NoReason
		}
	}

	// Distinguish "moves into check" from "no such pseudo-legal move" for
	// a better error message, per spec.md §6's reason taxonomy.
	for _, m := range p.PseudoLegalMoves(turn) {
		if m.From == from && m.To == to {
			return false, false, MovesIntoCheck
		}
	}
	return false, false, IllegalMove
}
