package board

import "fmt"

// Move represents a not-necessarily-legal move together with the
// contextual metadata needed to apply and unapply it.
type Move struct {
	Piece     Piece
	From, To  Coord
	Captured  *Piece    // the piece previously at To, if this is a capture
	Promotion PieceType // zero value (Pawn) means "no promotion"; IsPromotion distinguishes
	promotes  bool
}

// NewMove constructs a non-promoting, non-capturing move.
func NewMove(p Piece, from, to Coord) Move {
	return Move{Piece: p, From: from, To: to}
}

// WithCapture returns m with the given captured piece recorded.
func (m Move) WithCapture(captured Piece) Move {
	m.Captured = &captured
	return m
}

// WithPromotion returns m promoting to the given piece type.
func (m Move) WithPromotion(t PieceType) Move {
	m.Promotion = t
	m.promotes = true
	return m
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != nil
}

// IsPromotion reports whether the move promotes a Pawn.
func (m Move) IsPromotion() bool {
	return m.promotes
}

// Equals reports whether m and o describe the same move (ignoring captured
// piece bookkeeping, which is derived from the board the move is played on).
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.promotes == o.promotes && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.promotes {
		return fmt.Sprintf("%v-%v=%v", m.From, m.To, m.Promotion)
	}
	if m.IsCapture() {
		return fmt.Sprintf("%vx%v", m.From, m.To)
	}
	return fmt.Sprintf("%v-%v", m.From, m.To)
}
