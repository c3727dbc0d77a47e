package eval

import (
	"github.com/boweiliu/underchex/pkg/board"
)

// NominalValue is a piece's material value in centipawns (spec.md §4.D).
func NominalValue(t board.PieceType) Score {
	switch t {
	case board.Pawn:
		return 100
	case board.Knight:
		return 300
	case board.Lance:
		return 450
	case board.Chariot:
		return 450
	case board.Queen:
		return 900
	case board.King:
		return 0
	default:
		return 0
	}
}

var origin = board.Coord{Q: 0, R: 0}

// centralityBonus rewards pieces closer to the board's center.
func centralityBonus(c board.Coord) Score {
	return Score(board.Radius-board.HexDistance(c, origin)) * 5
}

// pawnStartRank is the rank a color's pawns advance from, used as the
// fixed reference for the advancement bonus below.
func pawnStartRank(color board.Color) int {
	if color == board.White {
		return 2
	}
	return -2
}

// pawnAdvancementBonus rewards progress from the starting rank towards
// the promotion rank: p = |r - start| / 8, bonus = floor(p^2 * 50).
func pawnAdvancementBonus(c board.Coord, color board.Color) Score {
	start := pawnStartRank(color)
	delta := int(c.R) - start
	if delta < 0 {
		delta = -delta
	}
	p := float64(delta) / 8
	return Score(p * p * 50)
}

// Mobility counts color's legal moves.
func Mobility(p *board.Position, color board.Color) int {
	return len(p.LegalMoves(color))
}

// Evaluate returns the static position score in centipawns from White's
// perspective (spec.md §4.D): material + positional (centrality, pawn
// advancement) + mobility + in-check penalty.
func Evaluate(p *board.Position) Score {
	var white, black Score
	for c, piece := range p.Cells() {
		bonus := NominalValue(piece.Type) + centralityBonus(c)
		if piece.Type == board.Pawn {
			bonus += pawnAdvancementBonus(c, piece.Color)
		}
		if piece.Color == board.White {
			white += bonus
		} else {
			black += bonus
		}
	}

	score := white - black
	score += Score(Mobility(p, board.White)*2 - Mobility(p, board.Black)*2)

	if p.HasKing(board.White) && p.IsInCheck(board.White) {
		score -= 50
	}
	if p.HasKing(board.Black) && p.IsInCheck(board.Black) {
		score += 50
	}
	return score
}

// EvaluateForColor returns Evaluate negated for Black, so the result is
// always from color's own perspective.
func EvaluateForColor(p *board.Position, color board.Color) Score {
	s := Evaluate(p)
	if color == board.Black {
		return -s
	}
	return s
}
