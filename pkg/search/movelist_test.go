package search_test

import (
	"testing"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/search"
	"github.com/stretchr/testify/assert"
)

func at(q, r int8) board.Coord {
	return board.Coord{Q: q, R: r}
}

// Law 8: move ordering is stable non-increasing by estimate_move_value.
func TestMoveListOrdersNonIncreasing(t *testing.T) {
	quiet := board.NewMove(board.NewSimplePiece(board.Knight, board.White), at(0, 0), at(1, -2))
	pawnCapture := board.NewMove(board.NewSimplePiece(board.Pawn, board.White), at(0, 2), at(1, 1)).
		WithCapture(board.NewSimplePiece(board.Pawn, board.Black))
	queenCapturesQueen := board.NewMove(board.NewSimplePiece(board.Queen, board.White), at(0, 0), at(0, -1)).
		WithCapture(board.NewSimplePiece(board.Queen, board.Black))
	promotion := board.NewMove(board.NewSimplePiece(board.Pawn, board.White), at(0, -3), at(0, -4)).
		WithPromotion(board.Queen)

	moves := []board.Move{quiet, pawnCapture, queenCapturesQueen, promotion}
	list := search.NewMoveList(moves, board.Move{}, false)

	var prev search.Priority
	var ordered []board.Move
	first := true
	for {
		m, ok := list.Next()
		if !ok {
			break
		}
		p := search.EstimateMoveValue(m)
		if !first {
			assert.GreaterOrEqual(t, prev, p, "move list must be non-increasing")
		}
		prev, first = p, false
		ordered = append(ordered, m)
	}
	assert.Len(t, ordered, 4)
	assert.True(t, ordered[0].IsCapture() || ordered[0].IsPromotion(), "a tactical move should lead a quiet one")
}

func TestMoveListForcesBestMoveFirst(t *testing.T) {
	a := board.NewMove(board.NewSimplePiece(board.Knight, board.White), at(0, 0), at(1, -2))
	best := board.NewMove(board.NewSimplePiece(board.Knight, board.White), at(0, 0), at(-1, -1))

	list := search.NewMoveList([]board.Move{a, best}, best, true)
	m, ok := list.Next()
	assert.True(t, ok)
	assert.True(t, m.Equals(best))
}

func TestTacticalMovesFiltersCapturesAndPromotions(t *testing.T) {
	quiet := board.NewMove(board.NewSimplePiece(board.Knight, board.White), at(0, 0), at(1, -2))
	capture := board.NewMove(board.NewSimplePiece(board.Pawn, board.White), at(0, 2), at(1, 1)).
		WithCapture(board.NewSimplePiece(board.Pawn, board.Black))
	promotion := board.NewMove(board.NewSimplePiece(board.Pawn, board.White), at(0, -3), at(0, -4)).
		WithPromotion(board.Knight)

	tactical := search.TacticalMoves([]board.Move{quiet, capture, promotion})
	assert.Len(t, tactical, 2)
}
