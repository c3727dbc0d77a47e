package search_test

import (
	"context"
	"testing"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
	"github.com/boweiliu/underchex/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: starting position, White to move, depth 2, no quiescence: returns
// some legal move and searches at least one node.
func TestFindBestMoveFromStartingPosition(t *testing.T) {
	tt := search.NewTranspositionTable(1024)
	pos := board.StandardStartingPosition()

	move, ok, _, stats := search.FindBestMove(context.Background(), tt, pos, board.White, 2, false)
	require.True(t, ok)
	assert.Greater(t, stats.Nodes, uint64(0))

	legal := pos.LegalMoves(board.White)
	var found bool
	for _, m := range legal {
		if m.Equals(move) {
			found = true
			break
		}
	}
	assert.True(t, found, "returned move must be legal")
}

// A mate-in-one is found and scores near the checkmate value: White queen
// mates a cornered Black king.
func TestFindBestMoveFindsMateInOne(t *testing.T) {
	tt := search.NewTranspositionTable(1024)
	wk := board.NewSimplePiece(board.King, board.White)
	wq := board.NewSimplePiece(board.Queen, board.White)
	bk := board.NewSimplePiece(board.King, board.Black)

	// Black king in the corner (4,-4); the White king covers (3,-3) and
	// (3,-4). The queen mates from (3,-3), where the White king guards it.
	pos := board.NewPosition(map[board.Coord]board.Piece{
		{Q: 2, R: -3}: wk,
		{Q: 4, R: -3}: wq,
		{Q: 4, R: -4}: bk,
	})

	move, ok, score, _ := search.FindBestMove(context.Background(), tt, pos, board.White, 2, false)
	require.True(t, ok)

	next := pos.ApplyMove(move)
	assert.Empty(t, next.LegalMoves(board.Black), "the chosen move must leave Black no reply")
	assert.True(t, next.IsInCheck(board.Black), "the chosen move must give check")
	assert.Greater(t, score, eval.Score(eval.CheckmateValue-100))
}

func TestAlphaBetaSearchReturnsScoreAndPV(t *testing.T) {
	ab := search.AlphaBeta{TT: search.NewTranspositionTable(1024), Quiescence: true}
	pos := board.StandardStartingPosition()

	score, pv, stats := ab.Search(context.Background(), pos, board.White, 2)
	assert.NotZero(t, stats.Nodes)
	assert.NotEmpty(t, pv)
	assert.Less(t, score, eval.Score(1000))
	assert.Greater(t, score, eval.Score(-1000))
}

func TestIterativeDeependStopsAtDepthLimit(t *testing.T) {
	tt := search.NewTranspositionTable(1024)
	pos := board.StandardStartingPosition()

	pv := search.IterativeDeepen(context.Background(), tt, pos, board.White, 3, true, 5_000_000_000)
	assert.True(t, pv.HasMove)
	assert.Equal(t, 3, pv.Depth)
}
