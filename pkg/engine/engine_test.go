package engine_test

import (
	"context"
	"testing"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/engine"
	"github.com/boweiliu/underchex/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameIsOngoingWithNoOneInCheck(t *testing.T) {
	state := engine.NewGame()
	assert.Equal(t, board.Ongoing, state.Status.Kind)
	assert.Equal(t, board.White, state.Turn)
	assert.False(t, engine.IsInCheck(state))
	assert.Len(t, engine.GetLegalMoves(state), len(state.Position.LegalMoves(board.White)))
}

func TestMakeMoveRejectsIllegalSource(t *testing.T) {
	state := engine.NewGame()
	_, ok, reason := engine.MakeMove(state, board.Coord{Q: 0, R: 0}, board.Coord{Q: 0, R: -1})
	assert.False(t, ok)
	assert.Equal(t, board.NoPieceAtSource, reason)
}

// S3: a king move that walks into an enemy queen's line is rejected with
// movesIntoCheck, and state is left untouched.
func TestMakeMoveRejectsMovingIntoCheck(t *testing.T) {
	pos := board.NewPosition(map[board.Coord]board.Piece{
		{Q: 0, R: 0}:  board.NewSimplePiece(board.King, board.White),
		{Q: 1, R: -4}: board.NewSimplePiece(board.Queen, board.Black),
	})
	state := &engine.GameState{Position: pos, Turn: board.White, Status: board.GameStatus{Kind: board.Ongoing}}

	next, ok, reason := engine.MakeMove(state, board.Coord{Q: 0, R: 0}, board.Coord{Q: 1, R: 0})
	assert.False(t, ok)
	assert.Equal(t, board.MovesIntoCheck, reason)
	assert.Nil(t, next)
}

func TestMakeMoveAppliesLegalMoveAndFlipsTurn(t *testing.T) {
	state := engine.NewGame()
	next, ok, reason := engine.MakeMove(state, board.Coord{Q: 0, R: 2}, board.Coord{Q: 0, R: 1})
	require.True(t, ok)
	assert.Equal(t, board.NoReason, reason)
	assert.Equal(t, board.Black, next.Turn)
	assert.Equal(t, board.Ongoing, next.Status.Kind)

	_, stillThere := next.Position.At(board.Coord{Q: 0, R: 2})
	assert.False(t, stillThere)
	piece, moved := next.Position.At(board.Coord{Q: 0, R: 1})
	require.True(t, moved)
	assert.Equal(t, board.Pawn, piece.Type)
}

func TestMakeMoveDefaultsPromotionToQueen(t *testing.T) {
	pos := board.NewPosition(map[board.Coord]board.Piece{
		{Q: 0, R: 0}:  board.NewSimplePiece(board.King, board.White),
		{Q: 0, R: -3}: board.NewSimplePiece(board.Pawn, board.White),
		{Q: 4, R: 0}:  board.NewSimplePiece(board.King, board.Black),
	})
	state := &engine.GameState{Position: pos, Turn: board.White, Status: board.GameStatus{Kind: board.Ongoing}}

	next, ok, _ := engine.MakeMove(state, board.Coord{Q: 0, R: -3}, board.Coord{Q: 0, R: -4})
	require.True(t, ok)
	piece, present := next.Position.At(board.Coord{Q: 0, R: -4})
	require.True(t, present)
	assert.Equal(t, board.Queen, piece.Type)
}

func TestMakeMoveRejectsOnceGameIsOver(t *testing.T) {
	wk := board.NewSimplePiece(board.King, board.White)
	wq := board.NewSimplePiece(board.Queen, board.White)
	bk := board.NewSimplePiece(board.King, board.Black)
	pos := board.NewPosition(map[board.Coord]board.Piece{
		{Q: 2, R: -3}: wk,
		{Q: 4, R: -3}: wq,
		{Q: 4, R: -4}: bk,
	})
	state := &engine.GameState{Position: pos, Turn: board.White, Status: board.GameStatus{Kind: board.Checkmate, Winner: board.White}}

	_, ok, reason := engine.MakeMove(state, board.Coord{Q: 4, R: -3}, board.Coord{Q: 4, R: -4})
	assert.False(t, ok)
	assert.Equal(t, board.IllegalMove, reason)
}

// S1: starting position, White to move, Easy difficulty (depth 2, no
// quiescence) returns some legal move.
func TestGetAIMoveFromStartingPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("GetAIMove lazily generates the full tablebase registry on first use")
	}
	state := engine.NewGame()
	result := engine.GetAIMove(context.Background(), state.Position, state.Turn, search.Easy)
	require.True(t, result.HasMove)
	assert.False(t, result.FromTB)

	var found bool
	for _, m := range state.Position.LegalMoves(board.White) {
		if m.Equals(result.Move) {
			found = true
			break
		}
	}
	assert.True(t, found)
}

// S8: a KQvK position with White to move probes to a tablebase Win
// before any search runs.
func TestGetAIMovePrefersTablebaseHit(t *testing.T) {
	if testing.Short() {
		t.Skip("GetAIMove lazily generates the full tablebase registry on first use")
	}
	pos := board.NewPosition(map[board.Coord]board.Piece{
		{Q: 0, R: 0}:  board.NewSimplePiece(board.King, board.White),
		{Q: 2, R: 0}:  board.NewSimplePiece(board.Queen, board.White),
		{Q: 0, R: -4}: board.NewSimplePiece(board.King, board.Black),
	})
	result := engine.GetAIMove(context.Background(), pos, board.White, search.Hard)
	require.True(t, result.HasMove)
	assert.True(t, result.FromTB)
}

func TestClearAICacheEmptiesGlobalTable(t *testing.T) {
	tt := search.GlobalTranspositionTable()
	tt.Store(board.ZobristHash(123), search.Entry{Bound: search.ExactBound, Depth: 1})
	require.Greater(t, tt.Used(), 0)

	engine.ClearAICache()
	assert.Equal(t, 0, tt.Used())
}
