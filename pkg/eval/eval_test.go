package eval_test

import (
	"testing"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
	"github.com/stretchr/testify/assert"
)

// Law 7: starting-position static evaluation satisfies |score| < 100.
func TestStartingPositionIsBalanced(t *testing.T) {
	pos := board.StandardStartingPosition()
	score := eval.Evaluate(pos)
	assert.Less(t, score, eval.Score(100))
	assert.Greater(t, score, eval.Score(-100))
}

func TestEvaluateForColorNegatesForBlack(t *testing.T) {
	pos := board.StandardStartingPosition()
	white := eval.EvaluateForColor(pos, board.White)
	black := eval.EvaluateForColor(pos, board.Black)
	assert.Equal(t, white, -black)
}

func TestMaterialAdvantageIsDetected(t *testing.T) {
	wk := board.NewSimplePiece(board.King, board.White)
	bk := board.NewSimplePiece(board.King, board.Black)
	wq := board.NewSimplePiece(board.Queen, board.White)
	pos := board.NewPosition(map[board.Coord]board.Piece{
		{Q: 0, R: 0}:  wk,
		{Q: 0, R: -4}: bk,
		{Q: 2, R: 0}:  wq,
	})
	assert.Greater(t, eval.Evaluate(pos), eval.Score(500))
}

// Evaluate is symmetric under point reflection + color swap: reflecting
// every piece through the origin and flipping its color should exactly
// negate the score, including the in-check penalty term (a checked White
// king becomes a checked Black king in the reflection).
func TestEvaluateIsSymmetricUnderReflection(t *testing.T) {
	wk := board.NewSimplePiece(board.King, board.White)
	bk := board.NewSimplePiece(board.King, board.Black)
	bq := board.NewSimplePiece(board.Queen, board.Black)
	wp := board.NewSimplePiece(board.Pawn, board.White)

	original := board.NewPosition(map[board.Coord]board.Piece{
		{Q: 0, R: 0}:  wk,
		{Q: 4, R: -4}: bk,
		{Q: 0, R: -3}: bq, // checks the White king
		{Q: 1, R: 1}:  wp,
	})

	assert.Equal(t, eval.Evaluate(original), -eval.Evaluate(board.ReflectPosition(original)))
}
