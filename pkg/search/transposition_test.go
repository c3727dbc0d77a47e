package search_test

import (
	"testing"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
	"github.com/boweiliu/underchex/pkg/search"
	"github.com/stretchr/testify/assert"
)

// Law 9: TT store-then-probe returns the stored score, depth and bound.
func TestTranspositionStoreThenProbe(t *testing.T) {
	tt := search.NewTranspositionTable(16)
	hash := board.ZobristHash(42)

	_, ok := tt.Probe(hash)
	assert.False(t, ok)

	move := board.NewMove(board.NewSimplePiece(board.Queen, board.White), board.Coord{Q: 0, R: 0}, board.Coord{Q: 1, R: 0})
	tt.Store(hash, search.Entry{Bound: search.ExactBound, Depth: 3, Score: eval.Score(150), BestMove: move, HasMove: true})

	e, ok := tt.Probe(hash)
	assert.True(t, ok)
	assert.Equal(t, search.ExactBound, e.Bound)
	assert.Equal(t, 3, e.Depth)
	assert.Equal(t, eval.Score(150), e.Score)
	assert.True(t, move.Equals(e.BestMove))
}

func TestTranspositionKeepsDeeperEntry(t *testing.T) {
	tt := search.NewTranspositionTable(16)
	hash := board.ZobristHash(7)

	tt.Store(hash, search.Entry{Bound: search.ExactBound, Depth: 4, Score: eval.Score(10)})
	tt.Store(hash, search.Entry{Bound: search.ExactBound, Depth: 2, Score: eval.Score(999)})

	e, ok := tt.Probe(hash)
	assert.True(t, ok)
	assert.Equal(t, 4, e.Depth, "shallower write must not overwrite a deeper entry")
	assert.Equal(t, eval.Score(10), e.Score)

	tt.Store(hash, search.Entry{Bound: search.ExactBound, Depth: 6, Score: eval.Score(20)})
	e, _ = tt.Probe(hash)
	assert.Equal(t, 6, e.Depth, "deeper write must overwrite")
}

func TestTranspositionEvictsHalfOnOverflow(t *testing.T) {
	tt := search.NewTranspositionTable(8)
	for i := 0; i < 8; i++ {
		tt.Store(board.ZobristHash(i), search.Entry{Bound: search.ExactBound, Depth: 1, Score: eval.Score(i)})
	}
	assert.Equal(t, 8, tt.Used())

	tt.Store(board.ZobristHash(1000), search.Entry{Bound: search.ExactBound, Depth: 1, Score: eval.Score(1000)})
	assert.Less(t, tt.Used(), 9, "overflow must trigger eviction before the new entry is inserted")
}

func TestTranspositionClear(t *testing.T) {
	tt := search.NewTranspositionTable(16)
	tt.Store(board.ZobristHash(1), search.Entry{Bound: search.ExactBound, Depth: 1})
	tt.Clear()
	assert.Equal(t, 0, tt.Used())
}
