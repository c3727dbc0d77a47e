package search

import (
	"container/heap"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
)

// Priority is a move ordering score; higher is explored first.
type Priority int32

// EstimateMoveValue implements the move ordering score of spec.md §4.F:
// captures and promotions rank far above quiet moves, MVV-LVA breaks
// ties among captures, and a small centrality bonus orders the rest.
func EstimateMoveValue(m board.Move) Priority {
	var p Priority
	switch {
	case m.IsCapture():
		victim := eval.NominalValue(m.Captured.Type)
		attacker := eval.NominalValue(m.Piece.Type)
		p = 10_000 + Priority(10*victim-attacker)
	case m.IsPromotion():
		p = 9_000 + Priority(eval.NominalValue(m.Promotion)-eval.NominalValue(board.Pawn))
	}
	p += Priority(centralityOf(m.To))
	return p
}

func centralityOf(c board.Coord) int {
	return (board.Radius - board.HexDistance(c, board.Coord{})) * 5
}

// MoveList orders a set of moves by descending Priority (moves of equal
// priority keep their input order), with an
// optional best move (from the transposition table) forced first
// (spec.md §4.F: "When the TT has a best move for the current node,
// move it to index 0").
type MoveList struct {
	h moveHeap
}

// NewMoveList builds an ordered MoveList. If hasBest is true, best is
// placed ahead of every other move regardless of its own priority.
func NewMoveList(moves []board.Move, best board.Move, hasBest bool) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		priority := EstimateMoveValue(m)
		if hasBest && m.Equals(best) {
			priority = 1 << 30
		}
		h[i] = entry{move: m, priority: priority, seq: i}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the highest-priority remaining move.
func (l *MoveList) Next() (board.Move, bool) {
	if len(l.h) == 0 {
		return board.Move{}, false
	}
	e := heap.Pop(&l.h).(entry)
	return e.move, true
}

// Len returns the number of moves remaining.
func (l *MoveList) Len() int {
	return len(l.h)
}

type entry struct {
	move     board.Move
	priority Priority
	seq      int // input index, breaks priority ties
}

// before orders by descending priority, then by input order.
func (e entry) before(o entry) bool {
	if e.priority != o.priority {
		return e.priority > o.priority
	}
	return e.seq < o.seq
}

type moveHeap []entry

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].before(h[j]) }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// TacticalMoves filters moves down to captures and promotions, for
// quiescence search (spec.md §4.F).
func TacticalMoves(moves []board.Move) []board.Move {
	out := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() || m.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}
