package search

import (
	"context"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Stats accumulates per-search counters across a single alpha-beta call
// tree, including any quiescence extension beneath it.
type Stats struct {
	Nodes uint64
}

// AlphaBeta implements alpha-beta pruning with explicit
// maximizing/minimizing dispatch (spec.md §4.F). Each node returns the
// best score it found, which may lie outside its (alpha, beta) window
// (fail-soft); only quiescence clamps its result to the window. Unlike a negamax
// formulation, bounds are not flipped-and-negated across the recursion,
// so the Upper/Lower classification stored in the transposition table is
// always relative to the original caller's alpha/beta, matching the
// cross-implementation bound tests in spec.md §8.
type AlphaBeta struct {
	TT         TranspositionTable
	Quiescence bool
}

// Search runs alpha-beta to depth for color to move in pos, returning the
// best score, the principal variation found, and node-count statistics.
func (ab AlphaBeta) Search(ctx context.Context, pos *board.Position, color board.Color, depth int) (eval.Score, []board.Move, Stats) {
	r := &run{tt: ab.TT, quiescence: ab.Quiescence}
	score, pv := r.alphabeta(ctx, pos, color, depth, eval.NegInfScore, eval.InfScore, color == board.White)
	return score, pv, r.stats
}

type run struct {
	tt         TranspositionTable
	quiescence bool
	stats      Stats
}

// alphabeta returns the score of pos from White's perspective (as
// Evaluate always does), the principal variation for the side to move,
// and updates r.stats. maximizing selects whether the side to move at
// this node is maximizing or minimizing that White-relative score.
func (r *run) alphabeta(ctx context.Context, pos *board.Position, color board.Color, depth int, alpha, beta eval.Score, maximizing bool) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return eval.ZeroScore, nil
	}

	hash := board.DefaultZobristTable().Hash(pos, color)
	originalAlpha, originalBeta := alpha, beta
	var ttMove board.Move
	var hasTTMove bool
	if e, ok := r.tt.Probe(hash); ok {
		ttMove, hasTTMove = e.BestMove, e.HasMove
		if e.Depth >= depth {
			switch e.Bound {
			case ExactBound:
				return e.Score, nil
			case LowerBound:
				alpha = eval.Max(alpha, e.Score)
			case UpperBound:
				beta = eval.Min(beta, e.Score)
			}
			if alpha >= beta {
				return e.Score, nil
			}
		}
	}

	legal := pos.LegalMoves(color)

	if len(legal) == 0 {
		r.stats.Nodes++
		if pos.IsInCheck(color) {
			if maximizing {
				return -(eval.CheckmateValue - eval.Score(depth)), nil
			}
			return eval.CheckmateValue - eval.Score(depth), nil
		}
		return eval.ZeroScore, nil
	}

	if depth == 0 {
		r.stats.Nodes++
		var score eval.Score
		if r.quiescence {
			score = r.quiesce(ctx, pos, color, alpha, beta, maximizing, 0)
		} else {
			score = eval.Evaluate(pos)
		}
		r.tt.Store(hash, Entry{Bound: ExactBound, Depth: 0, Score: score})
		return score, nil
	}

	r.stats.Nodes++

	moves := NewMoveList(legal, ttMove, hasTTMove)
	best := eval.NegInfScore
	if !maximizing {
		best = eval.InfScore
	}
	var bestMove board.Move
	var pv []board.Move

	for {
		m, ok := moves.Next()
		if !ok {
			break
		}
		next := pos.ApplyMove(m)
		score, childPV := r.alphabeta(ctx, next, color.Opponent(), depth-1, alpha, beta, !maximizing)

		if maximizing {
			if score > best {
				best, bestMove = score, m
				pv = append([]board.Move{m}, childPV...)
			}
			alpha = eval.Max(alpha, best)
		} else {
			if score < best {
				best, bestMove = score, m
				pv = append([]board.Move{m}, childPV...)
			}
			beta = eval.Min(beta, best)
		}
		if alpha >= beta {
			break
		}
	}

	bound := ExactBound
	switch {
	case best <= originalAlpha:
		bound = UpperBound
	case best >= originalBeta:
		bound = LowerBound
	}
	r.tt.Store(hash, Entry{Bound: bound, Depth: depth, Score: best, BestMove: bestMove, HasMove: true})
	return best, pv
}
