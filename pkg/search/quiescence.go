package search

import (
	"context"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescenceDepthCap bounds the tactical-only extension (spec.md §4.F:
// "If q_depth >= 8, return stand_pat").
const quiescenceDepthCap = 8

// quiesce implements the leaf quiescence extension: a stand-pat cutoff
// followed by a capture/promotion-only search, with no transposition
// table interaction (spec.md §4.F).
func (r *run) quiesce(ctx context.Context, pos *board.Position, color board.Color, alpha, beta eval.Score, maximizing bool, qDepth int) eval.Score {
	if contextx.IsCancelled(ctx) {
		return eval.ZeroScore
	}
	r.stats.Nodes++

	standPat := eval.Evaluate(pos)
	if maximizing {
		if standPat >= beta {
			return beta
		}
		alpha = eval.Max(alpha, standPat)
	} else {
		if standPat <= alpha {
			return alpha
		}
		beta = eval.Min(beta, standPat)
	}

	if qDepth >= quiescenceDepthCap {
		return standPat
	}

	tactical := TacticalMoves(pos.LegalMoves(color))
	if len(tactical) == 0 {
		return standPat
	}

	moves := NewMoveList(tactical, board.Move{}, false)
	for {
		m, ok := moves.Next()
		if !ok {
			break
		}
		next := pos.ApplyMove(m)
		score := r.quiesce(ctx, next, color.Opponent(), alpha, beta, !maximizing, qDepth+1)

		if maximizing {
			alpha = eval.Max(alpha, score)
		} else {
			beta = eval.Min(beta, score)
		}
		if alpha >= beta {
			break
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}
