package search

import (
	"context"
	"time"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
	"github.com/seekerror/logw"
)

// IterativeDeepen runs depth=1 unconditionally, then depth 2..maxDepth,
// checking the wall clock against budget before starting each further
// iteration (spec.md §4.F). If the budget is exhausted, the last
// completed iteration's PV is returned. There is no background thread:
// the caller's goroutine blocks for the duration of the call, matching
// the single-threaded cooperative scheduling model of spec.md §5.
func IterativeDeepen(ctx context.Context, tt TranspositionTable, pos *board.Position, color board.Color, maxDepth int, quiescence bool, budget time.Duration) PV {
	start := time.Now()

	var last PV
	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && time.Since(start) >= budget {
			break
		}

		move, ok, score, stats := FindBestMove(ctx, tt, pos, color, depth, quiescence)
		last.Nodes += stats.Nodes
		if !ok {
			break
		}
		last.Depth = depth
		last.Score = score
		last.Move = move
		last.HasMove = true
		last.Time = time.Since(start)

		logw.Debugf(ctx, "iterative deepening: depth=%v score=%v move=%v nodes=%v", depth, score, move, last.Nodes)
	}
	return last
}
