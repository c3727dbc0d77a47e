// Package search implements alpha-beta search with quiescence, MVV-LVA
// move ordering and transposition-table-assisted iterative deepening
// over pkg/board positions.
package search

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

// PV is the principal variation found by a search call.
type PV struct {
	Move    board.Move
	HasMove bool
	Score   eval.Score
	Depth   int
	Nodes   uint64
	Time    time.Duration
}

func (pv PV) String() string {
	if !pv.HasMove {
		return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v (no move)", pv.Depth, pv.Score, pv.Nodes, pv.Time)
	}
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v move=%v", pv.Depth, pv.Score, pv.Nodes, pv.Time, pv.Move)
}

// Difficulty selects a search tier (spec.md §4.F).
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "?"
	}
}

// Options describes how a Difficulty tier translates into concrete
// search parameters. Budget is unset (lang.Optional zero value) for
// tiers with no wall-clock cutoff, mirroring morlock's
// searchctl.Options{DepthLimit, TimeControl lang.Optional[...]} shape.
type Options struct {
	DepthLimit int
	Quiescence bool
	Iterative  bool
	Budget     lang.Optional[time.Duration]
}

// OptionsFor returns the fixed parameters for a Difficulty tier
// (spec.md §4.F): Easy is depth 2 with no quiescence, Medium is depth 4
// with quiescence, Hard is iterative deepening to depth 6 with a 5000ms
// budget and quiescence.
func OptionsFor(d Difficulty) Options {
	switch d {
	case Easy:
		return Options{DepthLimit: 2, Quiescence: false}
	case Medium:
		return Options{DepthLimit: 4, Quiescence: true}
	case Hard:
		return Options{DepthLimit: 6, Quiescence: true, Iterative: true, Budget: lang.Some(5000 * time.Millisecond)}
	default:
		return Options{DepthLimit: 2}
	}
}

// unlimitedBudget stands in for "no wall-clock cutoff" when Options.Budget
// is unset, since IterativeDeepen's loop condition needs a concrete
// duration to compare the elapsed time against.
const unlimitedBudget = time.Duration(math.MaxInt64)

// Run executes a search for color to move in pos under opt, using tt as
// the transposition table.
func Run(ctx context.Context, tt TranspositionTable, pos *board.Position, color board.Color, opt Options) PV {
	if opt.Iterative {
		budget := unlimitedBudget
		if b, ok := opt.Budget.V(); ok {
			budget = b
		}
		return IterativeDeepen(ctx, tt, pos, color, opt.DepthLimit, opt.Quiescence, budget)
	}

	start := time.Now()
	move, ok, score, stats := FindBestMove(ctx, tt, pos, color, opt.DepthLimit, opt.Quiescence)
	return PV{
		Move:    move,
		HasMove: ok,
		Score:   score,
		Depth:   opt.DepthLimit,
		Nodes:   stats.Nodes,
		Time:    time.Since(start),
	}
}

// FindBestMove enumerates color's legal moves in pos and returns the one
// maximizing (White) or minimizing (Black) the resulting search score at
// the given depth, along with an Exact root entry stored in tt
// (spec.md §4.F: "seeds α = −∞, β = +∞ ... stores an Exact TT entry at
// root").
func FindBestMove(ctx context.Context, tt TranspositionTable, pos *board.Position, color board.Color, depth int, quiescence bool) (board.Move, bool, eval.Score, Stats) {
	r := &run{tt: tt, quiescence: quiescence}

	legal := pos.LegalMoves(color)
	if len(legal) == 0 {
		return board.Move{}, false, eval.Evaluate(pos), r.stats
	}

	maximizing := color == board.White
	best := eval.NegInfScore
	if !maximizing {
		best = eval.InfScore
	}
	var bestMove board.Move
	var hasMove bool

	moves := NewMoveList(legal, board.Move{}, false)
	for {
		m, ok := moves.Next()
		if !ok {
			break
		}
		next := pos.ApplyMove(m)
		score, _ := r.alphabeta(ctx, next, color.Opponent(), depth-1, eval.NegInfScore, eval.InfScore, !maximizing)

		if (maximizing && score > best) || (!maximizing && score < best) {
			best, bestMove, hasMove = score, m, true
		}
	}

	hash := board.DefaultZobristTable().Hash(pos, color)
	tt.Store(hash, Entry{Bound: ExactBound, Depth: depth, Score: best, BestMove: bestMove, HasMove: hasMove})

	return bestMove, hasMove, best, r.stats
}
