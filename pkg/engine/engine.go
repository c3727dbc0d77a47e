// Package engine is the host-facing entry point for the underchex engine
// core (spec.md §6): new_game, make_move, get_legal_moves, is_in_check,
// get_ai_move, evaluate and clear_ai_cache, wired over pkg/board,
// pkg/eval, pkg/search and pkg/tablebase. It does not itself persist
// anything or track game history: those are the host adapter's concern
// (spec.md §1).
package engine

import (
	"context"
	"fmt"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
	"github.com/boweiliu/underchex/pkg/search"
	"github.com/boweiliu/underchex/pkg/tablebase"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Name returns the engine name and version, mirroring morlock.Engine.Name.
func Name() string {
	return fmt.Sprintf("underchex %v", version)
}

// GameState is an immutable position snapshot plus the side to move and
// the game's terminal status (spec.md §3: "Boards are immutable
// snapshots"). MakeMove never mutates a GameState: it returns a new one.
type GameState struct {
	Position *board.Position
	Turn     board.Color
	Status   board.GameStatus
}

// NewGame builds a GameState at the standard starting position with
// White to move (spec.md §6 new_game).
func NewGame() *GameState {
	return &GameState{
		Position: board.StandardStartingPosition(),
		Turn:     board.White,
		Status:   board.GameStatus{Kind: board.Ongoing},
	}
}

// defaultPromotion is the promotion piece chosen by MakeMove when a move
// reaches the promotion zone without the host specifying a target; the
// host adapter's richer move UI (spec.md §1 out-of-scope) is expected to
// call MakeMovePromoting directly when it needs a different choice. Queen
// is the strongest promotion target and the conventional default across
// chess variants.
const defaultPromotion = board.Queen

// MakeMove validates and applies a from/to move for the side to move in
// state, defaulting to a Queen promotion if the move reaches the
// promotion zone (spec.md §6 make_move). It rejects if the game is not
// Ongoing or the move is illegal, returning the stable reason token from
// spec.md §7 and leaving state untouched.
func MakeMove(state *GameState, from, to board.Coord) (*GameState, bool, board.ValidationReason) {
	return MakeMovePromoting(state, from, to, defaultPromotion)
}

// MakeMovePromoting is MakeMove with an explicit promotion target, used
// when the host UI lets the player choose (spec.md §4.C promotion
// target ∈ {Queen, Chariot, Lance, Knight}).
func MakeMovePromoting(state *GameState, from, to board.Coord, promotion board.PieceType) (*GameState, bool, board.ValidationReason) {
	if state.Status.IsTerminal() {
		return nil, false, board.IllegalMove
	}

	legal, _, reason := state.Position.ValidateMove(from, to, state.Turn)
	if !legal {
		return nil, false, reason
	}

	var chosen board.Move
	var found bool
	for _, m := range state.Position.LegalMoves(state.Turn) {
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() && m.Promotion != promotion {
			continue
		}
		chosen, found = m, true
		break
	}
	if !found {
		// ValidateMove confirmed legality but none of the emitted
		// promotion variants matched the requested target.
		return nil, false, board.IllegalMove
	}

	next := state.Position.ApplyMove(chosen)
	nextTurn := state.Turn.Opponent()
	return &GameState{
		Position: next,
		Turn:     nextTurn,
		Status:   deriveStatus(next, nextTurn),
	}, true, board.NoReason
}

// deriveStatus computes the GameStatus reachable from move generation
// alone (spec.md §6): checkmate, stalemate, or ongoing. Draw-by-repetition
// and no-progress draws require game history and are the host adapter's
// concern (spec.md §1).
func deriveStatus(pos *board.Position, turn board.Color) board.GameStatus {
	if len(pos.LegalMoves(turn)) > 0 {
		return board.GameStatus{Kind: board.Ongoing}
	}
	if pos.IsInCheck(turn) {
		return board.GameStatus{Kind: board.Checkmate, Winner: turn.Opponent()}
	}
	return board.GameStatus{Kind: board.Stalemate}
}

// GetLegalMoves returns every legal move for the side to move in state
// (spec.md §6 get_legal_moves).
func GetLegalMoves(state *GameState) []board.Move {
	return state.Position.LegalMoves(state.Turn)
}

// IsInCheck reports whether the side to move in state is in check
// (spec.md §6 is_in_check).
func IsInCheck(state *GameState) bool {
	return state.Position.IsInCheck(state.Turn)
}

// Evaluate returns the static centipawn evaluation of pos from White's
// perspective (spec.md §6 evaluate).
func Evaluate(pos *board.Position) eval.Score {
	return eval.Evaluate(pos)
}

// ClearAICache empties the process-global transposition table (spec.md
// §6 clear_ai_cache). Tablebases are not cleared: they are write-once
// and cheap to keep across games (spec.md §5).
func ClearAICache() {
	search.GlobalTranspositionTable().Clear()
}

// AIResult is the result of GetAIMove: the chosen move (if any), its
// score from color's perspective, and search statistics.
type AIResult struct {
	Move    board.Move
	HasMove bool
	Score   eval.Score
	PV      search.PV
	FromTB  bool
}

// GetAIMove selects a move for color to move in pos at the given
// difficulty tier (spec.md §4.F/§6 get_ai_move). It first probes the
// tablebase registry; on a hit with a recorded best move it returns that
// move directly. On a miss it dispatches to the difficulty tier's
// alpha-beta search, consulting the process-global transposition table.
func GetAIMove(ctx context.Context, pos *board.Position, color board.Color, difficulty search.Difficulty) AIResult {
	if entry, ok := tablebase.Probe(tablebase.GlobalRegistry(), pos, color); ok && entry.HasBestMove {
		score := tablebase.Score(entry)
		logw.Debugf(ctx, "tablebase hit: %v %v best=%v wdl=%v dtm=%v", color, difficulty, entry.BestMove, entry.WDL, entry.DTM)
		return AIResult{Move: entry.BestMove, HasMove: true, Score: score, FromTB: true}
	}

	opt := search.OptionsFor(difficulty)
	pv := search.Run(ctx, search.GlobalTranspositionTable(), pos, color, opt)

	score := pv.Score
	if color == board.Black {
		score = -score
	}
	logw.Debugf(ctx, "search: %v %v -> %v", color, difficulty, pv)
	return AIResult{Move: pv.Move, HasMove: pv.HasMove, Score: score, PV: pv}
}
