package tablebase

import (
	"github.com/boweiliu/underchex/pkg/board"
	"github.com/boweiliu/underchex/pkg/eval"
)

// Probe looks up pos (with sideToMove about to move) in r (spec.md §4.G
// probe_tablebase). Every supported configuration is generated with the
// stronger side oriented as White; a position whose stronger side is
// actually Black is reflected before lookup and the result translated
// back, which is exactly the symmetry spec.md §8 law 11 requires to
// hold.
func Probe(r *Registry, pos *board.Position, sideToMove board.Color) (Entry, bool) {
	config, strongerColor, ok := DetectConfiguration(pos)
	if !ok {
		return Entry{}, false
	}

	table, ok := r.Lookup(config.Name)
	if !ok {
		return Entry{}, false
	}

	queryPos, querySide := pos, sideToMove
	reflected := strongerColor == board.Black
	if reflected {
		queryPos = board.ReflectPosition(pos)
		querySide = sideToMove.Opponent()
	}

	entry, ok := table.Entries[board.TablebaseKey(queryPos, querySide)]
	if !ok {
		return Entry{}, false
	}

	if reflected && entry.HasBestMove {
		entry.BestMove = board.ReflectMove(entry.BestMove)
	}
	return entry, true
}

// Score converts an Entry into a centipawn score from sideToMove's
// perspective (spec.md §4.G tablebase_score).
func Score(e Entry) eval.Score {
	switch e.WDL {
	case Win:
		return eval.CheckmateValue - eval.Score(e.DTM)
	case Loss:
		return -eval.CheckmateValue + eval.Score(e.DTM)
	default:
		return eval.ZeroScore
	}
}
