package tablebase

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/boweiliu/underchex/pkg/board"
)

// WDL is a tablebase verdict from the side-to-move's perspective.
type WDL int

const (
	Win WDL = iota
	Draw
	Loss
)

func (w WDL) String() string {
	switch w {
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	case Loss:
		return "Loss"
	default:
		return "?"
	}
}

// Entry is one tablebase verdict (spec.md §3 TablebaseEntry). DTM is 0
// for a position already mated, -1 for a draw, and a positive ply count
// otherwise.
type Entry struct {
	WDL         WDL
	DTM         int
	BestMove    board.Move
	HasBestMove bool
}

// maxRetrogradeRounds caps the fixed-point iteration (spec.md §4.G).
const maxRetrogradeRounds = 500

// successor is a precomputed transition out of a state. external marks a
// move that captures the configuration's sole extra piece, collapsing
// the position into a bare-king ("KvK") endgame outside this
// configuration's enumerated set; since KvK is always a draw (law 10b),
// such transitions are resolved from kvk up front rather than tracked
// through the fixed point.
type successor struct {
	move     board.Move
	external bool
	entry    Entry // valid when external
	id       int   // valid when !external
}

type state struct {
	pos      *board.Position
	side     board.Color
	key      string
	resolved bool
	entry    Entry
	succ     []successor
}

// Retrograde runs the backward-induction fixed point for config (spec.md
// §4.G). kvk supplies the already-generated KvK table, needed to resolve
// moves that capture the configuration's sole extra piece; pass nil for
// config == KvK, where no capture is ever possible (two bare kings
// cannot capture anything).
func Retrograde(config Config, kvk map[string]Entry) map[string]Entry {
	candidates := Enumerate(config)

	states := make([]*state, len(candidates))
	keyToID := make(map[string]int, len(candidates))
	for i, c := range candidates {
		key := board.TablebaseKey(c.Position, c.Side)
		states[i] = &state{pos: c.Position, side: c.Side, key: key}
		keyToID[key] = i
	}

	unresolved := bitset.New(uint(len(states)))
	for i, s := range states {
		legal := s.pos.LegalMoves(s.side)
		if len(legal) == 0 {
			if s.pos.IsInCheck(s.side) {
				s.entry = Entry{WDL: Loss, DTM: 0}
			} else {
				s.entry = Entry{WDL: Draw, DTM: -1}
			}
			s.resolved = true
			continue
		}

		s.succ = make([]successor, 0, len(legal))
		for _, m := range legal {
			next := s.pos.ApplyMove(m)
			nextSide := s.side.Opponent()
			key := board.TablebaseKey(next, nextSide)

			if m.IsCapture() {
				entry, ok := kvk[key]
				if !ok {
					entry = Entry{WDL: Draw, DTM: -1}
				}
				s.succ = append(s.succ, successor{move: m, external: true, entry: entry})
				continue
			}

			id, ok := keyToID[key]
			if !ok {
				// Not reachable for a well-formed configuration (every
				// non-capturing move stays within the same piece set),
				// but fail safe rather than fail loud mid-generation.
				s.succ = append(s.succ, successor{move: m, external: true, entry: Entry{WDL: Draw, DTM: -1}})
				continue
			}
			s.succ = append(s.succ, successor{move: m, id: id})
		}
		unresolved.Set(uint(i))
	}

	for round := 0; round < maxRetrogradeRounds; round++ {
		changed := false
		for i, ok := unresolved.NextSet(0); ok; i, ok = unresolved.NextSet(i + 1) {
			if resolveOne(states, states[i]) {
				unresolved.Clear(i)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for i, ok := unresolved.NextSet(0); ok; i, ok = unresolved.NextSet(i + 1) {
		states[i].entry = Entry{WDL: Draw, DTM: -1}
		states[i].resolved = true
	}

	out := make(map[string]Entry, len(states))
	for _, s := range states {
		out[s.key] = s.entry
	}
	return out
}

// resolveOne applies one round of spec.md §4.G step 3 to s, returning
// true if s became resolved.
func resolveOne(states []*state, s *state) bool {
	var bestWin *successor
	var bestWinDTM int
	allResolved := true
	allWin := true
	maxWinDTM := 0

	for i := range s.succ {
		succ := &s.succ[i]
		entry, resolved := succEntry(states, succ)
		if !resolved {
			allResolved = false
			allWin = false
			continue
		}
		switch entry.WDL {
		case Loss:
			dtm := entry.DTM + 1
			if bestWin == nil || dtm < bestWinDTM {
				bestWin, bestWinDTM = succ, dtm
			}
		case Win:
			if entry.DTM > maxWinDTM {
				maxWinDTM = entry.DTM
			}
		default: // Draw
			allWin = false
		}
	}

	if bestWin != nil {
		s.entry = Entry{WDL: Win, DTM: bestWinDTM, BestMove: bestWin.move, HasBestMove: true}
		s.resolved = true
		return true
	}
	if allResolved && allWin {
		s.entry = Entry{WDL: Loss, DTM: maxWinDTM + 1}
		s.resolved = true
		return true
	}
	return false
}

func succEntry(states []*state, succ *successor) (Entry, bool) {
	if succ.external {
		return succ.entry, true
	}
	ss := states[succ.id]
	return ss.entry, ss.resolved
}
