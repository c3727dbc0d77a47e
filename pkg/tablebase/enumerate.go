package tablebase

import (
	"github.com/boweiliu/underchex/pkg/board"
)

// Candidate is one enumerated position together with the side to move
// that must be recorded with it, since the same piece placement yields
// two distinct tablebase entries (spec.md §4.G).
type Candidate struct {
	Position *board.Position
	Side     board.Color
}

// Enumerate produces every candidate position for config, generated in
// the canonical orientation where the stronger side's pieces are White's
// (spec.md §4.G position enumeration). A position whose side-not-to-move
// is in check is discarded, since that would mean the side that just
// moved left its own king attacked.
func Enumerate(config Config) []Candidate {
	cells := board.GetAllCells()

	var specs []PieceSpec
	if len(config.StrongerSide) == 1 {
		specs = config.StrongerSide
	}

	var out []Candidate
	for _, wk := range cells {
		for _, bk := range cells {
			if wk == bk || board.HexDistance(wk, bk) <= 1 {
				continue
			}

			if len(specs) == 0 {
				out = appendCandidates(out, map[board.Coord]board.Piece{
					wk: board.NewSimplePiece(board.King, board.White),
					bk: board.NewSimplePiece(board.King, board.Black),
				})
				continue
			}

			spec := specs[0]
			for _, variant := range variantsFor(spec.Type) {
				for _, c := range cells {
					if c == wk || c == bk {
						continue
					}
					placements := map[board.Coord]board.Piece{
						wk: board.NewSimplePiece(board.King, board.White),
						bk: board.NewSimplePiece(board.King, board.Black),
						c:  strongerPiece(spec.Type, variant),
					}
					out = appendCandidates(out, placements)
				}
			}
		}
	}
	return out
}

func variantsFor(t board.PieceType) []board.LanceVariant {
	if t == board.Lance {
		return []board.LanceVariant{board.VariantA, board.VariantB}
	}
	return []board.LanceVariant{board.NoVariant}
}

func strongerPiece(t board.PieceType, variant board.LanceVariant) board.Piece {
	if t == board.Lance {
		return board.NewLance(board.White, variant)
	}
	return board.NewSimplePiece(t, board.White)
}

// appendCandidates emits both side-to-move variants of placements,
// dropping the one where the side not to move is left in check.
func appendCandidates(out []Candidate, placements map[board.Coord]board.Piece) []Candidate {
	pos := board.NewPosition(placements)

	for _, side := range []board.Color{board.White, board.Black} {
		if pos.IsInCheck(side.Opponent()) {
			continue
		}
		out = append(out, Candidate{Position: pos, Side: side})
	}
	return out
}
